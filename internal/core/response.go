// AngelaMos | 2026
// response.go

package core

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
	Meta    any  `json:"meta,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type PageMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(body)
}

func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Paginated(w http.ResponseWriter, data any, page, pageSize, total int) {
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Meta:    PageMeta{Page: page, PageSize: pageSize, Total: total},
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   errorBody{Code: "BAD_REQUEST", Message: message},
	})
}

func NotFound(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusNotFound, envelope{
		Success: false,
		Error:   errorBody{Code: "NOT_FOUND", Message: entity + " not found"},
	})
}

func UnprocessableFields(w http.ResponseWriter, fields []FieldError) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error: errorBody{
			Code:    "VALIDATION_FAILED",
			Message: "one or more fields are invalid",
			Details: fields,
		},
	})
}

// InternalServerError logs the cause and returns a generic message.
// Infrastructure errors are never surfaced verbatim to the client.
func InternalServerError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, envelope{
		Success: false,
		Error: errorBody{
			Code:    "INTERNAL",
			Message: "an unexpected error occurred",
		},
	})
}

// JSONError renders an error, using the AppError envelope when available
// and falling back to a generic 500 otherwise.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, envelope{
			Success: false,
			Error: errorBody{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}
	InternalServerError(w, err)
}
