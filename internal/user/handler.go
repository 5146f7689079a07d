// AngelaMos | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/kanriapp/masterdata-api/internal/core"
	"github.com/kanriapp/masterdata-api/internal/query"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/export", h.ExportUsers)
		r.Get("/{userID}", h.GetUser)
		r.Patch("/{userID}", h.UpdateUser)
		r.Delete("/{userID}", h.DeleteUser)
	})
}

// ListUsers returns a filtered, paginated page of users. The filter runs
// server-side; pagination happens over the full result so the reported
// total always matches the filter.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := ListUsersParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Spec:     specFromQuery(r),
	}
	params.Normalize()

	users, err := h.service.List(r.Context(), params.Spec)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	page := query.Paginate(users, params.PageIndex(), params.PageSize)

	core.Paginated(
		w,
		ToUserResponseList(page),
		params.Page,
		params.PageSize,
		len(users),
	)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	user, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	input, fieldErrs := req.Validate(h.validator)
	if fieldErrs != nil {
		core.UnprocessableFields(w, fieldErrs)
		return
	}

	user, err := h.service.Create(r.Context(), input)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToUserResponse(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	patch, fieldErrs := req.Validate(h.validator)
	if fieldErrs != nil {
		core.UnprocessableFields(w, fieldErrs)
		return
	}

	user, err := h.service.Update(r.Context(), userID, patch)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.service.Delete(r.Context(), userID); err != nil {
		core.JSONError(w, err)
		return
	}

	core.NoContent(w)
}

// ExportUsers streams the current filter result as CSV, unpaginated.
func (h *Handler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context(), specFromQuery(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	writeUsersCSV(w, users)
}

func specFromQuery(r *http.Request) SearchSpec {
	return SearchSpec{
		Keyword: r.URL.Query().Get("keyword"),
		Role:    r.URL.Query().Get("role"),
		Status:  r.URL.Query().Get("status"),
	}
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
