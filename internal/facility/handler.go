// AngelaMos | 2026
// handler.go

package facility

import (
	"encoding/json"
	"errors"
	"io"
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
	r.Route("/facilities", func(r chi.Router) {
		r.Get("/", h.ListFacilities)
		r.Post("/", h.CreateFacility)
		r.Get("/export", h.ExportFacilities)
		r.Get("/{facilityID}", h.GetFacility)
		r.Patch("/{facilityID}", h.UpdateFacility)
		r.Post("/{facilityID}/deactivate", h.DeactivateFacility)
	})
}

// ListFacilities returns a filtered, paginated page of facilities. The
// filter runs server-side; pagination happens over the full result so the
// reported total always matches the filter.
func (h *Handler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	params := ListFacilitiesParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
		Spec:     specFromQuery(r),
	}
	params.Normalize()

	facilities, err := h.service.List(r.Context(), params.Spec)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	page := query.Paginate(facilities, params.PageIndex(), params.PageSize)

	core.Paginated(
		w,
		ToFacilityResponseList(page),
		params.Page,
		params.PageSize,
		len(facilities),
	)
}

func (h *Handler) GetFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "facilityID")

	facility, err := h.service.Get(r.Context(), facilityID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "facility")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToFacilityResponse(facility))
}

func (h *Handler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	input, fieldErrs := req.Validate(h.validator)
	if fieldErrs != nil {
		core.UnprocessableFields(w, fieldErrs)
		return
	}

	facility, err := h.service.Create(r.Context(), input)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.Created(w, ToFacilityResponse(facility))
}

func (h *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "facilityID")

	var req UpdateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	patch, fieldErrs := req.Validate(h.validator)
	if fieldErrs != nil {
		core.UnprocessableFields(w, fieldErrs)
		return
	}

	facility, err := h.service.Update(r.Context(), facilityID, patch)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToFacilityResponse(facility))
}

// DeactivateFacility retires a facility in place. An empty body is
// accepted and means "no end date".
func (h *Handler) DeactivateFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "facilityID")

	var req DeactivateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		core.BadRequest(w, "invalid request body")
		return
	}

	endDate, fieldErrs := req.Validate(h.validator)
	if fieldErrs != nil {
		core.UnprocessableFields(w, fieldErrs)
		return
	}

	facility, err := h.service.Deactivate(r.Context(), facilityID, endDate)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, ToFacilityResponse(facility))
}

// ExportFacilities streams the current filter result as CSV, unpaginated.
func (h *Handler) ExportFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.service.List(r.Context(), specFromQuery(r))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	writeFacilitiesCSV(w, facilities)
}

func specFromQuery(r *http.Request) SearchSpec {
	return SearchSpec{
		Keyword:  r.URL.Query().Get("keyword"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
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
