// AngelaMos | 2026
// dto.go

package facility

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kanriapp/masterdata-api/internal/core"
	"github.com/kanriapp/masterdata-api/internal/form"
)

// CreateFacilityRequest carries raw form values. Dates, coordinates and
// counts arrive as strings; normalization parses them and rejects anything
// malformed instead of silently dropping it.
type CreateFacilityRequest struct {
	Code         string `json:"code"          validate:"required,facility_code,max=16"`
	Name         string `json:"name"          validate:"required,min=1,max=100"`
	NameKana     string `json:"name_kana"     validate:"omitempty,max=100"`
	Category     string `json:"category"      validate:"required,oneof=HEAD BRANCH WAREHOUSE STORE OTHER"`
	Status       string `json:"status"        validate:"required,oneof=ACTIVE INACTIVE SUSPENDED CLOSED"`
	StartDate    string `json:"start_date"    validate:"omitempty,date_ymd"`
	EndDate      string `json:"end_date"      validate:"omitempty,date_ymd"`
	Country      string `json:"country"       validate:"omitempty,len=2"`
	Prefecture   string `json:"prefecture"    validate:"omitempty,max=50"`
	City         string `json:"city"          validate:"omitempty,max=100"`
	AddressLine1 string `json:"address_line1" validate:"omitempty,max=200"`
	PostalCode   string `json:"postal_code"   validate:"omitempty,jp_postal"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	PhoneNumber  string `json:"phone_number"  validate:"omitempty,phone,max=50"`
	Email        string `json:"email"         validate:"omitempty,email,max=255"`
	ContactName  string `json:"contact_name"  validate:"omitempty,max=100"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,phone,max=50"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email,max=255"`
	Capacity     string `json:"capacity"`
	Note         string `json:"note"          validate:"omitempty,max=500"`
	ImageURL     string `json:"image_url"     validate:"omitempty,url,max=200"`
	IsIntegrated bool   `json:"is_integrated"`
	DisplayOrder string `json:"display_order"`
	BillingCode  string `json:"billing_code"  validate:"omitempty,max=20"`
}

// CreateFacilityInput is the normalized, typed payload handed to the service.
type CreateFacilityInput struct {
	Code         string
	Name         string
	NameKana     *string
	Category     string
	Status       string
	StartDate    *time.Time
	EndDate      *time.Time
	Country      string
	Prefecture   *string
	City         *string
	AddressLine1 *string
	PostalCode   *string
	Latitude     *float64
	Longitude    *float64
	PhoneNumber  *string
	Email        *string
	ContactName  *string
	ContactPhone *string
	ContactEmail *string
	Capacity     *int
	Note         *string
	ImageURL     *string
	IsIntegrated bool
	DisplayOrder *int
	BillingCode  *string
	CreatedBy    *string
}

// Validate runs the declarative field rules, parses the string-typed form
// values, and on success returns the normalized payload.
//
//nolint:cyclop // one branch per parsed column
func (r CreateFacilityRequest) Validate(v *validator.Validate) (CreateFacilityInput, []core.FieldError) {
	// Required fields trim before the rules run so whitespace-only input
	// fails `required` instead of slipping through as a non-empty string.
	r.Code = strings.TrimSpace(r.Code)
	r.Name = strings.TrimSpace(r.Name)

	var errs []core.FieldError
	if err := v.Struct(r); err != nil {
		errs = core.FieldErrors(err)
	}

	startDate, err := form.OptionalDate(r.StartDate)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	endDate, err := form.OptionalDate(r.EndDate)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		errs = append(errs, core.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	latitude, err := form.OptionalFloat(r.Latitude)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "latitude", Message: "must be a number"})
	} else if latitude != nil {
		if fe := core.CheckVar(v, "latitude", *latitude, "gte=-90,lte=90"); fe != nil {
			errs = append(errs, *fe)
		}
	}
	longitude, err := form.OptionalFloat(r.Longitude)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "longitude", Message: "must be a number"})
	} else if longitude != nil {
		if fe := core.CheckVar(v, "longitude", *longitude, "gte=-180,lte=180"); fe != nil {
			errs = append(errs, *fe)
		}
	}

	capacity, err := form.OptionalInt(r.Capacity)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "capacity", Message: "must be an integer"})
	} else if capacity != nil {
		if fe := core.CheckVar(v, "capacity", *capacity, "gte=0"); fe != nil {
			errs = append(errs, *fe)
		}
	}
	displayOrder, err := form.OptionalInt(r.DisplayOrder)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "display_order", Message: "must be an integer"})
	} else if displayOrder != nil {
		if fe := core.CheckVar(v, "display_order", *displayOrder, "gte=0"); fe != nil {
			errs = append(errs, *fe)
		}
	}

	if len(errs) > 0 {
		return CreateFacilityInput{}, errs
	}

	country := strings.ToUpper(strings.TrimSpace(r.Country))
	if country == "" {
		country = "JP"
	}

	return CreateFacilityInput{
		Code:         strings.ToUpper(r.Code),
		Name:         r.Name,
		NameKana:     form.OptionalString(r.NameKana),
		Category:     r.Category,
		Status:       r.Status,
		StartDate:    startDate,
		EndDate:      endDate,
		Country:      country,
		Prefecture:   form.OptionalString(r.Prefecture),
		City:         form.OptionalString(r.City),
		AddressLine1: form.OptionalString(r.AddressLine1),
		PostalCode:   form.OptionalString(r.PostalCode),
		Latitude:     latitude,
		Longitude:    longitude,
		PhoneNumber:  form.OptionalString(r.PhoneNumber),
		Email:        form.OptionalString(r.Email),
		ContactName:  form.OptionalString(r.ContactName),
		ContactPhone: form.OptionalString(r.ContactPhone),
		ContactEmail: form.OptionalString(r.ContactEmail),
		Capacity:     capacity,
		Note:         form.OptionalString(r.Note),
		ImageURL:     form.OptionalString(r.ImageURL),
		IsIntegrated: r.IsIntegrated,
		DisplayOrder: displayOrder,
		BillingCode:  form.OptionalString(r.BillingCode),
	}, nil
}

// UpdateFacilityRequest is a tri-state patch: each field is either omitted
// (keep), null or blank (clear), or set. Code is patchable but never
// clearable; date and numeric fields stay strings until normalization.
type UpdateFacilityRequest struct {
	Code         form.Field[string] `json:"code"`
	Name         form.Field[string] `json:"name"`
	NameKana     form.Field[string] `json:"name_kana"`
	Category     form.Field[string] `json:"category"`
	Status       form.Field[string] `json:"status"`
	StartDate    form.Field[string] `json:"start_date"`
	EndDate      form.Field[string] `json:"end_date"`
	Country      form.Field[string] `json:"country"`
	Prefecture   form.Field[string] `json:"prefecture"`
	City         form.Field[string] `json:"city"`
	AddressLine1 form.Field[string] `json:"address_line1"`
	PostalCode   form.Field[string] `json:"postal_code"`
	Latitude     form.Field[string] `json:"latitude"`
	Longitude    form.Field[string] `json:"longitude"`
	PhoneNumber  form.Field[string] `json:"phone_number"`
	Email        form.Field[string] `json:"email"`
	ContactName  form.Field[string] `json:"contact_name"`
	ContactPhone form.Field[string] `json:"contact_phone"`
	ContactEmail form.Field[string] `json:"contact_email"`
	Capacity     form.Field[string] `json:"capacity"`
	Note         form.Field[string] `json:"note"`
	ImageURL     form.Field[string] `json:"image_url"`
	IsIntegrated form.Field[bool]   `json:"is_integrated"`
	DisplayOrder form.Field[string] `json:"display_order"`
	BillingCode  form.Field[string] `json:"billing_code"`
}

// FacilityPatch is the validated patch applied by the repository. Omitted
// fields retain their stored value.
type FacilityPatch struct {
	Code         form.Field[string]
	Name         form.Field[string]
	NameKana     form.Field[string]
	Category     form.Field[string]
	Status       form.Field[string]
	StartDate    form.Field[time.Time]
	EndDate      form.Field[time.Time]
	Country      form.Field[string]
	Prefecture   form.Field[string]
	City         form.Field[string]
	AddressLine1 form.Field[string]
	PostalCode   form.Field[string]
	Latitude     form.Field[float64]
	Longitude    form.Field[float64]
	PhoneNumber  form.Field[string]
	Email        form.Field[string]
	ContactName  form.Field[string]
	ContactPhone form.Field[string]
	ContactEmail form.Field[string]
	Capacity     form.Field[int]
	Note         form.Field[string]
	ImageURL     form.Field[string]
	IsIntegrated form.Field[bool]
	DisplayOrder form.Field[int]
	BillingCode  form.Field[string]
	UpdatedBy    *string
}

func (p FacilityPatch) IsEmpty() bool {
	return p.Code.IsOmitted() &&
		p.Name.IsOmitted() &&
		p.NameKana.IsOmitted() &&
		p.Category.IsOmitted() &&
		p.Status.IsOmitted() &&
		p.StartDate.IsOmitted() &&
		p.EndDate.IsOmitted() &&
		p.Country.IsOmitted() &&
		p.Prefecture.IsOmitted() &&
		p.City.IsOmitted() &&
		p.AddressLine1.IsOmitted() &&
		p.PostalCode.IsOmitted() &&
		p.Latitude.IsOmitted() &&
		p.Longitude.IsOmitted() &&
		p.PhoneNumber.IsOmitted() &&
		p.Email.IsOmitted() &&
		p.ContactName.IsOmitted() &&
		p.ContactPhone.IsOmitted() &&
		p.ContactEmail.IsOmitted() &&
		p.Capacity.IsOmitted() &&
		p.Note.IsOmitted() &&
		p.ImageURL.IsOmitted() &&
		p.IsIntegrated.IsOmitted() &&
		p.DisplayOrder.IsOmitted() &&
		p.BillingCode.IsOmitted()
}

// Rule table for the string-typed patch fields. Required fields cannot be
// cleared; the rest are nullable with length and format constraints. Dates
// and numbers are parsed separately below.
var facilityPatchRules = []struct {
	field    string
	rule     string
	required bool
	pick     func(UpdateFacilityRequest) form.Field[string]
}{
	{"code", "facility_code,max=16", true, func(r UpdateFacilityRequest) form.Field[string] { return r.Code }},
	{"name", "min=1,max=100", true, func(r UpdateFacilityRequest) form.Field[string] { return r.Name }},
	{"name_kana", "max=100", false, func(r UpdateFacilityRequest) form.Field[string] { return r.NameKana }},
	{"category", "oneof=HEAD BRANCH WAREHOUSE STORE OTHER", true, func(r UpdateFacilityRequest) form.Field[string] { return r.Category }},
	{"status", "oneof=ACTIVE INACTIVE SUSPENDED CLOSED", true, func(r UpdateFacilityRequest) form.Field[string] { return r.Status }},
	{"country", "len=2", true, func(r UpdateFacilityRequest) form.Field[string] { return r.Country }},
	{"prefecture", "max=50", false, func(r UpdateFacilityRequest) form.Field[string] { return r.Prefecture }},
	{"city", "max=100", false, func(r UpdateFacilityRequest) form.Field[string] { return r.City }},
	{"address_line1", "max=200", false, func(r UpdateFacilityRequest) form.Field[string] { return r.AddressLine1 }},
	{"postal_code", "jp_postal", false, func(r UpdateFacilityRequest) form.Field[string] { return r.PostalCode }},
	{"phone_number", "phone,max=50", false, func(r UpdateFacilityRequest) form.Field[string] { return r.PhoneNumber }},
	{"email", "email,max=255", false, func(r UpdateFacilityRequest) form.Field[string] { return r.Email }},
	{"contact_name", "max=100", false, func(r UpdateFacilityRequest) form.Field[string] { return r.ContactName }},
	{"contact_phone", "phone,max=50", false, func(r UpdateFacilityRequest) form.Field[string] { return r.ContactPhone }},
	{"contact_email", "email,max=255", false, func(r UpdateFacilityRequest) form.Field[string] { return r.ContactEmail }},
	{"note", "max=500", false, func(r UpdateFacilityRequest) form.Field[string] { return r.Note }},
	{"image_url", "url,max=200", false, func(r UpdateFacilityRequest) form.Field[string] { return r.ImageURL }},
	{"billing_code", "max=20", false, func(r UpdateFacilityRequest) form.Field[string] { return r.BillingCode }},
}

// Validate normalizes every supplied field, applies the rule table, parses
// the date and numeric fields, and requires the patch to touch at least
// one field.
//
//nolint:cyclop,funlen // one branch per parsed column
func (r UpdateFacilityRequest) Validate(v *validator.Validate) (FacilityPatch, []core.FieldError) {
	var errs []core.FieldError

	patch := FacilityPatch{
		IsIntegrated: r.IsIntegrated,
	}

	for _, rule := range facilityPatchRules {
		normalized := form.NullableString(rule.pick(r))

		if normalized.IsClear() && rule.required {
			errs = append(errs, core.FieldError{
				Field:   rule.field,
				Message: "cannot be cleared",
			})
			continue
		}

		if value, ok := normalized.Get(); ok {
			if fe := core.CheckVar(v, rule.field, value, rule.rule); fe != nil {
				errs = append(errs, *fe)
				continue
			}
		}

		patch.setField(rule.field, normalized)
	}

	if code, ok := patch.Code.Get(); ok {
		patch.Code = form.Set(strings.ToUpper(code))
	}
	if country, ok := patch.Country.Get(); ok {
		patch.Country = form.Set(strings.ToUpper(country))
	}

	startDate, err := form.NullableDate(r.StartDate)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else {
		patch.StartDate = startDate
	}
	endDate, err := form.NullableDate(r.EndDate)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else {
		patch.EndDate = endDate
	}
	if s, ok := patch.StartDate.Get(); ok {
		if e, ok := patch.EndDate.Get(); ok && e.Before(s) {
			errs = append(errs, core.FieldError{Field: "end_date", Message: "must not be before start_date"})
		}
	}

	latitude, err := form.NullableFloat(r.Latitude)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "latitude", Message: "must be a number"})
	} else {
		if v2, ok := latitude.Get(); ok {
			if fe := core.CheckVar(v, "latitude", v2, "gte=-90,lte=90"); fe != nil {
				errs = append(errs, *fe)
			}
		}
		patch.Latitude = latitude
	}
	longitude, err := form.NullableFloat(r.Longitude)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "longitude", Message: "must be a number"})
	} else {
		if v2, ok := longitude.Get(); ok {
			if fe := core.CheckVar(v, "longitude", v2, "gte=-180,lte=180"); fe != nil {
				errs = append(errs, *fe)
			}
		}
		patch.Longitude = longitude
	}

	capacity, err := form.NullableInt(r.Capacity)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "capacity", Message: "must be an integer"})
	} else {
		if v2, ok := capacity.Get(); ok {
			if fe := core.CheckVar(v, "capacity", v2, "gte=0"); fe != nil {
				errs = append(errs, *fe)
			}
		}
		patch.Capacity = capacity
	}
	displayOrder, err := form.NullableInt(r.DisplayOrder)
	if err != nil {
		errs = append(errs, core.FieldError{Field: "display_order", Message: "must be an integer"})
	} else {
		if v2, ok := displayOrder.Get(); ok {
			if fe := core.CheckVar(v, "display_order", v2, "gte=0"); fe != nil {
				errs = append(errs, *fe)
			}
		}
		patch.DisplayOrder = displayOrder
	}

	if r.IsIntegrated.IsClear() {
		errs = append(errs, core.FieldError{Field: "is_integrated", Message: "cannot be cleared"})
	}

	if len(errs) > 0 {
		return FacilityPatch{}, errs
	}

	if patch.IsEmpty() {
		return FacilityPatch{}, []core.FieldError{
			{Field: "", Message: "at least one field must be provided"},
		}
	}

	return patch, nil
}

func (p *FacilityPatch) setField(name string, f form.Field[string]) {
	switch name {
	case "code":
		p.Code = f
	case "name":
		p.Name = f
	case "name_kana":
		p.NameKana = f
	case "category":
		p.Category = f
	case "status":
		p.Status = f
	case "country":
		p.Country = f
	case "prefecture":
		p.Prefecture = f
	case "city":
		p.City = f
	case "address_line1":
		p.AddressLine1 = f
	case "postal_code":
		p.PostalCode = f
	case "phone_number":
		p.PhoneNumber = f
	case "email":
		p.Email = f
	case "contact_name":
		p.ContactName = f
	case "contact_phone":
		p.ContactPhone = f
	case "contact_email":
		p.ContactEmail = f
	case "note":
		p.Note = f
	case "image_url":
		p.ImageURL = f
	case "billing_code":
		p.BillingCode = f
	}
}

// DeactivateFacilityRequest optionally records the closing date alongside
// the forced status change.
type DeactivateFacilityRequest struct {
	EndDate string `json:"end_date" validate:"omitempty,date_ymd"`
}

func (r DeactivateFacilityRequest) Validate(v *validator.Validate) (*time.Time, []core.FieldError) {
	if err := v.Struct(r); err != nil {
		return nil, core.FieldErrors(err)
	}

	endDate, err := form.OptionalDate(r.EndDate)
	if err != nil {
		return nil, []core.FieldError{
			{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"},
		}
	}

	return endDate, nil
}

type FacilityResponse struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	NameKana     *string    `json:"name_kana"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	StartDate    *string    `json:"start_date"`
	EndDate      *string    `json:"end_date"`
	Country      string     `json:"country"`
	Prefecture   *string    `json:"prefecture"`
	City         *string    `json:"city"`
	AddressLine1 *string    `json:"address_line1"`
	PostalCode   *string    `json:"postal_code"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	PhoneNumber  *string    `json:"phone_number"`
	Email        *string    `json:"email"`
	ContactName  *string    `json:"contact_name"`
	ContactPhone *string    `json:"contact_phone"`
	ContactEmail *string    `json:"contact_email"`
	Capacity     *int       `json:"capacity"`
	Note         *string    `json:"note"`
	ImageURL     *string    `json:"image_url"`
	SyncedAt     *time.Time `json:"synced_at"`
	IsIntegrated bool       `json:"is_integrated"`
	DisplayOrder *int       `json:"display_order"`
	BillingCode  *string    `json:"billing_code"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ListFacilitiesParams struct {
	Page     int
	PageSize int
	Spec     SearchSpec
}

func (p *ListFacilitiesParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// PageIndex converts the 1-based HTTP page to the zero-based index the
// pagination helper expects.
func (p *ListFacilitiesParams) PageIndex() int {
	return p.Page - 1
}

func ToFacilityResponse(f *Facility) FacilityResponse {
	return FacilityResponse{
		ID:           f.ID,
		Code:         f.Code,
		Name:         f.Name,
		NameKana:     f.NameKana,
		Category:     f.Category,
		Status:       f.Status,
		StartDate:    formatDate(f.StartDate),
		EndDate:      formatDate(f.EndDate),
		Country:      f.Country,
		Prefecture:   f.Prefecture,
		City:         f.City,
		AddressLine1: f.AddressLine1,
		PostalCode:   f.PostalCode,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		PhoneNumber:  f.PhoneNumber,
		Email:        f.Email,
		ContactName:  f.ContactName,
		ContactPhone: f.ContactPhone,
		ContactEmail: f.ContactEmail,
		Capacity:     f.Capacity,
		Note:         f.Note,
		ImageURL:     f.ImageURL,
		SyncedAt:     f.SyncedAt,
		IsIntegrated: f.IsIntegrated,
		DisplayOrder: f.DisplayOrder,
		BillingCode:  f.BillingCode,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func ToFacilityResponseList(facilities []Facility) []FacilityResponse {
	responses := make([]FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		responses = append(responses, ToFacilityResponse(&f))
	}
	return responses
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(form.DateLayout)
	return &s
}
