// AngelaMos | 2026
// dto.go

package user

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kanriapp/masterdata-api/internal/core"
	"github.com/kanriapp/masterdata-api/internal/form"
)

// CreateUserRequest carries raw form values. Optional strings arrive as
// plain strings; empty or whitespace-only means the field was left blank
// and is omitted from the persisted record.
type CreateUserRequest struct {
	Email       string `json:"email"        validate:"required,email,max=255"`
	Name        string `json:"name"         validate:"required,min=1,max=100"`
	NameKana    string `json:"name_kana"    validate:"omitempty,max=100"`
	Role        string `json:"role"         validate:"required,oneof=ADMIN MANAGER USER"`
	Status      string `json:"status"       validate:"required,oneof=ACTIVE INVITED DISABLED"`
	Department  string `json:"department"   validate:"omitempty,max=100"`
	Title       string `json:"title"        validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone,max=50"`
	Image       string `json:"image"        validate:"omitempty,url,max=200"`
	Note        string `json:"note"         validate:"omitempty,max=500"`
	MFAEnabled  bool   `json:"mfa_enabled"`
	IsLocked    bool   `json:"is_locked"`
}

// CreateUserInput is the normalized, typed payload handed to the service.
type CreateUserInput struct {
	Email       string
	Name        string
	NameKana    *string
	Role        string
	Status      string
	Department  *string
	Title       *string
	PhoneNumber *string
	Image       *string
	Note        *string
	MFAEnabled  bool
	IsLocked    bool
	CreatedBy   *string
}

// Validate runs the declarative field rules and, on success, returns the
// normalized payload. Validation always happens before any repository call.
func (r CreateUserRequest) Validate(v *validator.Validate) (CreateUserInput, []core.FieldError) {
	// Required fields trim before the rules run so whitespace-only input
	// fails `required` instead of slipping through as a non-empty string.
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)

	if err := v.Struct(r); err != nil {
		return CreateUserInput{}, core.FieldErrors(err)
	}

	return CreateUserInput{
		Email:       strings.ToLower(r.Email),
		Name:        r.Name,
		NameKana:    form.OptionalString(r.NameKana),
		Role:        r.Role,
		Status:      r.Status,
		Department:  form.OptionalString(r.Department),
		Title:       form.OptionalString(r.Title),
		PhoneNumber: form.OptionalString(r.PhoneNumber),
		Image:       form.OptionalString(r.Image),
		Note:        form.OptionalString(r.Note),
		MFAEnabled:  r.MFAEnabled,
		IsLocked:    r.IsLocked,
	}, nil
}

// UpdateUserRequest is a tri-state patch: each field is either omitted
// (keep), null or blank (clear), or set.
type UpdateUserRequest struct {
	Name        form.Field[string] `json:"name"`
	NameKana    form.Field[string] `json:"name_kana"`
	Role        form.Field[string] `json:"role"`
	Status      form.Field[string] `json:"status"`
	Department  form.Field[string] `json:"department"`
	Title       form.Field[string] `json:"title"`
	PhoneNumber form.Field[string] `json:"phone_number"`
	Image       form.Field[string] `json:"image"`
	Note        form.Field[string] `json:"note"`
	MFAEnabled  form.Field[bool]   `json:"mfa_enabled"`
	IsLocked    form.Field[bool]   `json:"is_locked"`
}

// UserPatch is the validated patch applied by the repository. Omitted
// fields retain their stored value.
type UserPatch struct {
	Name        form.Field[string]
	NameKana    form.Field[string]
	Role        form.Field[string]
	Status      form.Field[string]
	Department  form.Field[string]
	Title       form.Field[string]
	PhoneNumber form.Field[string]
	Image       form.Field[string]
	Note        form.Field[string]
	MFAEnabled  form.Field[bool]
	IsLocked    form.Field[bool]
	UpdatedBy   *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Name.IsOmitted() &&
		p.NameKana.IsOmitted() &&
		p.Role.IsOmitted() &&
		p.Status.IsOmitted() &&
		p.Department.IsOmitted() &&
		p.Title.IsOmitted() &&
		p.PhoneNumber.IsOmitted() &&
		p.Image.IsOmitted() &&
		p.Note.IsOmitted() &&
		p.MFAEnabled.IsOmitted() &&
		p.IsLocked.IsOmitted()
}

// Rule table shared by patch validation. Required fields cannot be
// cleared; the rest are nullable with length and format constraints.
var userPatchRules = []struct {
	field    string
	rule     string
	required bool
	pick     func(UpdateUserRequest) form.Field[string]
}{
	{"name", "min=1,max=100", true, func(r UpdateUserRequest) form.Field[string] { return r.Name }},
	{"name_kana", "max=100", false, func(r UpdateUserRequest) form.Field[string] { return r.NameKana }},
	{"role", "oneof=ADMIN MANAGER USER", true, func(r UpdateUserRequest) form.Field[string] { return r.Role }},
	{"status", "oneof=ACTIVE INVITED DISABLED", true, func(r UpdateUserRequest) form.Field[string] { return r.Status }},
	{"department", "max=100", false, func(r UpdateUserRequest) form.Field[string] { return r.Department }},
	{"title", "max=100", false, func(r UpdateUserRequest) form.Field[string] { return r.Title }},
	{"phone_number", "phone,max=50", false, func(r UpdateUserRequest) form.Field[string] { return r.PhoneNumber }},
	{"image", "url,max=200", false, func(r UpdateUserRequest) form.Field[string] { return r.Image }},
	{"note", "max=500", false, func(r UpdateUserRequest) form.Field[string] { return r.Note }},
}

// Validate normalizes every supplied field, applies the rule table, and
// requires the patch to touch at least one field.
func (r UpdateUserRequest) Validate(v *validator.Validate) (UserPatch, []core.FieldError) {
	var errs []core.FieldError

	patch := UserPatch{
		MFAEnabled: r.MFAEnabled,
		IsLocked:   r.IsLocked,
	}

	for _, rule := range userPatchRules {
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

	if r.MFAEnabled.IsClear() {
		errs = append(errs, core.FieldError{Field: "mfa_enabled", Message: "cannot be cleared"})
	}
	if r.IsLocked.IsClear() {
		errs = append(errs, core.FieldError{Field: "is_locked", Message: "cannot be cleared"})
	}

	if len(errs) > 0 {
		return UserPatch{}, errs
	}

	if patch.IsEmpty() {
		return UserPatch{}, []core.FieldError{
			{Field: "", Message: "at least one field must be provided"},
		}
	}

	return patch, nil
}

func (p *UserPatch) setField(name string, f form.Field[string]) {
	switch name {
	case "name":
		p.Name = f
	case "name_kana":
		p.NameKana = f
	case "role":
		p.Role = f
	case "status":
		p.Status = f
	case "department":
		p.Department = f
	case "title":
		p.Title = f
	case "phone_number":
		p.PhoneNumber = f
	case "image":
		p.Image = f
	case "note":
		p.Note = f
	}
}

type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	NameKana    *string    `json:"name_kana"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	Department  *string    `json:"department"`
	Title       *string    `json:"title"`
	PhoneNumber *string    `json:"phone_number"`
	Image       *string    `json:"image"`
	Note        *string    `json:"note"`
	LastLoginAt *time.Time `json:"last_login_at"`
	MFAEnabled  bool       `json:"mfa_enabled"`
	IsLocked    bool       `json:"is_locked"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ListUsersParams struct {
	Page     int
	PageSize int
	Spec     SearchSpec
}

func (p *ListUsersParams) Normalize() {
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
func (p *ListUsersParams) PageIndex() int {
	return p.Page - 1
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		NameKana:    u.NameKana,
		Role:        u.Role,
		Status:      u.Status,
		Department:  u.Department,
		Title:       u.Title,
		PhoneNumber: u.PhoneNumber,
		Image:       u.Image,
		Note:        u.Note,
		LastLoginAt: u.LastLoginAt,
		MFAEnabled:  u.MFAEnabled,
		IsLocked:    u.IsLocked,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
