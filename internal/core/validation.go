// AngelaMos | 2026
// validation.go

package core

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	facilityCodePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	postalCodePattern   = regexp.MustCompile(`^\d{3}-?\d{4}$`)
	phonePattern        = regexp.MustCompile(`^[0-9+\-() ]+$`)
	dateYMDPattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// NewValidator builds the shared validator with the console's custom
// constraint tags registered. Field names in errors come from json tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	//nolint:errcheck // registration only fails for empty tag names
	_ = v.RegisterValidation("facility_code", matchPattern(facilityCodePattern))
	_ = v.RegisterValidation("jp_postal", matchPattern(postalCodePattern))
	_ = v.RegisterValidation("phone", matchPattern(phonePattern))
	_ = v.RegisterValidation("date_ymd", matchPattern(dateYMDPattern))

	return v
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// FieldErrors converts a validator error into an ordered list of
// field-level errors suitable for the API error envelope.
func FieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

//nolint:cyclop // one case per supported tag
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "facility_code":
		return "must contain only letters, digits and hyphens"
	case "jp_postal":
		return "must match the 123-4567 postal code format"
	case "phone":
		return "must be a valid phone number"
	case "date_ymd":
		return "must use the YYYY-MM-DD format"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// CheckVar validates a single already-normalized value against a rule tag
// from an entity rule table. Used by patch validation, where struct tags
// cannot express tri-state fields.
func CheckVar(v *validator.Validate, field string, value any, rule string) *FieldError {
	if rule == "" {
		return nil
	}
	if err := v.Var(value, rule); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return &FieldError{Field: field, Message: err.Error()}
		}
		return &FieldError{Field: field, Message: fieldMessage(verrs[0])}
	}
	return nil
}
