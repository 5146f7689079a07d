// AngelaMos | 2026
// normalize.go

package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format accepted from forms. Dates carry
// no time component and are interpreted as midnight UTC.
const DateLayout = "2006-01-02"

// OptionalString normalizes a create-mode field: whitespace is trimmed and
// an empty result means the field is absent, letting storage apply its own
// default. Returns nil for absent.
func OptionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// OptionalInt parses a create-mode numeric field. Empty input is absent;
// a malformed non-empty string is rejected, never silently dropped.
func OptionalInt(s string) (*int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("not a whole number: %q", trimmed)
	}
	return &n, nil
}

func OptionalFloat(s string) (*float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", trimmed)
	}
	return &f, nil
}

// OptionalDate parses a create-mode YYYY-MM-DD field as midnight UTC.
func OptionalDate(s string) (*time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, trimmed, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("not a YYYY-MM-DD date: %q", trimmed)
	}
	return &t, nil
}

// NullableString normalizes an update-mode field. Omitted stays omitted,
// an explicit null or a string that trims to empty becomes Clear, and any
// other string is trimmed and kept.
func NullableString(f Field[string]) Field[string] {
	s, ok := f.Get()
	if !ok {
		return f
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Clear[string]()
	}
	return Set(trimmed)
}

// NullableInt applies the tri-state rules with numeric parsing. Malformed
// input is rejected rather than treated as a clear.
func NullableInt(f Field[string]) (Field[int], error) {
	s, ok := f.Get()
	if !ok {
		if f.IsClear() {
			return Clear[int](), nil
		}
		return Omit[int](), nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Clear[int](), nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return Omit[int](), fmt.Errorf("not a whole number: %q", trimmed)
	}
	return Set(n), nil
}

func NullableFloat(f Field[string]) (Field[float64], error) {
	s, ok := f.Get()
	if !ok {
		if f.IsClear() {
			return Clear[float64](), nil
		}
		return Omit[float64](), nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Clear[float64](), nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Omit[float64](), fmt.Errorf("not a number: %q", trimmed)
	}
	return Set(v), nil
}

func NullableDate(f Field[string]) (Field[time.Time], error) {
	s, ok := f.Get()
	if !ok {
		if f.IsClear() {
			return Clear[time.Time](), nil
		}
		return Omit[time.Time](), nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Clear[time.Time](), nil
	}
	t, err := time.ParseInLocation(DateLayout, trimmed, time.UTC)
	if err != nil {
		return Omit[time.Time](), fmt.Errorf("not a YYYY-MM-DD date: %q", trimmed)
	}
	return Set(t), nil
}
