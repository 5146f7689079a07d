// AngelaMos | 2026
// filter.go

package facility

import (
	"strings"

	"github.com/kanriapp/masterdata-api/internal/query"
)

// SearchSpec combines the list filters. Every zero-valued predicate means
// "no constraint"; supplied predicates are ANDed.
type SearchSpec struct {
	Keyword  string
	Category string
	Status   string
}

func (s SearchSpec) IsEmpty() bool {
	return strings.TrimSpace(s.Keyword) == "" && s.Category == "" && s.Status == ""
}

// Matches is the single definition of the search semantics. The keyword
// scans name, code and the address fields; category and status are exact.
func (s SearchSpec) Matches(f *Facility) bool {
	keyword := strings.TrimSpace(s.Keyword)
	if keyword != "" {
		hit := query.ContainsFold(f.Name, keyword) ||
			query.ContainsFold(f.Code, keyword) ||
			(f.Prefecture != nil && query.ContainsFold(*f.Prefecture, keyword)) ||
			(f.City != nil && query.ContainsFold(*f.City, keyword)) ||
			(f.AddressLine1 != nil && query.ContainsFold(*f.AddressLine1, keyword))
		if !hit {
			return false
		}
	}

	if s.Category != "" && f.Category != s.Category {
		return false
	}

	if s.Status != "" && f.Status != s.Status {
		return false
	}

	return true
}

func Filter(facilities []Facility, spec SearchSpec) []Facility {
	out := make([]Facility, 0, len(facilities))
	for i := range facilities {
		if spec.Matches(&facilities[i]) {
			out = append(out, facilities[i])
		}
	}
	return out
}
