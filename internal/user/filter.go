// AngelaMos | 2026
// filter.go

package user

import (
	"strings"

	"github.com/kanriapp/masterdata-api/internal/query"
)

// SearchSpec combines the list filters. Every zero-valued predicate means
// "no constraint", not "match absent values only"; supplied predicates
// are ANDed.
type SearchSpec struct {
	Keyword string
	Role    string
	Status  string
}

func (s SearchSpec) IsEmpty() bool {
	return strings.TrimSpace(s.Keyword) == "" && s.Role == "" && s.Status == ""
}

// Matches is the single definition of the search semantics. The in-memory
// filter applies it directly; the Postgres search must produce the same
// result set for the same data and spec.
func (s SearchSpec) Matches(u *User) bool {
	keyword := strings.TrimSpace(s.Keyword)
	if keyword != "" {
		hit := query.ContainsFold(u.Name, keyword) ||
			query.ContainsFold(u.Email, keyword) ||
			(u.Department != nil && query.ContainsFold(*u.Department, keyword))
		if !hit {
			return false
		}
	}

	if s.Role != "" && u.Role != s.Role {
		return false
	}

	if s.Status != "" && u.Status != s.Status {
		return false
	}

	return true
}

func Filter(users []User, spec SearchSpec) []User {
	out := make([]User, 0, len(users))
	for i := range users {
		if spec.Matches(&users[i]) {
			out = append(out, users[i])
		}
	}
	return out
}
