// AngelaMos | 2026
// repository_test.go

package user

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kanriapp/masterdata-api/internal/form"
)

func TestSearchConditions(t *testing.T) {
	tests := []struct {
		name     string
		spec     SearchSpec
		wantSQL  []string
		wantArgs []any
	}{
		{
			name:    "empty spec is a tautology",
			spec:    SearchSpec{},
			wantSQL: []string{"TRUE"},
		},
		{
			name: "keyword scans three columns with one arg",
			spec: SearchSpec{Keyword: "tokyo"},
			wantSQL: []string{
				"TRUE",
				"(name ILIKE $1 OR email ILIKE $1 OR department ILIKE $1)",
			},
			wantArgs: []any{"%tokyo%"},
		},
		{
			name: "all predicates numbered in order",
			spec: SearchSpec{Keyword: "a", Role: RoleAdmin, Status: StatusActive},
			wantSQL: []string{
				"TRUE",
				"(name ILIKE $1 OR email ILIKE $1 OR department ILIKE $1)",
				"role = $2",
				"status = $3",
			},
			wantArgs: []any{"%a%", RoleAdmin, StatusActive},
		},
		{
			name:     "keyword is trimmed before matching",
			spec:     SearchSpec{Keyword: "  ren  "},
			wantSQL:  []string{"TRUE", "(name ILIKE $1 OR email ILIKE $1 OR department ILIKE $1)"},
			wantArgs: []any{"%ren%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := searchConditions(tt.spec)
			if !reflect.DeepEqual(gotSQL, tt.wantSQL) {
				t.Errorf("conditions = %v, want %v", gotSQL, tt.wantSQL)
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"50%", `50\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeLike(tt.input); got != tt.want {
			t.Errorf("escapeLike(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPatchAssignments(t *testing.T) {
	actor := "admin-1"
	patch := UserPatch{
		Name:       form.Set("New Name"),
		Department: form.Clear[string](),
		MFAEnabled: form.Set(true),
		UpdatedBy:  &actor,
	}

	sets, args := patchAssignments(patch)

	wantSets := []string{
		"name = $2",
		"department = NULL",
		"mfa_enabled = $3",
		"updated_by = $4",
	}
	if !reflect.DeepEqual(sets, wantSets) {
		t.Errorf("sets = %v, want %v", sets, wantSets)
	}

	wantArgs := []any{"New Name", true, actor}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestPatchAssignments_EmptyPatch(t *testing.T) {
	sets, args := patchAssignments(UserPatch{})
	if len(sets) != 0 || len(args) != 0 {
		t.Errorf("empty patch produced sets=%v args=%v", sets, args)
	}
}

func TestPatchAssignments_OmittedVersusCleared(t *testing.T) {
	patch := UserPatch{
		Note: form.Clear[string](),
		// Title intentionally omitted.
	}

	sets, _ := patchAssignments(patch)

	joined := strings.Join(sets, ", ")
	if !strings.Contains(joined, "note = NULL") {
		t.Errorf("cleared note missing from %q", joined)
	}
	if strings.Contains(joined, "title") {
		t.Errorf("omitted title must not appear in %q", joined)
	}
}
