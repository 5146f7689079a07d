// AngelaMos | 2026
// repository_test.go

package facility

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kanriapp/masterdata-api/internal/form"
)

func TestSearchConditions(t *testing.T) {
	keywordClause := "(name ILIKE $1 OR code ILIKE $1 OR prefecture ILIKE $1" +
		" OR city ILIKE $1 OR address_line1 ILIKE $1)"

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
			name:     "keyword scans the five columns with one arg",
			spec:     SearchSpec{Keyword: "tokyo"},
			wantSQL:  []string{"TRUE", keywordClause},
			wantArgs: []any{"%tokyo%"},
		},
		{
			name: "all predicates numbered in order",
			spec: SearchSpec{Keyword: "hq", Category: CategoryHead, Status: StatusActive},
			wantSQL: []string{
				"TRUE",
				keywordClause,
				"category = $2",
				"status = $3",
			},
			wantArgs: []any{"%hq%", CategoryHead, StatusActive},
		},
		{
			name:     "like metacharacters escaped",
			spec:     SearchSpec{Keyword: "100%"},
			wantSQL:  []string{"TRUE", keywordClause},
			wantArgs: []any{`%100\%%`},
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

func TestPatchAssignments(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	patch := FacilityPatch{
		Code:      form.Set("HQ-002"),
		StartDate: form.Set(start),
		Capacity:  form.Clear[int](),
		Latitude:  form.Set(35.6895),
	}

	sets, args := patchAssignments(patch)

	wantSets := []string{
		"code = $2",
		"start_date = $3",
		"latitude = $4",
		"capacity = NULL",
	}
	if !reflect.DeepEqual(sets, wantSets) {
		t.Errorf("sets = %v, want %v", sets, wantSets)
	}

	wantArgs := []any{"HQ-002", start, 35.6895}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestPatchAssignments_EmptyPatch(t *testing.T) {
	sets, args := patchAssignments(FacilityPatch{})
	if len(sets) != 0 || len(args) != 0 {
		t.Errorf("empty patch produced sets=%v args=%v", sets, args)
	}
}

func TestPatchAssignments_OmittedVersusCleared(t *testing.T) {
	patch := FacilityPatch{
		Note: form.Clear[string](),
		// BillingCode intentionally omitted.
	}

	sets, _ := patchAssignments(patch)

	joined := strings.Join(sets, ", ")
	if !strings.Contains(joined, "note = NULL") {
		t.Errorf("cleared note missing from %q", joined)
	}
	if strings.Contains(joined, "billing_code") {
		t.Errorf("omitted billing_code must not appear in %q", joined)
	}
}
