// AngelaMos | 2026
// filter_test.go

package facility

import (
	"testing"
)

func sampleFacilities() []Facility {
	tokyo := "Tokyo"
	osaka := "Osaka"
	chiyoda := "Chiyoda"
	baycity := "Minato"
	addr := "1-2-3 Marunouchi"
	return []Facility{
		{ID: "f1", Code: "HQ-001", Name: "Tokyo HQ", Category: CategoryHead, Status: StatusActive, Prefecture: &tokyo, City: &chiyoda, AddressLine1: &addr},
		{ID: "f2", Code: "BR-001", Name: "Osaka Branch", Category: CategoryBranch, Status: StatusActive, Prefecture: &osaka},
		{ID: "f3", Code: "WH-001", Name: "Tokyo Bay Warehouse", Category: CategoryWarehouse, Status: StatusInactive, Prefecture: &tokyo, City: &baycity},
	}
}

func TestFilter_KeywordIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleFacilities(), SearchSpec{Keyword: "tokyo"})

	if !equalIDs(got, []string{"f1", "f3"}) {
		t.Fatalf("got %v, want [f1 f3]", ids(got))
	}
}

func TestFilter_KeywordScansCodeAndAddressFields(t *testing.T) {
	tests := []struct {
		keyword string
		wantIDs []string
	}{
		{"HQ-001", []string{"f1"}},
		{"wh-", []string{"f3"}},
		{"marunouchi", []string{"f1"}},
		{"chiyoda", []string{"f1"}},
		{"osaka", []string{"f2"}},
		{"kyoto", nil},
	}

	for _, tt := range tests {
		got := Filter(sampleFacilities(), SearchSpec{Keyword: tt.keyword})
		if !equalIDs(got, tt.wantIDs) {
			t.Errorf("keyword %q: got %v, want %v", tt.keyword, ids(got), tt.wantIDs)
		}
	}
}

func TestFilter_CombinedPredicates(t *testing.T) {
	// "tokyo" matches the HQ and the warehouse; HEAD + ACTIVE narrows the
	// result to exactly the HQ.
	spec := SearchSpec{Keyword: "tokyo", Category: CategoryHead, Status: StatusActive}

	got := Filter(sampleFacilities(), spec)
	if !equalIDs(got, []string{"f1"}) {
		t.Fatalf("got %v, want [f1]", ids(got))
	}
}

func TestFilter_StatusOnly(t *testing.T) {
	got := Filter(sampleFacilities(), SearchSpec{Status: StatusInactive})
	if !equalIDs(got, []string{"f3"}) {
		t.Fatalf("got %v, want [f3]", ids(got))
	}
}

func TestSearchSpec_IsEmpty(t *testing.T) {
	if !(SearchSpec{Keyword: " "}).IsEmpty() {
		t.Error("whitespace-only keyword should count as empty")
	}
	if (SearchSpec{Category: CategoryStore}).IsEmpty() {
		t.Error("spec with a category is not empty")
	}
}

func ids(facilities []Facility) []string {
	out := make([]string, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, f.ID)
	}
	return out
}

func equalIDs(facilities []Facility, want []string) bool {
	if len(facilities) != len(want) {
		return false
	}
	for i, f := range facilities {
		if f.ID != want[i] {
			return false
		}
	}
	return true
}
