// AngelaMos | 2026
// paginate_test.go

package query

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		pageIndex int
		pageSize  int
		wantLen   int
		wantFirst int
	}{
		{"first full page", 0, 10, 10, 0},
		{"second full page", 1, 10, 10, 10},
		{"final partial page", 2, 10, 5, 20},
		{"page past the end", 3, 10, 0, 0},
		{"page size larger than input", 0, 100, 25, 0},
		{"single element pages", 24, 1, 1, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.pageIndex, tt.pageSize)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("first = %d, want %d", got[0], tt.wantFirst)
			}
		})
	}
}

func TestPaginate_InvalidInput(t *testing.T) {
	items := []string{"a", "b", "c"}

	if got := Paginate(items, -1, 10); got != nil {
		t.Errorf("negative page index should yield nil, got %v", got)
	}
	if got := Paginate(items, 0, 0); got != nil {
		t.Errorf("zero page size should yield nil, got %v", got)
	}
	if got := Paginate([]string{}, 0, 10); got != nil {
		t.Errorf("empty input should yield nil, got %v", got)
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s      string
		substr string
		want   bool
	}{
		{"Tokyo HQ", "tokyo", true},
		{"Tokyo HQ", "TOKYO", true},
		{"Tokyo HQ", "yo h", true},
		{"Tokyo HQ", "osaka", false},
		{"anything", "", true},
		{"", "x", false},
		{"大阪支店", "大阪", true},
	}

	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}
