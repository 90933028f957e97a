package pagination

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults on zero", PaginationParams{}, 1, 15},
		{"negative page", PaginationParams{Page: -2, PerPage: 10}, 1, 10},
		{"per page capped", PaginationParams{Page: 3, PerPage: 500}, 3, 100},
		{"valid passes through", PaginationParams{Page: 2, PerPage: 25}, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			if tt.in.Page != tt.wantPage || tt.in.PerPage != tt.wantPerPage {
				t.Fatalf("got page=%d perPage=%d, want page=%d perPage=%d",
					tt.in.Page, tt.in.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Fatalf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)

	if pag.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", pag.TotalPages)
	}
	if !pag.HasNext || !pag.HasPrev {
		t.Fatalf("expected HasNext and HasPrev on middle page")
	}

	last := NewPagination(3, 15, 31)
	if last.HasNext {
		t.Fatalf("last page should not have next")
	}
}
