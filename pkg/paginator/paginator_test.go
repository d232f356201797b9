package paginator

import "testing"

func TestAdjust(t *testing.T) {
	cases := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"zero values", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"negative page", PaginateQuery{Page: -2, Limit: 10}, DefaultPage, 10},
		{"limit over max", PaginateQuery{Page: 3, Limit: 1000}, 3, MaxLimit},
		{"valid passthrough", PaginateQuery{Page: 2, Limit: 25}, 2, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Adjust()
			if tc.in.Page != tc.wantPage {
				t.Errorf("Page mismatch: got %d, want %d", tc.in.Page, tc.wantPage)
			}
			if tc.in.Limit != tc.wantLimit {
				t.Errorf("Limit mismatch: got %d, want %d", tc.in.Limit, tc.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Errorf("Offset mismatch: got %d, want 40", got)
	}

	q = PaginateQuery{Page: 1, Limit: 50}
	if got := q.Offset(); got != 0 {
		t.Errorf("Offset mismatch: got %d, want 0", got)
	}
}

func TestToResponse(t *testing.T) {
	p := Paginator{Total: 101, Count: 50, PerPage: 50, CurrentPage: 2}

	resp := p.ToResponse()
	if resp.TotalPages != 3 {
		t.Errorf("TotalPages mismatch: got %d, want 3", resp.TotalPages)
	}
	if !resp.HasNext {
		t.Error("HasNext should be true on page 2 of 3")
	}
	if !resp.HasPrev {
		t.Error("HasPrev should be true on page 2")
	}

	empty := Paginator{}.ToResponse()
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("Empty paginator mismatch: %+v", empty)
	}
}
