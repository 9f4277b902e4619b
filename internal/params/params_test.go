package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"defaults", "", 15, 1, 0},
		{"explicit", "page=3&limit=20", 20, 3, 40},
		{"limit capped", "limit=500", 50, 1, 0},
		{"limit floor", "limit=-4", 15, 1, 0},
		{"bad numbers ignored", "page=abc&limit=xyz", 15, 1, 0},
		{"zero page ignored", "page=0", 15, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tc.query)
			p := ParsePagination(q)
			if p.Limit != tc.wantLimit || p.Page != tc.wantPage || p.Offset != tc.wantOffset {
				t.Fatalf("got limit=%d page=%d offset=%d", p.Limit, p.Page, p.Offset)
			}
		})
	}
}

func TestComputeMeta(t *testing.T) {
	q, _ := url.ParseQuery("page=2&limit=10")
	p := ParsePagination(q)
	p.ComputeMeta(35)

	if p.TotalPages != 4 {
		t.Fatalf("total pages = %d, want 4", p.TotalPages)
	}
	if !p.HasPrev || !p.HasNext {
		t.Fatalf("page 2 of 4 should have prev and next: %+v", p)
	}

	p = ParsePagination(url.Values{})
	p.ComputeMeta(0)
	if p.HasNext || p.HasPrev || p.TotalPages != 0 {
		t.Fatalf("empty result metadata wrong: %+v", p)
	}
}
