package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantSkip  int
		wantLimit int
	}{
		{name: "defaults", url: "/recipes/", wantSkip: 0, wantLimit: 10},
		{name: "valid values", url: "/recipes/?skip=5&limit=25", wantSkip: 5, wantLimit: 25},
		{name: "limit capped", url: "/recipes/?limit=500", wantSkip: 0, wantLimit: 100},
		{name: "limit at cap", url: "/recipes/?limit=100", wantSkip: 0, wantLimit: 100},
		{name: "negative skip", url: "/recipes/?skip=-3", wantSkip: 0, wantLimit: 10},
		{name: "zero limit", url: "/recipes/?limit=0", wantSkip: 0, wantLimit: 10},
		{name: "negative limit", url: "/recipes/?limit=-1", wantSkip: 0, wantLimit: 10},
		{name: "garbage values", url: "/recipes/?skip=abc&limit=xyz", wantSkip: 0, wantLimit: 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			skip, limit := ParsePagination(r)
			if skip != tc.wantSkip || limit != tc.wantLimit {
				t.Errorf("ParsePagination(%q) = (%d, %d), want (%d, %d)",
					tc.url, skip, limit, tc.wantSkip, tc.wantLimit)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "eggs,flour", want: []string{"eggs", "flour"}},
		{in: " eggs , flour ", want: []string{"eggs", "flour"}},
		{in: "eggs,,flour,", want: []string{"eggs", "flour"}},
	}
	for _, tc := range tests {
		got := SplitCSV(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("SplitCSV(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("SplitCSV(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}
