package models

import "testing"

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name        string
		in          PageParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults", PageParams{}, 1, DefaultPerPage},
		{"negative page", PageParams{Page: -3, PerPage: 20}, 1, 20},
		{"over cap", PageParams{Page: 2, PerPage: 500}, 2, MaxPerPage},
		{"within range", PageParams{Page: 4, PerPage: 50}, 4, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Page != tc.wantPage || got.PerPage != tc.wantPerPage {
				t.Fatalf("Normalize() = %+v, want page=%d per_page=%d", got, tc.wantPage, tc.wantPerPage)
			}
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 3, PerPage: 15}.Normalize()
	if got := p.Offset(); got != 30 {
		t.Fatalf("Offset() = %d, want 30", got)
	}
}
