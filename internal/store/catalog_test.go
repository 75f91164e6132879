package store

import "testing"

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		direction string
		fallback  string
		want      string
	}{
		{"no sort_by", "", "", "a.name ASC", " ORDER BY a.name ASC"},
		{"unknown sort_by", "drop table", "asc", "a.name ASC", " ORDER BY a.name ASC"},
		{"fallback with nulls clause", "", "", "e.start_date DESC NULLS LAST", " ORDER BY e.start_date DESC NULLS LAST"},
		{"whitelisted asc", "name", "asc", "a.name ASC", " ORDER BY a.name ASC"},
		{"whitelisted default direction", "name", "", "a.name ASC", " ORDER BY a.name DESC"},
		{"whitelisted bogus direction", "formed_year", "sideways", "a.name ASC", " ORDER BY a.formed_year DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderClause(artistSortColumns, tt.sortBy, tt.direction, tt.fallback)
			if got != tt.want {
				t.Fatalf("orderClause(%q, %q) = %q, want %q", tt.sortBy, tt.direction, got, tt.want)
			}
		})
	}
}
