package cities

import (
	"reflect"
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "empty query matches everything",
			query:    "",
			expected: List,
		},
		{
			name:     "exact city name",
			query:    "Paris",
			expected: []string{"Paris"},
		},
		{
			name:     "case insensitive",
			query:    "pArIs",
			expected: []string{"Paris"},
		},
		{
			name:     "substring match preserves list order",
			query:    "san",
			expected: []string{"San Antonio", "San Diego"},
		},
		{
			name:     "substring in the middle of a name",
			query:    "ork",
			expected: []string{"New York"},
		},
		{
			name:     "shared letter across cities",
			query:    "to",
			expected: []string{"San Antonio", "Tokyo", "Toronto"},
		},
		{
			name:     "no match",
			query:    "zzz",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.query)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestFilterEqualsNaiveSubsetInOrder(t *testing.T) {
	// For any query, the result must equal the ordered subset of List whose
	// lowercase form contains the lowercase query.
	queries := []string{"", "a", "A", "new", "SAN", "o", "yo", "berlin", "   "}

	for _, q := range queries {
		want := make([]string, 0)
		for _, city := range List {
			if strings.Contains(strings.ToLower(city), strings.ToLower(q)) {
				want = append(want, city)
			}
		}

		got := Filter(q)
		if len(got) != len(want) {
			t.Errorf("Filter(%q) returned %d entries, want %d", q, len(got), len(want))
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Filter(%q)[%d] = %q, want %q", q, i, got[i], want[i])
			}
		}
	}
}

func TestListHasFifteenCities(t *testing.T) {
	if len(List) != 15 {
		t.Errorf("List has %d cities, want 15", len(List))
	}
}
