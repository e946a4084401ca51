package cities

import "strings"

// List is the fixed set of cities offered by the autocomplete.
// Order matters: suggestions are returned in this order.
var List = []string{
	"New York",
	"Los Angeles",
	"Chicago",
	"Houston",
	"Phoenix",
	"Philadelphia",
	"San Antonio",
	"San Diego",
	"Dallas",
	"Austin",
	"London",
	"Paris",
	"Tokyo",
	"Sydney",
	"Toronto",
}

// Filter returns the cities whose lowercase name contains the lowercase
// query, preserving the order of List. No ranking, no fuzzy matching.
func Filter(query string) []string {
	q := strings.ToLower(query)
	matches := make([]string, 0, len(List))
	for _, city := range List {
		if strings.Contains(strings.ToLower(city), q) {
			matches = append(matches, city)
		}
	}
	return matches
}
