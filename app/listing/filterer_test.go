package listing

import (
	"testing"
)

func testListings() []Listing {
	return []Listing{
		{Title: "Cafe in central Stockholm", Company: "Lind ab", Category: "Restaurant", Location: "Stockholm"},
		{Title: "Web shop for sale", Company: "Nord brokers", Category: "E-commerce", Location: "Malmö"},
		{Title: "Construction company", Company: "Berg ab", Category: "Construction", Location: "Stockholm"},
		{Title: "Small restaurant", Company: "Lind ab", Category: "Restaurant", Location: "Göteborg"},
	}
}

func TestFilterer_NoQuery(t *testing.T) {
	filterer := NewFilterer()

	result := filterer.Run(testListings(), Query{})

	if len(result) != 4 {
		t.Errorf("Expected all 4 listings with an empty query, got %d", len(result))
	}
}

func TestFilterer_CategoryFilter(t *testing.T) {
	filterer := NewFilterer()

	result := filterer.Run(testListings(), Query{Category: "restaurant"})

	if len(result) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(result))
	}
	for _, l := range result {
		if l.Category != "Restaurant" {
			t.Errorf("Unexpected category '%s' in filtered result", l.Category)
		}
	}
}

func TestFilterer_LocationFilter(t *testing.T) {
	filterer := NewFilterer()

	result := filterer.Run(testListings(), Query{Location: "Stockholm"})

	if len(result) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(result))
	}
	// Location is exact-match: the title mentioning Stockholm does not count
	for _, l := range result {
		if l.Location != "Stockholm" {
			t.Errorf("Unexpected location '%s' in filtered result", l.Location)
		}
	}
}

func TestFilterer_SearchAcrossFields(t *testing.T) {
	filterer := NewFilterer()

	tests := []struct {
		search   string
		expected int
	}{
		{"cafe", 1},       // title
		{"lind", 2},       // company
		{"commerce", 1},   // category
		{"göteborg", 1},   // location
		{"STOCKHOLM", 2},  // case insensitive, title and location matches
		{"no-match", 0},
	}

	for _, test := range tests {
		result := filterer.Run(testListings(), Query{Search: test.search})
		if len(result) != test.expected {
			t.Errorf("Search %q: expected %d listings, got %d", test.search, test.expected, len(result))
		}
	}
}

func TestFilterer_CombinedFilters(t *testing.T) {
	filterer := NewFilterer()

	result := filterer.Run(testListings(), Query{Category: "Restaurant", Location: "Göteborg"})

	if len(result) != 1 {
		t.Fatalf("Expected 1 listing, got %d", len(result))
	}
	if result[0].Title != "Small restaurant" {
		t.Errorf("Expected 'Small restaurant', got '%s'", result[0].Title)
	}
}

func TestFilterer_Pagination(t *testing.T) {
	filterer := NewFilterer()

	listings := testListings()

	page := filterer.Run(listings, Query{Offset: 1, Limit: 2})
	if len(page) != 2 {
		t.Fatalf("Expected 2 listings, got %d", len(page))
	}
	if page[0].Title != listings[1].Title || page[1].Title != listings[2].Title {
		t.Errorf("Pagination window wrong: got '%s', '%s'", page[0].Title, page[1].Title)
	}

	tail := filterer.Run(listings, Query{Offset: 3, Limit: 10})
	if len(tail) != 1 {
		t.Errorf("Expected 1 listing in the final page, got %d", len(tail))
	}

	beyond := filterer.Run(listings, Query{Offset: 10})
	if len(beyond) != 0 {
		t.Errorf("Expected empty page past the end, got %d listings", len(beyond))
	}

	unlimited := filterer.Run(listings, Query{Limit: 0})
	if len(unlimited) != 4 {
		t.Errorf("Expected limit 0 to mean no cap, got %d listings", len(unlimited))
	}
}
