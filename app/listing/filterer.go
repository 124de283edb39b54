package listing

import (
	"strings"
)

// Filterer applies the consumer-side query parameters on top of an already
// normalized batch. It never changes normalization or dedup results, only
// narrows and pages them.
type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

func (f *Filterer) Run(listings []Listing, query Query) []Listing {
	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if query.Category != "" && !strings.EqualFold(l.Category, query.Category) {
			continue
		}
		if query.Location != "" && !strings.EqualFold(l.Location, query.Location) {
			continue
		}
		if query.Search != "" && !f.matchesSearch(l, query.Search) {
			continue
		}
		filtered = append(filtered, l)
	}

	return f.paginate(filtered, query.Offset, query.Limit)
}

func (f *Filterer) matchesSearch(l Listing, term string) bool {
	needle := strings.ToLower(term)
	for _, value := range []string{l.Title, l.Company, l.Category, l.Location} {
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

func (f *Filterer) paginate(listings []Listing, offset, limit int) []Listing {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(listings) {
		return []Listing{}
	}

	listings = listings[offset:]
	if limit > 0 && limit < len(listings) {
		listings = listings[:limit]
	}
	return listings
}
