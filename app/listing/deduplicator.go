package listing

type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Run drops every listing whose title or link was already seen earlier in
// the batch. Title and link are independent identity keys: a match on either
// one alone makes the listing a duplicate, even if the other key is new.
// Output preserves input order; the first occurrence wins.
func (d *Deduplicator) Run(listings []Listing) []Listing {
	seenTitles := make(map[string]struct{}, len(listings))
	seenLinks := make(map[string]struct{}, len(listings))

	deduped := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if _, ok := seenTitles[l.Title]; ok {
			continue
		}
		if _, ok := seenLinks[l.Link]; ok {
			continue
		}

		seenTitles[l.Title] = struct{}{}
		seenLinks[l.Link] = struct{}{}
		deduped = append(deduped, l)
	}

	return deduped
}
