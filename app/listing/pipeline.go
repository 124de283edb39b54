package listing

// Pipeline composes the per-record transformer with batch deduplication.
// One Run call owns its slice exclusively; nothing is shared across runs.
type Pipeline struct {
	transformer  *Transformer
	deduplicator *Deduplicator
}

func NewPipeline(transformer *Transformer, deduplicator *Deduplicator) *Pipeline {
	return &Pipeline{
		transformer:  transformer,
		deduplicator: deduplicator,
	}
}

// Run normalizes each raw record in arrival order, then removes duplicates.
// An empty or nil input yields an empty (never nil) result.
func (p *Pipeline) Run(records []RawRecord) []Listing {
	listings := make([]Listing, 0, len(records))
	for _, record := range records {
		listings = append(listings, p.transformer.Transform(record))
	}

	return p.deduplicator.Run(listings)
}
