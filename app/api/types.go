package api

import (
	"context"

	"github.com/mhedlund/bizcomb/app/listing"
)

// Crawler yields one raw record per discovered listing, in discovery order.
type Crawler interface {
	Run(ctx context.Context) ([]listing.RawRecord, error)
}

type Handler struct {
	crawler  Crawler
	pipeline *listing.Pipeline
	filterer *listing.Filterer
}
