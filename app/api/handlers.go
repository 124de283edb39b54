package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mhedlund/bizcomb/app/cfg"
	"github.com/mhedlund/bizcomb/app/listing"
)

const defaultPageLimit = 20

func NewHandler(crawler Crawler, pipeline *listing.Pipeline, filterer *listing.Filterer) *Handler {
	return &Handler{
		crawler:  crawler,
		pipeline: pipeline,
		filterer: filterer,
	}
}

// GetListings triggers a fresh crawl, normalizes and deduplicates the batch,
// then applies the query parameters. Nothing is cached between requests; a
// failed crawl degrades to an empty result rather than an error response.
func (h *Handler) GetListings(c *gin.Context) {
	query := listing.Query{
		Category: c.Query("category"),
		Location: c.Query("location"),
		Search:   c.Query("search"),
		Offset:   intQueryParam(c, "offset", 0),
		Limit:    intQueryParam(c, "limit", defaultPageLimit),
	}

	records, err := h.crawler.Run(c.Request.Context())
	if err != nil {
		slog.Error("Crawl failed, serving empty result", "error", err)
		records = nil
	}

	listings := h.pipeline.Run(records)
	page := h.filterer.Run(listings, query)

	c.JSON(http.StatusOK, gin.H{
		"listings": page,
		"total":    len(listings),
		"count":    len(page),
		"offset":   query.Offset,
		"limit":    query.Limit,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.Get().Version,
	})
}

func intQueryParam(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
