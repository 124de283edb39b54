package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhedlund/bizcomb/app/cfg"
	"github.com/mhedlund/bizcomb/app/listing"
)

// Scraper crawls the business-for-sale site: index pages first, then one
// detail page per discovered listing. Discovery order is preserved in the
// returned slice regardless of how detail fetches interleave.
type Scraper struct {
	httpClient  *http.Client
	baseURL     string
	maxPages    int
	workerCount int
	timeout     time.Duration
	userAgent   string
}

func NewScraper(httpClient *http.Client) *Scraper {
	c := cfg.Get()

	return &Scraper{
		httpClient:  httpClient,
		baseURL:     c.SourceURL,
		maxPages:    c.MaxPages,
		workerCount: c.WorkerCount,
		timeout:     time.Duration(c.ScrapeTimeout) * time.Second,
		userAgent:   c.UserAgent,
	}
}

func (s *Scraper) Run(ctx context.Context) ([]listing.RawRecord, error) {
	records, err := s.crawlIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to crawl listing index: %w", err)
	}

	s.enrichFromDetailPages(ctx, records)

	slog.Info("Crawl completed", "listings", len(records))
	return records, nil
}

func (s *Scraper) crawlIndex(ctx context.Context) ([]listing.RawRecord, error) {
	var records []listing.RawRecord

	for page := 1; page <= s.maxPages; page++ {
		doc, err := s.fetchPage(ctx, s.indexURL(page))
		if err != nil {
			// The first page failing means the site is unreachable; later
			// pages failing just truncate the batch.
			if page == 1 {
				return nil, err
			}
			slog.Warn("Index page fetch failed, stopping pagination", "page", page, "error", err)
			break
		}

		pageRecords := extractIndexRecords(doc, s.baseURL)
		if len(pageRecords) == 0 {
			slog.Debug("Index page yielded no listings, stopping pagination", "page", page)
			break
		}

		records = append(records, pageRecords...)
	}

	return records, nil
}

func (s *Scraper) enrichFromDetailPages(ctx context.Context, records []listing.RawRecord) {
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < s.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				s.enrichRecord(ctx, &records[idx])
			}
		}()
	}

	for idx := range records {
		if records[idx].URL == "" {
			continue
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return
		}
	}

	close(jobs)
	wg.Wait()
}

func (s *Scraper) enrichRecord(ctx context.Context, record *listing.RawRecord) {
	doc, err := s.fetchPage(ctx, record.URL)
	if err != nil {
		slog.Warn("Detail page fetch failed, keeping index data only", "url", record.URL, "error", err)
		return
	}

	extractDetail(doc, record)
}

func (s *Scraper) fetchPage(ctx context.Context, url string) (*goquery.Document, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return doc, nil
}

func (s *Scraper) indexURL(page int) string {
	if page <= 1 {
		return s.baseURL + "/foretag-till-salu"
	}
	return fmt.Sprintf("%s/foretag-till-salu?page=%d", s.baseURL, page)
}
