package faq

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"cs-chatbot-be/internal/pkg/logger"
)

// SnapshotCache is the process-wide FAQ cache. An empty snapshot reads as
// "not found" so the next GetFaqs call refreshes; that keeps the
// populate-if-empty contract race tolerant (redundant refreshes just
// replace the snapshot with the same data).
type SnapshotCache interface {
	Snapshot() ([]Record, bool)
	Replace(records []Record)
}

// Store fetches FAQ records from the marketplace API and caches them for
// the process lifetime. Fetch failures degrade to an empty snapshot; the
// caller must treat "no FAQs" as unknown, not as provably none.
type Store struct {
	apiURL string
	client *http.Client
	cache  SnapshotCache
	log    logger.ILogger
}

func NewStore(apiURL string, timeout time.Duration, cache SnapshotCache, log logger.ILogger) *Store {
	return &Store{
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
		cache:  cache,
		log:    log,
	}
}

type faqListResponse struct {
	Faqs []Record `json:"faqs"`
}

// GetFaqs returns the cached snapshot, fetching it first if the cache is
// empty. It never returns an error: any failure yields an empty slice.
func (s *Store) GetFaqs(ctx context.Context) []Record {
	if snapshot, ok := s.cache.Snapshot(); ok {
		return snapshot
	}

	records := s.fetch(ctx)
	s.cache.Replace(records)
	return records
}

func (s *Store) fetch(ctx context.Context) []Record {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL, nil)
	if err != nil {
		s.log.Warn("faq", "Failed to build FAQ request", map[string]interface{}{"error": err.Error()})
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("faq", "FAQ fetch failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("faq", "FAQ fetch returned non-200", map[string]interface{}{"status": resp.StatusCode})
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.log.Warn("faq", "Failed to read FAQ response", map[string]interface{}{"error": err.Error()})
		return nil
	}

	var payload faqListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		s.log.Warn("faq", "Malformed FAQ payload", map[string]interface{}{"error": err.Error()})
		return nil
	}

	records := make([]Record, 0, len(payload.Faqs))
	for _, rec := range payload.Faqs {
		if rec.active() {
			records = append(records, rec)
		}
	}
	return records
}
