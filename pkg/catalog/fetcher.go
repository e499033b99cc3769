package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cs-chatbot-be/internal/pkg/logger"
)

// ProductSummary is the slice of a catalog item used for grounding.
// Fetched per request, never cached.
type ProductSummary struct {
	Title     string   `json:"title"`
	Price     *float64 `json:"price,omitempty"`
	Currency  string   `json:"currency,omitempty"`
	RatingAvg *float64 `json:"ratingAvg,omitempty"`
	Stock     *int     `json:"stock,omitempty"`
}

type productListResponse struct {
	Products []ProductSummary `json:"products"`
}

// ContextFetcher retrieves a bounded set of product summaries for
// grounding product-related questions. Every failure path degrades to
// "no context" so a catalog outage can never fail a chat request.
type ContextFetcher struct {
	apiURL   string
	client   *http.Client
	maxItems int
	queryMax int
	log      logger.ILogger
}

func NewContextFetcher(apiURL string, timeout time.Duration, maxItems, queryMax int, log logger.ILogger) *ContextFetcher {
	return &ContextFetcher{
		apiURL:   apiURL,
		client:   &http.Client{Timeout: timeout},
		maxItems: maxItems,
		queryMax: queryMax,
		log:      log,
	}
}

// FetchContext searches the catalog with the user text as keyword filter,
// falling back to one unfiltered listing when the search comes up empty.
func (f *ContextFetcher) FetchContext(ctx context.Context, userText string) (string, bool) {
	// Truncate by characters, not bytes, so a multi-byte message is never
	// cut mid-rune.
	keyword := userText
	if runes := []rune(keyword); len(runes) > f.queryMax {
		keyword = string(runes[:f.queryMax])
	}

	// A failed keyword search counts as zero results: the one unfiltered
	// listing is still attempted before giving up.
	products, ok := f.search(ctx, keyword)
	if !ok || len(products) == 0 {
		products, ok = f.search(ctx, "")
		if !ok || len(products) == 0 {
			return "", false
		}
	}

	if len(products) > f.maxItems {
		products = products[:f.maxItems]
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, formatSummary(p))
	}
	return strings.Join(lines, "\n"), true
}

func (f *ContextFetcher) search(ctx context.Context, keyword string) ([]ProductSummary, bool) {
	endpoint := f.apiURL
	if keyword != "" {
		params := url.Values{}
		params.Add("keyword", keyword)
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		f.log.Warn("catalog", "Failed to build product request", map[string]interface{}{"error": err.Error()})
		return nil, false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("catalog", "Product search failed", map[string]interface{}{"error": err.Error()})
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn("catalog", "Product search returned non-200", map[string]interface{}{"status": resp.StatusCode})
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.log.Warn("catalog", "Failed to read product response", map[string]interface{}{"error": err.Error()})
		return nil, false
	}

	var payload productListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		f.log.Warn("catalog", "Malformed product payload", map[string]interface{}{"error": err.Error()})
		return nil, false
	}

	return payload.Products, true
}

// formatSummary renders one product as a single grounding line, keeping
// only the fields the catalog actually returned.
func formatSummary(p ProductSummary) string {
	parts := []string{p.Title}
	if p.Price != nil {
		currency := p.Currency
		if currency == "" {
			currency = "INR"
		}
		parts = append(parts, fmt.Sprintf("%.2f %s", *p.Price, currency))
	}
	if p.RatingAvg != nil {
		parts = append(parts, fmt.Sprintf("rating %.1f/5", *p.RatingAvg))
	}
	if p.Stock != nil {
		parts = append(parts, fmt.Sprintf("stock %d", *p.Stock))
	}
	return strings.Join(parts, "; ")
}
