package memory

import (
	"time"

	"cs-chatbot-be/pkg/faq"

	"github.com/patrickmn/go-cache"
)

const faqSnapshotKey = "faq:snapshot"

// FaqCache holds the single process-wide FAQ snapshot. The snapshot is
// either absent/empty or fully populated from the last successful fetch;
// Replace swaps it atomically so a match never sees a partial update.
type FaqCache struct {
	cache *cache.Cache
}

func NewFaqCache() *FaqCache {
	// No expiration: the accessor refreshes only when the snapshot is empty.
	c := cache.New(cache.NoExpiration, 10*time.Minute)
	return &FaqCache{
		cache: c,
	}
}

func (r *FaqCache) Snapshot() ([]faq.Record, bool) {
	if x, found := r.cache.Get(faqSnapshotKey); found {
		records := x.([]faq.Record)
		if len(records) > 0 {
			return records, true
		}
	}
	return nil, false
}

func (r *FaqCache) Replace(records []faq.Record) {
	r.cache.Set(faqSnapshotKey, records, cache.NoExpiration)
}

func (r *FaqCache) Clear() {
	r.cache.Delete(faqSnapshotKey)
}
