package cache

import (
	"context"
	"encoding/json"
	"sync"

	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
)

// MemoryListingCache is an in-process ListingCache used when no Redis address
// is configured (single-instance deployments and tests). Entries live until
// invalidated; the dataset is one hash per listing, mirroring the Redis layout.
type MemoryListingCache struct {
	mu       sync.RWMutex
	listings map[string]map[string][]byte
}

// NewMemoryListingCache creates an empty in-memory listing cache.
func NewMemoryListingCache() *MemoryListingCache {
	return &MemoryListingCache{listings: make(map[string]map[string][]byte)}
}

var _ portsrepo.ListingCache = (*MemoryListingCache)(nil)

func (c *MemoryListingCache) Get(ctx context.Context, listingPath, pageKey string, dest any) (bool, error) {
	c.mu.RLock()
	raw, ok := c.listings[listingPath][pageKey]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *MemoryListingCache) Set(ctx context.Context, listingPath, pageKey string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	pages, ok := c.listings[listingPath]
	if !ok {
		pages = make(map[string][]byte)
		c.listings[listingPath] = pages
	}
	pages[pageKey] = raw
	return nil
}

func (c *MemoryListingCache) Invalidate(ctx context.Context, listingPath string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.listings, listingPath)
	return nil
}
