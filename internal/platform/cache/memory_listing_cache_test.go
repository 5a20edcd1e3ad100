package cache_test

import (
	"context"
	"testing"

	"github.com/acmedash/invoice_dashboard_app/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPage struct {
	Rows  []string `json:"rows"`
	Total int      `json:"total"`
}

func TestMemoryListingCache_SetGetRoundTrip(t *testing.T) {
	c := cache.NewMemoryListingCache()
	ctx := context.Background()

	stored := cachedPage{Rows: []string{"a", "b"}, Total: 2}
	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "query=&page=1", stored))

	var got cachedPage
	hit, err := c.Get(ctx, "/dashboard/invoices", "query=&page=1", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, stored, got)
}

func TestMemoryListingCache_MissOnUnknownKey(t *testing.T) {
	c := cache.NewMemoryListingCache()

	var got cachedPage
	hit, err := c.Get(context.Background(), "/dashboard/invoices", "query=x&page=9", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryListingCache_InvalidateDropsWholeListing(t *testing.T) {
	c := cache.NewMemoryListingCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "query=&page=1", cachedPage{Total: 1}))
	require.NoError(t, c.Set(ctx, "/dashboard/invoices", "query=&page=2", cachedPage{Total: 1}))
	require.NoError(t, c.Set(ctx, "/dashboard/customers", "page=1", cachedPage{Total: 3}))

	require.NoError(t, c.Invalidate(ctx, "/dashboard/invoices"))

	var got cachedPage
	hit, err := c.Get(ctx, "/dashboard/invoices", "query=&page=1", &got)
	require.NoError(t, err)
	assert.False(t, hit, "every page of the invalidated listing must be stale")
	hit, err = c.Get(ctx, "/dashboard/invoices", "query=&page=2", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	// Other listings are untouched.
	hit, err = c.Get(ctx, "/dashboard/customers", "page=1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestMemoryListingCache_InvalidateIsIdempotent(t *testing.T) {
	c := cache.NewMemoryListingCache()
	ctx := context.Background()

	require.NoError(t, c.Invalidate(ctx, "/dashboard/invoices"))
	// Invalidating an already-stale listing is a no-op with no error.
	require.NoError(t, c.Invalidate(ctx, "/dashboard/invoices"))
}
