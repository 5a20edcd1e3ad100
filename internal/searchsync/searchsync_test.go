package searchsync_test

import (
	"net/url"
	"testing"

	"github.com/acmedash/invoice_dashboard_app/internal/searchsync"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_SetsQueryAndResetsPage(t *testing.T) {
	current := url.Values{"page": {"3"}}

	next := searchsync.Canonicalize(current, "lee")

	assert.Equal(t, "lee", next.Get("query"))
	assert.Equal(t, "1", next.Get("page"))
}

func TestCanonicalize_EmptyTermRemovesQuery(t *testing.T) {
	current := url.Values{"query": {"lee"}, "page": {"2"}}

	next := searchsync.Canonicalize(current, "")

	assert.False(t, next.Has("query"), "empty term must remove the query parameter, not set it to empty")
	assert.Equal(t, "1", next.Get("page"))
}

func TestCanonicalize_PreservesOtherParams(t *testing.T) {
	current := url.Values{"sort": {"date"}, "tab": {"open"}, "page": {"5"}}

	next := searchsync.Canonicalize(current, "acme")

	assert.Equal(t, "date", next.Get("sort"))
	assert.Equal(t, "open", next.Get("tab"))
	assert.Equal(t, "acme", next.Get("query"))
	assert.Equal(t, "1", next.Get("page"))
}

func TestCanonicalize_DoesNotMutateInput(t *testing.T) {
	current := url.Values{"query": {"old"}, "page": {"7"}}

	_ = searchsync.Canonicalize(current, "new")

	assert.Equal(t, "old", current.Get("query"))
	assert.Equal(t, "7", current.Get("page"))
}

func TestStateFromParams(t *testing.T) {
	testCases := []struct {
		name      string
		params    url.Values
		wantQuery string
		wantPage  int
	}{
		{"both present", url.Values{"query": {"lee"}, "page": {"2"}}, "lee", 2},
		{"missing page", url.Values{"query": {"lee"}}, "lee", 1},
		{"missing query", url.Values{"page": {"4"}}, "", 4},
		{"non numeric page", url.Values{"page": {"x"}}, "", 1},
		{"zero page", url.Values{"page": {"0"}}, "", 1},
		{"negative page", url.Values{"page": {"-2"}}, "", 1},
		{"empty", url.Values{}, "", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := searchsync.StateFromParams(tc.params)
			assert.Equal(t, tc.wantQuery, state.Query)
			assert.Equal(t, tc.wantPage, state.Page)
		})
	}
}
