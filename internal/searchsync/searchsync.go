// Package searchsync keeps the navigable URL state in step with the latest
// validated search input. The canonical state is entirely URL-encoded so it
// survives reloads and can be bookmarked or shared.
package searchsync

import (
	"net/url"
	"strconv"
)

const (
	// QueryParam is the free-text filter parameter.
	QueryParam = "query"
	// PageParam is the 1-based page number parameter.
	PageParam = "page"
)

// SearchState is the derived view state of the invoices listing. It is never
// stored anywhere except the URL.
type SearchState struct {
	Query string
	Page  int
}

// StateFromParams reads the search state out of URL query parameters.
// A missing, non-numeric or non-positive page collapses to page 1.
func StateFromParams(params url.Values) SearchState {
	page, err := strconv.Atoi(params.Get(PageParam))
	if err != nil || page < 1 {
		page = 1
	}
	return SearchState{
		Query: params.Get(QueryParam),
		Page:  page,
	}
}

// Canonicalize computes the URL parameter set for a new search term given the
// current parameters. A new term always resets the page to 1; an empty term
// removes the query parameter entirely (no filter is distinct from an
// empty-string filter). All other parameters are preserved untouched and the
// input is not modified: the caller replaces the current location with the
// returned set rather than pushing a new history entry.
func Canonicalize(params url.Values, term string) url.Values {
	next := make(url.Values, len(params)+2)
	for k, vs := range params {
		next[k] = append([]string(nil), vs...)
	}
	next.Set(PageParam, "1")
	if term != "" {
		next.Set(QueryParam, term)
	} else {
		next.Del(QueryParam)
	}
	return next
}
