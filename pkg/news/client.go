package news

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// SearchResponse is the part of a content search answer the frontend needs.
// Results are kept as raw JSON so article records pass through unmodified.
type SearchResponse struct {
	Status  string            `json:"status"`
	Total   int               `json:"total"`
	Results []json.RawMessage `json:"results"`
}

// Options narrows a content search. Zero values are left out of the request.
type Options struct {
	Tag      string
	OrderBy  string
	PageSize int
	Section  string
}

// Values encodes the options as query parameters. url.Values.Encode sorts by
// key, so the result is stable enough to use in cache keys.
func (o Options) Values() url.Values {
	v := url.Values{}
	if o.Tag != "" {
		v.Set("tag", o.Tag)
	}
	if o.OrderBy != "" {
		v.Set("order-by", o.OrderBy)
	}
	if o.PageSize > 0 {
		v.Set("page-size", strconv.Itoa(o.PageSize))
	}
	if o.Section != "" {
		v.Set("section", o.Section)
	}
	return v
}

// NewsClient searches a news provider. A nil response means "no data",
// whatever the cause.
type NewsClient interface {
	Search(ctx context.Context, query string, opts Options) *SearchResponse
	Enabled() bool
	Name() string
}
