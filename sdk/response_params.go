package sdk

import (
	"net/url"
	"strconv"
	"strings"
)

// ResponseParams holds the optional querystring controls the Best Buy
// APIs apply uniformly across endpoints: paging, field selection,
// sorting, and facets. A nil or zero value means "service defaults".
//
// ResponseParams is built with the fluent pattern and may be reused
// across calls; the client never mutates a value the caller passed in.
//
// Example:
//
//	params := sdk.NewResponseParams().
//	    WithShow("sku,name,salePrice").
//	    WithPage(2).
//	    WithPageSize(25).
//	    WithSort("name.asc")
//	resp, err := client.Products(ctx, sdk.ByQuery("name=Star*"), params)
type ResponseParams struct {
	// apiKey is stamped in by the request builder; callers never set it.
	apiKey string
	// format is forced by the request builder: "json" for collection
	// paths, empty for direct .json lookups (the service rejects a
	// format parameter on those).
	format string

	// Facets selects attributes the service aggregates results by,
	// e.g. "manufacturer,10".
	Facets string
	// Page is the 1-based page to request. Zero means unset.
	Page int
	// PageSize is the number of results per page. Zero means unset.
	PageSize int
	// Show selects the fields to return for each result, e.g.
	// "sku,name,salePrice" or "all".
	Show string
	// Sort orders the results, e.g. "name.asc".
	Sort string
}

// NewResponseParams creates an empty ResponseParams for fluent use.
func NewResponseParams() *ResponseParams {
	return &ResponseParams{}
}

// WithFacets sets the facets to return.
func (p *ResponseParams) WithFacets(facets string) *ResponseParams {
	p.Facets = facets
	return p
}

// WithPage sets the page to request.
func (p *ResponseParams) WithPage(page int) *ResponseParams {
	p.Page = page
	return p
}

// WithPageSize sets the number of results per page.
func (p *ResponseParams) WithPageSize(pageSize int) *ResponseParams {
	p.PageSize = pageSize
	return p
}

// WithShow sets the fields to show for each result.
func (p *ResponseParams) WithShow(show string) *ResponseParams {
	p.Show = show
	return p
}

// WithSort sets the sort order of the results.
func (p *ResponseParams) WithSort(sort string) *ResponseParams {
	p.Sort = sort
	return p
}

// queryString renders the parameters as a querystring for the service.
//
// apiKey always comes first and is emitted verbatim, without
// percent-encoding; the service expects the key exactly as issued.
// Every other parameter is emitted in fixed order only when it has a
// value, with zero-valued numeric parameters suppressed entirely, and
// its value percent-encoded (url.QueryEscape cannot fail, so unlike
// the legacy SDKs no parameter is ever silently dropped).
func (p ResponseParams) queryString() string {
	var query strings.Builder
	query.WriteString("apiKey=")
	query.WriteString(p.apiKey)

	parameters := []struct {
		name  string
		value string
	}{
		{"facets", p.Facets},
		{"format", p.format},
		{"page", strconv.Itoa(p.Page)},
		{"pageSize", strconv.Itoa(p.PageSize)},
		{"show", p.Show},
		{"sort", p.Sort},
	}
	for _, parameter := range parameters {
		if parameter.value == "" || parameter.value == "0" {
			continue
		}
		query.WriteString("&")
		query.WriteString(parameter.name)
		query.WriteString("=")
		query.WriteString(url.QueryEscape(parameter.value))
	}

	return query.String()
}
