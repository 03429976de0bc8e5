package sdk

import (
	"strconv"
	"strings"
)

// Selector identifies which resources an operation targets. It is a
// closed variant replacing the overload explosion of the legacy SDKs:
// every resource family takes one Selector instead of separate
// id / id-list / query / no-argument entry points.
//
// Construct selectors with All, ByID, ByIDs, or ByQuery:
//
//	client.Products(ctx, sdk.All(), nil)                    // every product
//	client.Products(ctx, sdk.ByID(4312001), nil)            // one SKU
//	client.Products(ctx, sdk.ByIDs(4312001, 6120183), nil)  // several SKUs
//	client.Products(ctx, sdk.ByQuery("name=Star*"), nil)    // filter query
type Selector struct {
	kind  selectorKind
	id    int
	ids   []int
	query string
}

type selectorKind int

const (
	selectAll selectorKind = iota
	selectByID
	selectByIDs
	selectByQuery
)

// All selects every resource in a family.
func All() Selector {
	return Selector{kind: selectAll}
}

// ByID selects a single resource by its numeric identifier. For
// families that support it, this produces a direct single-resource
// lookup (/products/4312001.json) rather than a filter query.
func ByID(id int) Selector {
	return Selector{kind: selectByID, id: id}
}

// ByIDs selects a set of resources by their numeric identifiers,
// rendered as an in() filter list: "sku in(4312001, 6120183)".
func ByIDs(ids ...int) Selector {
	return Selector{kind: selectByIDs, ids: ids}
}

// ByQuery selects resources with a free-form filter query in the Best
// Buy APIs query syntax, passed through verbatim. The caller is
// responsible for supplying valid upstream syntax, e.g. "name=Star*"
// or "manufacturer=canon&salePrice<1000".
func ByQuery(query string) Selector {
	return Selector{kind: selectByQuery, query: query}
}

// filter renders the selector as a filter fragment over the given
// field. An All selector renders empty.
func (s Selector) filter(field string) string {
	switch s.kind {
	case selectByID:
		return field + " in(" + strconv.Itoa(s.id) + ")"
	case selectByIDs:
		return field + " in(" + joinIDs(s.ids) + ")"
	case selectByQuery:
		return s.query
	}
	return ""
}

// joinIDs renders ids comma+space separated, matching the list
// rendering the service's query syntax documents: "1, 2, 3".
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

// RecommendationType is the closed set of recommendation kinds exposed
// by the recommendations endpoint.
type RecommendationType int

const (
	// MostViewed requests the most viewed products, globally or
	// within a category.
	MostViewed RecommendationType = iota
	// Trending requests trending products, globally or within a
	// category.
	Trending
	// AlsoViewed requests products viewed alongside a specific
	// product, and therefore always requires a SKU.
	AlsoViewed
)

// endpoint returns the path segment for the recommendation kind.
func (rt RecommendationType) endpoint() string {
	switch rt {
	case MostViewed:
		return "mostViewed"
	case Trending:
		return "trendingViewed"
	case AlsoViewed:
		return "alsoViewed"
	default:
		return "unknown"
	}
}

// String returns the name of the recommendation type.
func (rt RecommendationType) String() string {
	switch rt {
	case MostViewed:
		return "MostViewed"
	case Trending:
		return "Trending"
	case AlsoViewed:
		return "AlsoViewed"
	default:
		return "Unknown"
	}
}

// RecommendationScope qualifies a recommendation request: global,
// scoped to a product SKU, or scoped to a category. Each
// RecommendationType accepts only some scopes; invalid pairings are
// rejected with an InvalidArgumentError before any request is made.
//
//	client.Recommendations(ctx, sdk.Trending, sdk.Global(), nil)
//	client.Recommendations(ctx, sdk.MostViewed, sdk.InCategory("abcat0400000"), nil)
//	client.Recommendations(ctx, sdk.AlsoViewed, sdk.ForSKU(6354884), nil)
type RecommendationScope struct {
	kind       scopeKind
	sku        int
	categoryID string
}

type scopeKind int

const (
	scopeGlobal scopeKind = iota
	scopeSKU
	scopeCategory
)

// Global scopes a recommendation request to the whole catalog.
// Valid for MostViewed and Trending.
func Global() RecommendationScope {
	return RecommendationScope{kind: scopeGlobal}
}

// ForSKU scopes a recommendation request to a product.
// Valid only for AlsoViewed, which requires it.
func ForSKU(sku int) RecommendationScope {
	return RecommendationScope{kind: scopeSKU, sku: sku}
}

// InCategory scopes a recommendation request to a category.
// Valid for MostViewed and Trending.
func InCategory(categoryID string) RecommendationScope {
	return RecommendationScope{kind: scopeCategory, categoryID: categoryID}
}
