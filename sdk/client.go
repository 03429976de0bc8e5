package sdk

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
)

// categoryIDPattern matches direct category identifiers such as
// "cat00000", "abcat0400000", or "pcmcat12345". A search string in
// this shape is a category-ID lookup, not a filter query.
var categoryIDPattern = regexp.MustCompile(`^(ab|pcm)?cat[0-9]+$`)

// Client is a high level client for the Best Buy APIs. Each method
// covers one resource family and returns the decoded JSON response as
// a generic map; no schema validation is applied. All methods are safe
// for concurrent use.
//
// Example:
//
//	client, err := sdk.NewClient(sdk.ConfigFromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	resp, err := client.Products(ctx, sdk.ByQuery("name=Star*"),
//	    sdk.NewResponseParams().WithShow("sku,name,salePrice"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp["products"])
type Client interface {
	// Availability reports which stores carry which products. Both
	// sides must select something concrete: a SKU, a list of SKUs, or
	// a product filter query on one side, crossed with a store ID,
	// store ID list, or store filter query (e.g. an area() search) on
	// the other. All() is not a valid availability selector.
	//
	// Example:
	//
	//	resp, err := client.Availability(ctx,
	//	    sdk.ByIDs(4312001, 6120183), sdk.ByIDs(611, 482), nil)
	Availability(ctx context.Context, products, stores Selector, params *ResponseParams) (map[string]interface{}, error)

	// Categories retrieves product categories. Categories are
	// addressed by string identifiers, so ByID and ByIDs are not
	// valid; use All, or ByQuery with either a filter query
	// ("name=Home*") or a bare category ID ("abcat0400000"), which is
	// recognized and turned into a direct lookup.
	Categories(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error)

	// OpenBox retrieves open-box listings: secondary listings for
	// returned or refurbished units. Accepts All, ByID, ByIDs, or
	// ByQuery.
	OpenBox(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error)

	// Products retrieves product information. ByID performs a direct
	// single-SKU lookup; ByIDs and ByQuery search the collection.
	Products(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error)

	// Recommendations retrieves product recommendations of the given
	// type. AlsoViewed requires ForSKU; MostViewed and Trending accept
	// Global or InCategory. Any other pairing fails with an
	// InvalidArgumentError before any request is made.
	Recommendations(ctx context.Context, recommendationType RecommendationType, scope RecommendationScope, params *ResponseParams) (map[string]interface{}, error)

	// Reviews retrieves customer reviews. ByID performs a direct
	// single-review lookup; ByIDs and ByQuery search the collection.
	Reviews(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error)

	// Stores retrieves store information. ByID performs a direct
	// single-store lookup; ByIDs and ByQuery search the collection.
	Stores(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error)

	// Warranties retrieves the warranties available for a product.
	// The upstream API only exposes warranties per SKU, so unlike the
	// other families this takes a bare SKU rather than a Selector.
	Warranties(ctx context.Context, sku int, params *ResponseParams) (map[string]interface{}, error)

	// Close releases resources held by the client. Close is safe to
	// call multiple times; after Close every operation fails.
	Close() error
}

// client is the concrete implementation of the Client interface
type client struct {
	transport *httpTransport
	mu        sync.RWMutex
	closed    bool
}

// NewClient creates a new Best Buy APIs client with the provided
// configuration. If config is nil, ConfigFromEnv is used.
//
// An empty API key does not fail construction; it surfaces as an
// AuthorizationError on the first call, before any network I/O.
//
// Example:
//
//	client, err := sdk.NewClient(sdk.NewConfig("YOUR_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(config *Config) (Client, error) {
	if config == nil {
		config = ConfigFromEnv()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	transport, err := newHTTPTransport(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	return &client{transport: transport}, nil
}

// Availability composes the product and store filter fragments into a
// single path expression: /products(<filter>)+stores(<filter>).
func (c *client) Availability(ctx context.Context, products, stores Selector, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	if products.kind == selectAll {
		return nil, &InvalidArgumentError{Message: "availability requires a product SKU, SKU list, or product query; All() is not valid"}
	}
	if stores.kind == selectAll {
		return nil, &InvalidArgumentError{Message: "availability requires a store ID, store ID list, or store query; All() is not valid"}
	}

	path := "/products(" + products.filter("sku") + ")+stores(" + stores.filter("storeId") + ")"
	return c.transport.get(ctx, c.transport.rootV1, path, params)
}

// Categories handles the one special case in path assembly: a query
// string shaped like a category ID becomes a direct lookup.
func (c *client) Categories(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	var path string
	switch selector.kind {
	case selectAll:
		path = "/categories"
	case selectByQuery:
		if categoryIDPattern.MatchString(selector.query) {
			path = "/categories/" + selector.query + ".json"
		} else {
			path = "/categories(" + selector.query + ")"
		}
	default:
		return nil, &InvalidArgumentError{Message: "categories are addressed by string identifiers; use All() or ByQuery()"}
	}

	return c.transport.get(ctx, c.transport.rootV1, path, params)
}

func (c *client) OpenBox(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	var path string
	switch selector.kind {
	case selectAll:
		path = "/products/openBox"
	case selectByID:
		path = "/products/" + strconv.Itoa(selector.id) + "/openBox"
	default:
		path = "/products/openBox(" + selector.filter("sku") + ")"
	}

	return c.transport.get(ctx, c.transport.rootBeta, path, params)
}

func (c *client) Products(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.transport.get(ctx, c.transport.rootV1, collectionPath("/products", "sku", selector), params)
}

// Recommendations validates the type/scope pairing before building
// any URL: the upstream API supports exactly three shapes per type.
func (c *client) Recommendations(ctx context.Context, recommendationType RecommendationType, scope RecommendationScope, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	var path string
	switch {
	case recommendationType == AlsoViewed && scope.kind == scopeSKU:
		path = "/products/" + strconv.Itoa(scope.sku) + "/" + recommendationType.endpoint()
	case recommendationType == AlsoViewed:
		return nil, &InvalidArgumentError{Message: "AlsoViewed recommendations require a product SKU; use ForSKU()"}
	case scope.kind == scopeGlobal:
		path = "/products/" + recommendationType.endpoint()
	case scope.kind == scopeCategory:
		path = "/products/" + recommendationType.endpoint() + "(categoryId=" + scope.categoryID + ")"
	default:
		return nil, &InvalidArgumentError{
			Message: fmt.Sprintf("%s recommendations accept Global() or InCategory(), not ForSKU()", recommendationType),
		}
	}

	return c.transport.get(ctx, c.transport.rootBeta, path, params)
}

func (c *client) Reviews(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.transport.get(ctx, c.transport.rootV1, collectionPath("/reviews", "id", selector), params)
}

func (c *client) Stores(ctx context.Context, selector Selector, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.transport.get(ctx, c.transport.rootV1, collectionPath("/stores", "storeId", selector), params)
}

func (c *client) Warranties(ctx context.Context, sku int, params *ResponseParams) (map[string]interface{}, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	path := "/products/" + strconv.Itoa(sku) + "/warranties.json"
	return c.transport.get(ctx, c.transport.rootV1, path, params)
}

// Close closes the client and releases resources
func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	return c.transport.close()
}

// checkClosed checks if the client is closed
func (c *client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// collectionPath renders the standard single-id / id-collection /
// query / none pattern shared by products, stores, and reviews:
// a direct .json lookup for one ID, a filter expression otherwise.
func collectionPath(root, field string, selector Selector) string {
	switch selector.kind {
	case selectByID:
		return root + "/" + strconv.Itoa(selector.id) + ".json"
	case selectByIDs, selectByQuery:
		return root + "(" + selector.filter(field) + ")"
	}
	return root
}
