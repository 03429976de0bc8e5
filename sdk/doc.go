// Package sdk provides a high level Go client for the Best Buy APIs:
// product information, availability, categories, open-box listings,
// recommendations, reviews, stores, and warranties.
//
// # Features
//
// The SDK provides:
//   - One method per resource family with a small Selector variant
//     (All, ByID, ByIDs, ByQuery) instead of overload explosions
//   - Correct querystring construction, including the service's
//     format-parameter rules for direct .json lookups
//   - Typed errors (AuthorizationError, InvalidArgumentError,
//     ServiceError) with errors.Is/As support
//   - Context support for cancellation on every call
//   - Optional debug logging and pluggable request observers
//   - A generic TypedClient for decoding responses into your structs
//
// # Basic Usage
//
// Create a client and query the catalog:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/BestBuyAPIs/bestbuy-sdk-go/sdk"
//	)
//
//	func main() {
//	    // Reads BBY_API_KEY; or use sdk.NewConfig("YOUR_API_KEY")
//	    client, err := sdk.NewClient(sdk.ConfigFromEnv())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer client.Close()
//
//	    ctx := context.Background()
//
//	    // Direct lookup of one product by SKU
//	    product, err := client.Products(ctx, sdk.ByID(6354884), nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(product["name"])
//
//	    // Search with a filter query and response shaping
//	    results, err := client.Products(ctx, sdk.ByQuery("name=Star*"),
//	        sdk.NewResponseParams().WithShow("sku,name").WithPageSize(25))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(results["total"])
//	}
//
// # Selectors
//
// Every resource family takes a Selector describing what to fetch:
//
//	client.Stores(ctx, sdk.All(), nil)                  // every store
//	client.Stores(ctx, sdk.ByID(611), nil)              // one store
//	client.Stores(ctx, sdk.ByIDs(611, 482), nil)        // several stores
//	client.Stores(ctx, sdk.ByQuery("name=eden*"), nil)  // filter query
//
// Availability crosses a product selector with a store selector:
//
//	client.Availability(ctx, sdk.ByIDs(4312001, 6120183), sdk.ByIDs(611, 482), nil)
//
// Recommendations pair a recommendation type with a scope; invalid
// pairings fail with an InvalidArgumentError before any request:
//
//	client.Recommendations(ctx, sdk.Trending, sdk.Global(), nil)
//	client.Recommendations(ctx, sdk.AlsoViewed, sdk.ForSKU(6354884), nil)
//
// # Error Handling
//
// All failures are surfaced as one of three error kinds:
//
//	_, err := client.Products(ctx, sdk.ByID(123), nil)
//	switch {
//	case sdk.IsAuthorization(err):
//	    // No API key configured; checked before any network I/O
//	case sdk.IsInvalidArgument(err):
//	    // Argument combination the upstream API rejects
//	case sdk.IsService(err):
//	    // Network failure, non-2xx status, or undecodable body
//	}
//
// # Responses
//
// Responses are decoded JSON as map[string]interface{}; the SDK does
// no schema validation. Use TypedClient to decode into your own types
// instead.
package sdk
