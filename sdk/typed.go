package sdk

import (
	"context"
	"encoding/json"
)

// TypedClient is a type-safe wrapper around the Client interface. The
// base client returns responses as generic maps; TypedClient decodes
// the same responses into a caller-defined struct, eliminating manual
// type assertions.
//
// Example:
//
//	type ProductPage struct {
//	    From     int `json:"from"`
//	    To       int `json:"to"`
//	    Total    int `json:"total"`
//	    Products []struct {
//	        SKU       int     `json:"sku"`
//	        Name      string  `json:"name"`
//	        SalePrice float64 `json:"salePrice"`
//	    } `json:"products"`
//	}
//
//	typed := sdk.NewTypedClient[ProductPage](client)
//	page, err := typed.Products(ctx, sdk.ByQuery("name=Star*"), nil)
//	for _, p := range page.Products {
//	    fmt.Println(p.SKU, p.Name, p.SalePrice)
//	}
type TypedClient[T any] struct {
	client Client
}

// NewTypedClient creates a typed wrapper decoding responses into T.
func NewTypedClient[T any](client Client) *TypedClient[T] {
	return &TypedClient[T]{client: client}
}

// Availability retrieves availability results decoded into T.
func (tc *TypedClient[T]) Availability(ctx context.Context, products, stores Selector, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Availability(ctx, products, stores, params))
}

// Categories retrieves categories decoded into T.
func (tc *TypedClient[T]) Categories(ctx context.Context, selector Selector, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Categories(ctx, selector, params))
}

// OpenBox retrieves open-box listings decoded into T.
func (tc *TypedClient[T]) OpenBox(ctx context.Context, selector Selector, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.OpenBox(ctx, selector, params))
}

// Products retrieves products decoded into T.
func (tc *TypedClient[T]) Products(ctx context.Context, selector Selector, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Products(ctx, selector, params))
}

// Recommendations retrieves recommendations decoded into T.
func (tc *TypedClient[T]) Recommendations(ctx context.Context, recommendationType RecommendationType, scope RecommendationScope, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Recommendations(ctx, recommendationType, scope, params))
}

// Reviews retrieves reviews decoded into T.
func (tc *TypedClient[T]) Reviews(ctx context.Context, selector Selector, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Reviews(ctx, selector, params))
}

// Stores retrieves stores decoded into T.
func (tc *TypedClient[T]) Stores(ctx context.Context, selector Selector, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Stores(ctx, selector, params))
}

// Warranties retrieves warranties decoded into T.
func (tc *TypedClient[T]) Warranties(ctx context.Context, sku int, params *ResponseParams) (T, error) {
	return decodeTyped[T](tc.client.Warranties(ctx, sku, params))
}

// decodeTyped re-encodes the generic response and decodes it into T.
// The extra round trip keeps TypedClient layered purely on the public
// Client interface.
func decodeTyped[T any](resp map[string]interface{}, callErr error) (T, error) {
	var result T
	if callErr != nil {
		return result, callErr
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return result, newServiceError("failed to re-encode response", "", 0, err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, newServiceError("failed to decode response into target type", "", 0, err)
	}
	return result, nil
}
