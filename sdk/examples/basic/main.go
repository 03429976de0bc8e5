// Basic example of querying the Best Buy APIs with the SDK.
//
// Run with:
//
//	BBY_API_KEY=your-key go run ./sdk/examples/basic
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/BestBuyAPIs/bestbuy-sdk-go/sdk"
)

func main() {
	client, err := sdk.NewClient(sdk.ConfigFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	ctx := context.Background()

	// Direct lookup of one product by SKU.
	product, err := client.Products(ctx, sdk.ByID(6354884), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("product:", product["name"])

	// Search the catalog with a filter query and response shaping.
	results, err := client.Products(ctx, sdk.ByQuery("name=Star*"),
		sdk.NewResponseParams().WithShow("sku,name,salePrice").WithPageSize(10))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("matches:", results["total"])

	// Which of two stores carry these SKUs?
	availability, err := client.Availability(ctx,
		sdk.ByIDs(4312001, 6120183), sdk.ByIDs(611, 482), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("availability:", availability["products"])

	// Trending products in a category.
	trending, err := client.Recommendations(ctx, sdk.Trending,
		sdk.InCategory("abcat0400000"), nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("trending:", trending["results"])
}
