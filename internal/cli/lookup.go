package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BestBuyAPIs/bestbuy-sdk-go/sdk"
)

// selectorFromArg turns a single CLI argument into a Selector: no
// argument selects everything, a number selects by ID, a comma
// separated list of numbers selects by IDs, and anything else is
// passed through as a filter query.
func selectorFromArg(args []string) sdk.Selector {
	if len(args) == 0 {
		return sdk.All()
	}

	arg := args[0]
	if id, err := strconv.Atoi(arg); err == nil {
		return sdk.ByID(id)
	}
	if ids, ok := parseIDList(arg); ok {
		return sdk.ByIDs(ids...)
	}
	return sdk.ByQuery(arg)
}

// parseIDList parses "1,2,3" into ids; ok is false if any element is
// not a number.
func parseIDList(arg string) ([]int, bool) {
	parts := strings.Split(arg, ",")
	if len(parts) < 2 {
		return nil, false
	}
	ids := make([]int, len(parts))
	for i, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

// printResponse writes the decoded response as indented JSON.
func printResponse(resp map[string]interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}

func newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products [sku | sku,sku,... | query]",
		Short: "Look up products by SKU, SKU list, or filter query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Products(cmd.Context(), selectorFromArg(args), responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}

func newStoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores [id | id,id,... | query]",
		Short: "Look up stores by ID, ID list, or filter query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Stores(cmd.Context(), selectorFromArg(args), responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories [id | query]",
		Short: "Look up categories by ID (e.g. abcat0400000) or filter query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector := sdk.All()
			if len(args) > 0 {
				selector = sdk.ByQuery(args[0])
			}
			resp, err := client.Categories(cmd.Context(), selector, responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}

func newReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews [id | id,id,... | query]",
		Short: "Look up customer reviews by ID, ID list, or filter query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.Reviews(cmd.Context(), selectorFromArg(args), responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}

func newOpenBoxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "openbox [sku | sku,sku,... | query]",
		Short: "Look up open-box listings by SKU, SKU list, or filter query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.OpenBox(cmd.Context(), selectorFromArg(args), responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}

func newAvailabilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "availability <sku | sku,sku,... | query> <store | store,store,... | query>",
		Short: "Check which stores carry which products",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			products := selectorFromArg(args[:1])
			stores := selectorFromArg(args[1:])
			resp, err := client.Availability(cmd.Context(), products, stores, responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}

func newRecommendationsCmd() *cobra.Command {
	var flagSKU int
	var flagCategory string

	cmd := &cobra.Command{
		Use:   "recommendations <mostViewed | trending | alsoViewed>",
		Short: "Fetch product recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recommendationType sdk.RecommendationType
			switch args[0] {
			case "mostViewed":
				recommendationType = sdk.MostViewed
			case "trending":
				recommendationType = sdk.Trending
			case "alsoViewed":
				recommendationType = sdk.AlsoViewed
			default:
				return fmt.Errorf("unknown recommendation type %q", args[0])
			}

			scope := sdk.Global()
			if flagSKU != 0 {
				scope = sdk.ForSKU(flagSKU)
			} else if flagCategory != "" {
				scope = sdk.InCategory(flagCategory)
			}

			resp, err := client.Recommendations(cmd.Context(), recommendationType, scope, responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}

	cmd.Flags().IntVar(&flagSKU, "sku", 0, "Product SKU (required for alsoViewed)")
	cmd.Flags().StringVar(&flagCategory, "category", "", "Category ID (mostViewed and trending only)")

	return cmd
}

func newWarrantiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warranties <sku>",
		Short: "Look up warranties available for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sku, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("sku must be a number: %w", err)
			}
			resp, err := client.Warranties(cmd.Context(), sku, responseParams())
			if err != nil {
				return err
			}
			return printResponse(resp)
		},
	}
}
