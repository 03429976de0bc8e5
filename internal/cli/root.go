// Package cli implements the bestbuy command line tool, a thin
// wrapper over the SDK for ad hoc catalog lookups.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BestBuyAPIs/bestbuy-sdk-go/sdk"
)

var (
	flagAPIKey   string
	flagDebug    bool
	flagShow     string
	flagSort     string
	flagPage     int
	flagPageSize int

	client sdk.Client
)

// NewRootCmd creates the root cobra command for the bestbuy CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bestbuy",
		Short: "bestbuy — query the Best Buy APIs from the command line",
		Long:  "bestbuy looks up products, stores, categories, availability, and recommendations through the Best Buy APIs.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := sdk.ConfigFromEnv()
			if flagAPIKey != "" {
				config.APIKey = flagAPIKey
			}
			if flagDebug {
				logger := logrus.New()
				logger.SetLevel(logrus.DebugLevel)
				config.WithDebug(true).WithObserver(sdk.NewLogObserver(logger))
			}

			var err error
			client, err = sdk.NewClient(config)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if client != nil {
				client.Close()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Best Buy API key (or BBY_API_KEY env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug request logging")
	root.PersistentFlags().StringVar(&flagShow, "show", "", "Fields to show for each result, e.g. sku,name,salePrice")
	root.PersistentFlags().StringVar(&flagSort, "sort", "", "Sort order, e.g. name.asc")
	root.PersistentFlags().IntVar(&flagPage, "page", 0, "Page to request")
	root.PersistentFlags().IntVar(&flagPageSize, "page-size", 0, "Results per page")

	root.AddCommand(
		newProductsCmd(),
		newStoresCmd(),
		newCategoriesCmd(),
		newReviewsCmd(),
		newOpenBoxCmd(),
		newAvailabilityCmd(),
		newRecommendationsCmd(),
		newWarrantiesCmd(),
	)

	return root
}

// responseParams builds response parameters from the shared flags,
// or nil when none are set.
func responseParams() *sdk.ResponseParams {
	if flagShow == "" && flagSort == "" && flagPage == 0 && flagPageSize == 0 {
		return nil
	}
	return sdk.NewResponseParams().
		WithShow(flagShow).
		WithSort(flagSort).
		WithPage(flagPage).
		WithPageSize(flagPageSize)
}
