package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogRepo "storefront.GO/model/repository/catalog"
	catalogService "storefront.GO/service/catalog"
)

var (
	searchQuery    string
	searchCategory string
	searchBrand    string
	searchMinPrice float64
	searchMaxPrice float64
	searchSort     string
	searchPage     int
)

var catalogSearchCmd = &cobra.Command{
	Use:   "catalog:search",
	Short: "Query the catalog from the command line",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		repo := catalogRepo.NewProductRepository(db)
		products, err := repo.FetchAll()
		if err != nil {
			fmt.Printf("Catalog load failed: %v\n", err)
			return
		}

		cr := catalogService.DefaultCriteria()
		cr.Search = searchQuery
		cr.Category = searchCategory
		cr.Brand = searchBrand
		cr.MinPrice = searchMinPrice
		if searchMaxPrice > 0 {
			cr.MaxPrice = searchMaxPrice
		}
		cr.Sort = searchSort
		cr.Page = searchPage
		cr.Normalize()

		res := catalogService.Search(products, cr)
		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
		fmt.Printf("\n%d of %d products (page %d)\n", len(res.Items), res.TotalCount, res.Page)
	},
}

func init() {
	catalogSearchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Search text")
	catalogSearchCmd.Flags().StringVar(&searchCategory, "category", "", "Category filter")
	catalogSearchCmd.Flags().StringVar(&searchBrand, "brand", "", "Brand filter")
	catalogSearchCmd.Flags().Float64Var(&searchMinPrice, "min-price", 0, "Minimum price")
	catalogSearchCmd.Flags().Float64Var(&searchMaxPrice, "max-price", 0, "Maximum price (0 = no cap)")
	catalogSearchCmd.Flags().StringVar(&searchSort, "sort", catalogService.SortName, "Sort token: name, price-low, price-high, rating")
	catalogSearchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number")
	rootCmd.AddCommand(catalogSearchCmd)
}
