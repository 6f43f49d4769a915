package jobs

import (
	"log"

	"storefront.GO/config"
	"storefront.GO/cron"
	catalogRepo "storefront.GO/model/repository/catalog"
)

func init() {
	cron.Register("catalogrefresh", "0 * * * *", CatalogRefreshJob)
}

// CatalogRefreshJob drops the cached catalog snapshot and re-primes it from the database.
func CatalogRefreshJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("catalogrefresh: db unavailable: %v", err)
		return
	}
	repo := catalogRepo.NewProductRepository(db)
	repo.InvalidateSnapshot()
	products, err := repo.FetchAll()
	if err != nil {
		log.Printf("catalogrefresh: reload failed: %v", err)
		return
	}
	log.Printf("catalogrefresh: snapshot refreshed, %d products", len(products))
}
