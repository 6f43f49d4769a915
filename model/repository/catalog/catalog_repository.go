package catalog

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// CacheTag groups every catalog-derived cache entry so an import or refresh
// can invalidate them in one call.
const CacheTag = "catalog"

const snapshotKey = "catalog:all"

// snapshot TTL in seconds; the refresh cron re-primes well before this
const snapshotTTL = 3600

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Migrate creates the catalog tables.
func (r *ProductRepository) Migrate() error {
	return r.db.AutoMigrate(&catalogEntity.Product{})
}

// FetchAll returns the full catalog snapshot used by the in-memory engine.
// The snapshot is cached under the catalog tag.
func (r *ProductRepository) FetchAll() ([]catalogEntity.Product, error) {
	c := cache.GetInstance()
	if v, ok := c.Get(snapshotKey); ok {
		if products, isSlice := v.([]catalogEntity.Product); isSlice {
			return products, nil
		}
	}
	var products []catalogEntity.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	c.Set(snapshotKey, products, snapshotTTL, []string{CacheTag})
	return products, nil
}

// FetchByID returns one product or (nil, nil) when absent.
func (r *ProductRepository) FetchByID(id uint) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	err := r.db.First(&p, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertBatch writes products in batches and invalidates the catalog cache.
func (r *ProductRepository) UpsertBatch(products []catalogEntity.Product, batchSize int) error {
	if len(products) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	for i := range products {
		products[i].Normalize()
	}
	err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(products, batchSize).Error
	if err != nil {
		return fmt.Errorf("upsert products: %w", err)
	}
	cache.GetInstance().DeleteByTag(CacheTag)
	return nil
}

// Count returns the catalog size.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&catalogEntity.Product{}).Count(&n).Error
	return n, err
}

// InvalidateSnapshot drops the cached catalog snapshot.
func (r *ProductRepository) InvalidateSnapshot() {
	cache.GetInstance().DeleteByTag(CacheTag)
}
