package cart

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartEntity "storefront.GO/model/entity/cart"
)

// CartRepository stores the server-held cart (one cart per deployment of the
// embedded backend; multi-user carts are the remote service's concern).
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Migrate creates the cart tables.
func (r *CartRepository) Migrate() error {
	return r.db.AutoMigrate(&cartEntity.LineItem{})
}

// Items returns all line items ordered by product id.
func (r *CartRepository) Items() ([]cartEntity.LineItem, error) {
	var items []cartEntity.LineItem
	if err := r.db.Order("product_id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SetQuantity upserts a line item. Quantity must be >= 1; a lower value is a
// removal and must go through Remove instead.
func (r *CartRepository) SetQuantity(productID uint, unitPrice float64, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("cart: quantity %d below 1 for product %d", quantity, productID)
	}
	item := cartEntity.LineItem{ProductID: productID, UnitPrice: unitPrice, Quantity: quantity}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"unit_price", "quantity"}),
	}).Create(&item).Error
}

// Remove deletes a line item. Removing an absent item is not an error.
func (r *CartRepository) Remove(productID uint) error {
	return r.db.Delete(&cartEntity.LineItem{}, "product_id = ?", productID).Error
}

// Flush empties the cart in one statement.
func (r *CartRepository) Flush() error {
	return r.db.Where("1 = 1").Delete(&cartEntity.LineItem{}).Error
}
