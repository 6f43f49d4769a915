package cart

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// LineItem is one product-quantity pair held in the cart. The unit price is
// captured at add time, since the backend price may drift afterwards.
// Quantity is always >= 1; a drop below 1 means removal, never a stored state.
type LineItem struct {
	ProductID uint    `gorm:"primaryKey" json:"productId" mapstructure:"productId"`
	UnitPrice float64 `json:"unitPrice" mapstructure:"unitPrice"`
	Quantity  int     `json:"quantity" mapstructure:"quantity"`
}

func (LineItem) TableName() string {
	return "cart_items"
}

// LineItemFromMap decodes a loosely-typed backend payload into a LineItem.
// Some backends report the captured price as "price" instead of "unitPrice".
func LineItemFromMap(m map[string]interface{}) (*LineItem, error) {
	if _, ok := m["unitPrice"]; !ok {
		if v, ok := m["price"]; ok {
			m["unitPrice"] = v
		}
	}
	var it LineItem
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &it,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decode line item: %w", err)
	}
	if it.Quantity < 1 {
		return nil, fmt.Errorf("decode line item: quantity %d below 1", it.Quantity)
	}
	return &it, nil
}

// Summary holds the derived cart totals. Never mutated independently,
// always recomputed from the line-item set.
type Summary struct {
	TotalQuantity int     `json:"totalQuantity"`
	Subtotal      float64 `json:"subtotal"`
	Shipping      float64 `json:"shipping"`
	Tax           float64 `json:"tax"`
	GrandTotal    float64 `json:"grandTotal"`
}
