package catalog

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gorm.io/datatypes"
)

// Product is the canonical catalog schema. Backends expose looser shapes;
// everything is normalized into this before the engines see it.
type Product struct {
	ID            uint                        `gorm:"primaryKey" json:"id" mapstructure:"id"`
	Name          string                      `gorm:"size:255;index" json:"name" mapstructure:"name"`
	Brand         string                      `gorm:"size:128;index" json:"brand" mapstructure:"brand"`
	Category      string                      `gorm:"size:128;index" json:"category" mapstructure:"category"`
	Price         float64                     `json:"price" mapstructure:"price"`
	OriginalPrice *float64                    `json:"originalPrice,omitempty" mapstructure:"originalPrice"`
	Rating        float64                     `json:"rating" mapstructure:"rating"`
	Stock         int                         `json:"stock" mapstructure:"stock"`
	Images        datatypes.JSONSlice[string] `json:"images" mapstructure:"images"`
	Description   string                      `gorm:"type:text" json:"description" mapstructure:"description"`
}

func (Product) TableName() string {
	return "catalog_products"
}

// Normalize enforces the schema invariants: trimmed identity fields,
// price >= 0, stock >= 0, rating within [0, 5].
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
	if p.Price < 0 {
		p.Price = 0
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < 0 {
		p.OriginalPrice = nil
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
}

// FromMap decodes a loosely-typed backend payload (numbers as strings,
// floats for ints, camel or identical keys) into a normalized Product.
func FromMap(m map[string]interface{}) (*Product, error) {
	var p Product
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	p.Normalize()
	if p.Name == "" {
		return nil, fmt.Errorf("decode product: missing name")
	}
	return &p, nil
}
