package catalog

import "testing"

func TestFromMap_WeakTyping(t *testing.T) {
	m := map[string]interface{}{
		"id":       "42",
		"name":     "  Phone A ",
		"brand":    "Acme",
		"category": "phones",
		"price":    "99.95",
		"rating":   4,
		"stock":    "7",
		"images":   []interface{}{"a.jpg", "b.jpg"},
	}
	p, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	if p.ID != 42 {
		t.Errorf("ID = %d, want 42", p.ID)
	}
	if p.Name != "Phone A" {
		t.Errorf("Name = %q, want Phone A", p.Name)
	}
	if p.Price != 99.95 {
		t.Errorf("Price = %v, want 99.95", p.Price)
	}
	if p.Stock != 7 {
		t.Errorf("Stock = %d, want 7", p.Stock)
	}
	if len(p.Images) != 2 || p.Images[0] != "a.jpg" {
		t.Errorf("Images = %v, want [a.jpg b.jpg]", p.Images)
	}
}

func TestFromMap_MissingName(t *testing.T) {
	if _, err := FromMap(map[string]interface{}{"id": 1}); err == nil {
		t.Error("FromMap without name: want error")
	}
}

func TestNormalize_Clamps(t *testing.T) {
	orig := -5.0
	p := Product{Name: "x", Price: -1, Stock: -2, Rating: 9, OriginalPrice: &orig}
	p.Normalize()
	if p.Price != 0 {
		t.Errorf("Price = %v, want 0", p.Price)
	}
	if p.Stock != 0 {
		t.Errorf("Stock = %d, want 0", p.Stock)
	}
	if p.Rating != 5 {
		t.Errorf("Rating = %v, want 5", p.Rating)
	}
	if p.OriginalPrice != nil {
		t.Error("negative OriginalPrice should be dropped")
	}
}
