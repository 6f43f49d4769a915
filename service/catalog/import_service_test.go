package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	catalogRepo "storefront.GO/model/repository/catalog"
)

func importTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("catalog_import_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestImportCSV(t *testing.T) {
	db := importTestDB(t)
	csvData := `id,name,brand,category,price,originalPrice,rating,stock,images,color,description
1,Phone A,Acme,electronics,499.00,599.00,4.5,10,a.jpg|b.jpg,red,Flagship phone
2,,NoName,electronics,10,,1,5,,,skipped row
3,Desk Lamp,Lumen,home,25,,3.9,40,lamp.jpg,,Warm light
`
	res, err := ImportCSV(db, strings.NewReader(csvData), ImportOptions{BatchSize: 100})
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.TotalRows != 3 || res.Imported != 2 || res.Skipped != 1 {
		t.Errorf("counters: rows=%d imported=%d skipped=%d", res.TotalRows, res.Imported, res.Skipped)
	}
	// One warning for the unknown "color" column, one for the skipped row.
	if len(res.Warnings) != 2 {
		t.Errorf("warnings = %v", res.Warnings)
	}

	repo := catalogRepo.NewProductRepository(db)
	repo.InvalidateSnapshot()
	products, err := repo.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("stored products = %d, want 2", len(products))
	}
	found := false
	for i := range products {
		if products[i].Name != "Phone A" {
			continue
		}
		found = true
		if len(products[i].Images) != 2 {
			t.Errorf("images = %d, want 2 (pipe-split)", len(products[i].Images))
		}
		if products[i].OriginalPrice == nil || *products[i].OriginalPrice != 599 {
			t.Errorf("originalPrice = %v, want 599", products[i].OriginalPrice)
		}
	}
	if !found {
		t.Fatal("Phone A not imported")
	}
}

func TestImportCSV_MissingNameColumn(t *testing.T) {
	db := importTestDB(t)
	_, err := ImportCSV(db, strings.NewReader("id,price\n1,10\n"), ImportOptions{})
	if err == nil {
		t.Fatal("expected error for missing name column")
	}
}

func TestImportJSON(t *testing.T) {
	db := importTestDB(t)
	// Loosely typed payload: string price, float stock.
	jsonData := `[
		{"id": 1, "name": "Phone A", "price": "499.00", "stock": 10.0, "rating": 4.5},
		{"id": 2, "price": 20},
		{"id": 3, "name": "Desk Lamp", "price": 25, "rating": 9}
	]`
	res, err := ImportJSON(db, strings.NewReader(jsonData), ImportOptions{})
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if res.TotalRows != 3 || res.Imported != 2 || res.Skipped != 1 {
		t.Errorf("counters: rows=%d imported=%d skipped=%d", res.TotalRows, res.Imported, res.Skipped)
	}

	repo := catalogRepo.NewProductRepository(db)
	repo.InvalidateSnapshot()
	products, _ := repo.FetchAll()
	for _, p := range products {
		if p.Name == "Phone A" && p.Price != 499 {
			t.Errorf("string price not coerced: %v", p.Price)
		}
		if p.Name == "Desk Lamp" && p.Rating != 5 {
			t.Errorf("rating not clamped to 5: %v", p.Rating)
		}
	}
}

func TestImportCSV_UpsertOverwritesExisting(t *testing.T) {
	db := importTestDB(t)
	first := "id,name,price\n7,Old Name,10\n"
	if _, err := ImportCSV(db, strings.NewReader(first), ImportOptions{}); err != nil {
		t.Fatalf("first import: %v", err)
	}
	second := "id,name,price\n7,New Name,12\n"
	if _, err := ImportCSV(db, strings.NewReader(second), ImportOptions{}); err != nil {
		t.Fatalf("second import: %v", err)
	}

	repo := catalogRepo.NewProductRepository(db)
	p, err := repo.FetchByID(7)
	if err != nil || p == nil {
		t.Fatalf("FetchByID: %v %v", p, err)
	}
	if p.Name != "New Name" || p.Price != 12 {
		t.Errorf("upsert did not overwrite: %+v", p)
	}
	if n, _ := repo.Count(); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}
