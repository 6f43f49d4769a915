package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
)

func catalogTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("catalog_api_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := catalogRepo.NewProductRepository(db)
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	err = repo.UpsertBatch([]catalogEntity.Product{
		{ID: 1, Name: "Phone A", Brand: "Acme", Category: "electronics", Price: 499, Rating: 4.5},
		{ID: 2, Name: "Phone B", Brand: "Bolt", Category: "electronics", Price: 59, Rating: 4.1},
		{ID: 3, Name: "Desk Lamp", Brand: "Lumen", Category: "home", Price: 25, Rating: 3.9},
	}, 100)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Snapshot and search caches are process-global.
	repo.InvalidateSnapshot()
	t.Cleanup(repo.InvalidateSnapshot)

	e := echo.New()
	RegisterCatalogRoutes(e.Group("/api"), db)
	return e
}

type productPage struct {
	Items      []catalogEntity.Product `json:"items"`
	TotalCount int                     `json:"totalCount"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
}

func getPage(t *testing.T, e *echo.Echo, target string) productPage {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d, body %s", target, rec.Code, rec.Body.String())
	}
	var page productPage
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return page
}

func TestProductsEndpoint_QueryStringIsCriteria(t *testing.T) {
	e := catalogTestServer(t)

	page := getPage(t, e, "/api/products")
	if page.TotalCount != 3 || page.Page != 1 {
		t.Errorf("unfiltered: %+v", page)
	}
	// Default sort is name ascending.
	if page.Items[0].Name != "Desk Lamp" {
		t.Errorf("order: first = %q", page.Items[0].Name)
	}

	page = getPage(t, e, "/api/products?search=phone&sort=price-low")
	if page.TotalCount != 2 || page.Items[0].ID != 2 {
		t.Errorf("filtered: %+v", page)
	}

	page = getPage(t, e, "/api/products?category=home")
	if page.TotalCount != 1 || page.Items[0].ID != 3 {
		t.Errorf("category: %+v", page)
	}

	// Malformed values clamp rather than fail.
	page = getPage(t, e, "/api/products?minPrice=-4&sort=bogus&page=0")
	if page.TotalCount != 3 || page.Page != 1 {
		t.Errorf("malformed query: %+v", page)
	}
}

func TestProductsEndpoint_EmptyMatchIsOK(t *testing.T) {
	e := catalogTestServer(t)
	page := getPage(t, e, "/api/products?search=nothing-here")
	if page.TotalCount != 0 || len(page.Items) != 0 {
		t.Errorf("got %+v", page)
	}
}

func TestProductDetailEndpoint(t *testing.T) {
	e := catalogTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var p catalogEntity.Product
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.ID != 1 || p.Name != "Phone A" {
		t.Errorf("product: %+v", p)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing: status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid id: status %d", rec.Code)
	}
}
