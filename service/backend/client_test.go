package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront.GO/service/catalog"
)

func TestClient_ListProducts(t *testing.T) {
	var gotQuery string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		// Loosely typed payload: string price, float stock.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": 1, "name": "Phone A", "price": "499.00", "stock": 10.0},
				{"id": 2, "price": 5}, // nameless, dropped
			},
			"totalCount": 37,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok123")
	cr := catalog.DefaultCriteria()
	cr.Search = "phone"
	cr.Page = 2

	res, err := c.ListProducts(context.Background(), cr)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotQuery != "page=2&search=phone" {
		t.Errorf("query = %q", gotQuery)
	}
	if res.TotalCount != 37 || res.Page != 2 {
		t.Errorf("result meta: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Price != 499 {
		t.Errorf("items: %+v", res.Items)
	}
}

func TestClient_FetchCartNormalizesLooseItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"productId": "3", "price": 19.99, "quantity": 2.0},
				{"productId": 4, "unitPrice": 5, "quantity": 0}, // invalid quantity, dropped
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	items, err := c.FetchCart(context.Background())
	if err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %+v", items)
	}
	if items[0].ProductID != 3 || items[0].UnitPrice != 19.99 || items[0].Quantity != 2 {
		t.Errorf("item = %+v", items[0])
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "")

	err := c.FlushCart(context.Background())
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindUnauthorized {
		t.Errorf("401: got %v", err)
	}
	if !IsUnauthorized(err) {
		t.Error("IsUnauthorized(401) = false")
	}

	status = http.StatusInternalServerError
	err = c.FlushCart(context.Background())
	if !errors.As(err, &be) || be.Kind != KindServer || be.Status != 500 {
		t.Errorf("500: got %v", err)
	}

	// Unreachable server.
	srv.Close()
	err = c.FlushCart(context.Background())
	if !errors.As(err, &be) || be.Kind != KindNetwork {
		t.Errorf("network: got %v", err)
	}
}

func TestClient_MutationVerbsAndPaths(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.Write([]byte("{}"))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "")
	ctx := context.Background()

	c.UpdateItemQuantity(ctx, 7, 3)
	c.RemoveItem(ctx, 7)
	c.FlushCart(ctx)
	c.PlaceOrder(ctx, 7, 1)

	want := []call{
		{"PUT", "/cart/items/7"},
		{"DELETE", "/cart/items/7"},
		{"DELETE", "/cart"},
		{"POST", "/orders"},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}
