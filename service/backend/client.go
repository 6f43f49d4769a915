package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront.GO/config"
	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

// Client speaks the commerce backend's REST contracts: paged product search,
// cart snapshot and mutations, opaque order placement. It satisfies
// catalog.Lister and the cart sync controller's Backend interface.
type Client struct {
	base  string
	token string
	hc    *http.Client
}

// NewClient builds a client for base (config.BackendBaseURL when empty).
func NewClient(base, token string) *Client {
	if base == "" {
		base = config.BackendBaseURL()
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		hc:    &http.Client{Timeout: 10 * time.Second},
	}
}

// do issues one request and decodes the JSON response into out (when non-nil).
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Op: op, Err: err}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{Kind: KindUnauthorized, Op: op, Status: resp.StatusCode}
	case resp.StatusCode >= 400:
		return &Error{Kind: KindServer, Op: op, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindServer, Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

// ListProducts serializes criteria into query parameters and returns the
// remote page. The remote items and total count are authoritative.
func (c *Client) ListProducts(ctx context.Context, cr catalog.Criteria) (*catalog.Result, error) {
	var raw struct {
		Items      []map[string]interface{} `json:"items"`
		TotalCount int                      `json:"totalCount"`
	}
	if err := c.do(ctx, "listProducts", http.MethodGet, "/products", catalog.EncodeValues(cr), nil, &raw); err != nil {
		return nil, err
	}
	items := make([]catalogEntity.Product, 0, len(raw.Items))
	for _, m := range raw.Items {
		p, err := catalogEntity.FromMap(m)
		if err != nil {
			continue
		}
		items = append(items, *p)
	}
	return &catalog.Result{
		Items:      items,
		TotalCount: raw.TotalCount,
		Page:       cr.Page,
		PageSize:   cr.PageSize,
	}, nil
}

// FetchCart returns the full normalized remote cart snapshot.
func (c *Client) FetchCart(ctx context.Context) ([]cartEntity.LineItem, error) {
	var raw struct {
		Items []map[string]interface{} `json:"items"`
	}
	if err := c.do(ctx, "fetchCart", http.MethodGet, "/cart", nil, nil, &raw); err != nil {
		return nil, err
	}
	items := make([]cartEntity.LineItem, 0, len(raw.Items))
	for _, m := range raw.Items {
		it, err := cartEntity.LineItemFromMap(m)
		if err != nil {
			continue
		}
		items = append(items, *it)
	}
	return items, nil
}

// UpdateItemQuantity sets one line item's quantity.
func (c *Client) UpdateItemQuantity(ctx context.Context, productID uint, quantity int) error {
	body := map[string]interface{}{"quantity": quantity}
	return c.do(ctx, "updateCartItemQuantity", http.MethodPut, fmt.Sprintf("/cart/items/%d", productID), nil, body, nil)
}

// RemoveItem deletes one line item.
func (c *Client) RemoveItem(ctx context.Context, productID uint) error {
	return c.do(ctx, "removeCartItem", http.MethodDelete, fmt.Sprintf("/cart/items/%d", productID), nil, nil, nil)
}

// FlushCart empties the remote cart in one call.
func (c *Client) FlushCart(ctx context.Context) error {
	return c.do(ctx, "flushCart", http.MethodDelete, "/cart", nil, nil, nil)
}

// PlaceOrder submits an order. Checkout and payment are the backend's
// business; this call is opaque.
func (c *Client) PlaceOrder(ctx context.Context, productID uint, quantity int) error {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	return c.do(ctx, "placeOrder", http.MethodPost, "/orders", nil, body, nil)
}
