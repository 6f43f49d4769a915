package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	cartRepo "storefront.GO/model/repository/cart"
	catalogRepo "storefront.GO/model/repository/catalog"
	cartService "storefront.GO/service/cart"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// RegisterCartRoutes mounts the remote cart contract the sync controller
// drives: snapshot, per-item quantity set, per-item delete, one-call flush,
// and opaque order placement.
func RegisterCartRoutes(apiGroup *echo.Group, db *gorm.DB) {
	carts := cartRepo.NewCartRepository(db)
	products := catalogRepo.NewProductRepository(db)

	apiGroup.GET("/cart", func(c echo.Context) error {
		items, err := carts.Items()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		summary := cartService.Rounded(cartService.Aggregate(items, cartService.DefaultRules()))
		return c.JSON(http.StatusOK, echo.Map{
			"items":         items,
			"totalQuantity": summary.TotalQuantity,
			"totalPrice":    summary.Subtotal,
			"summary":       summary,
		})
	})

	apiGroup.PUT("/cart/items/:id", func(c echo.Context) error {
		productID, err := parseProductID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}

		var body struct {
			Quantity  int      `json:"quantity"`
			UnitPrice *float64 `json:"unitPrice"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
		}

		price, status, err := resolvePrice(carts, products, productID, body.UnitPrice)
		if err != nil {
			return c.JSON(status, echo.Map{"error": err.Error()})
		}
		if err := carts.SetQuantity(productID, price, body.Quantity); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	apiGroup.DELETE("/cart/items/:id", func(c echo.Context) error {
		productID, err := parseProductID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		if err := carts.Remove(productID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	apiGroup.DELETE("/cart", func(c echo.Context) error {
		if err := carts.Flush(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	apiGroup.POST("/orders", func(c echo.Context) error {
		var body struct {
			ProductID uint `json:"productId"`
			Quantity  int  `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be at least 1"})
		}
		p, err := products.FetchByID(body.ProductID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if p == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "orderId": uuid.NewString()})
	})
}

func parseProductID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id), err
}

// resolvePrice captures the unit price for an upsert: an explicit body price
// wins, an existing line item keeps its add-time price, otherwise the
// catalog price is captured now.
func resolvePrice(carts *cartRepo.CartRepository, products *catalogRepo.ProductRepository, productID uint, explicit *float64) (float64, int, error) {
	if explicit != nil && *explicit >= 0 {
		return *explicit, 0, nil
	}
	items, err := carts.Items()
	if err != nil {
		return 0, http.StatusInternalServerError, err
	}
	for _, it := range items {
		if it.ProductID == productID {
			return it.UnitPrice, 0, nil
		}
	}
	p, err := products.FetchByID(productID)
	if err != nil {
		return 0, http.StatusInternalServerError, err
	}
	if p == nil {
		return 0, http.StatusNotFound, errProductUnknown
	}
	return p.Price, 0, nil
}

var errProductUnknown = errors.New("product not found")
