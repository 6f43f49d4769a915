package catalog

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	catalogRepo "storefront.GO/model/repository/catalog"
	catalogService "storefront.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// RegisterCatalogRoutes mounts the paged product search and product detail
// endpoints. The query string is the criteria codec's representation, so a
// shared storefront URL is also a valid API call.
func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	repo := catalogRepo.NewProductRepository(db)

	apiGroup.GET("/products", func(c echo.Context) error {
		criteria := catalogService.DecodeValues(c.QueryParams())

		if res, ok := catalogService.CachedResult(criteria); ok {
			return c.JSON(http.StatusOK, res)
		}

		products, err := repo.FetchAll()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		res := catalogService.Search(products, criteria)
		catalogService.StoreResult(criteria, res)
		return c.JSON(http.StatusOK, res)
	})

	apiGroup.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		p, err := repo.FetchByID(uint(id))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if p == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, p)
	})
}
