package graphqlserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"storefront.GO/graphql"
	"storefront.GO/graphql/registry"
	catalogEntity "storefront.GO/model/entity/catalog"
	cartRepo "storefront.GO/model/repository/cart"
	catalogRepo "storefront.GO/model/repository/catalog"
	cartService "storefront.GO/service/cart"
	catalogService "storefront.GO/service/catalog"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{db: r.DB}
}

// QueryResolver implements Query fields over the catalog engine and the cart
// aggregator.
type QueryResolver struct {
	db *gorm.DB
}

// --- GraphQL models (field resolvers) ---

type Product struct {
	ID            gql.ID
	Name          string
	Brand         string
	Category      string
	Price         float64
	OriginalPrice *float64
	Rating        float64
	Stock         int32
	Images        []string
	Description   string
}

type ProductPage struct {
	Items      []*Product
	TotalCount int32
	Page       int32
	PageSize   int32
}

type CartItem struct {
	ProductID gql.ID
	UnitPrice float64
	Quantity  int32
}

type Cart struct {
	Items         []*CartItem
	TotalQuantity int32
	Subtotal      float64
	Shipping      float64
	Tax           float64
	GrandTotal    float64
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Search   *string
	Category *string
	Brand    *string
	MinPrice *float64
	MaxPrice *float64
	Sort     *string
	Page     *int32
}

func (r *QueryResolver) Products(ctx context.Context, args ProductsArgs) (*ProductPage, error) {
	criteria := catalogService.DefaultCriteria()
	if args.Search != nil {
		criteria.Search = *args.Search
	}
	if args.Category != nil {
		criteria.Category = *args.Category
	}
	if args.Brand != nil {
		criteria.Brand = *args.Brand
	}
	if args.MinPrice != nil {
		criteria.MinPrice = *args.MinPrice
	}
	if args.MaxPrice != nil {
		criteria.MaxPrice = *args.MaxPrice
	}
	if args.Sort != nil {
		criteria.Sort = *args.Sort
	}
	if args.Page != nil {
		criteria.Page = int(*args.Page)
	}

	products, err := catalogRepo.NewProductRepository(r.db).FetchAll()
	if err != nil {
		return nil, err
	}
	res := catalogService.Search(products, criteria)

	items := make([]*Product, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, productModel(&res.Items[i]))
	}
	return &ProductPage{
		Items:      items,
		TotalCount: int32(res.TotalCount),
		Page:       int32(res.Page),
		PageSize:   int32(res.PageSize),
	}, nil
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID gql.ID
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*Product, error) {
	id, err := strconv.ParseUint(string(args.ID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q", string(args.ID))
	}
	p, err := catalogRepo.NewProductRepository(r.db).FetchByID(uint(id))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return productModel(p), nil
}

func (r *QueryResolver) Cart(ctx context.Context) (*Cart, error) {
	items, err := cartRepo.NewCartRepository(r.db).Items()
	if err != nil {
		return nil, err
	}
	summary := cartService.Rounded(cartService.Aggregate(items, cartService.DefaultRules()))

	out := make([]*CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, &CartItem{
			ProductID: gql.ID(strconv.FormatUint(uint64(it.ProductID), 10)),
			UnitPrice: it.UnitPrice,
			Quantity:  int32(it.Quantity),
		})
	}
	return &Cart{
		Items:         out,
		TotalQuantity: int32(summary.TotalQuantity),
		Subtotal:      summary.Subtotal,
		Shipping:      summary.Shipping,
		Tax:           summary.Tax,
		GrandTotal:    summary.GrandTotal,
	}, nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func productModel(p *catalogEntity.Product) *Product {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return &Product{
		ID:            gql.ID(strconv.FormatUint(uint64(p.ID), 10)),
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Rating:        p.Rating,
		Stock:         int32(p.Stock),
		Images:        images,
		Description:   p.Description,
	}
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
