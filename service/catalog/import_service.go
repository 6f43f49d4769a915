package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
)

// ImportOptions configures a catalog import run.
type ImportOptions struct {
	BatchSize int
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows int
	Imported  int
	Skipped   int
	Warnings  []string
	TotalTime time.Duration
}

var csvColumns = map[string]bool{
	"id": true, "name": true, "brand": true, "category": true,
	"price": true, "originalprice": true, "rating": true, "stock": true,
	"images": true, "description": true,
}

// ImportCSV reads product rows from r and upserts them into the catalog.
// Expected header: id,name,brand,category,price,originalPrice,rating,stock,
// images,description (images pipe-separated). Unknown columns warn once and
// are ignored; rows without a name are skipped.
func ImportCSV(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	res := &ImportResult{}

	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(h))
		colIndex[h] = i
		if !csvColumns[h] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unknown column %q ignored", h))
		}
	}
	if _, ok := colIndex["name"]; !ok {
		return nil, fmt.Errorf("CSV is missing required column: name")
	}

	field := func(row []string, col string) string {
		i, ok := colIndex[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var products []catalogEntity.Product
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		res.TotalRows++

		name := field(row, "name")
		if name == "" {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: missing name, skipped", res.TotalRows))
			continue
		}

		p := catalogEntity.Product{
			Name:        name,
			Brand:       field(row, "brand"),
			Category:    field(row, "category"),
			Description: field(row, "description"),
		}
		if v := field(row, "id"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 64); err == nil {
				p.ID = uint(id)
			}
		}
		p.Price = parseFloatField(field(row, "price"), res, "price")
		if v := field(row, "originalprice"); v != "" {
			f := parseFloatField(v, res, "originalPrice")
			p.OriginalPrice = &f
		}
		p.Rating = parseFloatField(field(row, "rating"), res, "rating")
		if v := field(row, "stock"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				p.Stock = n
			}
		}
		if v := field(row, "images"); v != "" {
			p.Images = strings.Split(v, "|")
		}

		products = append(products, p)
	}

	if err := flushImport(db, products, opts, res); err != nil {
		return nil, err
	}
	res.TotalTime = time.Since(start)
	return res, nil
}

// ImportJSON reads a JSON array of loosely-typed product objects and upserts
// them, normalizing each through the canonical schema.
func ImportJSON(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	res := &ImportResult{}

	var raw []map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	var products []catalogEntity.Product
	for i, m := range raw {
		res.TotalRows++
		p, err := catalogEntity.FromMap(m)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("item %d: %v", i, err))
			continue
		}
		products = append(products, *p)
	}

	if err := flushImport(db, products, opts, res); err != nil {
		return nil, err
	}
	res.TotalTime = time.Since(start)
	return res, nil
}

func flushImport(db *gorm.DB, products []catalogEntity.Product, opts ImportOptions, res *ImportResult) error {
	repo := catalogRepo.NewProductRepository(db)
	if err := repo.Migrate(); err != nil {
		return err
	}
	if err := repo.UpsertBatch(products, opts.BatchSize); err != nil {
		return err
	}
	res.Imported = len(products)
	return nil
}

func parseFloatField(raw string, res *ImportResult, col string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("bad %s value %q, using 0", col, raw))
		return 0
	}
	return f
}
