package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	catalogEntity "storefront.GO/model/entity/catalog"
)

var (
	elasticSourceInstance *ElasticSource
	elasticSourceOnce     sync.Once
)

// GetElasticSource returns the singleton ElasticSource.
func GetElasticSource() *ElasticSource {
	elasticSourceOnce.Do(func() {
		elasticSourceInstance = NewElasticSource()
	})
	return elasticSourceInstance
}

// ElasticSource serves catalog queries from an Elasticsearch index. The same
// Criteria shape drives it: search term as multi_match, category/brand as
// term filters, price bounds as a range, sort keys mapped onto index fields.
type ElasticSource struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticSource() *ElasticSource {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		host = "http://localhost:9200"
	}
	index := os.Getenv("ELASTICSEARCH_INDEX")
	if index == "" {
		index = "storefront_catalog"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &ElasticSource{index: index}
	}

	return &ElasticSource{
		client: client,
		index:  index,
	}
}

func (s *ElasticSource) Search(ctx context.Context, c Criteria) (*Result, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}

	c.Normalize()
	from := (c.Page - 1) * c.PageSize

	var must []map[string]interface{}
	if c.Search != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  c.Search,
				"fields": []string{"name^3", "brand^2", "description"},
			},
		})
	} else {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	filter := []map[string]interface{}{
		{"range": map[string]interface{}{
			"price": map[string]interface{}{"gte": c.MinPrice, "lte": c.MaxPrice},
		}},
	}
	if c.Category != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"category.keyword": c.Category},
		})
	}
	if c.Brand != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"brand.keyword": c.Brand},
		})
	}

	body := map[string]interface{}{
		"from": from,
		"size": c.PageSize,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filter,
			},
		},
		"sort": sortClause(c.Sort),
	}

	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	items := make([]catalogEntity.Product, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		p, err := catalogEntity.FromMap(hit.Source)
		if err != nil {
			continue
		}
		items = append(items, *p)
	}

	return &Result{
		Items:      items,
		TotalCount: esResp.Hits.Total.Value,
		Page:       c.Page,
		PageSize:   c.PageSize,
	}, nil
}

// sortClause maps a sort key onto the index ordering. Rating ties break by
// name so remote ordering matches the in-memory engine.
func sortClause(key string) []map[string]interface{} {
	switch key {
	case SortPriceLow:
		return []map[string]interface{}{{"price": "asc"}}
	case SortPriceHigh:
		return []map[string]interface{}{{"price": "desc"}}
	case SortRating:
		return []map[string]interface{}{{"rating": "desc"}, {"name.keyword": "asc"}}
	default:
		return []map[string]interface{}{{"name.keyword": "asc"}}
	}
}
