// Package search keeps the menu_items index in sync with the catalog
// and serves the public full-text menu search.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/alwaha/restaurant-backend/internal/models"
)

// Query builds the multi_match body over both language columns.
func Query(q string, from, size int) map[string]interface{} {
	return map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    []string{"name_en^2", "name_ar^2", "description_en", "description_ar"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}
}

func Search(ctx context.Context, esc *elasticsearch.Client, index, q string, from, size int) (int64, []models.MenuItem, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(Query(q, from, size)); err != nil {
		return 0, nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := esc.Search(
		esc.Search.WithContext(ctx),
		esc.Search.WithIndex(index),
		esc.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.MenuItem `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	items := make([]models.MenuItem, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		items[i] = hit.Source
	}
	return r.Hits.Total.Value, items, nil
}

func IndexMenuItem(ctx context.Context, esc *elasticsearch.Client, index string, item models.MenuItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("search: marshal menu item: %w", err)
	}

	res, err := esc.Index(
		index,
		bytes.NewReader(data),
		esc.Index.WithContext(ctx),
		esc.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
		esc.Index.WithRefresh("false"),
	)
	if err != nil {
		return fmt.Errorf("search: index menu item %d: %w", item.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search: index menu item %d: %s", item.ID, res.Status())
	}
	return nil
}

func DeleteMenuItem(ctx context.Context, esc *elasticsearch.Client, index string, id uint) error {
	res, err := esc.Delete(
		index,
		strconv.FormatUint(uint64(id), 10),
		esc.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: delete menu item %d: %w", id, err)
	}
	defer res.Body.Close()

	// 404 just means the document was never indexed.
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete menu item %d: %s", id, res.Status())
	}
	return nil
}
