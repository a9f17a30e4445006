// internal/history/elasticsearch.go
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"skillmatch/internal/common/errors"
)

// Indexer mirrors analysis records into Elasticsearch for skill and role
// search across sessions.
type Indexer struct {
	client *elasticsearch.Client
	index  string
}

func NewIndexer(client *elasticsearch.Client, index string) *Indexer {
	if index == "" {
		index = "analysis-history"
	}
	return &Indexer{client: client, index: index}
}

func (i *Indexer) Index(ctx context.Context, r Record) error {
	body, _ := json.Marshal(r)
	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: r.ID,
		Body:       strings.NewReader(string(body)),
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return errors.NewHistoryWriteFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewHistoryWriteFailedError(fmt.Errorf("index failed: %s", res.Status()))
	}
	return nil
}

// SearchBySkill finds records whose skill set contains the given skill,
// newest first.
func (i *Indexer) SearchBySkill(ctx context.Context, skill string, size int) ([]Record, error) {
	if size <= 0 {
		size = 20
	}
	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{"skills": skill},
		},
		"sort": []interface{}{
			map[string]interface{}{"createdAt": map[string]interface{}{"order": "desc"}},
		},
		"size": size,
	}

	body, _ := json.Marshal(queryBody)
	req := esapi.SearchRequest{
		Index: []string{i.index},
		Body:  strings.NewReader(string(body)),
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return nil, errors.NewHistorySearchFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.NewHistorySearchFailedError(fmt.Errorf("search failed: %s", res.Status()))
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source Record `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.NewHistorySearchFailedError(err)
	}

	records := make([]Record, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		records = append(records, hit.Source)
	}
	return records, nil
}
