// Package search mirrors blogs into an Elasticsearch index and queries it.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

type blogSource struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type BlogIndex struct {
	ES   *elasticsearch.Client
	Name string
}

func NewBlogIndex(es *elasticsearch.Client, index string) *BlogIndex {
	return &BlogIndex{ES: es, Name: index}
}

// Index upserts b under its id.
func (i *BlogIndex) Index(ctx context.Context, b *entity.Blog) error {
	doc := blogSource{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: i.Name, DocumentID: b.ID, Body: strings.NewReader(string(body)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Delete removes the document; a missing document is not an error.
func (i *BlogIndex) Delete(ctx context.Context, id string) error {
	req := esapi.DeleteRequest{Index: i.Name, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es delete: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over title and author.
func (i *BlogIndex) Search(ctx context.Context, q string, size int) ([]entity.Blog, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "author"},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := i.ES.Search(i.ES.Search.WithContext(c), i.ES.Search.WithIndex(i.Name), i.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []entity.Blog{}, nil
		}
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string     `json:"_id"`
				Source blogSource `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Blog, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		s := h.Source
		if s.ID == "" {
			s.ID = h.ID
		}
		out = append(out, entity.Blog{ID: s.ID, Title: s.Title, Author: s.Author, URL: s.URL, Likes: s.Likes})
	}
	return out, nil
}
