package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrsc3/BlogListBack/internal/domain/entity"
)

type recorded struct {
	Method string
	Path   string
	Body   string
}

func newFakeES(t *testing.T, status int, reply string) (*BlogIndex, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{Method: r.Method, Path: r.URL.Path, Body: string(b)})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewBlogIndex(es, "blogs"), &calls
}

func TestBlogIndex_Index(t *testing.T) {
	idx, calls := newFakeES(t, http.StatusCreated, `{"result":"created"}`)

	err := idx.Index(context.Background(), &entity.Blog{ID: "abc", Title: "Blog 1", Author: "Juan", URL: "sinUrl", Likes: 10})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, "/blogs/_doc/abc", call.Path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(call.Body), &doc))
	assert.Equal(t, "Blog 1", doc["title"])
	assert.EqualValues(t, 10, doc["likes"])
}

func TestBlogIndex_IndexErrorStatus(t *testing.T) {
	idx, _ := newFakeES(t, http.StatusBadRequest, `{"error":"bad"}`)

	err := idx.Index(context.Background(), &entity.Blog{ID: "abc", Title: "t", URL: "u"})
	assert.ErrorContains(t, err, "es index")
}

func TestBlogIndex_DeleteMissingIsNotAnError(t *testing.T) {
	idx, calls := newFakeES(t, http.StatusNotFound, `{"result":"not_found"}`)

	require.NoError(t, idx.Delete(context.Background(), "abc"))
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodDelete, (*calls)[0].Method)
	assert.Equal(t, "/blogs/_doc/abc", (*calls)[0].Path)
}

func TestBlogIndex_Search(t *testing.T) {
	reply := `{"hits":{"hits":[
		{"_id":"a1","_source":{"id":"a1","title":"Go tips","author":"Juan","url":"u1","likes":3}},
		{"_id":"b2","_source":{"title":"More Go","author":"Carlos","url":"u2","likes":0}}
	]}}`
	idx, calls := newFakeES(t, http.StatusOK, reply)

	blogs, err := idx.Search(context.Background(), "go", 10)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "a1", blogs[0].ID)
	assert.Equal(t, 3, blogs[0].Likes)
	assert.Equal(t, "b2", blogs[1].ID)

	require.Len(t, *calls, 1)
	assert.Equal(t, "/blogs/_search", (*calls)[0].Path)
	assert.Contains(t, (*calls)[0].Body, `"multi_match"`)
}

func TestBlogIndex_SearchMissingIndex(t *testing.T) {
	idx, _ := newFakeES(t, http.StatusNotFound, `{"error":{"type":"index_not_found_exception"}}`)

	blogs, err := idx.Search(context.Background(), "go", 10)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestNewClient_DisabledWithoutAddrs(t *testing.T) {
	es, err := NewClient(nil, "", "")
	require.NoError(t, err)
	assert.Nil(t, es)
}

func TestBlogIndex_EnsureIndexCreatesMissing(t *testing.T) {
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{Method: r.Method, Path: r.URL.Path, Body: string(b)})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"acknowledged":true}`)
	}))
	t.Cleanup(srv.Close)
	es, err := NewClient([]string{srv.URL}, "", "")
	require.NoError(t, err)

	require.NoError(t, NewBlogIndex(es, "blogs").EnsureIndex(context.Background()))
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodHead, calls[0].Method)
	assert.Equal(t, http.MethodPut, calls[1].Method)
	assert.Equal(t, "/blogs", calls[1].Path)
	assert.Contains(t, calls[1].Body, `"likes":  {"type": "integer"}`)
}

func TestBlogIndex_EnsureIndexExisting(t *testing.T) {
	idx, calls := newFakeES(t, http.StatusOK, ``)

	require.NoError(t, idx.EnsureIndex(context.Background()))
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodHead, (*calls)[0].Method)
}
