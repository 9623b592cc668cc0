package container

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrsc3/BlogListBack/config"
	"github.com/chrsc3/BlogListBack/internal/application"
	"github.com/chrsc3/BlogListBack/internal/infrastructure/store"
	"github.com/chrsc3/BlogListBack/pkg/helpers"
)

func TestNew_OptionalBackendsOff(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverMemory, RateLimitEnabled: true}
	c := New(cfg, helpers.NewNopLogger(), store.NewMemory(), nil, nil, nil)

	assert.Nil(t, c.Index)
	assert.Nil(t, c.Blogs.Index)
	assert.Nil(t, c.Blogs.Events)
	assert.Nil(t, c.Users.Events)
	assert.Nil(t, c.RateLimitClient())

	ctx := context.Background()
	b, err := c.Blogs.Create(ctx, application.CreateBlogInput{Title: "t", URL: "u"})
	require.NoError(t, err)
	blogs, err := c.Blogs.Search(ctx, b.Title, 5)
	require.NoError(t, err)
	assert.Empty(t, blogs)

	c.Close(ctx)
}

func TestNew_WiresIndexAndRedis(t *testing.T) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{"http://127.0.0.1:1"}})
	require.NoError(t, err)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{DBDriver: config.DriverMemory, ESBlogsIndex: "blogs", RateLimitEnabled: true}
	c := New(cfg, helpers.NewNopLogger(), store.NewMemory(), rdb, es, nil)

	require.NotNil(t, c.Index)
	assert.Equal(t, "blogs", c.Index.Name)
	assert.NotNil(t, c.Blogs.Index)
	assert.Same(t, rdb, c.RateLimitClient())

	cfg.RateLimitEnabled = false
	assert.Nil(t, c.RateLimitClient())

	c.Close(context.Background())
}
