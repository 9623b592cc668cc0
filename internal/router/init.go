package router

import (
	"github.com/chrsc3/BlogListBack/internal/container"
	handlers "github.com/chrsc3/BlogListBack/internal/interface/http"
	"github.com/chrsc3/BlogListBack/internal/router/modules"
)

// InitModules builds the handlers from the container and registers every
// feature module. Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	rdb := c.RateLimitClient()

	r.Add(modules.NewSystemModule(
		handlers.NewHealthHandler(c.Store.Driver, c.Store.Ping, c.Logger),
		rdb,
		c.Config.DebugMetricsEnabled,
	))
	r.Add(modules.NewBlogModule(handlers.NewBlogHandler(c.Blogs), rdb))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(c.Users), rdb))
}
