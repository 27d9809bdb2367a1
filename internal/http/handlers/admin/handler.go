package admin

import "github.com/flipzokart/api/internal/provider"

// Handler serves the admin panel endpoints. Every route behind it sits
// behind the permission middleware.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
