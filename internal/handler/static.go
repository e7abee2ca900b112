package handler

import (
	"economy-quiz/internal/web"

	"github.com/gofiber/fiber/v2"
)

// StaticHandler serves the embedded front end
type StaticHandler struct {
	assets *web.Assets
}

// NewStaticHandler creates a new StaticHandler instance
func NewStaticHandler(assets *web.Assets) *StaticHandler {
	return &StaticHandler{assets: assets}
}

// Index serves the landing page.
func (h *StaticHandler) Index(c *fiber.Ctx) error {
	page := h.assets.Index()
	c.Set(fiber.HeaderContentType, page.ContentType)
	return c.Send(page.Body)
}

// Asset serves /static/*.
func (h *StaticHandler) Asset(c *fiber.Ctx) error {
	asset, ok := h.assets.Static(c.Params("*"))
	if !ok {
		return fiber.ErrNotFound
	}
	c.Set(fiber.HeaderContentType, asset.ContentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(asset.Body)
}
