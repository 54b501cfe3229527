package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

// ContentHandler serves the static destination and blog catalogs.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// Destinations lists points of interest for the activity map.
//
// @Summary      List destinations
// @Tags         content
// @Produce      json
// @Param        search    query    string  false  "Substring match on name or description"
// @Param        location  query    string  false  "Exact location match (case-insensitive)"
// @Success      200       {array}  domain.Destination
// @Router       /api/destinations [get]
func (h *ContentHandler) Destinations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Destinations(ports.CatalogFilter{
		Search:   c.QueryParam("search"),
		Location: c.QueryParam("location"),
	}))
}

// BlogPosts lists travel-blog entries.
//
// @Summary      List blog posts
// @Tags         content
// @Produce      json
// @Param        search  query    string  false  "Substring match on title or content"
// @Success      200     {array}  domain.BlogPost
// @Router       /api/blog [get]
func (h *ContentHandler) BlogPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.BlogPosts(c.QueryParam("search")))
}
