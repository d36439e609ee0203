package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/app"
)

// CatalogHandler serves the read-only author and tag collections.
type CatalogHandler struct {
	service *app.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service *app.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListAuthors handles GET /api/v1/authors/
func (h *CatalogHandler) ListAuthors(c *gin.Context) {
	var pq dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &pq); err != nil {
		dto.HandleError(c, err)
		return
	}

	page := pq.Page()

	authors, total, err := h.service.ListAuthors(c.Request.Context(), page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.MapSlice(authors, dto.AuthorResponse), total, page))
}

// GetAuthor handles GET /api/v1/authors/:id/
func (h *CatalogHandler) GetAuthor(c *gin.Context) {
	id, err := pathID(c, "author")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	a, err := h.service.GetAuthor(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorResponse(a))
}

// ListTags handles GET /api/v1/tags/
func (h *CatalogHandler) ListTags(c *gin.Context) {
	var pq dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &pq); err != nil {
		dto.HandleError(c, err)
		return
	}

	page := pq.Page()

	tags, total, err := h.service.ListTags(c.Request.Context(), page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.MapSlice(tags, dto.TagResponse), total, page))
}

// GetTag handles GET /api/v1/tags/:id/
func (h *CatalogHandler) GetTag(c *gin.Context) {
	id, err := pathID(c, "tag")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	t, err := h.service.GetTag(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TagResponse(t))
}

// RegisterCatalogRoutes registers the author and tag routes.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors/", h.ListAuthors)
	rg.GET("/authors/:id/", h.GetAuthor)
	rg.GET("/tags/", h.ListTags)
	rg.GET("/tags/:id/", h.GetTag)
}
