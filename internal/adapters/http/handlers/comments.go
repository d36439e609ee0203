package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/articles-service/internal/app"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	service *app.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(service *app.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /api/v1/comments/
//
// @Summary List comments
// @Tags comments
// @Produce json
// @Param ordering query string false "created_at or -created_at"
// @Success 200 {object} dto.ListResponse[dto.CommentResponse]
// @Router /api/v1/comments/ [get]
func (h *CommentHandler) List(c *gin.Context) {
	var pq dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &pq); err != nil {
		dto.HandleError(c, err)
		return
	}

	var q dto.CommentQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleError(c, err)
		return
	}

	page := pq.Page()

	comments, total, err := h.service.List(c.Request.Context(), q.SortFields(), page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.MapSlice(comments, dto.NewCommentResponse), total, page))
}

// Get handles GET /api/v1/comments/:id/
//
// @Summary Retrieve a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/comments/{id}/ [get]
func (h *CommentHandler) Get(c *gin.Context) {
	id, err := pathID(c, "comment")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	cm, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(cm))
}

// Create handles POST /api/v1/comments/
//
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Param body body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/comments/ [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	cm, err := h.service.Create(c.Request.Context(), middleware.GetIdentity(c), req.ToInput())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCommentResponse(cm))
}

// Update handles PUT /api/v1/comments/:id/
func (h *CommentHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// Patch handles PATCH /api/v1/comments/:id/
func (h *CommentHandler) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *CommentHandler) update(c *gin.Context, partial bool) {
	id, err := pathID(c, "comment")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var req dto.CommentRequest
	if err := dto.BindJSON(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	cm, err := h.service.Update(c.Request.Context(), middleware.GetIdentity(c), id, req.ToInput(), partial)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCommentResponse(cm))
}

// Delete handles DELETE /api/v1/comments/:id/
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "comment")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.GetIdentity(c), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterCommentRoutes registers comment routes. Write routes pass
// through the given guards.
func (h *CommentHandler) RegisterCommentRoutes(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	comments := rg.Group("/comments")
	comments.GET("/", h.List)
	comments.GET("/:id/", h.Get)

	write := comments.Group("", writeGuards...)
	write.POST("/", h.Create)
	write.PUT("/:id/", h.Update)
	write.PATCH("/:id/", h.Patch)
	write.DELETE("/:id/", h.Delete)
}
