package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/articles-service/internal/app"
	"github.com/jsamuelsen/articles-service/internal/domain"
)

const (
	exportFilename    = "articles.csv"
	exportContentType = "text/csv; charset=utf-8"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	service *app.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(service *app.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List handles GET /api/v1/articles/
//
// @Summary List articles
// @Tags articles
// @Produce json
// @Param year query int false "Publication year"
// @Param month query int false "Publication month"
// @Param author query string false "Comma-separated author names"
// @Param tag query string false "Comma-separated tag names"
// @Param keyword query string false "Substring of title or abstract"
// @Param search query string false "Terms that must all match"
// @Param ordering query string false "e.g. -publication_date,title"
// @Success 200 {object} dto.ListResponse[dto.ArticleResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/articles/ [get]
func (h *ArticleHandler) List(c *gin.Context) {
	var pq dto.PageQuery
	if err := dto.BindQueryAndValidate(c, &pq); err != nil {
		dto.HandleError(c, err)
		return
	}

	filter, err := articleFilter(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	// The identifier allow-list belongs to export only.
	filter.Identifiers = nil

	page := pq.Page()

	articles, total, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.MapSlice(articles, dto.NewArticleResponse), total, page))
}

// Get handles GET /api/v1/articles/:id/
//
// @Summary Retrieve an article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/articles/{id}/ [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := pathID(c, "article")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewArticleResponse(a))
}

// Create handles POST /api/v1/articles/
//
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param body body dto.ArticleRequest true "Article"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/v1/articles/ [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	in, err := bindArticle(c, false)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), middleware.GetIdentity(c), in)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewArticleResponse(a))
}

// Update handles PUT /api/v1/articles/:id/
//
// @Summary Replace an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param body body dto.ArticleRequest true "Article"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/articles/{id}/ [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	h.update(c, false)
}

// Patch handles PATCH /api/v1/articles/:id/
//
// @Summary Partially update an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param body body dto.ArticleRequest true "Fields to change"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/articles/{id}/ [patch]
func (h *ArticleHandler) Patch(c *gin.Context) {
	h.update(c, true)
}

func (h *ArticleHandler) update(c *gin.Context, partial bool) {
	id, err := pathID(c, "article")
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	in, err := bindArticle(c, partial)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), middleware.GetIdentity(c), id, in, partial)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewArticleResponse(a))
}

// Delete handles DELETE /api/v1/articles/:id/
//
// @Summary Delete an article and its comments
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/articles/{id}/ [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "article")
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

// Export handles GET /api/v1/articles/export/
// The whole document is rendered before anything is sent so a failure can
// still be reported as a JSON error.
//
// @Summary Export articles as CSV
// @Tags articles
// @Produce text/csv
// @Param ids query string false "Comma-separated identifiers"
// @Success 200 {file} file
// @Router /api/v1/articles/export/ [get]
func (h *ArticleHandler) Export(c *gin.Context) {
	filter, err := articleFilter(c)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if _, err := h.service.Export(c.Request.Context(), filter, &buf); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, exportContentType, buf.Bytes())
}

// RegisterArticleRoutes registers article routes. Write routes pass
// through the given guards, which run after the group's middleware.
func (h *ArticleHandler) RegisterArticleRoutes(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	articles := rg.Group("/articles")
	articles.GET("/", h.List)
	articles.GET("/export/", h.Export)
	articles.GET("/:id/", h.Get)

	write := articles.Group("", writeGuards...)
	write.POST("/", h.Create)
	write.PUT("/:id/", h.Update)
	write.PATCH("/:id/", h.Patch)
	write.DELETE("/:id/", h.Delete)
}

func articleFilter(c *gin.Context) (domain.ArticleFilter, error) {
	var q dto.ArticleQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		return domain.ArticleFilter{}, err
	}

	return q.Filter()
}

// bindArticle decodes an article body. Decoding problems are reported
// together with the field checks the service would run, so the caller sees
// every problem at once.
func bindArticle(c *gin.Context, partial bool) (domain.ArticleInput, error) {
	var req dto.ArticleRequest
	if err := dto.BindJSON(c, &req); err != nil {
		return domain.ArticleInput{}, err
	}

	in, problems := req.ToInput()
	if len(problems) > 0 {
		fields := dto.MergeFields(problems, domain.ValidateArticleInput(in, partial))
		return domain.ArticleInput{}, domain.NewFieldsValidationError(fields)
	}

	return in, nil
}

// pathID parses the :id parameter. A non-numeric id cannot name a stored
// row, so it is reported as not found.
func pathID(c *gin.Context, entity string) (int64, error) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewNotFoundError(entity, raw)
	}

	return id, nil
}
