package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/articles-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/articles-service/internal/adapters/storage"
	"github.com/jsamuelsen/articles-service/internal/app"
	"github.com/jsamuelsen/articles-service/internal/platform/config"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  5 * time.Second,
		MaxRequestSize:  1 << 20,
	}
}

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
}

// newTestAPI wires the full stack over a temporary SQLite database.
func newTestAPI(t *testing.T, limiter *middleware.RateLimiter) *testAPI {
	t.Helper()

	db, err := storage.Open(context.Background(), storage.Config{
		Driver:      storage.DriverSQLite,
		DSN:         filepath.Join(t.TempDir(), "api.db"),
		AutoMigrate: true,
		LogLevel:    "silent",
		Logger:      discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewDomainMetrics(reg)
	require.NoError(t, err)

	registry := ports.NewHealthRegistry(time.Second)
	require.NoError(t, registry.Register(db))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		ServiceName: "articles-service",
		Auth:        &config.AuthConfig{SubjectHeader: "X-User-ID"},
		Server:      testServerConfig(),
		HealthHandler: handlers.NewHealthHandler(handlers.HealthHandlerConfig{
			Registry: registry,
			Build:    handlers.NewBuildInfo("articles-service", "test", "none", "unknown"),
			Gatherer: reg,
		}),
		ArticleHandler: handlers.NewArticleHandler(app.NewArticleService(app.ArticleServiceConfig{
			Articles: db.Articles(),
			Recorder: metrics,
			Logger:   discard,
		})),
		CommentHandler: handlers.NewCommentHandler(app.NewCommentService(app.CommentServiceConfig{
			Comments: db.Comments(),
			Recorder: metrics,
			Logger:   discard,
		})),
		CatalogHandler:    handlers.NewCatalogHandler(app.NewCatalogService(db.Catalog())),
		RateLimiter:       limiter,
		RateLimitObserver: metrics,
	})

	return &testAPI{t: t, engine: engine}
}

func (a *testAPI) do(method, path, user string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	return w
}

func (a *testAPI) createArticle(user, identifier, date string, authors []string) dto.ArticleResponse {
	a.t.Helper()

	body := map[string]any{
		"identifier":       identifier,
		"publication_date": date,
		"title":            "Title " + identifier,
		"abstract":         "Abstract of " + identifier,
	}
	if authors != nil {
		body["authors"] = authors
	}

	w := a.do(http.MethodPost, "/api/v1/articles/", user, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ArticleResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func names(refs []dto.NamedRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}

	return out
}

func TestAPI_AuthorLinks(t *testing.T) {
	api := newTestAPI(t, nil)

	first := api.createArticle("alice", "ART-1", "2024-01-15", []string{"B", "A", "B"})
	assert.Equal(t, []string{"B", "A"}, names(first.AuthorsDetail))
	assert.Equal(t, "alice", first.CreatedBy)

	second := api.createArticle("alice", "ART-2", "2024-02-01", []string{"A"})
	require.Len(t, second.AuthorsDetail, 1)
	assert.Equal(t, first.AuthorsDetail[1].ID, second.AuthorsDetail[0].ID, "names resolve to existing rows")

	path := fmt.Sprintf("/api/v1/articles/%d/", first.ID)

	w := api.do(http.MethodPatch, path, "alice", map[string]any{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"B", "A"}, names(decode[dto.ArticleResponse](t, w).AuthorsDetail), "omitted authors keep links")

	w = api.do(http.MethodPatch, path, "alice", map[string]any{"authors": []string{}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.ArticleResponse](t, w).AuthorsDetail)

	w = api.do(http.MethodGet, "/api/v1/authors/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), decode[dto.ListResponse[dto.NamedRef]](t, w).Count, "author rows outlive their links")
}

func TestAPI_Filters(t *testing.T) {
	api := newTestAPI(t, nil)

	api.createArticle("alice", "ART-1", "2024-01-15", []string{"Ada"})
	api.createArticle("alice", "ART-2", "2024-03-15", []string{"Grace"})
	api.createArticle("alice", "ART-3", "2023-01-10", nil)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "year=2024&ordering=identifier", want: []string{"ART-1", "ART-2"}},
		{query: "month=1&ordering=-identifier", want: []string{"ART-3", "ART-1"}},
		{query: "year=2024&month=1", want: []string{"ART-1"}},
		{query: "author=Grace,Ada&ordering=identifier", want: []string{"ART-1", "ART-2"}},
		{query: "keyword=abstract%20of%20art-3", want: []string{"ART-3"}},
		{query: "search=ART-2,title", want: []string{"ART-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := api.do(http.MethodGet, "/api/v1/articles/?"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[dto.ListResponse[dto.ArticleResponse]](t, w)

			got := make([]string, 0, len(resp.Results))
			for _, a := range resp.Results {
				got = append(got, a.Identifier)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(len(tt.want)), resp.Count)
		})
	}
}

func TestAPI_Ownership(t *testing.T) {
	api := newTestAPI(t, nil)

	a := api.createArticle("alice", "ART-1", "2024-01-15", nil)
	path := fmt.Sprintf("/api/v1/articles/%d/", a.ID)

	w := api.do(http.MethodPatch, path, "bob", map[string]any{"title": "Mine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodDelete, path, "bob", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You can only delete your own articles.", decode[dto.ErrorResponse](t, w).Error.Message)

	w = api.do(http.MethodDelete, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodDelete, "/api/v1/articles/999/", "bob", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/-/metrics", "", nil)
	assert.Contains(t, w.Body.String(), `articles_writes_total{entity="article",operation="delete",outcome="forbidden"} 1`)
	assert.Contains(t, w.Body.String(), `articles_writes_total{entity="article",operation="delete",outcome="not_found"} 1`)
}

func TestAPI_DeleteCascades(t *testing.T) {
	api := newTestAPI(t, nil)

	a := api.createArticle("alice", "ART-1", "2024-01-15", []string{"Ada"})

	w := api.do(http.MethodPost, "/api/v1/comments/", "bob", map[string]any{"article_id": a.ID, "body": "Nice."})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	comment := decode[dto.CommentResponse](t, w)
	assert.Equal(t, "bob", comment.Author)

	w = api.do(http.MethodDelete, fmt.Sprintf("/api/v1/articles/%d/", a.ID), "alice", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/comments/%d/", comment.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/authors/%d/", a.AuthorsDetail[0].ID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPI_Export(t *testing.T) {
	api := newTestAPI(t, nil)

	api.createArticle("alice", "X", "2024-01-15", []string{"Ada", "Grace"})
	api.createArticle("alice", "Y", "2024-02-15", nil)
	api.createArticle("alice", "Z", "2024-03-15", nil)

	w := api.do(http.MethodGet, "/api/v1/articles/export/?ids=X,Y&ordering=identifier", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, strings.Join([]string{
		"identifier,publication_date,title,abstract,authors,tags",
		`X,2024-01-15,Title X,Abstract of X,"Ada, Grace",`,
		"Y,2024-02-15,Title Y,Abstract of Y,,",
		"",
	}, "\r\n"), w.Body.String())
}

func TestAPI_RateLimit(t *testing.T) {
	api := newTestAPI(t, middleware.NewRateLimiter(0.001, 1))

	api.createArticle("alice", "ART-1", "2024-01-15", nil)

	w := api.do(http.MethodPost, "/api/v1/articles/", "alice", map[string]any{})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrorCodeRateLimited, decode[dto.ErrorResponse](t, w).Error.Code)

	w = api.do(http.MethodGet, "/api/v1/articles/", "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code, "reads are not throttled")

	w = api.do(http.MethodPost, "/api/v1/articles/", "", map[string]any{})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "anonymous writes fail before the limiter")
}

func TestAPI_Operational(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodGet, "/-/ready", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database"`)

	api.createArticle("alice", "ART-1", "2024-01-15", nil)

	w = api.do(http.MethodGet, "/-/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `articles_writes_total{entity="article",operation="create",outcome="ok"} 1`)

	w = api.do(http.MethodGet, "/api/v1/articles", "", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/v1/articles/", w.Header().Get("Location"))

	w = api.do(http.MethodGet, "/api/v1/articles/", "", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestAPI_UnroutedRequestsUseEnvelope(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"write on read-only authors", http.MethodPost, "/api/v1/authors/", http.StatusMethodNotAllowed, dto.ErrorCodeMethodNotAllowed},
		{"delete on tag list", http.MethodDelete, "/api/v1/tags/", http.StatusMethodNotAllowed, dto.ErrorCodeMethodNotAllowed},
		{"unknown collection", http.MethodGet, "/api/v1/journals/", http.StatusNotFound, dto.ErrorCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(tt.method, tt.path, "alice", nil)

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			assert.Equal(t, tt.wantCode, decode[dto.ErrorResponse](t, w).Error.Code)
		})
	}
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig()

	srv := New(cfg, discard)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "localhost", port: 8080, want: "localhost:8080"},
		{host: "0.0.0.0", port: 3000, want: "0.0.0.0:3000"},
		{host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := testServerConfig()
			cfg.Host = tt.host
			cfg.Port = tt.port

			assert.Equal(t, tt.want, New(cfg, discard).Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(), discard)
	srv.Engine().GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	errCh := srv.Start()
	require.NotEqual(t, "127.0.0.1:0", srv.Addr(), "Addr reports the bound port")

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServerStart_BindFailure(t *testing.T) {
	first := New(testServerConfig(), discard)
	_ = first.Start()
	t.Cleanup(func() { _ = first.Shutdown(context.Background()) })

	_, port, err := net.SplitHostPort(first.Addr())
	require.NoError(t, err)

	cfg := testServerConfig()
	cfg.Port, err = strconv.Atoi(port)
	require.NoError(t, err)

	err = <-New(cfg, discard).Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binding")
}

func TestSetupRouter_Minimal(t *testing.T) {
	engine := gin.New()

	require.NotPanics(t, func() {
		SetupRouter(engine, RouterConfig{ServiceName: "articles-service"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
