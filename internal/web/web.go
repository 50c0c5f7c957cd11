package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/raffaelramalhorosa/newsnow/internal/models"
	"github.com/raffaelramalhorosa/newsnow/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pipeline is the fetch side of the refresh operation. It is satisfied by
// fetcher.Fetcher; tests substitute stubs.
type Pipeline interface {
	FetchAll(ctx context.Context) []models.NewsItem
}

// Server renders the article list and drives refresh-then-redirect.
type Server struct {
	store    *store.Store
	pipeline Pipeline
	logger   *slog.Logger
	engine   *gin.Engine
}

// New wires up routes and returns a ready-to-use Server.
func New(st *store.Store, pipeline Pipeline, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	srv := &Server{store: st, pipeline: pipeline, logger: logger, engine: engine}
	srv.routes()
	return srv
}

// ServeHTTP makes Server satisfy the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/refresh", s.handleRefresh)
	s.engine.GET("/health", s.handleHealth)
}

// handleIndex renders whatever the current snapshot holds. A missing or
// unreadable snapshot renders as an empty list, never an error page.
func (s *Server) handleIndex(c *gin.Context) {
	articles := s.store.Load()
	c.HTML(http.StatusOK, "index.html", gin.H{"Articles": articles})
}

// handleRefresh runs the pipeline and persists the result, then sends the
// client back to the list. An empty fetch result leaves the existing
// snapshot untouched, and no failure ever surfaces past the redirect.
func (s *Server) handleRefresh(c *gin.Context) {
	s.logger.Info("refreshing news")

	items := s.pipeline.FetchAll(c.Request.Context())
	if len(items) == 0 {
		s.logger.Warn("refresh produced no items, keeping existing snapshot")
	} else if err := s.store.Save(items); err != nil {
		s.logger.Error("snapshot save failed", "error", err)
	} else {
		s.logger.Info("news refreshed", "items", len(items))
	}

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
