// Package httpapi is the HTTP front door: a small embedded dashboard plus
// JSON endpoints for health, sample receipts and on-demand pipeline runs.
package httpapi

import (
	"context"
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paylane/paylane/internal/application"
	"github.com/paylane/paylane/internal/domain"
)

//go:embed web
var webFS embed.FS

// Processor runs one pipeline pass. Satisfied by application.ProcessService.
type Processor interface {
	Run(ctx context.Context, opts application.RunOptions) *domain.RunResult
}

// Server serves the dashboard and the JSON API on one listener.
type Server struct {
	svc    Processor
	router *gin.Engine
}

// New creates a Server around the given pipeline service.
func New(svc Processor) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{svc: svc, router: gin.New()}
	s.router.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/samples", s.handleSamples)
	api.POST("/process-payment", s.handleProcessPayment)

	// The dashboard takes every path the API does not claim.
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	s.router.NoRoute(gin.WrapH(http.FileServer(http.FS(sub))))
}

// Run blocks serving on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
