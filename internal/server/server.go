package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tupyy/achievement-tracker/internal/config"
	"github.com/tupyy/achievement-tracker/internal/metrics"
	"github.com/tupyy/achievement-tracker/internal/server/middlewares"
)

const apiPrefix = "/api/v1"

type Server struct {
	srv    *http.Server
	engine *gin.Engine
}

// NewServer builds the router. registerHandlerFn receives the /api/v1 group.
func NewServer(cfg *config.Configuration, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	if cfg.Server.ServerMode == config.ServerModeProd {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.L(), true),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	router := engine.Group(apiPrefix)
	registerHandlerFn(router)

	if cfg.Server.ServerMode == config.ServerModeProd && cfg.Server.StaticsFolder != "" {
		if err := serveStatics(engine, cfg.Server.StaticsFolder); err != nil {
			return nil, err
		}
	}

	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks until the server stops. Requests inherit ctx. A graceful Stop returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }
	zap.S().Named("http").Infow("server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop waits for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	zap.S().Named("http").Info("shutting down server")
	return s.srv.Shutdown(ctx)
}

// serveStatics serves a built UI from folder with an SPA fallback to index.html.
// Unknown /api routes keep answering JSON.
func serveStatics(engine *gin.Engine, folder string) error {
	index := filepath.Join(folder, "index.html")
	if _, err := os.Stat(index); err != nil {
		return fmt.Errorf("statics folder %q has no index.html: %w", folder, err)
	}

	engine.Static("/static", filepath.Join(folder, "static"))
	engine.StaticFile("/favicon.ico", filepath.Join(folder, "favicon.ico"))
	engine.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
	return nil
}
