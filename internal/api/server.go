// Package api serves the LaunchCheck REST API.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/notify"
	"gorm.io/gorm"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	DB       *gorm.DB
	Port     int
	Out      io.Writer
	Notifier *notify.Dispatcher
}

// Start launches the API server. It blocks until ctx is cancelled, then
// shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.DB == nil {
		return fmt.Errorf("api: db is required")
	}
	if opts.Port <= 0 {
		opts.Port = 8080
	}

	router := NewRouter(opts.DB, opts.Notifier)

	addr := fmt.Sprintf(":%d", opts.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "LaunchCheck API listening at http://localhost:%d\n", opts.Port)
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// NewRouter builds the Gin router with all routes registered.
func NewRouter(db *gorm.DB, notifier *notify.Dispatcher) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	registerRoutes(router, db, notifier)
	return router
}
