// Package server exposes the factorization pipeline over HTTP: a JSON REST
// endpoint for one-shot runs and a websocket endpoint that streams
// per-attempt progress.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultListenAddr = "127.0.0.1:8080"

// Run starts the Gin HTTP server that exposes the factorization APIs and
// blocks until the process receives an interrupt.
func Run(listenAddr string) error {
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter()

	srv := &http.Server{Addr: listenAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/api/options", optionsHandler)
	router.POST("/api/factor", factorHandler)
	router.GET("/api/ws", wsFactorHandler)

	return router
}
