// Package server provides the HTTP REST API for the resume ranker.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Bharanieeswaran/RankRite/internal/engine"
	"github.com/Bharanieeswaran/RankRite/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	analyzer    *engine.Analyzer
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port int

	// RateLimit is the burst capacity per client; zero disables limiting.
	RateLimit       int
	RateLimitRefill float64
}

// New creates a new server instance
func New(cfg Config, analyzer *engine.Analyzer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		analyzer:    analyzer,
		logger:      logger,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit, cfg.RateLimitRefill),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /rank", s.handleRank)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /insights/trends", s.handleTrends)
	mux.HandleFunc("GET /insights/tips", s.handleTips)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the routed handler stack, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM arrives, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their token bucket.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r))
		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			s.logger.Warn("rate limit exceeded",
				zap.String("remote", r.RemoteAddr),
				zap.Int("limit", info.Limit))
			s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// extractClientID identifies the client by IP address. RemoteAddr has
// the form "IP:port"; on parse failure the whole address is used.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
