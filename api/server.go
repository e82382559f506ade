// Package api exposes the propulsion tradeoff calculator over JSON endpoints.
package api

import (
	"net/http"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/dcgrigsby/probe"
)

// Defaults for the per-client limiter.
const (
	defaultRateLimit rate.Limit = 5 // requests per second
	defaultRateBurst            = 10
)

// Server serves the comparison over HTTP. The environment is read-only after
// construction, so handlers may run concurrently.
type Server struct {
	Env     probe.Environment
	Logger  kitlog.Logger
	limiter *IPRateLimiter
}

// NewServer returns a server computing against env and logging through logger.
func NewServer(env probe.Environment, logger kitlog.Logger) *Server {
	return &Server{
		Env:     env,
		Logger:  logger,
		limiter: NewIPRateLimiter(defaultRateLimit, defaultRateBurst),
	}
}

// Router returns the configured route tree.
func (s *Server) Router() *mux.Router {
	root := mux.NewRouter()
	v1 := root.PathPrefix("/api/v1").Subrouter()
	v1.Use(s.logMiddleware, s.limiter.LimitMiddleware)
	v1.HandleFunc("/compare", s.handleCompare).Methods("POST")
	v1.HandleFunc("/reference", s.handleReference).Methods("GET")
	return root
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.Log("level", "info", "method", r.Method, "path", r.URL.Path, "addr", r.RemoteAddr, "in", time.Since(start))
	})
}
