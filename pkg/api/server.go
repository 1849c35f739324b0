// Package api serves the working-date calculation over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/workday/pkg/workday"
)

// Error codes of the JSON error envelope.
const (
	CodeInvalidParameters   = "InvalidParameters"
	CodeUpstreamUnavailable = "UpstreamUnavailable"
	CodeInternalError       = "InternalError"
	CodeRateLimited         = "RateLimited"
)

// Calculator computes working dates. *workday.Engine implements it.
type Calculator interface {
	Calculate(ctx context.Context, req workday.Request) (string, error)
}

// DateResponse is the success body of /working-date.
type DateResponse struct {
	Date string `json:"date"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Server holds the HTTP handlers.
type Server struct {
	calc           Calculator
	limiter        *rateLimiter
	logger         *slog.Logger
	requestTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithRateLimit allows perMinute requests per client IP. Zero or less disables limiting.
func WithRateLimit(perMinute int) Option {
	return func(s *Server) {
		if perMinute <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = newRateLimiter(perMinute)
	}
}

// WithRequestTimeout bounds each calculation, holiday fetch included.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

// New creates a Server. Requests are limited to 120 per minute per IP unless
// WithRateLimit says otherwise.
func New(calc Calculator, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		calc:           calc,
		limiter:        newRateLimiter(120),
		logger:         logger,
		requestTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed, wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /working-date", s.handleWorkingDate)
	return s.wrap(mux)
}

func (s *Server) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
		w.Header().Set("X-Request-ID", requestID)
		clientIP := clientIP(r)

		defer func() {
			if err := recover(); err != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]

				s.logger.Error("PANIC: request handler crashed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
					"client_ip", clientIP,
					"stack", string(buf))
				s.writeError(w, requestID, http.StatusInternalServerError, CodeInternalError, "Unexpected error")
			}
		}()

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set("Cache-Control", "no-store")

		if s.limiter != nil && !s.limiter.allow(clientIP) {
			s.logger.Warn("rate limit exceeded",
				"request_id", requestID,
				"client_ip", clientIP,
				"path", r.URL.Path)
			s.writeError(w, requestID, http.StatusTooManyRequests, CodeRateLimited, "Too many requests")
			return
		}

		handler.ServeHTTP(w, r)
	})
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, w.Header().Get("X-Request-ID"), http.StatusOK, map[string]string{"message": "Hello World"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, w.Header().Get("X-Request-ID"), http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleWorkingDate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := w.Header().Get("X-Request-ID")

	req, issues := parseQuery(r.URL.Query())
	if len(issues) > 0 {
		s.logger.Info("invalid working-date parameters",
			"request_id", requestID,
			"query", r.URL.RawQuery,
			"issues", issues)
		s.writeError(w, requestID, http.StatusBadRequest, CodeInvalidParameters, strings.Join(issues, "; "))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	date, err := s.calc.Calculate(ctx, req)
	if err != nil {
		kind := workday.KindOf(err)
		s.logger.Error("working-date calculation failed",
			"request_id", requestID,
			"kind", kind.String(),
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())

		switch kind {
		case workday.KindInvalidInput:
			s.writeError(w, requestID, http.StatusBadRequest, CodeInvalidParameters, "date must be a valid ISO 8601 UTC timestamp")
		case workday.KindUpstreamUnavailable:
			s.writeError(w, requestID, http.StatusServiceUnavailable, CodeUpstreamUnavailable, "Holidays source unavailable")
		case workday.KindInternal:
			s.writeError(w, requestID, http.StatusInternalServerError, CodeInternalError, "Unexpected error")
		default:
			s.writeError(w, requestID, http.StatusInternalServerError, CodeInternalError, "Unexpected error")
		}
		return
	}

	s.logger.Info("working-date request completed",
		"request_id", requestID,
		"days", req.Days,
		"hours", req.Hours,
		"date", req.Date,
		"result", date,
		"duration_ms", time.Since(start).Milliseconds())
	s.writeJSON(w, requestID, http.StatusOK, DateResponse{Date: date})
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, status int, code, message string) {
	s.writeJSON(w, requestID, status, ErrorResponse{Error: code, Message: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, requestID string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response",
			"request_id", requestID,
			"error", err)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
