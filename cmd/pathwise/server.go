package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloud-ru/pathwise-go/internal/logger"
	"github.com/cloud-ru/pathwise-go/internal/tools"
)

const maxRequestBody = 10 << 20

type toolServer struct {
	registry tools.Registry
}

func newHandler(registry tools.Registry) http.Handler {
	srv := &toolServer{registry: registry}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware)

	r.Get("/healthz", srv.handleHealth)
	r.Get("/tools", srv.handleListTools)
	r.Post("/tools/{name}", srv.handleTool)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (s *toolServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *toolServer) handleListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"tools": s.registry.Names()})
}

func (s *toolServer) handleTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	handler, ok := s.registry[name]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	params := map[string]interface{}{}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &params); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be a JSON object")
			return
		}
	}

	result, err := handler(r.Context(), params)
	if err != nil {
		logger.Warnf("tool %s failed: %v", name, err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debugf("[%s] %s %s (%s)", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, time.Since(start))
	})
}
