// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the analysis engine over HTTP.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"idscan/internal/detector"
	"idscan/internal/engine"
	"idscan/internal/version"
)

// maxRequestBody caps analyze request bodies at 4 MiB.
const maxRequestBody = 4 << 20

// Server serves the analyzer HTTP API
type Server struct {
	engine *engine.Engine
	port   string
	server *http.Server
}

// AnalyzeRequest is the JSON body of POST /analyze
type AnalyzeRequest struct {
	Text           string          `json:"text"`
	Language       string          `json:"language"`
	Entities       []string        `json:"entities"`
	ScoreThreshold float64         `json:"score_threshold"`
	CorrelationID  string          `json:"correlation_id"`
	Auxiliary      []detector.Span `json:"auxiliary,omitempty"`
}

// ErrorResponse is the JSON body of error replies
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a web server over an engine
func NewServer(e *engine.Engine, port string) *Server {
	return &Server{engine: e, port: port}
}

// Routes builds the HTTP router
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/analyze", s.handleAnalyze)
	r.Get("/recognizers", s.handleRecognizers)
	r.Get("/supportedentities", s.handleSupportedEntities)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start starts the web server, retrying successive ports when the requested
// one is busy
func (s *Server) Start() error {
	handler := s.Routes()

	basePort, err := strconv.Atoi(s.port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", s.port, err)
	}

	var lastError error
	for i := 0; i < 10; i++ {
		currentPort := strconv.Itoa(basePort + i)

		// Test if port is available first
		listener, err := net.Listen("tcp", ":"+currentPort)
		if err != nil {
			lastError = err
			if i == 0 {
				fmt.Printf("Port %s is not available, trying alternative ports...\n", currentPort)
			}
			continue
		}
		listener.Close()

		s.server = s.createSecureServer(currentPort, handler)

		fmt.Printf("idscan analyzer %s listening on port %s\n", version.Version, currentPort)
		fmt.Printf("POST http://localhost:%s/analyze\n", currentPort)

		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lastError = err
			fmt.Printf("Server on port %s failed: %v\n", currentPort, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("no available port found after 10 attempts: %w", lastError)
}

// createSecureServer creates an HTTP server with security timeouts
func (s *Server) createSecureServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    ":" + port,
		Handler: handler,
		// Timeout for reading request headers (prevents slow header attacks)
		ReadHeaderTimeout: 15 * time.Second,
		// Timeout for reading entire request
		ReadTimeout: 30 * time.Second,
		// Timeout for writing response
		WriteTimeout: 30 * time.Second,
		// Timeout for idle connections
		IdleTimeout: 60 * time.Second,
	}
}

// handleAnalyze accepts JSON, form-encoded, or raw text bodies and returns
// the merged analysis results
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	req, err := decodeAnalyzeRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.Text == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "no text provided"})
		return
	}

	resp, err := s.engine.Analyze(r.Context(), engine.Request{
		Text:           req.Text,
		Language:       req.Language,
		Entities:       req.Entities,
		ScoreThreshold: req.ScoreThreshold,
		CorrelationID:  req.CorrelationID,
		Auxiliary:      req.Auxiliary,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "analysis failed"})
		return
	}

	w.Header().Set("X-Correlation-Id", resp.CorrelationID)
	writeJSON(w, http.StatusOK, resp)
}

// decodeAnalyzeRequest dispatches on the request content type
func decodeAnalyzeRequest(r *http.Request) (*AnalyzeRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	req := &AnalyzeRequest{CorrelationID: r.Header.Get("X-Correlation-Id")}

	switch contentType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		req.Text = r.PostFormValue("text")
		req.Language = r.PostFormValue("language")
		if entities := r.PostFormValue("entities"); entities != "" {
			req.Entities = splitList(entities)
		}
		if threshold := r.PostFormValue("score_threshold"); threshold != "" {
			value, err := strconv.ParseFloat(threshold, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid score_threshold %q", threshold)
			}
			req.ScoreThreshold = value
		}
		if cid := r.PostFormValue("correlation_id"); cid != "" {
			req.CorrelationID = cid
		}

	default:
		// Raw text body; language and entities come from query parameters
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading request body: %w", err)
		}
		req.Text = string(body)
		req.Language = r.URL.Query().Get("language")
		if entities := r.URL.Query().Get("entities"); entities != "" {
			req.Entities = splitList(entities)
		}
	}

	return req, nil
}

func splitList(value string) []string {
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// handleRecognizers lists recognizer names for a language
func (s *Server) handleRecognizers(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = engine.DefaultLanguage
	}
	writeJSON(w, http.StatusOK, s.engine.Registry().Names(language))
}

// handleSupportedEntities lists supported entity types for a language
func (s *Server) handleSupportedEntities(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = engine.DefaultLanguage
	}
	writeJSON(w, http.StatusOK, s.engine.Registry().SupportedEntities(language))
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "idscan analyzer service is up (version %s)", version.Version)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
