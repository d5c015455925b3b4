// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the redaction pipeline over HTTP for callers that
// embed it as a sidecar service.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skyredact/internal/core"
	"skyredact/internal/observability"
	"skyredact/internal/version"
)

// maxRequestBytes bounds request bodies; customer messages are short.
const maxRequestBytes = 1 << 20

// Server wraps the engine behind a small JSON API.
type Server struct {
	engine *core.Engine
	obs    *observability.StandardObserver
	server *http.Server
}

// RedactRequest is the POST /redact body.
type RedactRequest struct {
	Text string `json:"text"`
	// IncludeFindings asks for span metadata alongside the redacted text.
	IncludeFindings bool `json:"include_findings,omitempty"`
}

// RedactResponse is the POST /redact reply.
type RedactResponse struct {
	Redacted string         `json:"redacted"`
	Findings []core.Finding `json:"findings,omitempty"`
}

// NewServer builds a server around an engine.
func NewServer(addr string, engine *core.Engine, obs *observability.StandardObserver) *Server {
	s := &Server{engine: engine, obs: obs}

	mux := http.NewServeMux()
	mux.HandleFunc("/redact", s.handleRedact)
	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	fmt.Printf("skyredact listening on %s\n", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleRedact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RedactRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	done := s.obs.StartTiming("web", "redact")
	result := s.engine.Process(req.Text)
	done(true, map[string]any{"chars": len(req.Text), "findings": len(result.Findings)})

	resp := RedactResponse{Redacted: result.Redacted}
	if req.IncludeFindings {
		resp.Findings = result.Findings
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	versionInfo := version.Full()
	healthData := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "skyredact",
		"version":   versionInfo["version"],
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthData)
}
