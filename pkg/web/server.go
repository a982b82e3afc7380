// Package web serves the dashboard API: the current analysis result,
// share encoding/decoding, live status over SSE, and view derivations.
// Handlers never mutate a published result; each analysis run replaces
// it wholesale.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/skillscope/skillscope/pkg/analysis"
	"github.com/skillscope/skillscope/pkg/lens"
	"github.com/skillscope/skillscope/pkg/logging"
	"github.com/skillscope/skillscope/pkg/model"
	"github.com/skillscope/skillscope/pkg/pubsub"
	"github.com/skillscope/skillscope/pkg/recommend"
	"github.com/skillscope/skillscope/pkg/share"
)

// maxRequestBody bounds analyze/decode request payloads
const maxRequestBody = 1 << 20

// Server exposes the analysis engine over HTTP
type Server struct {
	router    *mux.Router
	publisher pubsub.Publisher
	opts      analysis.Options

	mu     sync.RWMutex
	result *model.AnalysisResult
}

// NewServer creates a new API server with the given analysis options
func NewServer(opts analysis.Options) *Server {
	publisher := pubsub.NewSSEPublisher()

	// Replay only the current state to late subscribers
	publisher.ConfigureTopic(pubsub.TopicAnalysisStatus, pubsub.TopicConfig{
		BufferSize: 10,
		ReplayAll:  false,
	})
	publisher.ConfigureTopic(pubsub.TopicAnalysisResult, pubsub.TopicConfig{
		BufferSize: 5,
		ReplayAll:  false,
	})

	s := &Server{
		router:    mux.NewRouter(),
		publisher: publisher,
		opts:      opts,
	}
	s.setupRoutes()
	return s
}

// SetResult publishes a fresh analysis result
func (s *Server) SetResult(result *model.AnalysisResult) {
	s.mu.Lock()
	s.result = result
	s.mu.Unlock()

	if result == nil {
		return
	}
	_ = s.publisher.Publish(pubsub.TopicAnalysisResult, "ready", pubsub.ResultUpdate{
		ResultID:    result.ID,
		Skills:      result.Summary.TotalSkills,
		Edges:       len(result.Data.Edges),
		HealthScore: result.Summary.HealthScore,
	})
}

// Result returns the current result, or nil before the first run
func (s *Server) Result() *model.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// PublishStatus publishes an analysis status event
func (s *Server) PublishStatus(state, message string) error {
	return s.publisher.Publish(pubsub.TopicAnalysisStatus, state, pubsub.AnalysisStatus{
		State:   state,
		Message: message,
	})
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/subscribe/analysis_status", s.handleSubscribe(pubsub.TopicAnalysisStatus)).Methods("GET")
	s.router.HandleFunc("/api/subscribe/analysis_result", s.handleSubscribe(pubsub.TopicAnalysisResult)).Methods("GET")

	s.router.HandleFunc("/api/result", s.handleResult).Methods("GET")
	s.router.HandleFunc("/api/analyze", s.handleAnalyze).Methods("POST")
	s.router.HandleFunc("/api/share", s.handleShare).Methods("GET")
	s.router.HandleFunc("/api/share/decode", s.handleShareDecode).Methods("POST")
	s.router.HandleFunc("/api/distances", s.handleDistances).Methods("GET")
	s.router.HandleFunc("/api/removals", s.handleRemovals).Methods("GET")
}

// handleSubscribe streams a topic over SSE
func (s *Server) handleSubscribe(topic string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		// Initial comment establishes the connection (Safari quirk)
		fmt.Fprintf(w, ": connected\n\n")
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}

		sub, err := s.publisher.Subscribe(r.Context(), topic)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer sub.Close()

		for event := range sub.Events() {
			if err := pubsub.WriteSSE(w, event); err != nil {
				logging.DebugContext(r.Context(), "SSE write failed", "error", err)
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		}
	}
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result := s.Result()
	if result == nil {
		writeError(w, http.StatusNotFound, "no analysis has run yet")
		return
	}
	writeJSON(w, result)
}

// handleAnalyze runs the pipeline on a raw skill list in the request
// body and publishes the result
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body")
		return
	}

	_ = s.PublishStatus("analyzing", "analysis started")
	result := analysis.Analyze(string(body), s.opts)
	s.SetResult(result)
	_ = s.PublishStatus("ready", "analysis complete")

	logging.InfoContext(r.Context(), "analysis complete",
		"skills", result.Summary.TotalSkills,
		"edges", len(result.Data.Edges),
	)
	writeJSON(w, result)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	result := s.Result()
	if result == nil {
		writeError(w, http.StatusNotFound, "no analysis has run yet")
		return
	}

	encoded, err := share.Encode(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding share reference")
		return
	}
	writeJSON(w, map[string]string{"code": encoded})
}

func (s *Server) handleShareDecode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be {\"code\": ...}")
		return
	}

	result, err := share.Decode(req.Code, s.opts)
	if err != nil {
		logging.DebugContext(r.Context(), "share decode failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "this link may be corrupted")
		return
	}
	writeJSON(w, result)
}

// handleDistances returns hop distances from the selected nodes,
// e.g. /api/distances?from=docx,sql-query
func (s *Server) handleDistances(w http.ResponseWriter, r *http.Request) {
	result := s.Result()
	if result == nil {
		writeError(w, http.StatusNotFound, "no analysis has run yet")
		return
	}

	var selected []string
	if from := r.URL.Query().Get("from"); from != "" {
		selected = strings.Split(from, ",")
	}

	writeJSON(w, lens.Distances(&result.Data, selected))
}

// handleRemovals runs the duplicate-detection enrichment over the
// current node set
func (s *Server) handleRemovals(w http.ResponseWriter, r *http.Request) {
	result := s.Result()
	if result == nil {
		writeError(w, http.StatusNotFound, "no analysis has run yet")
		return
	}

	writeJSON(w, recommend.SuggestRemovals(result.Data.Nodes))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Debug("response encoding failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Handler returns the router wrapped with request logging
func (s *Server) Handler() http.Handler {
	return logging.RequestIDMiddleware(s.router)
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logging.Info("dashboard API listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}
