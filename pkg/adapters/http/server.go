package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/aretw0/agentdeck"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
	"github.com/aretw0/agentdeck/pkg/runner"
)

// Server exposes a Presenter over HTTP.
type Server struct {
	Engine  ports.Presenter
	Streams *StreamManager
	metrics http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer creates a server for engine. Call Start to feed the event stream.
func NewServer(engine ports.Presenter, opts ...Option) *Server {
	s := &Server{
		Engine:  engine,
		Streams: NewStreamManager(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitRequest is the body of POST /demo/submit.
type SubmitRequest struct {
	Text string `json:"text"`
}

// ActionResponse is returned by every state-changing endpoint.
type ActionResponse struct {
	Accepted bool        `json:"accepted"`
	View     domain.View `json:"view"`
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawOpenAPI)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/slides", s.ListSlides)
	r.Get("/view", s.GetView)
	r.Post("/next", s.NextSlide)
	r.Post("/prev", s.PreviousSlide)
	r.Post("/demo/submit", s.SubmitDemo)
	r.Get("/events", s.SubscribeEvents)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
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

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>agentdeck API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := GetOpenAPI(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	} else if err != nil {
		slog.Error("Failed to load OpenAPI document", "error", err)
	}

	writeJSON(w, map[string]string{
		"app":         "agentdeck-http",
		"version":     strings.TrimSpace(agentdeck.Version),
		"api_version": apiVersion,
	})
}

// ListSlides handles the GET /slides request.
func (s *Server) ListSlides(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Slides())
}

// GetView handles the GET /view request.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Render())
}

// NextSlide handles the POST /next request.
func (s *Server) NextSlide(w http.ResponseWriter, r *http.Request) {
	accepted := s.Engine.Advance()
	writeJSON(w, ActionResponse{Accepted: accepted, View: s.Engine.Render()})
}

// PreviousSlide handles the POST /prev request.
func (s *Server) PreviousSlide(w http.ResponseWriter, r *http.Request) {
	accepted := s.Engine.Retreat()
	writeJSON(w, ActionResponse{Accepted: accepted, View: s.Engine.Render()})
}

// SubmitDemo handles the POST /demo/submit request.
// It blocks until the exchange resolves. The exchange outlives a client
// disconnect so the reply still lands in the shared transcript.
func (s *Server) SubmitDemo(w http.ResponseWriter, r *http.Request) {
	var body SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("SubmitDemo: Invalid request body", "error", err)
		return
	}

	text, err := runner.SanitizeInput(body.Text)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid input: %v", err), http.StatusBadRequest)
		slog.Warn("SubmitDemo: Input rejected", "error", err, "size", len(body.Text))
		return
	}

	accepted := s.Engine.Submit(context.WithoutCancel(r.Context()), text)
	writeJSON(w, ActionResponse{Accepted: accepted, View: s.Engine.Render()})
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	var watch *string
	if err := runtime.BindQueryParameter("form", true, false, "watch", r.URL.Query(), &watch); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter watch: %v", err), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		slog.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	slog.Info("SSE: Client subscribed")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	var watchList []string
	if watch != nil && *watch != "" {
		watchList = strings.Split(*watch, ",")
	}

	for {
		select {
		case <-r.Context().Done():
			slog.Info("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if len(watchList) > 0 && !matchesWatch(msg, watchList) {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func matchesWatch(msg string, watchList []string) bool {
	var diff domain.ViewDiff
	if err := json.Unmarshal([]byte(msg), &diff); err != nil {
		return false
	}
	for _, field := range watchList {
		switch strings.TrimSpace(field) {
		case "index":
			if diff.Index != nil {
				return true
			}
		case "transitioning":
			if diff.Transitioning != nil {
				return true
			}
		case "busy":
			if diff.Busy != nil {
				return true
			}
		case "transcript":
			if len(diff.Appended) > 0 {
				return true
			}
		}
	}
	return false
}

// Start subscribes to the engine and forwards every change to the SSE clients as
// a ViewDiff until ctx is done. It returns once the subscription is in place.
func (s *Server) Start(ctx context.Context) {
	views := s.Engine.Watch(ctx)
	last := s.Engine.Render()
	go s.pump(views, last)
}

func (s *Server) pump(views <-chan domain.View, last domain.View) {
	for v := range views {
		// Keep the transcript baseline across non-demo slides so returning to
		// the demo does not resend old entries.
		if v.Demo == nil && last.Demo != nil {
			carried := *last.Demo
			v.Demo = &carried
		}

		diff := domain.Diff(&last, &v)
		last = v
		if diff == nil {
			continue
		}

		bytes, err := json.Marshal(diff)
		if err != nil {
			slog.Error("Pump: diff encode failed", "error", err)
			continue
		}
		s.Streams.Broadcast(string(bytes))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
