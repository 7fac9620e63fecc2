package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/agentdeck"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
	"github.com/aretw0/agentdeck/pkg/runner"
)

// settleTimeout bounds how long navigation tools wait for a transition to commit.
const settleTimeout = 5 * time.Second

// ViewResponse aligns with the HTTP ActionResponse and provides a unified structure across adapters.
type ViewResponse struct {
	Accepted bool        `json:"accepted" jsonschema_description:"Whether the request changed anything"`
	View     domain.View `json:"view" jsonschema_description:"The view after the request settled"`
}

// Server wraps the presentation engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Presenter
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Presenter) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("agentdeck-mcp", strings.TrimSpace(agentdeck.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("current_slide",
		mcp.WithDescription("Get the slide currently on screen, with the demo transcript when it is the live demo."),
		mcp.WithOutputSchema[ViewResponse](),
	), mcp.NewStructuredToolHandler(s.handleCurrentSlide))

	s.mcpServer.AddTool(mcp.NewTool("next_slide",
		mcp.WithDescription("Advance to the next slide. Does nothing on the last slide."),
		mcp.WithOutputSchema[ViewResponse](),
	), mcp.NewStructuredToolHandler(s.handleNextSlide))

	s.mcpServer.AddTool(mcp.NewTool("previous_slide",
		mcp.WithDescription("Go back to the previous slide. Does nothing on the first slide."),
		mcp.WithOutputSchema[ViewResponse](),
	), mcp.NewStructuredToolHandler(s.handlePreviousSlide))

	s.mcpServer.AddTool(mcp.NewTool("ask_agent",
		mcp.WithDescription("Send one message to the live agent demo. Only works while the demo slide is on screen."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The user message")),
		mcp.WithOutputSchema[ViewResponse](),
	), mcp.NewStructuredToolHandler(s.handleAskAgent))

	s.mcpServer.AddTool(mcp.NewTool("list_slides",
		mcp.WithDescription("List every slide of the deck in presentation order."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.engine.Slides())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleCurrentSlide(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ViewResponse, error) {
	return ViewResponse{Accepted: true, View: s.engine.Render()}, nil
}

func (s *Server) handleNextSlide(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ViewResponse, error) {
	return s.navigate(ctx, s.engine.Advance)
}

func (s *Server) handlePreviousSlide(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ViewResponse, error) {
	return s.navigate(ctx, s.engine.Retreat)
}

// navigate runs step and waits for the transition to commit, so callers see the new slide.
func (s *Server) navigate(ctx context.Context, step func() bool) (ViewResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, settleTimeout)
	defer cancel()

	view, accepted, err := runner.Settle(ctx, s.engine, step)
	if err != nil {
		return ViewResponse{}, err
	}
	return ViewResponse{Accepted: accepted, View: view}, nil
}

func (s *Server) handleAskAgent(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ViewResponse, error) {
	text, _ := args["text"].(string)

	clean, err := runner.SanitizeInput(text)
	if err != nil {
		slog.Warn("MCP ask_agent: Input rejected", "error", err, "size", len(text))
		return ViewResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	accepted := s.engine.Submit(context.WithoutCancel(ctx), clean)
	return ViewResponse{Accepted: accepted, View: s.engine.Render()}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("agentdeck://deck", "Slide Deck",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Slides())
		if err != nil {
			return nil, fmt.Errorf("failed to encode deck: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "agentdeck://deck",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
