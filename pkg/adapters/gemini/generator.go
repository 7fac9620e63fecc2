// Package gemini implements ports.Generator on top of the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/aretw0/agentdeck/pkg/agent"
)

const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultThinkingBudget = 1024
)

// ErrMissingCredential is returned by Generate when no API key was configured.
var ErrMissingCredential = errors.New("gemini: API key is missing")

// modelsAPI is the subset of genai.Models the generator calls.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator sends one demo turn to a Gemini model.
type Generator struct {
	models         modelsAPI
	model          string
	thinkingBudget int32
	logger         *slog.Logger
	initErr        error
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithThinkingBudget sets the reasoning token budget. Zero disables thinking.
func WithThinkingBudget(budget int32) Option {
	return func(g *Generator) {
		g.thinkingBudget = budget
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator. Construction never fails: a missing key or a client
// error is logged here and reported by every Generate call instead.
func New(ctx context.Context, apiKey string, opts ...Option) *Generator {
	g := &Generator{
		model:          DefaultModel,
		thinkingBudget: DefaultThinkingBudget,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	if apiKey == "" {
		g.initErr = ErrMissingCredential
		g.logger.Warn("API key is missing from the environment; the agent demo will report errors")
		return g
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.initErr = fmt.Errorf("failed to create GenAI client: %w", err)
		g.logger.Error("gemini client unavailable", "err", err)
		return g
	}
	g.models = client.Models
	return g
}

// newWithModels is the test seam for a fake models API.
func newWithModels(models modelsAPI, opts ...Option) *Generator {
	g := &Generator{
		models:         models,
		model:          DefaultModel,
		thinkingBudget: DefaultThinkingBudget,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.model
}

// Generate implements ports.Generator. It makes exactly one request.
func (g *Generator) Generate(ctx context.Context, prompt, history string) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}

	config := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(g.thinkingBudget),
		},
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(agent.BuildPrompt(prompt, history)), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate (%s): %w", g.model, err)
	}

	text := ""
	if resp != nil {
		text = resp.Text()
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Debug("empty model reply", "model", g.model)
		return agent.EmptyReply, nil
	}
	return text, nil
}
