package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/aretw0/agentdeck/pkg/agent"
)

type fakeModels struct {
	resp   *genai.GenerateContentResponse
	err    error
	calls  int
	model  string
	prompt string
	config *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func reply(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

func TestGenerate(t *testing.T) {
	fake := &fakeModels{resp: reply("[PLAN] p [ACTION] a")}
	g := newWithModels(fake)

	out, err := g.Generate(context.Background(), "write a test", "user: write a test")
	require.NoError(t, err)
	assert.Equal(t, "[PLAN] p [ACTION] a", out)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, DefaultModel, fake.model)
	assert.Contains(t, fake.prompt, "User Request: write a test")
	assert.Contains(t, fake.prompt, "Context so far: user: write a test")
	require.NotNil(t, fake.config.ThinkingConfig)
	assert.Equal(t, int32(1024), *fake.config.ThinkingConfig.ThinkingBudget)
}

func TestGenerate_Options(t *testing.T) {
	fake := &fakeModels{resp: reply("ok")}
	g := newWithModels(fake, WithModel("gemini-2.5-pro"), WithThinkingBudget(0))

	_, err := g.Generate(context.Background(), "x", "")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", fake.model)
	assert.Equal(t, int32(0), *fake.config.ThinkingConfig.ThinkingBudget)
	assert.Equal(t, "gemini-2.5-pro", g.Model())
}

func TestGenerate_EmptyReply(t *testing.T) {
	for _, resp := range []*genai.GenerateContentResponse{nil, {}, reply("  ")} {
		g := newWithModels(&fakeModels{resp: resp})
		out, err := g.Generate(context.Background(), "x", "")
		require.NoError(t, err)
		assert.Equal(t, agent.EmptyReply, out)
	}
}

func TestGenerate_Error(t *testing.T) {
	cause := errors.New("quota exceeded")
	fake := &fakeModels{err: cause}
	g := newWithModels(fake)

	_, err := g.Generate(context.Background(), "x", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, fake.calls, "no retries")
}

func TestNew_MissingCredential(t *testing.T) {
	g := New(context.Background(), "")
	_, err := g.Generate(context.Background(), "x", "")
	assert.ErrorIs(t, err, ErrMissingCredential)
}
