package ports

import "context"

// Generator is the external generation collaborator of the agent demo.
// A single request/response call: implementations must not retry.
type Generator interface {
	// Generate sends prompt, together with the rendered transcript as auxiliary
	// context, and returns the raw model reply.
	Generate(ctx context.Context, prompt, history string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt, history string) (string, error)

// Generate calls f(ctx, prompt, history).
func (f GeneratorFunc) Generate(ctx context.Context, prompt, history string) (string, error) {
	return f(ctx, prompt, history)
}
