package agent

import (
	"fmt"
	"strings"
)

// DefaultGreeting seeds the transcript of a new demo session.
const DefaultGreeting = "Agent initialized. I have access to: \n- File System (Read/Write)\n- Terminal (Execute)\n- Browser (Search)\n\nHow can I help you today?"

// ErrorNotice is the only text a failed exchange ever shows in the transcript.
const ErrorNotice = "Error connecting to Agent."

// EmptyReply replaces a successful but empty model reply.
const EmptyReply = "No response generated."

const promptTemplate = `You are an expert "Agentic Coding" assistant.

Your goal is to demonstrate how an AI agent works.
When the user asks for code, do not just give the code.

Format your response in two distinct sections:
1. %s: Briefly explain your reasoning, what files you would touch, and the strategy (simulate an agent's thought process).
2. %s: Provide the actual code or terminal command requested.

Keep responses concise suitable for a demo presentation.

Context so far: %s

User Request: %s`

// BuildPrompt wraps a user request in the agent persona template.
// The template instructs the model to answer with the markers Format splits on.
func BuildPrompt(request, history string) string {
	return fmt.Sprintf(promptTemplate, MarkerPlan, MarkerAction, strings.TrimSpace(history), request)
}
