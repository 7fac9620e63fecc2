package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/agentdeck/pkg/domain"
)

func TestSlideMarkdown(t *testing.T) {
	t.Run("Title", func(t *testing.T) {
		md := SlideMarkdown(domain.Slide{Kind: domain.KindTitle, Title: "Agentic Coding", Subtitle: "The Future"})
		assert.Equal(t, "# Agentic Coding\n\n_The Future_\n", md)
	})

	t.Run("Code", func(t *testing.T) {
		md := SlideMarkdown(domain.Slide{
			Kind:  domain.KindCode,
			Title: "Loop",
			Code:  &domain.CodeSnippet{Language: "go", Code: "for {}\n", Description: "forever"},
		})
		assert.Contains(t, md, "```go\nfor {}\n```\n\nforever\n")
	})

	t.Run("Cards", func(t *testing.T) {
		md := SlideMarkdown(domain.Slide{Kind: domain.KindCards, Title: "Steps", Bullets: []string{"Plan", "Act"}})
		assert.Contains(t, md, "1. **Plan**\n2. **Act**\n")
	})

	t.Run("StandardWithImage", func(t *testing.T) {
		md := SlideMarkdown(domain.Slide{Kind: domain.KindSplit, Title: "Shift", Subtitle: "Why", Bullets: []string{"a"}, ImageURL: "https://x/y.png"})
		assert.Equal(t, "# Shift\n\n## Why\n\n- a\n\n![Shift](https://x/y.png)\n", md)
	})

	t.Run("DemoSuggestions", func(t *testing.T) {
		md := SlideMarkdown(domain.Slide{Kind: domain.KindDemo, Title: "Live", Suggestions: []string{"ls"}})
		assert.Contains(t, md, "> Try: ls\n")
	})
}

func TestFormatEntry(t *testing.T) {
	assert.Equal(t, "[user] hi", FormatEntry(domain.UserEntry("hi")))
	assert.Equal(t, "[Action / Output] ls", FormatEntry(domain.AgentEntry(domain.EntryAction, "ls")))
	assert.Equal(t, "3 / 12", FormatPosition(domain.View{Index: 2, Total: 12}))
}
