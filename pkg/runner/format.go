package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// SlideMarkdown lays out a slide as a markdown document according to its kind.
func SlideMarkdown(s domain.Slide) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	if s.Subtitle != "" {
		if s.Kind == domain.KindTitle {
			fmt.Fprintf(&b, "_%s_\n\n", s.Subtitle)
		} else {
			fmt.Fprintf(&b, "## %s\n\n", s.Subtitle)
		}
	}
	if body := strings.TrimSpace(s.Body); body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	switch s.Kind {
	case domain.KindCards:
		for i, item := range s.Bullets {
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, item)
		}
	default:
		for _, item := range s.Bullets {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	if len(s.Bullets) > 0 {
		b.WriteString("\n")
	}

	if s.ImageURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", s.Title, s.ImageURL)
	}

	if s.Code != nil {
		fmt.Fprintf(&b, "```%s\n%s\n```\n\n", s.Code.Language, strings.TrimRight(s.Code.Code, "\n"))
		if s.Code.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Code.Description)
		}
	}

	if s.IsDemo() {
		for _, sug := range s.Suggestions {
			fmt.Fprintf(&b, "> Try: %s\n\n", sug)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatEntry renders one transcript entry as a single labelled block.
func FormatEntry(e domain.Entry) string {
	return fmt.Sprintf("[%s] %s", e.Label(), e.Text)
}

// FormatPosition renders the "i / n" progress marker.
func FormatPosition(v domain.View) string {
	current, total := v.Position()
	return fmt.Sprintf("%d / %d", current, total)
}
