// Package validator lints a slide deck before it is presented.
package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// Severity ranks an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding about one slide, or the deck when SlideID is empty.
type Issue struct {
	SlideID  string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	if i.SlideID == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: '%s': %s", i.Severity, i.SlideID, i.Message)
}

// Report collects every Issue found in a deck.
type Report struct {
	Slides int
	Issues []Issue
}

// Err returns nil when the report holds no errors, warnings aside.
func (r Report) Err() error {
	var lines []string
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			lines = append(lines, i.String())
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n - %s", strings.Join(lines, "\n - "))
}

// ValidateDeck loads the slides from loader and checks them.
// Load failures are returned as an error, content problems in the Report.
func ValidateDeck(ctx context.Context, loader ports.SlideLoader) (Report, error) {
	slides, err := loader.LoadSlides(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load deck: %w", err)
	}
	return Validate(slides), nil
}

// Validate checks slides without building a deck, so every problem is reported at once.
func Validate(slides []domain.Slide) Report {
	r := Report{Slides: len(slides)}
	add := func(id string, sev Severity, format string, args ...any) {
		r.Issues = append(r.Issues, Issue{SlideID: id, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	if len(slides) == 0 {
		add("", SeverityError, "deck has no slides")
		return r
	}

	seen := make(map[string]int)
	demos := 0
	for i, s := range slides {
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("#%d", i+1)
		}

		if err := s.Validate(); err != nil {
			add(id, SeverityError, "%v", err)
		}
		if s.ID != "" {
			if prev, ok := seen[s.ID]; ok {
				add(id, SeverityError, "duplicate id (also slide #%d)", prev+1)
			}
			seen[s.ID] = i
		}

		switch s.Kind {
		case domain.KindCode:
			if s.Code == nil || strings.TrimSpace(s.Code.Code) == "" {
				add(id, SeverityError, "code slide has no code")
			}
		case domain.KindCards:
			if len(s.Bullets) == 0 {
				add(id, SeverityWarning, "cards slide has no bullets")
			}
		case domain.KindSplit:
			if s.ImageURL == "" && s.Code == nil {
				add(id, SeverityWarning, "split slide has no image or code")
			}
		case domain.KindDemo:
			demos++
			if len(s.Suggestions) == 0 {
				add(id, SeverityWarning, "demo slide has no suggestions")
			}
		}
		if s.Code != nil && s.Kind != domain.KindCode && s.Kind != domain.KindDemo && s.Code.Language == "" {
			add(id, SeverityWarning, "code snippet has no language")
		}
	}

	switch {
	case demos == 0:
		add("", SeverityWarning, "deck has no live demo slide")
	case demos > 1:
		add("", SeverityWarning, "%d demo slides share one transcript", demos)
	}
	return r
}
