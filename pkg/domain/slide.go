package domain

import (
	"fmt"
	"strings"
)

// SlideKind discriminates the rendering strategy of a slide.
type SlideKind string

const (
	KindTitle    SlideKind = "title"
	KindStandard SlideKind = "standard"
	KindSplit    SlideKind = "split"
	KindCode     SlideKind = "code"
	KindCards    SlideKind = "cards"
	KindDemo     SlideKind = "demo" // Routed to the live agent demo instead of a layout
)

// Valid reports whether k is one of the known slide kinds.
func (k SlideKind) Valid() bool {
	switch k {
	case KindTitle, KindStandard, KindSplit, KindCode, KindCards, KindDemo:
		return true
	}
	return false
}

// CodeSnippet is a literal block of source code attached to a slide.
type CodeSnippet struct {
	Language    string `json:"language" yaml:"language" mapstructure:"language"`
	Code        string `json:"code" yaml:"code" mapstructure:"code"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
}

// Slide is one immutable record of the deck.
type Slide struct {
	ID       string       `json:"id,omitempty" yaml:"id,omitempty"`
	Kind     SlideKind    `json:"kind" yaml:"kind"`
	Title    string       `json:"title" yaml:"title"`
	Subtitle string       `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Body     string       `json:"body,omitempty" yaml:"body,omitempty"` // Markdown
	Bullets  []string     `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Code     *CodeSnippet `json:"code,omitempty" yaml:"code,omitempty"`
	ImageURL string       `json:"image_url,omitempty" yaml:"image_url,omitempty"`

	// Suggestions are canned prompts offered on demo slides.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Validate checks the structural invariants of a single slide.
func (s Slide) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSlide, s.Kind)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidSlide)
	}
	return nil
}

// IsDemo reports whether the slide hosts the live agent demo.
func (s Slide) IsDemo() bool {
	return s.Kind == KindDemo
}

// clone returns a copy that shares no slices or pointers with s.
func (s Slide) clone() Slide {
	out := s
	if s.Bullets != nil {
		out.Bullets = append([]string(nil), s.Bullets...)
	}
	if s.Suggestions != nil {
		out.Suggestions = append([]string(nil), s.Suggestions...)
	}
	if s.Code != nil {
		code := *s.Code
		out.Code = &code
	}
	return out
}
