package loam

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/loam"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// Loader adapts a Loam repository of markdown documents to ports.SlideLoader.
// Each document is one slide.
type Loader struct {
	Repo *loam.TypedRepository[SlideMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[SlideMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it in a Loader.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numbers as json.Number; the deck is never written back.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[SlideMetadata](repo)), nil
}

type ordered struct {
	slide domain.Slide
	order int
	has   bool
}

// LoadSlides lists every document and returns the slides in deck order.
func (l *Loader) LoadSlides(ctx context.Context) ([]domain.Slide, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	items := make([]ordered, 0, len(docs))
	for _, doc := range docs {
		meta := doc.Data

		rawID := meta.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existingPath, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		seen[id] = doc.ID

		slide, err := buildSlide(id, meta, doc.Content)
		if err != nil {
			return nil, fmt.Errorf("slide %s: %w", id, err)
		}

		order, has, err := parseOrder(meta.Order)
		if err != nil {
			return nil, fmt.Errorf("slide %s: %w", id, err)
		}
		items = append(items, ordered{slide: slide, order: order, has: has})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.has != b.has {
			return a.has
		}
		if a.has && a.order != b.order {
			return a.order < b.order
		}
		return a.slide.ID < b.slide.ID
	})

	slides := make([]domain.Slide, len(items))
	for i, it := range items {
		slides[i] = it.slide
	}
	return slides, nil
}

func buildSlide(id string, meta SlideMetadata, content string) (domain.Slide, error) {
	kind := domain.SlideKind(strings.ToLower(strings.TrimSpace(meta.Kind)))
	if kind == "" {
		kind = domain.KindStandard
	}

	code, err := decodeCode(meta.Code, meta.Language)
	if err != nil {
		return domain.Slide{}, err
	}
	if code != nil && meta.Kind == "" {
		kind = domain.KindCode
	}

	return domain.Slide{
		ID:          id,
		Kind:        kind,
		Title:       meta.Title,
		Subtitle:    meta.Subtitle,
		Body:        strings.TrimSpace(content),
		Bullets:     meta.Bullets,
		Code:        code,
		ImageURL:    meta.ImageURL,
		Suggestions: meta.Suggestions,
	}, nil
}

func decodeCode(raw any, language string) (*domain.CodeSnippet, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return &domain.CodeSnippet{Language: language, Code: v}, nil
	case map[string]any, map[any]any:
		var snippet domain.CodeSnippet
		if err := mapstructure.Decode(v, &snippet); err != nil {
			return nil, fmt.Errorf("failed to decode code block: %w", err)
		}
		if snippet.Language == "" {
			snippet.Language = language
		}
		return &snippet, nil
	default:
		return nil, fmt.Errorf("invalid code definition type: %T", v)
	}
}

func parseOrder(raw any) (int, bool, error) {
	switch v := raw.(type) {
	case nil:
		return 0, false, nil
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, false, fmt.Errorf("order must be an integer, got %v", v)
		}
		return int(v), true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("order must be an integer: %w", err)
		}
		return int(n), true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false, fmt.Errorf("order must be an integer: %w", err)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("invalid order type: %T", v)
	}
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
