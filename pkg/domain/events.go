package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSlideEnter    EventType = "slide_enter"
	EventSlideLeave    EventType = "slide_leave"
	EventExchangeStart EventType = "exchange_start"
	EventExchangeEnd   EventType = "exchange_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SlideEvent represents entry or exit from a slide.
type SlideEvent struct {
	EventBase
	Index int       `json:"index"`
	Kind  SlideKind `json:"kind"`
	Title string    `json:"title"`
}

// ExchangeEvent represents one request/response round trip of the agent demo.
type ExchangeEvent struct {
	EventBase
	ExchangeID string        `json:"exchange_id"`
	Prompt     string        `json:"prompt,omitempty"`
	Entries    int           `json:"entries,omitempty"` // Agent entries appended on success
	Duration   time.Duration `json:"duration,omitempty"`
	IsError    bool          `json:"is_error,omitempty"`
	Err        error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Every hook is optional.
type LifecycleHooks struct {
	OnSlideEnter    func(context.Context, *SlideEvent)
	OnSlideLeave    func(context.Context, *SlideEvent)
	OnExchangeStart func(context.Context, *ExchangeEvent)
	OnExchangeEnd   func(context.Context, *ExchangeEvent)
}
