package domain

import "errors"

// ErrEmptyDeck is returned when a deck is built from zero slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// ErrInvalidSlide is returned when a slide record breaks a structural invariant.
var ErrInvalidSlide = errors.New("invalid slide")

// ErrSlideNotFound is returned by loaders when a slide ID cannot be resolved.
var ErrSlideNotFound = errors.New("slide not found")
