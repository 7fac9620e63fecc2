/*
Package agentdeck is a slide-deck presentation engine with a live agent demo.

A deck is an ordered, immutable list of slides. The engine tracks the current
slide, debounces transitions behind a short exit animation, and routes the demo
slide to a chat controller that forwards each turn to a language model and splits
the reply into a "thinking" part and an "action" part.

# Architecture

The core is decoupled from its surfaces (terminal, HTTP, MCP) and from its
collaborators (slide loaders, the model backend, timers) through the interfaces
in pkg/ports.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"
		"os"

		"github.com/aretw0/agentdeck"
		"github.com/aretw0/agentdeck/pkg/adapters/gemini"
	)

	func main() {
		ctx := context.Background()

		// Empty path: use the built-in deck.
		eng, err := agentdeck.New("",
			agentdeck.WithGenerator(gemini.New(ctx, os.Getenv("GEMINI_API_KEY"))),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer eng.Close()

		eng.Start(ctx)
		view := eng.Render()
		fmt.Println(view.Slide.Title)

		eng.Advance() // commits after the debounce delay
	}
*/
package agentdeck
