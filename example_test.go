package agentdeck_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/agentdeck"
	"github.com/aretw0/agentdeck/pkg/adapters/memory"
	"github.com/aretw0/agentdeck/pkg/domain"
	"github.com/aretw0/agentdeck/pkg/ports"
)

// ExampleNew_memory drives a two-slide deck held in memory, with a canned
// generator standing in for the model.
func ExampleNew_memory() {
	loader := memory.NewLoader(
		domain.Slide{ID: "intro", Kind: domain.KindTitle, Title: "Hello"},
		domain.Slide{ID: "demo", Kind: domain.KindDemo, Title: "Live Demo"},
	)
	gen := ports.GeneratorFunc(func(ctx context.Context, prompt, history string) (string, error) {
		return "[PLAN] Read the file. [ACTION] cat main.go", nil
	})

	eng, err := agentdeck.New("", agentdeck.WithLoader(loader), agentdeck.WithGenerator(gen))
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	views := eng.Watch(ctx)

	fmt.Println(eng.Render().Slide.Title)

	eng.Advance()
	for v := range views {
		if !v.Transitioning {
			fmt.Println(v.Slide.Title)
			break
		}
	}

	eng.Submit(ctx, "show me main.go")
	for _, e := range eng.Render().Demo.Entries[1:] {
		fmt.Printf("%s: %s\n", e.Label(), e.Text)
	}

	// Output:
	// Hello
	// Live Demo
	// user: show me main.go
	// Thinking Process: Read the file.
	// Action / Output: cat main.go
}
