/*
Package runner drives a presentation from a line-oriented terminal.

It is the fallback surface when no interactive TTY is available (pipes, CI,
screen readers) and the shared home of input sanitizing and slide-to-text
formatting used by the other adapters.

# Commands

  - "n", "next" or an empty line: advance one slide.
  - "p", "prev": go back one slide.
  - "q", "quit", "exit": leave the presentation.
  - "help", "?": list the commands.
  - Any other text on the live demo slide is sent to the agent.

# Usage

	r := runner.New(
		runner.WithInput(os.Stdin),
		runner.WithOutput(os.Stdout),
		runner.WithRenderer(glamourRenderer),
	)

	if err := r.Run(ctx, engine); err != nil {
		log.Fatal(err)
	}
*/
package runner
