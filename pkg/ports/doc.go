/*
Package ports defines the driven ports (interfaces) for the agentdeck engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various slide sources, generation backends and timers.

# Key Interfaces

  - SlideLoader: Responsible for loading the deck (e.g., from Loam or Memory).
  - Generator: The external generation collaborator behind the agent demo.
  - Scheduler: Runs the delayed commit phase of a slide transition.
  - Presenter: The engine surface consumed by driving adapters (HTTP, MCP, TUI).
*/
package ports
