/*
Package domain contains the core models of the agentdeck presentation engine.

It defines the immutable slide records that make up a Deck, the entries of the
agent demo transcript, and the View that surfaces render on every tick. This
package is kept pure and free of external dependencies like I/O, rendering or
network clients, following Hexagonal Architecture principles.

# Key Entities

  - Slide: One immutable unit of presentation content, discriminated by Kind.
  - Deck: The ordered, non-empty sequence of slides loaded once at startup.
  - Entry: One immutable turn of the agent demo transcript (user, agent or system).
  - View: A snapshot of what the host should render for the current slide.
*/
package domain
