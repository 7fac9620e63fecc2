/*
Package agent implements the live demo slide: a simulated plan/action agent that
proxies chat turns to an external Generator.

The package has three parts:

  - Format splits one raw model reply into transcript entries using the marker
    protocol ([PLAN] ... [ACTION] ...).
  - Transcript is the append-only chat history of the demo session.
  - Controller orchestrates one user turn at a time against the Generator.

The marker literals are the wire contract with the prompt template built by
BuildPrompt; both live here so they cannot drift apart.
*/
package agent
