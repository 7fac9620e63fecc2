/*
Package observability provides tools for monitoring the agentdeck engine.

It includes lifecycle hooks for structured logging, Prometheus metrics for slide
visits and agent exchanges, and a helper to combine several hook sets.
*/
package observability
