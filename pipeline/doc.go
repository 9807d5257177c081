// Package pipeline is the top-level orchestrator: it has no algorithmic
// content of its own beyond sequencing scomplex, oracle, and pinch.
package pipeline
