// Package llm is the language-generation collaborator boundary. The
// guidance engine uses it for three purposes: profile analysis at intake,
// roadmap generation on create/reroute, and justification text for ranked
// alternatives. Calls are blocking with a bounded timeout and a single retry
// on transient failure (see WithRetry); everything else in the engine is
// deterministic rule logic.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt and returns one response.
type Provider interface {
	// Generate sends a request to the model. When req.Schema is set the
	// provider uses its native structured-output mechanism and the returned
	// Content is JSON validated against that schema; otherwise Content is
	// the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes what to send.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. All calls in this engine are
	// single-turn: one user message.
	Messages []Message

	// Schema, when set, constrains the response to conforming JSON.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in 0.0-1.0; zero value means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "roadmap-plan").
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// wrapped as JSON otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
