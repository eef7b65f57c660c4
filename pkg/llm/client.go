package llm

import "context"

// Client sends one free-text prompt to a hosted language model and returns
// the raw text of its first answer.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	ModelName() string
}
