package services

import (
	"context"
)

// TextGenerator is the generative-AI capability used by the marketing tools.
// Implementations return an error on any failure; callers supply fallbacks.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

// ImageFetcher downloads a rendered image
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}
