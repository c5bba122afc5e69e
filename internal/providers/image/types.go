package image

import "context"

// GenerateRequest describes one stylization passed to a provider.
type GenerateRequest struct {
	Prompt    string
	ImageData []byte
	MIME      string
	RequestID string
}

// Result is a generated image.
type Result struct {
	Data   []byte
	Format string
}

// Generator is the contract implemented by all image providers.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Result, error)
}
