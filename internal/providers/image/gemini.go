package image

import (
	"context"

	"github.com/toygarage/server/internal/providers/genai"
)

// GeminiGenerator adapts the Gemini client to the Generator contract.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	img, err := g.client.StylizeImage(ctx, genai.StylizeRequest{
		Prompt:    req.Prompt,
		ImageData: req.ImageData,
		MIME:      req.MIME,
		RequestID: req.RequestID,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Data: img.Data, Format: img.Format}, nil
}

var _ Generator = (*GeminiGenerator)(nil)
