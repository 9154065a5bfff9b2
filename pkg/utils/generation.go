package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationRequest is one call to a generative model.
type GenerationRequest struct {
	SystemInstruction string
	Prompt            string
	// JSONOnly asks the provider to constrain its output to a JSON document.
	JSONOnly bool
}

// GenerationResponse carries the raw model text. Blocked is set when the provider
// refused the prompt or filtered the output; Text is empty in that case.
type GenerationResponse struct {
	Text        string
	Blocked     bool
	BlockReason string
}

// GenerationClient is the black-box generative model used to write itinerary days.
type GenerationClient interface {
	Generate(ctx context.Context, req GenerationRequest) (GenerationResponse, error)
}

// NewGenerationClient picks a provider implementation by name. It returns
// ErrGenerationNotConfigured when the provider's key is empty.
func NewGenerationClient(provider, apiKey, model string) (GenerationClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrGenerationNotConfigured
	}

	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
