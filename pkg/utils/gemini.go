package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerationClient implements GenerationClient using Google's Gemini models
type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerationClient(apiKey, model string) (*GeminiGenerationClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) Generate(ctx context.Context, req GenerationRequest) (GenerationResponse, error) {
	m := c.client.GenerativeModel(c.model)
	if req.JSONOnly {
		m.ResponseMIMEType = "application/json"
	}
	if req.SystemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	}
	m.SetTemperature(0.7)
	m.SetTopP(0.9)

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return GenerationResponse{Blocked: true, BlockReason: geminiBlockReason(blocked)}, nil
		}
		return GenerationResponse{}, fmt.Errorf("gemini: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
		return GenerationResponse{Blocked: true, BlockReason: resp.PromptFeedback.BlockReason.String()}, nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return GenerationResponse{}, nil
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return GenerationResponse{Text: text.String()}, nil
}

func geminiBlockReason(err *genai.BlockedError) string {
	if err.PromptFeedback != nil {
		return err.PromptFeedback.BlockReason.String()
	}
	if err.Candidate != nil {
		return err.Candidate.FinishReason.String()
	}
	return "blocked"
}

// Close closes the Gemini client
func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
