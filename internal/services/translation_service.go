package services

import (
	"context"
	"fmt"
	"html"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
	"wayfarer/pkg/utils"
)

type Translator interface {
	// Translate returns one translation per input text, in input order.
	Translate(ctx context.Context, texts []string, targetLang string) ([]string, error)
}

type GoogleTranslator struct {
	svc *translate.Service
}

func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	svc, err := translate.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslator{svc: svc}, nil
}

func (t *GoogleTranslator) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	resp, err := t.svc.Translations.List(texts, targetLang).Format("text").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("translate to %s: %w", targetLang, err)
	}
	if len(resp.Translations) != len(texts) {
		return nil, utils.ErrNoResult
	}

	out := make([]string, len(texts))
	for i, tr := range resp.Translations {
		out[i] = html.UnescapeString(tr.TranslatedText)
	}
	return out, nil
}
