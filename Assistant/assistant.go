package Assistant

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
	"gorm.io/gorm"

	"Momentum/Ledger"
)

// ErrNotConfigured is returned when no Gemini API key is present. The
// assistant is an optional feature; callers surface this as "unavailable"
// rather than failing startup.
var ErrNotConfigured = errors.New("assistant: GEMINI_API_KEY not configured")

const modelName = "gemini-2.5-flash"

// Assistant wraps the Gemini client together with the task store it reads.
type Assistant struct {
	client *genai.Client
	DB     *gorm.DB
	Ledger *Ledger.Ledger
}

// New initializes the Gemini client. The SDK picks the API key up from the
// environment (GEMINI_API_KEY / GOOGLE_API_KEY).
func New(ctx context.Context, db *gorm.DB, ledger *Ledger.Ledger) (*Assistant, error) {
	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}
	return &Assistant{client: client, DB: db, Ledger: ledger}, nil
}

// generate sends one prompt under a system instruction and returns the text.
func (a *Assistant) generate(ctx context.Context, system, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	resp, err := a.client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("assistant: empty response")
	}
	return text, nil
}
