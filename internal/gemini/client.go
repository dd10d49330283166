// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gemini binds the Google Generative AI SDK to the model
// resolution and text generation interfaces.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/brandkit/brandkit/internal/model"
	"github.com/brandkit/brandkit/pkg/types"
)

// generateMethod is the capability flag a model must advertise to accept
// content generation requests.
const generateMethod = "generateContent"

// Client wraps one authenticated SDK connection. It implements both
// model.Catalog and model.Factory.
type Client struct {
	client *genai.Client
	config types.GenerationConfig
}

// NewClient opens an SDK connection with the given credential. The
// generation parameters in config are applied to every handle the
// client constructs.
func NewClient(ctx context.Context, apiKey string, config types.GenerationConfig) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Client{client: client, config: config}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// List returns the provider's model catalog.
func (c *Client) List(ctx context.Context) ([]model.Candidate, error) {
	var candidates []model.Candidate
	it := c.client.ListModels(ctx)
	for {
		info, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing models: %w", err)
		}
		candidates = append(candidates, model.Candidate{
			Name:               info.Name,
			SupportsGeneration: supportsGeneration(info.SupportedGenerationMethods),
		})
	}
	return candidates, nil
}

func supportsGeneration(methods []string) bool {
	for _, m := range methods {
		if m == generateMethod {
			return true
		}
	}
	return false
}

// New constructs a generation handle for name. The SDK defers validation
// of unknown identifiers to the first request, so construction itself
// does not fail on a bad name.
func (c *Client) New(_ context.Context, name string) (model.TextHandle, error) {
	m := c.client.GenerativeModel(name)
	if c.config.Temperature > 0 {
		m.SetTemperature(float32(c.config.Temperature))
	}
	if c.config.TopP > 0 {
		m.SetTopP(float32(c.config.TopP))
	}
	if c.config.MaxOutputTokens > 0 {
		m.SetMaxOutputTokens(int32(c.config.MaxOutputTokens))
	}
	return &handle{id: name, model: m}, nil
}

// handle binds generation requests to one SDK model.
type handle struct {
	id    string
	model *genai.GenerativeModel
}

func (h *handle) ModelID() string {
	return h.id
}

// Generate sends one prompt and returns the concatenated text parts of
// the first response candidate.
func (h *handle) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := h.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content with %s: %w", h.id, err)
	}
	text, err := responseText(resp)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", h.id, err)
	}
	return text, nil
}

// responseText extracts the text payload from one SDK response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("response carries no candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.New("response candidate carries no content")
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("response contains no text parts")
	}
	return b.String(), nil
}
