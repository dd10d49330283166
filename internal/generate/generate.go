// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate produces brand-aware marketing content: idea lists,
// platform-ready posts, and day-by-day content plans.
package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brandkit/brandkit/internal/brand"
	"github.com/brandkit/brandkit/internal/model"
	"github.com/brandkit/brandkit/pkg/types"
)

// ErrRemoteCallFailed indicates the generation request reached the model
// but did not come back with usable text.
var ErrRemoteCallFailed = errors.New("remote generation call failed")

// HandleSource yields the generation handle the service sends prompts to.
// model.Session satisfies it.
type HandleSource interface {
	Handle(ctx context.Context) (model.TextHandle, error)
}

// Service turns brand profiles and task parameters into prompts, sends
// them to a resolved model, and post-processes the responses. Every
// operation returns a taxonomy error on failure; use UserMessage to
// render one for display.
type Service struct {
	Models HandleSource
}

// Ideas generates count content ideas for the brand. The response is
// split into one idea per line; when the model ignores the list format
// the whole response is returned as a single idea.
func (s *Service) Ideas(ctx context.Context, profile types.BrandProfile, count int) ([]string, error) {
	h, err := s.Models.Handle(ctx)
	if err != nil {
		return nil, err
	}

	prompt, err := renderIdeasPrompt(brand.ContextString(profile), count)
	if err != nil {
		return nil, fmt.Errorf("rendering ideas prompt: %w", err)
	}

	text, err := h.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	return ParseIdeas(text, count), nil
}

// Post generates one publish-ready post about topic, shaped for platform
// at the requested length.
func (s *Service) Post(ctx context.Context, profile types.BrandProfile, topic, platform, length string) (string, error) {
	h, err := s.Models.Handle(ctx)
	if err != nil {
		return "", err
	}

	prompt, err := renderPostPrompt(brand.ContextString(profile), topic, platform, length)
	if err != nil {
		return "", fmt.Errorf("rendering post prompt: %w", err)
	}

	text, err := h.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	return strings.TrimSpace(text), nil
}

// Plan generates a content plan with count entries covering the period
// ("week" or "month").
func (s *Service) Plan(ctx context.Context, profile types.BrandProfile, period string, count int) (string, error) {
	h, err := s.Models.Handle(ctx)
	if err != nil {
		return "", err
	}

	prompt, err := renderPlanPrompt(brand.ContextString(profile), period, count)
	if err != nil {
		return "", fmt.Errorf("rendering plan prompt: %w", err)
	}

	text, err := h.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteCallFailed, err)
	}
	return strings.TrimSpace(text), nil
}

// ParseIdeas splits a model response into individual idea lines. A line
// qualifies when, after trimming, it starts with a digit or a dash; when
// nothing qualifies the whole trimmed response is returned as a single
// idea. The result is truncated to count when longer, never padded.
func ParseIdeas(text string, count int) []string {
	trimmed := strings.TrimSpace(text)

	var ideas []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if (line[0] >= '0' && line[0] <= '9') || strings.HasPrefix(line, "-") {
			ideas = append(ideas, line)
		}
	}

	if len(ideas) == 0 {
		return []string{trimmed}
	}
	if count > 0 && len(ideas) > count {
		ideas = ideas[:count]
	}
	return ideas
}

// UserMessage renders err as the single line shown to an operator. The
// resolution failures carry recovery guidance; anything else is reported
// with its cause.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, model.ErrCredentialMissing):
		return "Error: API key is not set. Check the env.local, .env.local, or .env files."
	case errors.Is(err, model.ErrModelUnavailable):
		return "Error: no Gemini model could be initialized. Check the API key and model availability."
	default:
		return "Error: " + err.Error()
	}
}
