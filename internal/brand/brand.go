// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package brand persists the brand profile and renders it as prompt context.
// The profile lives in a single JSON file and is replaced wholesale on save;
// there are no partial updates and no history.
package brand

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brandkit/brandkit/pkg/types"
)

// DefaultPath is the profile file location used when none is configured.
const DefaultPath = "brand_profile.json"

// EmptyContext is rendered when no profile field is filled in.
const EmptyContext = "No brand information has been provided."

// ErrPersistenceFailed indicates the profile file could not be written.
var ErrPersistenceFailed = errors.New("profile save failed")

// Store reads and writes the brand profile file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. An empty path uses
// DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the stored profile. A missing or unreadable file and malformed
// JSON all yield the empty profile; Load never fails.
func (s *Store) Load() types.BrandProfile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return types.BrandProfile{}
	}
	var p types.BrandProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return types.BrandProfile{}
	}
	return p
}

// Save writes the profile file in place, replacing any previous contents.
func (s *Store) Save(p types.BrandProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling profile: %v", ErrPersistenceFailed, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistenceFailed, s.path, err)
	}
	return nil
}

// FieldSpec describes one editable profile field.
type FieldSpec struct {
	// Name is the snake_case key, matching the profile file format.
	Name string

	// Label is the human-readable form shown in prompts and rendered context.
	Label string

	// Get returns a pointer to the field's value within p.
	Get func(p *types.BrandProfile) *string
}

// Fields lists the editable profile fields in display order.
func Fields() []FieldSpec {
	return []FieldSpec{
		{"company_name", "Company name", func(p *types.BrandProfile) *string { return &p.CompanyName }},
		{"company_description", "Company description", func(p *types.BrandProfile) *string { return &p.CompanyDescription }},
		{"target_audience", "Target audience", func(p *types.BrandProfile) *string { return &p.TargetAudience }},
		{"tone_of_voice", "Tone of voice", func(p *types.BrandProfile) *string { return &p.ToneOfVoice }},
		{"brand_values", "Brand values", func(p *types.BrandProfile) *string { return &p.BrandValues }},
		{"key_messages", "Key messages", func(p *types.BrandProfile) *string { return &p.KeyMessages }},
	}
}

// ContextString renders the profile as labeled lines for prompt
// interpolation. Empty fields are skipped; a fully empty profile renders
// the EmptyContext placeholder instead.
func ContextString(p types.BrandProfile) string {
	var parts []string
	for _, f := range Fields() {
		if v := *f.Get(&p); v != "" {
			parts = append(parts, f.Label+": "+v)
		}
	}
	if len(parts) == 0 {
		return EmptyContext
	}
	return strings.Join(parts, "\n")
}
