// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// GenerationKind categorizes a content generation request.
type GenerationKind string

const (
	KindIdeas GenerationKind = "ideas"
	KindPost  GenerationKind = "post"
	KindPlan  GenerationKind = "plan"
)

// GenerationRecord is one completed generation stored in the history database.
type GenerationRecord struct {
	// ID is a random unique identifier assigned when the record is stored.
	ID string `json:"id" yaml:"id"`

	// Kind is the operation that produced the content: ideas, post, or plan.
	Kind GenerationKind `json:"kind" yaml:"kind"`

	// Topic is the requested post topic. Empty for ideas and plan records.
	Topic string `json:"topic,omitempty" yaml:"topic,omitempty"`

	// Platform is the target platform for post records (instagram, facebook,
	// telegram, blog).
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`

	// Length is the requested post length: short, medium, or long.
	Length string `json:"length,omitempty" yaml:"length,omitempty"`

	// Period is the planning period for plan records: week or month.
	Period string `json:"period,omitempty" yaml:"period,omitempty"`

	// Count is the requested number of ideas or plan days.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	// Model is the resolved model identifier that produced the content.
	Model string `json:"model" yaml:"model"`

	// Content is the generated text. For ideas records, one idea per line.
	Content string `json:"content" yaml:"content"`

	// CreatedAt is when the record was stored.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
