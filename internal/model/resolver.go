// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package model selects a usable Gemini generation model from a ranked
// preference list, tolerating naming mismatches and partial API failures.
package model

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	// ErrCredentialMissing indicates the API key is absent or fails the
	// sanity check. No network call is made in this case.
	ErrCredentialMissing = errors.New("api key missing or invalid")

	// ErrModelUnavailable indicates every candidate model failed to produce
	// a handle. The condition is permanent for the session; callers must
	// not retry automatically.
	ErrModelUnavailable = errors.New("no usable generation model")
)

// DefaultPreferred is the ranked list of model identifiers tried during
// resolution, most capable first.
var DefaultPreferred = []string{
	"gemini-2.5-pro",
	"gemini-2.5-flash",
	"gemini-1.5-pro",
	"gemini-1.5-flash",
	"gemini-2.0-flash-exp",
	"gemini-1.0-pro",
	"gemini-pro",
}

const (
	// minKeyLength is the credential sanity-check threshold.
	minKeyLength = 10

	// placeholderKey is the stand-in value shipped in example env files.
	placeholderKey = "your_api_key_here"
)

// ValidKey reports whether key passes the minimal credential sanity check.
func ValidKey(key string) bool {
	return len(key) > minKeyLength && key != placeholderKey
}

// Candidate describes one entry from the provider's model catalog.
type Candidate struct {
	// Name is the identifier as the provider reports it, which may carry
	// a namespace prefix (e.g. "models/gemini-2.5-flash").
	Name string

	// SupportsGeneration is true when the model accepts content
	// generation requests.
	SupportsGeneration bool
}

// Normalized returns the identifier without the "models/" namespace prefix.
func (c Candidate) Normalized() string { return Normalize(c.Name) }

// Normalize strips the "models/" namespace prefix from a model identifier.
func Normalize(name string) string { return strings.TrimPrefix(name, "models/") }

// TextHandle is a generation capability bound to one resolved model.
type TextHandle interface {
	// ModelID returns the identifier the handle was constructed with.
	ModelID() string

	// Generate sends one prompt and returns the response text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Catalog queries the provider's live model listing.
type Catalog interface {
	List(ctx context.Context) ([]Candidate, error)
}

// Factory constructs generation handles for model identifiers.
type Factory interface {
	New(ctx context.Context, name string) (TextHandle, error)
}

// matchers orders the candidate-matching strategies from strictest to
// loosest. Each strategy is tried across all capable candidates before
// the next one runs.
var matchers = []struct {
	name string
	fn   func(preferred, candidate string) bool
}{
	{"exact", func(p, c string) bool { return p == c }},
	{"suffix", func(p, c string) bool { return strings.HasSuffix(c, p) }},
	{"substring", func(p, c string) bool { return strings.Contains(c, p) }},
}

// match finds the first capable candidate matching pref. Strategies run
// strictest first, each scanning candidates in catalog order.
func match(pref string, capable []Candidate) (Candidate, bool) {
	for _, m := range matchers {
		for _, c := range capable {
			if m.fn(pref, c.Normalized()) {
				return c, true
			}
		}
	}
	return Candidate{}, false
}

// Resolver selects one usable generation handle.
//
// Resolution order: credential sanity check, catalog-validated match
// against the preference list, first capable catalog candidate, then
// direct instantiation of preferred identifiers without catalog
// validation. A failed catalog query is swallowed, and a failed
// instantiation moves on to the next candidate. At most one catalog
// query is issued per resolution. A nil Catalog behaves like a failed
// catalog query; a nil Factory resolves nothing.
type Resolver struct {
	// APIKey is the credential checked before any network call.
	APIKey string

	// Preferred overrides DefaultPreferred when non-empty.
	Preferred []string

	// Catalog lists the provider's available models.
	Catalog Catalog

	// Factory constructs handles for resolved identifiers.
	Factory Factory
}

// Resolve picks a model and constructs its handle.
func (r *Resolver) Resolve(ctx context.Context) (TextHandle, error) {
	if !ValidKey(r.APIKey) {
		return nil, ErrCredentialMissing
	}
	if r.Factory == nil {
		return nil, ErrModelUnavailable
	}

	preferred := r.Preferred
	if len(preferred) == 0 {
		preferred = DefaultPreferred
	}

	if h := r.fromCatalog(ctx, preferred); h != nil {
		return h, nil
	}

	// Last resort: try the preferred identifiers directly, without
	// catalog validation.
	for _, name := range preferred {
		if h, err := r.Factory.New(ctx, name); err == nil {
			return h, nil
		}
	}

	return nil, ErrModelUnavailable
}

// fromCatalog matches the preference list against the live catalog.
// Returns nil when the catalog query fails or nothing instantiates; the
// caller falls through to direct instantiation.
func (r *Resolver) fromCatalog(ctx context.Context, preferred []string) TextHandle {
	if r.Catalog == nil {
		return nil
	}
	listed, err := r.Catalog.List(ctx)
	if err != nil {
		return nil
	}

	var capable []Candidate
	for _, c := range listed {
		if c.SupportsGeneration {
			capable = append(capable, c)
		}
	}

	for _, pref := range preferred {
		c, ok := match(pref, capable)
		if !ok {
			continue
		}
		if h, err := r.Factory.New(ctx, pref); err == nil {
			return h
		}
		// The preferred spelling failed; retry with the identifier
		// exactly as the catalog reported it.
		if h, err := r.Factory.New(ctx, c.Name); err == nil {
			return h
		}
	}

	// No preferred identifier produced a handle; take the first capable
	// candidate that instantiates, in catalog order.
	for _, c := range capable {
		if h, err := r.Factory.New(ctx, c.Normalized()); err == nil {
			return h
		}
	}

	return nil
}

// Session memoizes one resolution so the catalog is queried at most once,
// even under concurrent first use. Model availability is not expected to
// change within a session; construct a new Session to re-resolve.
type Session struct {
	resolver Resolver
	once     sync.Once
	handle   TextHandle
	err      error
}

// NewSession wraps r with resolve-once semantics.
func NewSession(r Resolver) *Session {
	return &Session{resolver: r}
}

// Handle returns the memoized resolution result, resolving on first call.
func (s *Session) Handle(ctx context.Context) (TextHandle, error) {
	s.once.Do(func() {
		s.handle, s.err = s.resolver.Resolve(ctx)
	})
	return s.handle, s.err
}
