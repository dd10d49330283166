// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

type fakeCatalog struct {
	candidates []Candidate
	err        error
	calls      int
}

func (f *fakeCatalog) List(_ context.Context) ([]Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

// fakeFactory hands out fakeHandles, rejecting any name in refuse.
type fakeFactory struct {
	refuse map[string]bool
	names  []string
}

func (f *fakeFactory) New(_ context.Context, name string) (TextHandle, error) {
	f.names = append(f.names, name)
	if f.refuse[name] {
		return nil, fmt.Errorf("model %s rejected", name)
	}
	return &fakeHandle{id: name}, nil
}

type fakeHandle struct {
	id string
}

func (h *fakeHandle) ModelID() string { return h.id }

func (h *fakeHandle) Generate(_ context.Context, _ string) (string, error) {
	return "", nil
}

const testKey = "test-key-0123456789"

func TestValidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"empty", "", false},
		{"short", "abc123", false},
		{"boundary length", "0123456789", false},
		{"placeholder", "your_api_key_here", false},
		{"valid", testKey, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidKey(tt.key); got != tt.want {
				t.Errorf("ValidKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"models/gemini-2.5-flash", "gemini-2.5-flash"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
		{"tunedModels/custom", "tunedModels/custom"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveRejectsBadCredential(t *testing.T) {
	for _, key := range []string{"", "short", "your_api_key_here"} {
		catalog := &fakeCatalog{}
		factory := &fakeFactory{}
		r := &Resolver{APIKey: key, Catalog: catalog, Factory: factory}

		_, err := r.Resolve(context.Background())
		if !errors.Is(err, ErrCredentialMissing) {
			t.Errorf("key %q: err = %v, want ErrCredentialMissing", key, err)
		}
		if catalog.calls != 0 {
			t.Errorf("key %q: catalog queried %d times, want 0", key, catalog.calls)
		}
		if len(factory.names) != 0 {
			t.Errorf("key %q: factory called with %v, want none", key, factory.names)
		}
	}
}

func TestResolvePicksHighestRankedMatch(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/gemini-2.5-flash", SupportsGeneration: true},
	}}
	factory := &fakeFactory{}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"gemini-2.5-pro", "gemini-2.5-flash"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "gemini-2.5-flash" {
		t.Errorf("resolved %q, want gemini-2.5-flash", h.ModelID())
	}
	if catalog.calls != 1 {
		t.Errorf("catalog queried %d times, want 1", catalog.calls)
	}
}

func TestResolveMatchStrategies(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantNew   string
	}{
		{"exact", "models/gemini-2.5-pro", "gemini-2.5-pro"},
		{"suffix", "models/tuned/gemini-2.5-pro", "gemini-2.5-pro"},
		{"substring", "models/gemini-2.5-pro-latest", "gemini-2.5-pro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{candidates: []Candidate{
				{Name: tt.candidate, SupportsGeneration: true},
			}}
			factory := &fakeFactory{}
			r := &Resolver{
				APIKey:    testKey,
				Preferred: []string{"gemini-2.5-pro"},
				Catalog:   catalog,
				Factory:   factory,
			}

			h, err := r.Resolve(context.Background())
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if h.ModelID() != tt.wantNew {
				t.Errorf("resolved %q, want %q", h.ModelID(), tt.wantNew)
			}
		})
	}
}

// An exact match must win over a looser match listed earlier in the
// catalog. The winner is observable through the catalog-spelling retry.
func TestResolveStrictestStrategyWins(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/gemini-pro-vision", SupportsGeneration: true},
		{Name: "models/gemini-pro", SupportsGeneration: true},
	}}
	factory := &fakeFactory{refuse: map[string]bool{"gemini-pro": true}}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"gemini-pro"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "models/gemini-pro" {
		t.Errorf("resolved %q, want models/gemini-pro", h.ModelID())
	}
}

func TestResolveRetriesCatalogSpelling(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/gemini-2.5-flash", SupportsGeneration: true},
	}}
	factory := &fakeFactory{refuse: map[string]bool{"gemini-2.5-flash": true}}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"gemini-2.5-flash"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "models/gemini-2.5-flash" {
		t.Errorf("resolved %q, want models/gemini-2.5-flash", h.ModelID())
	}
}

func TestResolveSkipsNonGenerating(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/embedding-001", SupportsGeneration: false},
		{Name: "models/gemini-2.5-flash", SupportsGeneration: true},
	}}
	factory := &fakeFactory{}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"embedding-001", "gemini-2.5-flash"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "gemini-2.5-flash" {
		t.Errorf("resolved %q, want gemini-2.5-flash", h.ModelID())
	}
}

func TestResolveFallsBackToFirstCapable(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/text-bison-001", SupportsGeneration: false},
		{Name: "models/other-model-a", SupportsGeneration: true},
		{Name: "models/other-model-b", SupportsGeneration: true},
	}}
	factory := &fakeFactory{}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"gemini-2.5-pro"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "other-model-a" {
		t.Errorf("resolved %q, want other-model-a", h.ModelID())
	}
}

func TestResolveSurvivesCatalogFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("listing unavailable")}
	factory := &fakeFactory{refuse: map[string]bool{"experimental-x": true}}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"experimental-x", "gemini-2.5-flash"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "gemini-2.5-flash" {
		t.Errorf("resolved %q, want gemini-2.5-flash", h.ModelID())
	}
	if catalog.calls != 1 {
		t.Errorf("catalog queried %d times, want 1", catalog.calls)
	}
}

func TestResolveMovesPastInstantiationFailure(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/gemini-2.5-pro", SupportsGeneration: true},
		{Name: "models/gemini-2.5-flash", SupportsGeneration: true},
	}}
	factory := &fakeFactory{refuse: map[string]bool{
		"gemini-2.5-pro":        true,
		"models/gemini-2.5-pro": true,
	}}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"gemini-2.5-pro", "gemini-2.5-flash"},
		Catalog:   catalog,
		Factory:   factory,
	}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "gemini-2.5-flash" {
		t.Errorf("resolved %q, want gemini-2.5-flash", h.ModelID())
	}
}

func TestResolveUnavailable(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("listing unavailable")}
	factory := &fakeFactory{refuse: map[string]bool{}}
	r := &Resolver{
		APIKey:    testKey,
		Preferred: []string{"gemini-2.5-pro"},
		Catalog:   catalog,
		Factory:   factory,
	}
	factory.refuse["gemini-2.5-pro"] = true

	_, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v, want ErrModelUnavailable", err)
	}
}

func TestResolveNilBackends(t *testing.T) {
	r := &Resolver{APIKey: testKey}

	_, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v, want ErrModelUnavailable", err)
	}
}

func TestResolveDefaultPreferenceOrder(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/gemini-2.5-flash", SupportsGeneration: true},
		{Name: "models/gemini-2.5-pro", SupportsGeneration: true},
	}}
	factory := &fakeFactory{}
	r := &Resolver{APIKey: testKey, Catalog: catalog, Factory: factory}

	h, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.ModelID() != "gemini-2.5-pro" {
		t.Errorf("resolved %q, want gemini-2.5-pro", h.ModelID())
	}
}

func TestSessionResolvesOnce(t *testing.T) {
	catalog := &fakeCatalog{candidates: []Candidate{
		{Name: "models/gemini-2.5-flash", SupportsGeneration: true},
	}}
	factory := &fakeFactory{}
	s := NewSession(Resolver{APIKey: testKey, Catalog: catalog, Factory: factory})

	var wg sync.WaitGroup
	handles := make([]TextHandle, 8)
	for i := range handles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := s.Handle(context.Background())
			if err != nil {
				t.Errorf("Handle: %v", err)
				return
			}
			handles[i] = h
		}(i)
	}
	wg.Wait()

	if catalog.calls != 1 {
		t.Errorf("catalog queried %d times, want 1", catalog.calls)
	}
	for i, h := range handles {
		if h != handles[0] {
			t.Errorf("handle %d differs from handle 0", i)
		}
	}
}

func TestSessionMemoizesFailure(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("listing unavailable")}
	factory := &fakeFactory{refuse: map[string]bool{}}
	for _, name := range DefaultPreferred {
		factory.refuse[name] = true
	}
	s := NewSession(Resolver{APIKey: testKey, Catalog: catalog, Factory: factory})

	for i := 0; i < 2; i++ {
		if _, err := s.Handle(context.Background()); !errors.Is(err, ErrModelUnavailable) {
			t.Fatalf("call %d: err = %v, want ErrModelUnavailable", i, err)
		}
	}
	if catalog.calls != 1 {
		t.Errorf("catalog queried %d times, want 1", catalog.calls)
	}
	if len(factory.names) != len(DefaultPreferred) {
		t.Errorf("factory called %d times, want %d", len(factory.names), len(DefaultPreferred))
	}
}
