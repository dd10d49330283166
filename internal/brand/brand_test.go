// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brand

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandkit/brandkit/pkg/types"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		profile types.BrandProfile
	}{
		{
			name: "full profile",
			profile: types.BrandProfile{
				CompanyName:        "Acme Coffee",
				CompanyDescription: "Small-batch specialty coffee roaster",
				TargetAudience:     "urban professionals aged 25-40",
				ToneOfVoice:        "warm, knowledgeable, a little playful",
				BrandValues:        "sustainability, craft, transparency",
				KeyMessages:        "every bean has a story",
			},
		},
		{
			name:    "empty profile",
			profile: types.BrandProfile{},
		},
		{
			name: "multi-line values",
			profile: types.BrandProfile{
				CompanyName: "Acme",
				KeyMessages: "first message\nsecond message\nthird message",
			},
		},
		{
			name: "partial profile with empty strings",
			profile: types.BrandProfile{
				CompanyName:    "Acme",
				TargetAudience: "",
				ToneOfVoice:    "direct",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), "brand_profile.json"))
			require.NoError(t, store.Save(tt.profile))
			assert.Equal(t, tt.profile, store.Load())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Equal(t, types.BrandProfile{}, store.Load())
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated json", `{"company_name": "Acme`},
		{"not json at all", "this is not json"},
		{"wrong top-level type", `["a", "b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "brand_profile.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			store := NewStore(path)
			assert.Equal(t, types.BrandProfile{}, store.Load())
		})
	}
}

func TestSaveFailure(t *testing.T) {
	// A directory at the profile path makes the write fail.
	dir := t.TempDir()
	store := NewStore(dir)

	err := store.Save(types.BrandProfile{CompanyName: "Acme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPersistenceFailed))
}

func TestSaveUsesStableFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand_profile.json")
	store := NewStore(path)
	require.NoError(t, store.Save(types.BrandProfile{CompanyName: "Acme"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, key := range []string{
		"company_name", "company_description", "target_audience",
		"tone_of_voice", "brand_values", "key_messages",
	} {
		assert.Contains(t, string(data), key)
	}
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewStore("").Path())
	assert.Equal(t, "custom.json", NewStore("custom.json").Path())
}

func TestContextString(t *testing.T) {
	tests := []struct {
		name        string
		profile     types.BrandProfile
		wantLines   []string
		wantMissing []string
	}{
		{
			name: "all fields rendered in order",
			profile: types.BrandProfile{
				CompanyName:        "Acme",
				CompanyDescription: "roaster",
				TargetAudience:     "professionals",
				ToneOfVoice:        "warm",
				BrandValues:        "craft",
				KeyMessages:        "stories",
			},
			wantLines: []string{
				"Company name: Acme",
				"Company description: roaster",
				"Target audience: professionals",
				"Tone of voice: warm",
				"Brand values: craft",
				"Key messages: stories",
			},
		},
		{
			name:        "empty fields skipped",
			profile:     types.BrandProfile{CompanyName: "Acme", ToneOfVoice: "direct"},
			wantLines:   []string{"Company name: Acme", "Tone of voice: direct"},
			wantMissing: []string{"Target audience", "Brand values"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContextString(tt.profile)
			lines := strings.Split(got, "\n")
			assert.Equal(t, tt.wantLines, lines)
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestContextStringEmptyProfile(t *testing.T) {
	assert.Equal(t, EmptyContext, ContextString(types.BrandProfile{}))
}

func TestFieldsCoverEveryProfileField(t *testing.T) {
	p := types.BrandProfile{}
	for i, f := range Fields() {
		*f.Get(&p) = f.Name
		assert.NotEmpty(t, f.Label, "field %d has no label", i)
	}
	assert.False(t, p.IsEmpty(), "setting every field through Fields() should fill the profile")
	assert.Equal(t, "company_name", p.CompanyName)
	assert.Equal(t, "key_messages", p.KeyMessages)
}
