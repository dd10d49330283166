package types

// GenerationConfig holds settings for calls to the Gemini API.
type GenerationConfig struct {
	// PreferredModels is the ranked list of model identifiers tried during
	// resolution, most capable first. Empty uses the built-in default list.
	PreferredModels []string `json:"preferred_models,omitempty" yaml:"preferred_models,omitempty"`

	// Temperature controls sampling randomness (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// TopP is the nucleus sampling threshold (default 0.95).
	TopP float64 `json:"top_p" yaml:"top_p"`

	// MaxOutputTokens caps the response length (default 2048).
	MaxOutputTokens int `json:"max_output_tokens" yaml:"max_output_tokens"`
}

// ProfileConfig holds settings for brand profile storage.
type ProfileConfig struct {
	// Path is the profile file location (default "brand_profile.json").
	Path string `json:"path" yaml:"path"`
}

// HistoryConfig holds settings for the generation history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database and export files
	// (default ".brandkit").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Profile    ProfileConfig    `json:"profile" yaml:"profile"`
	History    HistoryConfig    `json:"history" yaml:"history"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
