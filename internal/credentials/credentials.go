// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials locates the Gemini API key from env files and the
// process environment. Files are tried in priority order: env.local, then
// .env.local, then .env; the process environment is the final fallback.
package credentials

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvVar is the environment variable that holds the API key.
const EnvVar = "GEMINI_API_KEY"

// envFiles lists the candidate files in priority order.
var envFiles = []string{"env.local", ".env.local", ".env"}

// minKeyLength is the shortest value accepted from an env file. A shorter
// value is treated as unset so a later source can supply the real key.
const minKeyLength = 10

// Locate returns the first plausible API key found in dir's env files,
// falling back to the process environment. Returns the empty string when
// no source provides one. Missing or unparseable files are skipped, and
// the process environment is never modified.
func Locate(dir string) string {
	for _, name := range envFiles {
		vars, err := godotenv.Read(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if key := vars[EnvVar]; len(key) > minKeyLength {
			return key
		}
	}
	return os.Getenv(EnvVar)
}
