package config

import "os"

const DefaultRepoRoot = "."

// RepoRoot returns the documentation repository root from the
// DOCTOOLS_REPO env var, falling back to the current directory.
func RepoRoot() string {
	if env := os.Getenv("DOCTOOLS_REPO"); env != "" {
		return env
	}
	return DefaultRepoRoot
}
