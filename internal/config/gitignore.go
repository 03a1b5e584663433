package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitignoreContent keeps config.yaml and factors/ trackable while ignoring
// log output written under the esgfocus home directory.
const gitignoreContent = `# esgfocus home (auto-generated)
# config.yaml and factors/ are tracked; logs are not.
*.log
logs/
`

// GitignoreContent returns the .gitignore content written by EnsureGitignore.
func GitignoreContent() string {
	return gitignoreContent
}

// EnsureGitignore creates a .gitignore in dir unless one already exists.
// It reports whether a new file was written. An existing file is never touched.
func EnsureGitignore(dir string) (bool, error) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(gitignorePath)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking .gitignore at %s: %w", gitignorePath, err)
	}

	if mkdirErr := os.MkdirAll(dir, 0o700); mkdirErr != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644); writeErr != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", gitignorePath, writeErr)
	}
	return true, nil
}
