// Package storage persists uploaded files under the configured media
// directory. Rows reference files by their path relative to the root.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

type Media struct {
	Root string
}

var std *Media

// SetDefault installs the media store opened at startup.
func SetDefault(m *Media) { std = m }

// Default returns the media store opened at startup.
func Default() *Media { return std }

// Init creates the media root (and the per-kind subdirectories) if needed.
func Init(root string) (*Media, error) {
	for _, dir := range []string{root, filepath.Join(root, "lessons"), filepath.Join(root, "submissions")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create media dir %s: %w", dir, err)
		}
	}
	return &Media{Root: root}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFileName strips path components and replaces anything outside a
// conservative character set.
func SanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}

// NewPath returns a fresh relative path for an upload under the given
// kind ("lessons" or "submissions"). A UUID prefix keeps same-named
// uploads from colliding.
func (m *Media) NewPath(kind, fileName string) string {
	return filepath.Join(kind, uuid.NewString()+"_"+SanitizeFileName(fileName))
}

// Abs resolves a stored relative path against the media root. Paths that
// escape the root are rejected.
func (m *Media) Abs(rel string) (string, error) {
	abs := filepath.Join(m.Root, rel)
	root, err := filepath.Abs(m.Root)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(resolved, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes media root", rel)
	}
	return abs, nil
}

// Remove deletes a stored file; a missing file is not an error.
func (m *Media) Remove(rel string) error {
	abs, err := m.Abs(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
