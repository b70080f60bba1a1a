// Package gateways contains the filesystem adapters of the tap tooling.
package gateways

import (
	"fmt"
	"os"
	"path/filepath"
)

// FormulaWriter persists rendered formula text into the tap.
type FormulaWriter struct{}

// NewFormulaWriter creates a new formula writer.
func NewFormulaWriter() *FormulaWriter {
	return &FormulaWriter{}
}

// Write overwrites path with content, creating parent directories as
// needed. Prior file content is never read; every run is a full rewrite,
// so re-running with the same inputs is byte-identical.
func (w *FormulaWriter) Write(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	//nolint:gosec // G306: formula file is committed tap content, world-readable
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
