package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Materializer writes translated documents into a mirror of the source
// tree rooted at <OutputRoot>/<Model>.
type Materializer struct {
	SourceRoot string
	OutputRoot string
	Model      string
}

// NewMaterializer creates a materializer for the given roots and model
// identifier. The model string is used verbatim as a path component.
func NewMaterializer(sourceRoot, outputRoot, model string) *Materializer {
	return &Materializer{
		SourceRoot: sourceRoot,
		OutputRoot: outputRoot,
		Model:      model,
	}
}

// Path returns the output location for sourcePath:
// <OutputRoot>/<Model>/<sourcePath relative to SourceRoot>.
// A source path that does not resolve under SourceRoot falls back to its
// basename so the document still lands inside the output tree.
func (m *Materializer) Path(sourcePath string) string {
	rel, err := filepath.Rel(m.SourceRoot, sourcePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(sourcePath)
	}
	return filepath.Join(m.OutputRoot, m.Model, rel)
}

// Write persists content as the full replacement of the output file for
// sourcePath, creating intermediate directories as needed. The content is
// staged in a temporary file in the target directory and renamed into
// place, so a reader never observes a half-written file. Returns the
// output path that was written.
func (m *Materializer) Write(sourcePath, content string) (string, error) {
	outPath := m.Path(sourcePath)

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write translation: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	// CreateTemp uses 0600; match the mode a plain write would have used.
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpName, outPath); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to replace output file: %w", err)
	}

	return outPath, nil
}
