package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFileWithTime(t *testing.T, path, content string, mtime time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestIsCurrent(t *testing.T) {
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	tests := []struct {
		name        string
		sourceTime  time.Time
		outputTime  time.Time
		writeOutput bool
		want        bool
	}{
		{
			name:        "no output file",
			sourceTime:  base,
			writeOutput: false,
			want:        false,
		},
		{
			name:        "output newer than source",
			sourceTime:  base,
			outputTime:  base.Add(time.Minute),
			writeOutput: true,
			want:        true,
		},
		{
			name:        "output older than source",
			sourceTime:  base,
			outputTime:  base.Add(-time.Minute),
			writeOutput: true,
			want:        false,
		},
		{
			name:        "identical timestamps",
			sourceTime:  base,
			outputTime:  base,
			writeOutput: true,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcRoot := t.TempDir()
			outRoot := t.TempDir()
			m := NewMaterializer(srcRoot, outRoot, "test-model")

			source := filepath.Join(srcRoot, "doc.md")
			writeFileWithTime(t, source, "original", tt.sourceTime)

			if tt.writeOutput {
				writeFileWithTime(t, m.Path(source), "translated", tt.outputTime)
			}

			if got := m.IsCurrent(source); got != tt.want {
				t.Errorf("IsCurrent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCurrent_MissingSource(t *testing.T) {
	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	m := NewMaterializer(srcRoot, outRoot, "test-model")

	source := filepath.Join(srcRoot, "gone.md")
	writeFileWithTime(t, m.Path(source), "translated", time.Now())

	// Fail open: an unstattable source must trigger re-translation,
	// never a silent skip.
	if m.IsCurrent(source) {
		t.Error("Expected IsCurrent to be false when the source cannot be statted")
	}
}

func TestIsCurrent_SourceEditInvalidatesOutput(t *testing.T) {
	srcRoot := t.TempDir()
	outRoot := t.TempDir()
	m := NewMaterializer(srcRoot, outRoot, "test-model")

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	source := filepath.Join(srcRoot, "doc.md")
	writeFileWithTime(t, source, "original", base)
	writeFileWithTime(t, m.Path(source), "translated", base.Add(time.Minute))

	if !m.IsCurrent(source) {
		t.Fatal("Expected translation to be current before the edit")
	}

	// Bump the source past the output.
	writeFileWithTime(t, source, "edited", base.Add(2*time.Minute))

	if m.IsCurrent(source) {
		t.Error("Expected edited source to invalidate the existing translation")
	}
}
