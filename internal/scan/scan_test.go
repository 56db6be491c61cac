package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsDocument(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"readme.md", true},
		{"guide.markdown", true},
		{"GUIDE.MD", true},
		{"notes.Markdown", true},
		{"image.png", false},
		{"script.sh", false},
		{"md", false},
		{"archive.md.bak", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsDocument(tt.path); got != tt.want {
				t.Errorf("IsDocument(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	files := []string{
		"readme.md",
		"guide/install.md",
		"guide/advanced/tuning.markdown",
		"guide/advanced/diagram.svg",
		"changelog.txt",
	}
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := Discover(root)
	want := []string{
		filepath.Join(root, "guide", "advanced", "tuning.markdown"),
		filepath.Join(root, "guide", "install.md"),
		filepath.Join(root, "readme.md"),
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_EmptyTree(t *testing.T) {
	root := t.TempDir()

	if got := Discover(root); len(got) != 0 {
		t.Errorf("Expected no documents in empty tree, got %v", got)
	}
}

func TestDiscover_NonexistentRoot(t *testing.T) {
	got := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(got) != 0 {
		t.Errorf("Expected no documents for nonexistent root, got %v", got)
	}
}

func TestDiscover_UnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("Skipping permission test: running as root")
	}

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "readable.md"), []byte("# Readable\n"), 0644); err != nil {
		t.Fatal(err)
	}

	locked := filepath.Join(root, "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "hidden.md"), []byte("# Hidden\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	// The unreadable subtree contributes zero files but must not abort
	// the rest of the walk.
	got := Discover(root)
	want := []string{filepath.Join(root, "readable.md")}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestDiscover_DeterministicOrder(t *testing.T) {
	root := t.TempDir()

	for _, f := range []string{"c.md", "a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(root, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	first := Discover(root)
	second := Discover(root)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Discovery order not stable: %v vs %v", first, second)
	}
	if len(first) != 3 || filepath.Base(first[0]) != "a.md" {
		t.Errorf("Expected sorted order starting with a.md, got %v", first)
	}
}
