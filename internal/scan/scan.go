package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Recognized document extensions (lowercase, with leading dot).
var documentExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// IsDocument reports whether path names a recognized document type.
func IsDocument(path string) bool {
	return documentExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover walks root, collects files with recognized document extensions,
// and returns the paths sorted lexicographically for deterministic
// processing order. An unreadable directory is reported to stderr and
// contributes zero files; it never aborts the rest of the walk. A root
// that does not exist yields an empty result (the caller checks root
// existence before deciding whether that is fatal).
func Discover(root string) []string {
	var docs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot read %s: %v\n", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if IsDocument(path) {
			docs = append(docs, path)
		}
		return nil
	})
	sort.Strings(docs)
	return docs
}
