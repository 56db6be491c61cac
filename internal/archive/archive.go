package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/mdglot/internal/scan"
)

// ArchiveTranslations moves the output directory aside into a timestamped
// archive so the next run starts from a clean tree. The directory may
// hold several model-namespaced subtrees; all of them move together.
// Returns the number of translated documents that were put away.
func ArchiveTranslations(outputDir string) (int, error) {
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		return 0, fmt.Errorf("output directory does not exist: %s", outputDir)
	}

	count := countDocuments(outputDir)

	parentDir := filepath.Dir(outputDir)
	archiveDir := filepath.Join(parentDir, "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("translations-%s", timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("translations-%s", timestamp))
	}

	if err := os.Rename(outputDir, archivePath); err != nil {
		return 0, fmt.Errorf("failed to archive output directory: %w", err)
	}

	fmt.Printf("Archived %d translated documents to: %s\n", count, archivePath)
	return count, nil
}

// countDocuments counts the translated documents under dir, skipping
// anything that is not a recognized document type (temp files, assets).
func countDocuments(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if scan.IsDocument(path) {
			count++
		}
		return nil
	})
	return count
}
