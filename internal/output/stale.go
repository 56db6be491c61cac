package output

import "os"

// IsCurrent reports whether the translation for sourcePath may be skipped:
// true iff an output file exists at the mirrored location and its
// modification time is not older than the source's.
//
// Comparing mtimes is a heuristic. An edit that does not bump the source
// mtime, or source and output trees on filesystems with different mtime
// resolution, can produce a wrong answer. That limitation is accepted;
// there is no content hashing. A stat problem on the source itself counts
// as "not current" so a doubtful document is re-translated rather than
// silently skipped.
func (m *Materializer) IsCurrent(sourcePath string) bool {
	out, err := os.Stat(m.Path(sourcePath))
	if err != nil {
		return false
	}
	src, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	return !out.ModTime().Before(src.ModTime())
}
