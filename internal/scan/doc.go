// Package scan discovers translatable Markdown documents under a source
// directory tree. Discovery is recursive, deterministic (lexicographic
// order) and tolerant of unreadable subdirectories.
package scan
