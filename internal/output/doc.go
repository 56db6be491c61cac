// Package output maps source documents to their mirrored output locations,
// decides whether an existing translation is still current, and persists
// translated content. The output tree is namespaced by model identifier so
// runs against different translation backends never overwrite each other.
package output
