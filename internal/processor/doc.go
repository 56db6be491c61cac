// Package processor contains the core batch translation pipeline. It
// drives document discovery, staleness checks, translation calls and
// output materialization one document at a time, isolating per-document
// failures and accumulating summary counters for the whole run.
package processor
