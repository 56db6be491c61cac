package processor

// Outcome classifies the terminal state of one processed document.
type Outcome int

const (
	// OutcomeSkipped means the existing translation was still current.
	OutcomeSkipped Outcome = iota
	// OutcomeSaved means a translation was produced and written.
	OutcomeSaved
	// OutcomeFailed means reading, translating or writing produced no
	// usable output. Failed documents count in neither success counter.
	OutcomeFailed
)

// RunStats tracks aggregate counters across one batch run.
type RunStats struct {
	Total      int
	Translated int
	Skipped    int
	Failed     int
}
