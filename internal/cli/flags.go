package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	SourceDir  string
	OutputDir  string
	Force      bool
	DryRun     bool
	Pace       time.Duration
	ListModels bool
	Archive    bool

	// Translation flags
	Provider   string
	Model      string
	TargetLang string
	SourceLang string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		SourceDir:  "docs",
		OutputDir:  "translated",
		Provider:   "openai",
		Model:      "gpt-4o-mini",
		TargetLang: "en",
		Pace:       time.Second,
	}
}
