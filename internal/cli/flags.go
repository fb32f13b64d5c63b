package cli

import (
	"time"

	"codeberg.org/snonux/tangocards/internal/config"
)

// DemoWord is used when neither a word nor a batch file is given.
const DemoWord = "攻撃"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BatchFile  string
	OutputFile string
	Archive    bool
	ListModels bool

	// Model flags
	Provider string
	Model    string
	BaseURL  string

	Analyzer string

	// Batch tuning
	Concurrency int
	Rate        float64
	Timeout     time.Duration

	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	defaults := config.Default()
	return &Flags{
		OutputFile: defaults.OutputFile,
		Provider:   defaults.Provider,
		Model:      defaults.Model,
		Analyzer:   defaults.Analyzer,
		LogLevel:   defaults.LogLevel,
		LogFormat:  defaults.LogFormat,
	}
}
