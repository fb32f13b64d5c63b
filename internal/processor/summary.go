package processor

import (
	"fmt"
	"io"

	colorize "github.com/fatih/color"

	"codeberg.org/snonux/tangocards/internal/anki"
)

// Summary counts the outcomes of a batch run
type Summary struct {
	Total     int
	Written   int
	Skipped   int
	Malformed int
	Failed    int

	OutputPath  string
	ArchivePath string
}

// Add counts one result
func (s *Summary) Add(r anki.Result) {
	s.Total++
	switch r.Status {
	case anki.StatusOK:
		s.Written++
	case anki.StatusSkipped:
		s.Skipped++
	case anki.StatusMalformed:
		s.Malformed++
	default:
		s.Failed++
	}
}

// Print writes the summary block to w
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(w, "Total words: %d\n", s.Total)
	fmt.Fprintf(w, "Written: %s\n", colorize.GreenString("%d", s.Written))
	if s.Skipped > 0 {
		fmt.Fprintf(w, "Skipped (insufficient input): %s\n", colorize.YellowString("%d", s.Skipped))
	}
	if s.Malformed > 0 {
		fmt.Fprintf(w, "Malformed readings: %s\n", colorize.YellowString("%d", s.Malformed))
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, "Errors: %s\n", colorize.RedString("%d", s.Failed))
	}
	if s.ArchivePath != "" {
		fmt.Fprintf(w, "Previous output archived to: %s\n", s.ArchivePath)
	}
	if s.OutputPath != "" {
		fmt.Fprintf(w, "Output: %s\n", colorize.HiWhiteString(s.OutputPath))
	}
	fmt.Fprintf(w, "================================\n")
}
