package anki

// Status classifies the outcome of building one card.
type Status int

const (
	// StatusOK means the card was built.
	StatusOK Status = iota
	// StatusSkipped means the word or its translation was empty.
	StatusSkipped
	// StatusMalformed means the analyzer output had no usable reading.
	StatusMalformed
	// StatusFailed means a collaborator call failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusMalformed:
		return "malformed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of generating one card. Card is set only for
// StatusOK; Err explains every other status.
type Result struct {
	Index  int    // Position of the word in the input list
	Word   string // The vocabulary word
	Card   *Card
	Status Status
	Err    error
}

// OK reports whether the result carries a card.
func (r Result) OK() bool {
	return r.Status == StatusOK && r.Card != nil
}
