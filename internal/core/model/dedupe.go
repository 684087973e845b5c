package model

// Outcome of a submission.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDuplicate Outcome = "duplicate"
)

// Duplicate describes a flagged word awaiting resolution.
// Positions are the 1-based positions of the conflicting prior entries, ascending.
type Duplicate struct {
	Word      string `json:"word"`
	Positions []int  `json:"positions"`
}

// SubmitResult is returned for every successful submission. Entry is the
// entry that was appended, which happens whether or not a duplicate was found.
type SubmitResult struct {
	Outcome   Outcome `json:"outcome"`
	Entry     Entry   `json:"entry"`
	Word      string  `json:"word,omitempty"`
	Positions []int   `json:"positions,omitempty"`
}

func (r SubmitResult) IsDuplicate() bool {
	return r.Outcome == OutcomeDuplicate
}
