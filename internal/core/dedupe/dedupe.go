package dedupe

import (
	"fmt"

	"github.com/agenthands/kamsam/internal/core/model"
	"github.com/agenthands/kamsam/internal/core/segment"
)

// Detector decides whether a new word duplicates entries already in the round.
type Detector struct {
	Segmenter segment.Segmenter
}

func NewDetector(seg segment.Segmenter) *Detector {
	return &Detector{
		Segmenter: seg,
	}
}

// FindDuplicates returns the 1-based positions of the prior entries that word
// conflicts with under policy, in ascending order. Nil means no duplicate.
func (d *Detector) FindDuplicates(policy model.Policy, word string, priors []model.Entry) ([]int, error) {
	switch policy {
	case model.PolicyExact:
		return d.exact(word, priors), nil
	case model.PolicyPartial:
		return d.partial(word, priors), nil
	default:
		return nil, fmt.Errorf("unsupported matching policy %q", policy)
	}
}

// exact reports only the first prior entry with identical text.
func (d *Detector) exact(word string, priors []model.Entry) []int {
	if i := FirstExact(word, priors); i >= 0 {
		return []int{i + 1}
	}
	return nil
}

// partial reports every prior entry sharing at least one sub-word unit with word.
func (d *Detector) partial(word string, priors []model.Entry) []int {
	units := d.Segmenter.Segment(word)
	if len(units) == 0 || len(priors) == 0 {
		return nil
	}

	wanted := make(map[string]struct{}, len(units))
	for _, u := range units {
		wanted[u] = struct{}{}
	}

	var positions []int
	for i, prior := range priors {
		for _, u := range d.Segmenter.Segment(prior.Text) {
			if _, ok := wanted[u]; ok {
				positions = append(positions, i+1)
				break
			}
		}
	}
	return positions
}

// FirstExact returns the index of the first entry whose text equals word, or -1.
func FirstExact(word string, entries []model.Entry) int {
	for i, e := range entries {
		if e.Text == word {
			return i
		}
	}
	return -1
}
