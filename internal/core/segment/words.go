package segment

import (
	"iter"
	"slices"

	"github.com/clipperhouse/uax29/v2/words"
)

// WordSegmenter splits on Unicode word boundaries and keeps word-like tokens.
type WordSegmenter struct{}

func NewWordSegmenter() *WordSegmenter {
	return &WordSegmenter{}
}

// Units lazily yields the word-like tokens of word.
func (s *WordSegmenter) Units(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		tokens := words.FromString(word)
		for tokens.Next() {
			tok := tokens.Value()
			if !wordLike(tok) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func (s *WordSegmenter) Segment(word string) []string {
	return slices.Collect(s.Units(word))
}
