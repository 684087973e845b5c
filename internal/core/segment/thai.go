package segment

import (
	"iter"
	"math"
	"slices"

	"github.com/clipperhouse/uax29/v2/words"
)

// ThaiSegmenter breaks Thai runs with maximal matching against a Lexicon.
//
// Text outside Thai script is handled exactly like WordSegmenter. Inside a
// Thai run, Thai character clusters are the smallest units, so a vowel, tone
// mark or final consonant is never cut from its syllable. Among all ways to
// cover the run with lexicon words and unknown text, the one with the fewest
// unknown clusters wins, then the one with the fewest units. Adjacent unknown
// text is returned as a single unit, and a bare consonant is never a unit on
// its own.
type ThaiSegmenter struct {
	lex *Lexicon
}

func NewThaiSegmenter(lex *Lexicon) *ThaiSegmenter {
	return &ThaiSegmenter{lex: lex}
}

// Units lazily yields the sub-word units of word.
func (s *ThaiSegmenter) Units(word string) iter.Seq[string] {
	return func(yield func(string) bool) {
		// UAX #29 leaves Thai letters as single-character tokens, so adjacent
		// Thai tokens are collected into one run and split here.
		runStart, runEnd := -1, -1
		flush := func() bool {
			if runStart < 0 {
				return true
			}
			run := word[runStart:runEnd]
			runStart = -1
			for _, unit := range s.split(run) {
				if !yield(unit) {
					return false
				}
			}
			return true
		}

		tokens := words.FromString(word)
		for tokens.Next() {
			tok := tokens.Value()
			if thaiScript(tok) {
				if runStart < 0 {
					runStart = tokens.Start()
				}
				runEnd = tokens.End()
				continue
			}
			if !flush() {
				return
			}
			if wordLike(tok) && !yield(tok) {
				return
			}
		}
		flush()
	}
}

func (s *ThaiSegmenter) Segment(word string) []string {
	return slices.Collect(s.Units(word))
}

// path is the best known way to reach a cluster boundary.
type path struct {
	unknown int
	units   int
	prev    int
	known   bool
}

func (p path) better(q path) bool {
	if p.unknown != q.unknown {
		return p.unknown < q.unknown
	}
	return p.units < q.units
}

func (s *ThaiSegmenter) split(run string) []string {
	cs := clusters(run)
	n := len(cs)
	if n == 0 {
		return nil
	}
	offsets := make([]int, n+1)
	for i, c := range cs {
		offsets[i+1] = c.end
	}

	best := make([]path, n+1)
	for i := 1; i <= n; i++ {
		best[i] = path{unknown: math.MaxInt, units: math.MaxInt, prev: -1}
	}

	// MaxRunes counts runes and the loop counts clusters. A cluster holds at
	// least one rune, so it is still an upper bound on a word's cluster span.
	maxSpan := s.lex.MaxRunes()
	for i := 1; i <= n; i++ {
		// Ties keep the earliest start, i.e. the longest final unit.
		for j := 0; j < i; j++ {
			from := best[j]
			if from.unknown == math.MaxInt {
				continue
			}
			if i-j <= maxSpan && s.lex.Contains(run[offsets[j]:offsets[i]]) {
				cand := path{unknown: from.unknown, units: from.units + 1, prev: j, known: true}
				if cand.better(best[i]) {
					best[i] = cand
				}
			}
			// A lone consonant is never a unit of its own unless it is the whole run.
			if i-j == 1 && n > 1 && cs[j].bare(run) {
				continue
			}
			cand := path{unknown: from.unknown + i - j, units: from.units + 1, prev: j}
			if cand.better(best[i]) {
				best[i] = cand
			}
		}
	}

	type span struct {
		start, end int
		known      bool
	}
	var spans []span
	for i := n; i > 0; i = best[i].prev {
		spans = append(spans, span{start: best[i].prev, end: i, known: best[i].known})
	}
	slices.Reverse(spans)

	units := make([]string, 0, len(spans))
	for i := 0; i < len(spans); i++ {
		sp := spans[i]
		if !sp.known {
			for i+1 < len(spans) && !spans[i+1].known {
				i++
				sp.end = spans[i].end
			}
		}
		units = append(units, run[offsets[sp.start]:offsets[sp.end]])
	}
	return units
}
