package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

const (
	leadingVowels  = "เแโใไ"
	trailingVowels = "าะๅ"
	maiHanAkat     = 'ั'
	thanthakhat    = '์'
)

// cluster is a Thai character cluster: a span no word boundary can fall inside.
type cluster struct {
	start, end int
	lead       bool // leading vowels still waiting for their consonant
	open       bool // mai han-akat still waiting for its final consonant
}

func (c cluster) bare(run string) bool {
	return isBareConsonant(run[c.start:c.end])
}

// clusters groups the grapheme clusters of a Thai run into character clusters.
// Unicode keeps leading vowels, sara aa and silenced consonants apart from the
// syllable they belong to, so those are glued back here.
func clusters(run string) []cluster {
	var out []cluster
	g := graphemes.FromString(run)
	for g.Next() {
		v := g.Value()
		first, _ := utf8.DecodeRuneInString(v)

		if n := len(out); n > 0 {
			p := &out[n-1]
			if p.lead ||
				strings.ContainsRune(trailingVowels, first) ||
				strings.HasSuffix(v, string(thanthakhat)) ||
				(p.open && isBareConsonant(v)) {
				p.end = g.End()
				p.lead = onlyLeadingVowels(run[p.start:p.end])
				p.open = strings.ContainsRune(v, maiHanAkat)
				continue
			}
		}

		out = append(out, cluster{
			start: g.Start(),
			end:   g.End(),
			lead:  onlyLeadingVowels(v),
			open:  strings.ContainsRune(v, maiHanAkat),
		})
	}
	return out
}

func onlyLeadingVowels(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(leadingVowels, r) {
			return false
		}
	}
	return s != ""
}

func isBareConsonant(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && r >= 'ก' && r <= 'ฮ'
}
