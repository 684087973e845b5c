// Package segment splits words into sub-word units for partial matching.
//
// Two implementations are provided. WordSegmenter applies the Unicode word
// boundary rules (UAX #29) and is suitable for languages that delimit words
// with spaces. ThaiSegmenter additionally breaks runs of Thai script, which
// carry no word delimiters, using dictionary-based maximal matching.
package segment

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
)

// Segmenter decomposes a word into its ordered sub-word units. Non-word units
// such as whitespace and punctuation are never returned. An empty word yields
// an empty result.
type Segmenter interface {
	Segment(word string) []string
}

type options struct {
	lexicon    *Lexicon
	dictionary string
}

// Option configures New.
type Option func(*options)

// WithLexicon replaces the embedded Thai lexicon.
func WithLexicon(l *Lexicon) Option {
	return func(o *options) {
		o.lexicon = l
	}
}

// WithDictionaryFile extends the lexicon with the words listed in path.
func WithDictionaryFile(path string) Option {
	return func(o *options) {
		o.dictionary = path
	}
}

// New returns the segmenter for the given language. Thai gets the dictionary
// segmenter; every other language gets plain UAX #29 word segmentation.
func New(tag language.Tag, opts ...Option) (Segmenter, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if !IsThai(tag) {
		return NewWordSegmenter(), nil
	}

	lex := o.lexicon
	if lex == nil {
		var err error
		lex, err = DefaultThaiLexicon()
		if err != nil {
			return nil, err
		}
	}
	if o.dictionary != "" {
		if err := lex.LoadFile(o.dictionary); err != nil {
			return nil, fmt.Errorf("failed to extend lexicon: %w", err)
		}
	}

	return NewThaiSegmenter(lex), nil
}

// IsThai reports whether tag's base language is Thai.
func IsThai(tag language.Tag) bool {
	base, _ := tag.Base()
	thai, _ := language.Thai.Base()
	return base == thai
}

// wordLike mirrors the isWordLike notion of segmentation APIs: a token counts
// as a word when it holds at least one letter or digit.
func wordLike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

func thaiScript(token string) bool {
	for _, r := range token {
		if unicode.Is(unicode.Thai, r) {
			return true
		}
	}
	return false
}
