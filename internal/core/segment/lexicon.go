package segment

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed lexicon/thai.txt
var thaiLexicon []byte

// Lexicon is the word set used by the dictionary segmenter.
type Lexicon struct {
	words    map[string]struct{}
	maxRunes int
}

func NewLexicon(words ...string) *Lexicon {
	l := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		l.Add(w)
	}
	return l
}

// DefaultThaiLexicon returns a fresh copy of the embedded Thai word list.
func DefaultThaiLexicon() (*Lexicon, error) {
	l := NewLexicon()
	if err := l.Load(bytes.NewReader(thaiLexicon)); err != nil {
		return nil, fmt.Errorf("failed to load embedded thai lexicon: %w", err)
	}
	return l, nil
}

// Add inserts a word. Surrounding whitespace is trimmed and empty words are ignored.
func (l *Lexicon) Add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	l.words[word] = struct{}{}
	if n := utf8.RuneCountInString(word); n > l.maxRunes {
		l.maxRunes = n
	}
}

func (l *Lexicon) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

// MaxRunes is the length of the longest word, in runes.
func (l *Lexicon) MaxRunes() int {
	return l.maxRunes
}

// Load reads one word per line. Blank lines and lines starting with '#' are skipped.
func (l *Lexicon) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.Add(line)
	}
	return sc.Err()
}

func (l *Lexicon) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open dictionary '%s': %w", path, err)
	}
	defer f.Close()

	if err := l.Load(f); err != nil {
		return fmt.Errorf("failed to read dictionary '%s': %w", path, err)
	}
	return nil
}
