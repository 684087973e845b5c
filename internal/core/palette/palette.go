// Package palette assigns display colors to entries.
package palette

import (
	"errors"
	"math/rand/v2"
)

// Neutral is the background for history cells that are not highlighted.
const Neutral = "#f1f1f1"

// Default returns the stock five-color palette.
func Default() []string {
	return []string{"#f28b82", "#fbbc04", "#34a853", "#4285f4", "#ab47bc"}
}

// Picker chooses a color for a new entry.
type Picker interface {
	Pick() string
}

// Palette picks uniformly at random from a fixed set of colors.
// Colors need not be unique across entries.
type Palette struct {
	colors []string
	intN   func(n int) int
}

func New(colors []string) (*Palette, error) {
	if len(colors) == 0 {
		return nil, errors.New("palette needs at least one color")
	}
	return &Palette{
		colors: append([]string(nil), colors...),
		intN:   rand.IntN,
	}, nil
}

func (p *Palette) Pick() string {
	return p.colors[p.intN(len(p.colors))]
}

func (p *Palette) Colors() []string {
	return append([]string(nil), p.colors...)
}
