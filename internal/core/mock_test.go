package core

import "fmt"

// SequencePicker hands out colors in order, wrapping around.
type SequencePicker struct {
	Colors []string
	next   int
}

func (p *SequencePicker) Pick() string {
	c := p.Colors[p.next%len(p.Colors)]
	p.next++
	return c
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
