package segment

import "strings"

// MockSegmenter splits on '-' so tests control sub-word units directly.
type MockSegmenter struct {
	Calls int
}

func (m *MockSegmenter) Segment(word string) []string {
	m.Calls++
	var out []string
	for _, part := range strings.Split(word, "-") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
