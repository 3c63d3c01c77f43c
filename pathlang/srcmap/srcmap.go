// Package srcmap provides line/column lookups over raw source text.
//
// The lexer tracks (line, column) directly as it scans, which is the fast
// path for token positions. Map exists for the slower, occasional lookups
// needed by the annotator and by log() argument-span capture, where only a
// byte offset into the original source is in hand.
package srcmap

import "sort"

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Map is a precomputed index of line-start offsets for a source string.
type Map struct {
	src         string
	lineStarts  []int
}

// New builds a Map over src.
func New(src string) *Map {
	starts := []int{0}
	for i, r := range src {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Map{src: src, lineStarts: starts}
}

// Position returns the 1-based line and column for byte offset.
func (m *Map) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.src) {
		offset = len(m.src)
	}
	line := sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	col := offset - m.lineStarts[line] + 1
	return Position{Line: line + 1, Column: col}
}

// Slice returns the raw source text between two byte offsets, used to
// recover the original text of a log() argument expression for its label.
func (m *Map) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(m.src) {
		end = len(m.src)
	}
	if start >= end {
		return ""
	}
	return m.src[start:end]
}
