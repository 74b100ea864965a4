package report

import "fmt"

// Position is a single point in the source text.  All three fields are
// zero-indexed: Row and Col are counted in lines and runes respectively and
// Idx is the byte offset from the start of the source.  Positions are values
// and are never mutated once they have been stamped on a token or node.
type Position struct {
	Row, Col, Idx int
}

// String renders the position one-indexed as `row:col`.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}

// Before returns whether p occurs strictly before other in the source.
func (p Position) Before(other Position) bool {
	return p.Idx < other.Idx
}

// Advance returns the position following p after consuming the rune c whose
// UTF-8 encoding is size bytes long.
func (p Position) Advance(c rune, size int) Position {
	if c == '\n' {
		return Position{Row: p.Row + 1, Col: 0, Idx: p.Idx + size}
	}

	return Position{Row: p.Row, Col: p.Col + 1, Idx: p.Idx + size}
}
