package model

import "fmt"

// Kind distinguishes a row line from a column line.
type Kind uint8

const (
	RowKind Kind = iota
	ColKind
)

func (k Kind) String() string {
	if k == RowKind {
		return "row"
	}
	return "col"
}

// LineIndex identifies a single row or column of a Puzzle. It is a small
// comparable value, so it can be used directly as a map key or a set
// element (the dirty-line queue's membership set keys on it).
type LineIndex struct {
	Kind  Kind
	Index int
}

// Row builds the LineIndex for row i.
func Row(i int) LineIndex { return LineIndex{Kind: RowKind, Index: i} }

// Col builds the LineIndex for column j.
func Col(j int) LineIndex { return LineIndex{Kind: ColKind, Index: j} }

func (li LineIndex) String() string {
	return fmt.Sprintf("%s(%d)", li.Kind, li.Index)
}

// LineThrough returns the perpendicular line that passes through position k
// of this line: Row(i).LineThrough(k) is Col(k), and symmetrically.
func (li LineIndex) LineThrough(k int) LineIndex {
	if li.Kind == RowKind {
		return Col(k)
	}
	return Row(k)
}
