package model

import (
	"errors"
	"testing"
)

func TestBuilderDimensions(t *testing.T) {
	p, err := NewBuilder().
		PushRow([]int{5}).
		PushRow([]int{1}).
		PushRow([]int{5}).
		PushRow([]int{1}).
		PushRow([]int{5}).
		PushCol([]int{3, 1}).
		PushCol([]int{1, 1, 1}).
		PushCol([]int{1, 1, 1}).
		PushCol([]int{1, 1, 1}).
		PushCol([]int{1, 3}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}

	if p.W() != 5 {
		t.Errorf("W() = %d, want 5", p.W())
	}
	if p.H() != 5 {
		t.Errorf("H() = %d, want 5", p.H())
	}
}

func TestBuilderRejectsOverflowingHints(t *testing.T) {
	_, err := NewBuilder().
		PushRow([]int{5}).
		PushCol([]int{1}).
		Build()

	if !errors.Is(err, ErrMalformedPuzzle) {
		t.Fatalf("Build() error = %v, want ErrMalformedPuzzle", err)
	}
}

func TestBuilderAcceptsExactFit(t *testing.T) {
	_, err := NewBuilder().
		PushRow([]int{2, 2}).
		PushCol([]int{1}).
		PushCol([]int{1}).
		PushCol([]int{1}).
		PushCol([]int{1}).
		PushCol([]int{1}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned unexpected error for an exact fit: %v", err)
	}
}

func TestLinesCanonicalOrder(t *testing.T) {
	p, err := NewBuilder().
		PushRow([]int{1}).
		PushRow([]int{1}).
		PushCol([]int{1}).
		PushCol([]int{1}).
		PushCol([]int{1}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned unexpected error: %v", err)
	}

	var got []LineIndex
	for li := range p.Lines() {
		got = append(got, li)
	}

	want := []LineIndex{Row(0), Row(1), Col(0), Col(1), Col(2)}
	if len(got) != len(want) {
		t.Fatalf("len(Lines()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLineThrough(t *testing.T) {
	if got := Row(2).LineThrough(3); got != Col(3) {
		t.Errorf("Row(2).LineThrough(3) = %v, want Col(3)", got)
	}
	if got := Col(4).LineThrough(1); got != Row(1) {
		t.Errorf("Col(4).LineThrough(1) = %v, want Row(1)", got)
	}
}
