// Package render turns a solved or partial Grid into terminal output. It
// is a pure collaborator external to the solving engine (§6 of the
// specification mandates no particular rendering): the engine only
// exposes the Grid, and render is one way to look at it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nonogram-go/solver/internal/model"
)

// Glyphs controls the characters used for each of a Grid's three cell
// states. The zero value is not usable; use DefaultGlyphs.
type Glyphs struct {
	Full    string
	Empty   string
	Unknown string
}

// DefaultGlyphs matches the teacher's "█" for a painted cell, uses a
// middle dot for an empty cell and "?" for an unknown one.
var DefaultGlyphs = Glyphs{Full: "█", Empty: "·", Unknown: "?"}

// Plain renders the grid as plain text, one line per row, with no color
// and no borders — the simplest possible `Grid -> string` collaborator.
func Plain(g *model.Grid, glyphs Glyphs) string {
	var b strings.Builder
	for r := 0; r < g.H(); r++ {
		for c := 0; c < g.W(); c++ {
			b.WriteString(glyphString(g.At(r, c), glyphs))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func glyphString(cell model.PartialSquare, glyphs Glyphs) string {
	if !cell.IsKnown() {
		return glyphs.Unknown
	}
	if cell.Square() == model.Full {
		return glyphs.Full
	}
	return glyphs.Empty
}

// Print writes a colorized rendering of g to w, bordered the way the
// teacher's board printer draws its box-drawing borders, with Full cells
// highlighted and Unknown cells dimmed. noColor disables ANSI color
// (e.g. because the destination isn't a terminal).
func Print(w io.Writer, g *model.Grid, noColor bool) {
	full := color.New(color.Bold, color.FgHiWhite)
	unknown := color.New(color.FgHiBlack)
	if noColor {
		full.DisableColor()
		unknown.DisableColor()
	}

	width := g.W()
	fmt.Fprintln(w, "┌"+strings.Repeat("──", width)+"┐")
	for r := 0; r < g.H(); r++ {
		fmt.Fprint(w, "│")
		for c := 0; c < width; c++ {
			cell := g.At(r, c)
			switch {
			case cell.IsKnown() && cell.Square() == model.Full:
				full.Fprint(w, DefaultGlyphs.Full+" ")
			case cell.IsKnown():
				fmt.Fprint(w, DefaultGlyphs.Empty+" ")
			default:
				unknown.Fprint(w, DefaultGlyphs.Unknown+" ")
			}
		}
		fmt.Fprintln(w, "│")
	}
	fmt.Fprintln(w, "└"+strings.Repeat("──", width)+"┘")
}
