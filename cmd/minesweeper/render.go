package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/game"
)

var faces = map[game.Face]string{
	game.Smile:   ":)",
	game.Worried: ":o",
	game.Dead:    "x(",
}

// glyph is the one-character drawing of a cell view.
func glyph(v cell.View) byte {
	switch v.Kind {
	case cell.Held:
		return '#'
	case cell.Flagged:
		return 'F'
	case cell.RevealedEmpty:
		return '.'
	case cell.RevealedNumbered:
		return byte('0' + v.Number)
	case cell.RevealedMine:
		if v.Highlight == cell.HighlightLoss {
			return 'X'
		}
		return '*'
	default:
		return '-'
	}
}

// render writes the header line and the grid with row and column labels.
func render(w io.Writer, s game.Snapshot) {
	fmt.Fprintf(w, "%s  mines %03d  time %03d  %s\n", faces[s.Face], s.RemainingMines, s.ElapsedSeconds, s.Status)

	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < s.Width; c++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('0' + c%10))
	}
	sb.WriteByte('\n')
	for r, row := range s.Cells {
		fmt.Fprintf(&sb, "%3d", r)
		for _, v := range row {
			sb.WriteByte(' ')
			sb.WriteByte(glyph(v))
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
