package core

import (
	"fmt"

	"github.com/vovakirdan/seabattle/internal/battle"
)

// Board layout:
//
//	Title
//	  | 1 | 2 | 3 | 4 | 5 | 6 |
//	1 | O | O | O | O | O | O |
//	...
//	Ships afloat: 7/7
const (
	BoardWidth  = 3 + 4*battle.GridSize
	BoardHeight = 3 + battle.GridSize
	boardGap    = 6
)

// BoardStyle controls how a snapshot is drawn.
type BoardStyle struct {
	Glyphs Glyphs
	Title  string
	Cursor *battle.Coord // highlighted cell, nil for none
}

// DrawBoard draws snap with its top-left corner at (x, y).
func DrawBoard(s *Screen, x, y int, snap battle.Snapshot, style BoardStyle) {
	s.DrawTextColor(x, y, style.Title, ColorBrightWhite)

	header := "  |"
	for c := 1; c <= battle.GridSize; c++ {
		header += fmt.Sprintf(" %d |", c)
	}
	s.DrawTextColor(x, y+1, header, ColorGray)

	for r := 0; r < battle.GridSize; r++ {
		row := y + 2 + r
		s.DrawTextColor(x, row, fmt.Sprintf("%d |", r+1), ColorGray)
		for c := 0; c < battle.GridSize; c++ {
			cx := x + 4 + 4*c
			cell := GlyphCell(snap.Visible(battle.C(r, c)), style.Glyphs)
			if style.Cursor != nil && *style.Cursor == battle.C(r, c) {
				s.SetCell(cx-1, row, Cell{Rune: '[', Color: ColorBrightYellow})
				s.SetCell(cx+1, row, Cell{Rune: ']', Color: ColorBrightYellow})
			}
			s.SetCell(cx, row, cell)
			s.SetCell(cx+2, row, Cell{Rune: '|', Color: ColorGray})
		}
	}

	s.DrawTextColor(x, y+2+battle.GridSize,
		fmt.Sprintf("Ships afloat: %d/%d", snap.Alive, snap.Total), ColorCyan)
}

// GlyphCell maps a visible cell state to its drawn character.
func GlyphCell(st battle.CellState, g Glyphs) Cell {
	switch st {
	case battle.CellOccupied:
		return Cell{Rune: g.Ship, Color: ColorGreen}
	case battle.CellHit:
		return Cell{Rune: g.Hit, Color: ColorBrightRed}
	case battle.CellMiss, battle.CellSunkRing:
		return Cell{Rune: g.Miss, Color: ColorGray}
	default:
		return Cell{Rune: g.Water, Color: ColorBlue}
	}
}

// BoardsScreen draws two boards side by side into a fresh Screen.
func BoardsScreen(left, right battle.Snapshot, leftStyle, rightStyle BoardStyle) *Screen {
	s := NewScreen(2*BoardWidth+boardGap, BoardHeight)
	DrawBoard(s, 0, 0, left, leftStyle)
	DrawBoard(s, BoardWidth+boardGap, 0, right, rightStyle)
	return s
}
