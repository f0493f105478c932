package core

// Glyphs are the characters used to draw a board.
type Glyphs struct {
	Ship  rune // unhit vessel cell, only shown when the board is revealed
	Water rune // unexplored cell
	Hit   rune
	Miss  rune // misses and the water ring around sunk vessels
}

// DefaultGlyphs returns the classic board symbols.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Ship:  '■',
		Water: 'O',
		Hit:   'X',
		Miss:  'T',
	}
}

// GlyphsFrom builds Glyphs from configured strings, keeping the default for
// any empty value.
func GlyphsFrom(ship, water, hit, miss string) Glyphs {
	g := DefaultGlyphs()
	pick := func(dst *rune, s string) {
		for _, r := range s {
			*dst = r
			return
		}
	}
	pick(&g.Ship, ship)
	pick(&g.Water, water)
	pick(&g.Hit, hit)
	pick(&g.Miss, miss)
	return g
}
