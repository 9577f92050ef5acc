// Package tty plays the game in a terminal with tcell. The playfield is
// scaled onto the character grid; one row is kept for the HUD.
package tty

import "neonshooter/game"

// hudRows is the number of rows reserved above the playfield
const hudRows = 1

// View maps playfield units to terminal cells
type View struct {
	Field      game.Rect
	Cols, Rows int
}

// NewView fits field into a cols x rows terminal
func NewView(field game.Rect, cols, rows int) View {
	return View{Field: field, Cols: max(cols, 1), Rows: max(rows-hudRows, 1)}
}

func (v View) cellW() float64 { return v.Field.W / float64(v.Cols) }
func (v View) cellH() float64 { return v.Field.H / float64(v.Rows) }

// ToCell returns the cell containing p and whether it is on screen
func (v View) ToCell(p game.Vec2) (x, y int, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	x = int(p.X / v.cellW())
	y = int(p.Y / v.cellH())
	if x >= v.Cols || y >= v.Rows {
		return 0, 0, false
	}
	return x, y + hudRows, true
}

// ToField returns the playfield point at the centre of a cell
func (v View) ToField(x, y int) game.Vec2 {
	y -= hudRows
	return game.Vec2{
		X: (float64(x) + 0.5) * v.cellW(),
		Y: (float64(y) + 0.5) * v.cellH(),
	}
}
