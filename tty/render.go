package tty

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"neonshooter/game"
)

// Canvas is the part of tcell.Screen the renderer draws on
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleBase  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHUD   = styleBase.Bold(true)
	styleDim   = styleBase.Foreground(tcell.NewRGBColor(0x55, 0x55, 0x55))
	styleLow   = styleHUD.Foreground(tcell.NewRGBColor(0xff, 0x33, 0x33))
	styleGold  = styleHUD.Foreground(tcell.NewRGBColor(0xff, 0xd7, 0x00))
	styleRed   = styleHUD.Foreground(tcell.NewRGBColor(0xff, 0x33, 0x33))
	styleGreen = styleHUD.Foreground(tcell.NewRGBColor(0x00, 0xff, 0x99))
)

// headings are indexed by octant, starting east and turning clockwise
// (playfield y grows downward)
var headings = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Renderer draws snapshots onto a canvas
type Renderer struct {
	canvas Canvas
	view   View
}

// NewRenderer creates a renderer for the given view
func NewRenderer(c Canvas, v View) *Renderer {
	return &Renderer{canvas: c, view: v}
}

// SetView replaces the view after a resize
func (r *Renderer) SetView(v View) { r.view = v }

// View returns the current view
func (r *Renderer) View() View { return r.view }

// Draw paints a full frame
func (r *Renderer) Draw(snap game.Snapshot) {
	r.clear()
	r.drawHUD(snap.HUD)

	for _, d := range snap.Drops {
		r.stamp(d, '◆')
	}
	for _, e := range snap.Enemies {
		r.stamp(e, enemyGlyph(e))
	}
	for _, p := range snap.Projectiles {
		r.put(p.Pos, '•', styleFor(p.Color))
	}
	r.put(snap.Player.Pos, headingGlyph(snap.Player.Rotation), styleFor(game.PlayerColor).Bold(true))

	r.drawOverlay(snap.HUD)
}

func (r *Renderer) clear() {
	for y := 0; y < r.view.Rows+hudRows; y++ {
		for x := 0; x < r.view.Cols; x++ {
			r.canvas.SetContent(x, y, ' ', nil, styleBase)
		}
	}
}

func (r *Renderer) put(p game.Vec2, ch rune, style tcell.Style) {
	if x, y, ok := r.view.ToCell(p); ok {
		r.canvas.SetContent(x, y, ch, nil, style)
	}
}

// stamp fills every cell whose centre lies inside the sprite, then marks the
// centre with its glyph
func (r *Renderer) stamp(s game.Sprite, glyph rune) {
	cx, cy, ok := r.view.ToCell(s.Pos)
	if !ok {
		return
	}
	style := styleFor(s.Color)
	spanX := int(math.Ceil(s.Radius / r.view.cellW()))
	spanY := int(math.Ceil(s.Radius / r.view.cellH()))
	fill := '░'
	if s.ShowHP && s.HPFraction > 0.5 {
		fill = '▓'
	} else if s.ShowHP {
		fill = '▒'
	}

	for y := cy - spanY; y <= cy+spanY; y++ {
		for x := cx - spanX; x <= cx+spanX; x++ {
			if x < 0 || x >= r.view.Cols || y < hudRows || y >= r.view.Rows+hudRows {
				continue
			}
			if r.view.ToField(x, y).Dist(s.Pos) < s.Radius {
				r.canvas.SetContent(x, y, fill, nil, style)
			}
		}
	}
	r.canvas.SetContent(cx, cy, glyph, nil, style.Bold(true))
}

func (r *Renderer) drawHUD(h game.HUD) {
	lives := strings.Repeat("♥", max(h.Lives, 0))
	lifeStyle := styleHUD
	if h.LowLives {
		lifeStyle = styleLow
	}

	x := r.text(0, 0, fmt.Sprintf("SCORE %d ", h.Score), styleHUD)
	x = r.text(x, 0, fmt.Sprintf(" LEVEL %d/%d ", h.Level, game.MaxLevel), styleHUD)
	x = r.text(x, 0, " ", styleHUD)
	x = r.text(x, 0, lives, lifeStyle)
	r.text(x, 0, fmt.Sprintf("  %s", strings.ToUpper(h.Weapon.String())), styleDim)
}

func (r *Renderer) drawOverlay(h game.HUD) {
	mid := hudRows + r.view.Rows/2
	switch h.Phase {
	case game.PhaseWaitingToStart:
		r.centered(mid, "CLICK OR PRESS SPACE TO START", styleHUD)
	case game.PhaseTransitioning:
		if h.Won {
			r.centered(mid-1, "FINAL LEVEL CLEARED", styleGold)
			break
		}
		r.centered(mid-1, fmt.Sprintf("LEVEL %d CLEARED", h.Level), styleGreen)
		r.centered(mid, fmt.Sprintf("Entering level %d", h.Level+1), styleHUD)
		r.centered(mid+1, "+1 life", styleLow)
	case game.PhaseGameOver:
		if h.Won {
			r.centered(mid-1, "YOU WIN", styleGold)
		} else {
			r.centered(mid-1, "GAME OVER", styleRed)
		}
		r.centered(mid, fmt.Sprintf("Final score %d", h.Score), styleHUD)
		r.centered(mid+1, "[R] restart   [Q] quit", styleDim)
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	r.text((r.view.Cols-len([]rune(s)))/2, y, s, style)
}

// text writes s from column x and returns the column after it
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= 0 && x < r.view.Cols {
			r.canvas.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func enemyGlyph(s game.Sprite) rune {
	switch s.Shape {
	case game.ShapeTriangle:
		return '▲'
	case game.ShapeSquare:
		return '■'
	default:
		return '●'
	}
}

func headingGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headings[octant]
}

func styleFor(c color.RGBA) tcell.Style {
	return styleBase.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
