package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonshooter/game"
)

var (
	backgroundColor = color.NRGBA{R: 5, G: 5, B: 5, A: 255}
	// trailFade is painted over the previous frame so moving shapes leave streaks
	trailFade = color.NRGBA{R: 5, G: 5, B: 5, A: 51}

	hpBack  = color.RGBA{255, 0, 0, 255}
	hpFront = color.RGBA{144, 238, 144, 255}
)

// Renderer draws snapshots with a fading trail canvas
type Renderer struct {
	trail   *ebiten.Image
	fillImg *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Renderer{fillImg: fillImg}
}

// Render fades the trail canvas, draws the world onto it and copies it to screen
func (r *Renderer) Render(screen *ebiten.Image, snap game.Snapshot, particles *ParticleSystem) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if r.trail == nil || r.trail.Bounds().Dx() != w || r.trail.Bounds().Dy() != h {
		if r.trail != nil {
			r.trail.Deallocate()
		}
		r.trail = ebiten.NewImage(w, h)
		r.trail.Fill(backgroundColor)
	}

	vector.DrawFilledRect(r.trail, 0, 0, float32(w), float32(h), trailFade, false)

	for _, d := range snap.Drops {
		r.drawSprite(r.trail, d)
	}
	r.drawShip(r.trail, snap.Player)
	for _, p := range snap.Projectiles {
		r.drawSprite(r.trail, p)
	}
	for _, e := range snap.Enemies {
		r.drawSprite(r.trail, e)
	}
	particles.Draw(r.trail)

	screen.DrawImage(r.trail, nil)

	// hp bars skip the trail so they never smear
	for _, e := range snap.Enemies {
		if e.ShowHP {
			drawHPBar(screen, e)
		}
	}
}

// Reset wipes the trail, used when the world is cleared
func (r *Renderer) Reset() {
	if r.trail != nil {
		r.trail.Fill(backgroundColor)
	}
}

func (r *Renderer) drawSprite(dst *ebiten.Image, s game.Sprite) {
	drawGlow(dst, s.Pos, s.Radius, s.Color)
	switch s.Shape {
	case game.ShapeCircle:
		vector.DrawFilledCircle(dst, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Radius), s.Color, true)
	case game.ShapeTriangle:
		r.fillPolygon(dst, transform(trianglePoints, s), s.Color)
	case game.ShapeSquare:
		r.fillPolygon(dst, transform(squarePoints, s), s.Color)
	case game.ShapeShip:
		r.drawShip(dst, s)
	}
}

// drawShip draws the player triangle with a blue glow, nose along the heading
func (r *Renderer) drawShip(dst *ebiten.Image, s game.Sprite) {
	drawGlow(dst, s.Pos, s.Radius, game.PlayerGlow)
	pts := transform(shipPoints, s)
	r.fillPolygon(dst, pts, s.Color)
	vector.StrokeLine(dst, float32(s.Pos.X), float32(s.Pos.Y), float32(pts[0].X), float32(pts[0].Y), 2, game.PlayerGlow, true)
}

// Unit outlines. Angle 0 points along +X.
var (
	trianglePoints = []game.Vec2{{X: 0, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	squarePoints   = []game.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	shipPoints     = []game.Vec2{{X: 1, Y: 0}, {X: -0.75, Y: -0.75}, {X: -0.4, Y: 0}, {X: -0.75, Y: 0.75}}
)

// transform scales a unit outline by the sprite radius, rotates and places it
func transform(unit []game.Vec2, s game.Sprite) []game.Vec2 {
	sin, cos := math.Sincos(s.Rotation)
	out := make([]game.Vec2, len(unit))
	for i, p := range unit {
		x, y := p.X*s.Radius, p.Y*s.Radius
		out[i] = game.Vec2{
			X: s.Pos.X + x*cos - y*sin,
			Y: s.Pos.Y + x*sin + y*cos,
		}
	}
	return out
}

func (r *Renderer) fillPolygon(dst *ebiten.Image, pts []game.Vec2, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	for i := range r.vs {
		r.vs[i].SrcX = 0
		r.vs[i].SrcY = 0
		r.vs[i].ColorR = float32(clr.R) / 255
		r.vs[i].ColorG = float32(clr.G) / 255
		r.vs[i].ColorB = float32(clr.B) / 255
		r.vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawGlow approximates a shadow blur with two translucent halos
func drawGlow(dst *ebiten.Image, pos game.Vec2, radius float64, c color.RGBA) {
	outer := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 28}
	inner := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 56}
	vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y), float32(radius*1.9), outer, true)
	vector.DrawFilledCircle(dst, float32(pos.X), float32(pos.Y), float32(radius*1.4), inner, true)
}

// drawHPBar draws a red bar with the remaining fraction in green above the sprite
func drawHPBar(dst *ebiten.Image, s game.Sprite) {
	barWidth := s.Radius * 2
	barX := s.Pos.X - s.Radius
	barY := s.Pos.Y - s.Radius - 10
	vector.DrawFilledRect(dst, float32(barX), float32(barY), float32(barWidth), 4, hpBack, true)
	vector.DrawFilledRect(dst, float32(barX), float32(barY), float32(barWidth*s.HPFraction), 4, hpFront, true)
}
