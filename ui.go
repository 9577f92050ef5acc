package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"neonshooter/game"
)

const (
	hudMarginX = 16
	hudMarginY = 24
	hudLineGap = 18

	buttonWidth  = 160
	buttonHeight = 36
)

var (
	uiFace font.Face = basicfont.Face7x13

	overlayShade = color.NRGBA{R: 0, G: 0, B: 0, A: 170}
	lifeGain     = color.RGBA{0x00, 0xff, 0xcc, 0xff}
)

// restartButton returns the game-over button rectangle for a screen size
func restartButton(w, h int) image.Rectangle {
	x := (w - buttonWidth) / 2
	y := h/2 + 40
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// hearts renders lives as a row of heart glyphs
func hearts(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("<3 ", n)
}

// drawHUD draws score, level, lives and weapon in the top-left corner
func drawHUD(screen *ebiten.Image, hud game.HUD) {
	y := hudMarginY
	text.Draw(screen, fmt.Sprintf("SCORE %d", hud.Score), uiFace, hudMarginX, y, color.White)
	y += hudLineGap
	text.Draw(screen, fmt.Sprintf("LEVEL %d / %d", hud.Level, game.MaxLevel), uiFace, hudMarginX, y, color.White)
	y += hudLineGap

	var lifeColor color.Color = color.White
	if hud.LowLives {
		lifeColor = colornames.Red
	}
	text.Draw(screen, "LIVES "+hearts(hud.Lives), uiFace, hudMarginX, y, lifeColor)
	y += hudLineGap
	text.Draw(screen, "WEAPON "+strings.ToUpper(hud.Weapon.String()), uiFace, hudMarginX, y, colornames.Lightgray)
}

// drawOverlay draws the phase-specific centre panel
func drawOverlay(screen *ebiten.Image, hud game.HUD) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cy := h / 2

	switch hud.Phase {
	case game.PhaseWaitingToStart:
		shade(screen)
		drawCentered(screen, "NEON SHOOTER", cy-20, colornames.Deepskyblue)
		drawCentered(screen, "CLICK OR PRESS SPACE TO START", cy+10, color.White)

	case game.PhaseTransitioning:
		if hud.Won {
			drawCentered(screen, "FINAL LEVEL CLEARED", cy-20, colornames.Gold)
			return
		}
		drawCentered(screen, fmt.Sprintf("LEVEL %d CLEARED", hud.Level), cy-20, color.White)
		drawCentered(screen, fmt.Sprintf("Entering level %d in %.1fs", hud.Level+1, hud.Dwell.Seconds()), cy+4, colornames.Lightgray)
		drawCentered(screen, "+1 life", cy+24, lifeGain)

	case game.PhaseGameOver:
		shade(screen)
		title, titleColor := "GAME OVER", color.Color(colornames.Red)
		if hud.Won {
			title, titleColor = "YOU WIN", colornames.Gold
		}
		drawCentered(screen, title, cy-30, titleColor)
		drawCentered(screen, fmt.Sprintf("Final score %d", hud.Score), cy, color.White)

		btn := restartButton(w, h)
		vector.StrokeRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), 2, colornames.White, true)
		label := "RESTART  [R]"
		b := text.BoundString(uiFace, label)
		text.Draw(screen, label, uiFace, btn.Min.X+(btn.Dx()-b.Dx())/2, btn.Min.Y+(btn.Dy()+b.Dy())/2, color.White)
	}
}

// drawDebug prints frame and entity counters
func drawDebug(screen *ebiten.Image, fps float64, ticks uint64, snap game.Snapshot, particles int) {
	msg := fmt.Sprintf("FPS %0.1f  TPS %0.1f  ticks %d\nenemies %d  shots %d  drops %d  sparks %d",
		fps, ebiten.ActualTPS(), ticks, len(snap.Enemies), len(snap.Projectiles), len(snap.Drops), particles)
	ebitenutil.DebugPrintAt(screen, msg, hudMarginX, screen.Bounds().Dy()-40)
}

func shade(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), overlayShade, false)
}

func drawCentered(screen *ebiten.Image, s string, y int, clr color.Color) {
	b := text.BoundString(uiFace, s)
	x := (screen.Bounds().Dx() - b.Dx()) / 2
	text.Draw(screen, s, uiFace, x, y, clr)
}
