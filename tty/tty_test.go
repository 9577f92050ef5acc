package tty

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"neonshooter/game"
)

// fakeCanvas records the last rune written to each cell
type fakeCanvas struct {
	cells map[[2]int]rune
}

func newFakeCanvas() *fakeCanvas { return &fakeCanvas{cells: make(map[[2]int]rune)} }

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = primary
}

func (c *fakeCanvas) row(y, cols int) string {
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		sb.WriteRune(c.cells[[2]int{x, y}])
	}
	return sb.String()
}

var field = game.Rect{W: 800, H: 600}

func TestViewMapping(t *testing.T) {
	v := NewView(field, 80, 31)

	tests := []struct {
		p      game.Vec2
		x, y   int
		inside bool
	}{
		{game.Vec2{}, 0, 1, true},
		{game.Vec2{X: 400, Y: 300}, 40, 16, true},
		{game.Vec2{X: 799, Y: 599}, 79, 30, true},
		{game.Vec2{X: 800, Y: 10}, 0, 0, false},
		{game.Vec2{X: -1, Y: 10}, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := v.ToCell(tt.p)
		if ok != tt.inside || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("ToCell(%v): expected (%d,%d,%v), got (%d,%d,%v)", tt.p, tt.x, tt.y, tt.inside, x, y, ok)
		}
	}

	if p := v.ToField(40, 16); p != (game.Vec2{X: 405, Y: 310}) {
		t.Errorf("Expected cell centre (405,310), got %v", p)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want CommandKind
	}{
		{"Escape", tcell.KeyEscape, 0, CmdQuit},
		{"Ctrl-C", tcell.KeyCtrlC, 0, CmdQuit},
		{"q", tcell.KeyRune, 'q', CmdQuit},
		{"Space", tcell.KeyRune, ' ', CmdPress},
		{"Enter", tcell.KeyEnter, 0, CmdPress},
		{"r", tcell.KeyRune, 'r', CmdRestart},
		{"Other", tcell.KeyRune, 'x', CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.key, tt.r).Kind; got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMousePressFiresOncePerClick(t *testing.T) {
	var in Input
	v := NewView(field, 80, 31)

	first := in.translateMouse(40, 16, tcell.Button1, v)
	if first.Kind != CmdPress || !first.Mouse || first.Pos != (game.Vec2{X: 405, Y: 310}) {
		t.Errorf("Expected press at (405,310), got %+v", first)
	}
	if held := in.translateMouse(41, 16, tcell.Button1, v); held.Kind != CmdPointer {
		t.Errorf("Expected a held button to only move the pointer, got %v", held.Kind)
	}
	in.translateMouse(41, 16, tcell.ButtonNone, v)
	if again := in.translateMouse(41, 16, tcell.Button1, v); again.Kind != CmdPress {
		t.Errorf("Expected a new press after release, got %v", again.Kind)
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{-math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi / 4, '↗'},
	}
	for _, tt := range tests {
		if got := headingGlyph(tt.angle); got != tt.want {
			t.Errorf("Angle %v: expected %c, got %c", tt.angle, tt.want, got)
		}
	}
}

func TestDrawFrame(t *testing.T) {
	c := newFakeCanvas()
	r := NewRenderer(c, NewView(field, 80, 31))

	r.Draw(game.Snapshot{
		Player: game.Sprite{Pos: game.Vec2{X: 400, Y: 300}, Rotation: -math.Pi / 2},
		Enemies: []game.Sprite{
			{Pos: game.Vec2{X: 100, Y: 100}, Radius: 15, Shape: game.ShapeCircle},
			{Pos: game.Vec2{X: 600, Y: 100}, Radius: 30, Shape: game.ShapeSquare, ShowHP: true, HPFraction: 1},
		},
		Projectiles: []game.Sprite{{Pos: game.Vec2{X: 400, Y: 200}, Radius: 5}},
		HUD: game.HUD{
			Progress: game.Progress{Score: 1200, Lives: 3, Level: 1, Phase: game.PhasePlaying},
			Weapon:   game.WeaponShotgun,
		},
	})

	hud := c.row(0, 80)
	for _, want := range []string{"SCORE 1200", "LEVEL 1/3", "♥♥♥", "SHOTGUN"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}
	if got := c.cells[[2]int{40, 16}]; got != '↑' {
		t.Errorf("Expected player arrow, got %c", got)
	}
	if got := c.cells[[2]int{40, 11}]; got != '•' {
		t.Errorf("Expected projectile, got %c", got)
	}
	if got := c.cells[[2]int{10, 6}]; got != '●' {
		t.Errorf("Expected basic enemy, got %c", got)
	}
	if got := c.cells[[2]int{60, 6}]; got != '■' {
		t.Errorf("Expected tank, got %c", got)
	}
	if got := c.cells[[2]int{58, 6}]; got != '▓' {
		t.Errorf("Expected healthy tank body, got %c", got)
	}
}

func TestDrawGameOverOverlay(t *testing.T) {
	tests := []struct {
		name string
		won  bool
		want string
	}{
		{"Lost", false, "GAME OVER"},
		{"Won", true, "YOU WIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFakeCanvas()
			r := NewRenderer(c, NewView(field, 80, 31))
			r.Draw(game.Snapshot{HUD: game.HUD{Progress: game.Progress{Score: 8000, Phase: game.PhaseGameOver, Won: tt.won}}})

			if row := c.row(15, 80); !strings.Contains(row, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, row)
			}
			if row := c.row(16, 80); !strings.Contains(row, "Final score 8000") {
				t.Errorf("Expected final score, got %q", row)
			}
		})
	}
}

func TestRunnerApply(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 31)

	cfg := game.DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight = 800, 600
	s := game.NewSession(cfg, game.WithRandom(&game.ScriptedRandom{Values: []float64{0.99}}))
	r := NewRunner(screen, s, zerolog.Nop())

	if r.apply(Command{Kind: CmdPress}) {
		t.Fatal("Expected press not to quit")
	}
	if s.Phase() != game.PhasePlaying {
		t.Fatalf("Expected the first press to start play, got %v", s.Phase())
	}

	r.apply(Command{Kind: CmdPress, Mouse: true, Pos: game.Vec2{X: 400, Y: 100}})
	if n := len(s.World().Projectiles); n != 1 {
		t.Fatalf("Expected a shot, got %d projectiles", n)
	}
	if v := s.World().Projectiles[0].Vel; v.Y >= 0 {
		t.Errorf("Expected the shot to travel up toward the click, got %v", v)
	}

	r.apply(Command{Kind: CmdResize, Cols: 100, Rows: 41})
	if v := r.renderer.View(); v.Cols != 100 || v.Rows != 40 {
		t.Errorf("Expected a 100x40 view, got %dx%d", v.Cols, v.Rows)
	}

	if !r.apply(Command{Kind: CmdQuit}) {
		t.Error("Expected quit")
	}
}
