package tty

import (
	"github.com/gdamore/tcell/v2"

	"neonshooter/game"
)

// CommandKind is what a terminal event asks the game to do
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdPointer
	CmdPress
	CmdRestart
	CmdResize
	CmdQuit
)

// Command is a translated terminal event
type Command struct {
	Kind CommandKind
	// Pos is the playfield point under the mouse when Mouse is set
	Pos   game.Vec2
	Mouse bool
	// Cols and Rows are the new terminal size for CmdResize
	Cols, Rows int
}

// Input turns tcell events into commands. It remembers the mouse buttons so
// a held button fires once per press.
type Input struct {
	buttons tcell.ButtonMask
}

// Translate converts one event using the current view
func (in *Input) Translate(ev tcell.Event, v View) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return in.translateMouse(x, y, ev.Buttons(), v)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Command{Kind: CmdResize, Cols: cols, Rows: rows}
	}
	return Command{}
}

func translateKey(k tcell.Key, r rune) Command {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CmdQuit}
	case tcell.KeyEnter:
		return Command{Kind: CmdPress}
	case tcell.KeyRune:
		switch r {
		case ' ':
			return Command{Kind: CmdPress}
		case 'r', 'R':
			return Command{Kind: CmdRestart}
		case 'q', 'Q':
			return Command{Kind: CmdQuit}
		}
	}
	return Command{}
}

func (in *Input) translateMouse(x, y int, buttons tcell.ButtonMask, v View) Command {
	pressed := buttons&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
	in.buttons = buttons

	pos := v.ToField(x, y)
	if pressed {
		return Command{Kind: CmdPress, Pos: pos, Mouse: true}
	}
	return Command{Kind: CmdPointer, Pos: pos, Mouse: true}
}
