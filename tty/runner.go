package tty

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"neonshooter/game"
)

// FrameInterval is the redraw cadence, about 60 frames per second
const FrameInterval = 16 * time.Millisecond

var errQuit = errors.New("quit")

// Runner owns the terminal while a session is played in it
type Runner struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *Renderer
	input    Input
	log      zerolog.Logger
}

// NewRunner creates a runner on an initialised screen
func NewRunner(screen tcell.Screen, session *game.Session, log zerolog.Logger) *Runner {
	cols, rows := screen.Size()
	return &Runner{
		screen:   screen,
		session:  session,
		renderer: NewRenderer(screen, NewView(session.Bounds(), cols, rows)),
		log:      log,
	}
}

// Run plays until the user quits or ctx is cancelled. The event pump and
// the frame loop run in an errgroup; raw events cross to the frame loop
// over a channel so only the frame goroutine touches the session. The
// screen is finalised before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		return r.loop(ctx, events)
	})

	g.Go(func() error {
		<-ctx.Done()
		r.screen.Fini()
		return nil
	})

	err := g.Wait()
	r.session.Teardown()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (r *Runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return errQuit
			}
			if r.apply(r.input.Translate(ev, r.renderer.View())) {
				return errQuit
			}
		case <-ticker.C:
			r.session.Tick()
			r.renderer.Draw(r.session.Snapshot())
			r.screen.Show()
		}
	}
}

// apply runs a command and reports whether the user asked to quit
func (r *Runner) apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdQuit:
		r.log.Info().Msg("quit requested")
		return true
	case CmdPointer:
		r.session.SetPointer(cmd.Pos)
	case CmdPress:
		if cmd.Mouse {
			r.session.SetPointer(cmd.Pos)
		}
		r.session.Press(r.session.Now())
	case CmdRestart:
		if r.session.Phase() == game.PhaseGameOver {
			r.session.Restart()
			r.session.Start()
		}
	case CmdResize:
		r.renderer.SetView(NewView(r.session.Bounds(), cmd.Cols, cmd.Rows))
		r.screen.Sync()
		r.log.Debug().Int("cols", cmd.Cols).Int("rows", cmd.Rows).Msg("terminal resized")
	}
	return false
}
