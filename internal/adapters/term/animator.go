// Package term animates the solver's step stream in an ANSI terminal,
// redrawing the board in place with a configurable delay between frames.
package term

import (
	"fmt"
	"io"
	"time"

	"svw.info/doku/internal/grid"
	"svw.info/doku/internal/solver"
)

// ANSI escape sequences used for in-place redrawing.
const (
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	Bold       = "\x1b[1m"
	Reset      = "\x1b[0m"
	FgRed      = "\x1b[91m"
	FgGreen    = "\x1b[92m"
)

// CursorUp moves the cursor n lines up.
func CursorUp(n int) string { return fmt.Sprintf("\x1b[%dA", n) }

// Animator maintains a display copy of a grid and redraws it as steps arrive.
type Animator struct {
	w     io.Writer
	g     *grid.Grid
	delay time.Duration
	drawn bool
}

// New creates an animator over a display copy of g.
func New(w io.Writer, g *grid.Grid, delay time.Duration) *Animator {
	return &Animator{w: w, g: g.Clone(), delay: delay}
}

// Grid exposes the display copy (for inspecting the final frame).
func (a *Animator) Grid() *grid.Grid { return a.g }

// Apply mutates the display copy according to one solver step and redraws.
func (a *Animator) Apply(st solver.Step) error {
	var err error
	if st.Value == 0 {
		err = a.g.Unset(st.Cell.Row, st.Cell.Col)
	} else {
		err = a.g.Set(st.Cell.Row, st.Cell.Col, st.Value)
	}
	if err != nil {
		return err
	}
	return a.Draw()
}

// Draw renders the current frame, replacing the previous one.
func (a *Animator) Draw() error {
	s := ""
	if a.drawn {
		s = CursorUp(grid.RenderedLines)
	}
	a.drawn = true
	_, err := fmt.Fprint(a.w, s+a.frame())
	return err
}

// Run draws the initial frame and then replays the whole step stream,
// sleeping the configured delay after each frame. It leaves the last frame on
// screen; on a solved puzzle that frame is the first solution found.
func (a *Animator) Run(steps <-chan solver.Step) error {
	if err := a.Draw(); err != nil {
		return err
	}
	for st := range steps {
		if err := a.Apply(st); err != nil {
			return err
		}
		if a.delay > 0 {
			time.Sleep(a.delay)
		}
	}
	return nil
}

// frame is grid.Render with clue cells drawn bold. The box layout itself
// comes from the grid package; only the cell text is decided here.
func (a *Animator) frame() string {
	return a.g.RenderWith(func(r, c int, v uint8) string {
		switch {
		case v == 0:
			return ". "
		case a.g.Fixed(r, c):
			return Bold + string([]byte{'0' + v}) + Reset + " "
		default:
			return string([]byte{'0' + v, ' '})
		}
	})
}
