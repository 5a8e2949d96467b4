package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Primitive is anything the App can draw and route input to.
type Primitive interface {
	// Draw draws this primitive onto the screen.
	Draw(screen tcell.Screen)

	// GetRect returns the current position of the primitive, x, y, width, and
	// height.
	GetRect() (int, int, int, int)
	// SetRect sets a new position of the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse events. A non-nil capture primitive receives
	// all follow-up mouse events until it releases the capture.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
}

// Animator is implemented by primitives that move between frames. Animate
// advances the animation by one frame and reports whether anything changed.
type Animator interface {
	Animate(now time.Time) bool
}

// Command is a side effect requested by a primitive during input handling.
// Commands are executed by the App event loop.
type Command any

// BatchCommand groups multiple commands into a single command.
type BatchCommand []Command

// AppendCommand appends next to current and returns a merged command value.
// Nested batches are flattened.
func AppendCommand(current, next Command) Command {
	if next == nil {
		return current
	}
	if current == nil {
		return next
	}
	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if b, ok := c.(BatchCommand); ok {
			batch = append(batch, b...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// RedrawCommand requests a redraw at the end of the current event.
type RedrawCommand struct{}

// QuitCommand requests stopping the application event loop.
type QuitCommand struct{}

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)
