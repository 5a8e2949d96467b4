package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// The size of the queued updates channel.
const updatesQueueSize = 100

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// queuedUpdate represents the execution of f queued by App.QueueUpdate. If
// done is not nil, it receives exactly one element after f has executed.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// App owns the terminal screen and runs the event loop. Key events, mouse
// events, animation frames and queued updates are all handled on the goroutine
// that called Run, so primitives never need locking.
type App struct {
	sync.RWMutex

	screen tcell.Screen
	root   Primitive

	events  chan tcell.Event
	updates chan queuedUpdate
	quit    chan struct{}
	fps     int

	mouseCapturingPrimitive Primitive        // Receives follow-up mouse events.
	lastMouseX, lastMouseY  int              // The last position of the mouse.
	mouseDownX, mouseDownY  int              // The position of the mouse when its button was last pressed.
	lastMouseClick          time.Time        // The time when a mouse button was last clicked.
	lastMouseButtons        tcell.ButtonMask // The last mouse button state.

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApp returns an App without a screen or root.
func NewApp() *App {
	return &App{
		events:  make(chan tcell.Event, updatesQueueSize),
		updates: make(chan queuedUpdate, updatesQueueSize),
		quit:    make(chan struct{}),
		fps:     DefaultFPS,
	}
}

// SetScreen sets the screen to run on. The screen must already be
// initialized. Without one, Run creates a terminal screen.
func (a *App) SetScreen(screen tcell.Screen) *App {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetRoot sets the primitive that fills the screen.
func (a *App) SetRoot(root Primitive) *App {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()
	return a
}

// SetFPS sets how often animating primitives are advanced.
func (a *App) SetFPS(fps int) *App {
	a.Lock()
	a.fps = max(fps, 1)
	a.Unlock()
	return a
}

// Run starts the event loop. It returns when Stop is called or the screen
// reports an error.
func (a *App) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
		a.screen = screen
	}
	screen := a.screen
	fps := a.fps
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	go a.pollEvents(screen)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	a.draw()

	var appErr error
EventLoop:
	for {
		select {
		case <-a.quit:
			break EventLoop

		case event := <-a.events:
			if event == nil {
				break EventLoop
			}
			switch event := event.(type) {
			case *tcell.EventKey:
				a.RLock()
				root := a.root
				a.RUnlock()
				if root != nil && a.executeCommand(root.InputHandler(event)) {
					a.draw()
				}
			case *tcell.EventResize:
				a.Lock()
				a.forceRedraw = true
				a.Unlock()
				a.draw()
			case *tcell.EventMouse:
				handled, isMouseDownAction := a.fireMouseActions(event)
				if handled {
					a.draw()
				}
				a.lastMouseButtons = event.Buttons()
				if isMouseDownAction {
					a.mouseDownX, a.mouseDownY = event.Position()
				}
			case *tcell.EventError:
				appErr = event
				a.Stop()
			}

		case now := <-ticker.C:
			a.RLock()
			root := a.root
			a.RUnlock()
			if animator, ok := root.(Animator); ok && animator.Animate(now) {
				a.draw()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}

	return appErr
}

// pollEvents forwards screen events to the event loop until the screen is
// finalized.
func (a *App) pollEvents(screen tcell.Screen) {
	for {
		event := screen.PollEvent()
		select {
		case a.events <- event:
		case <-a.quit:
			return
		}
		if event == nil {
			return
		}
	}
}

// fireMouseActions derives mouse actions from the event and forwards them to
// the capturing primitive or the root.
func (a *App) fireMouseActions(event *tcell.EventMouse) (handled, isMouseDownAction bool) {
	var targetPrimitive Primitive

	fire := func(action MouseAction) {
		if action == MouseLeftDown {
			isMouseDownAction = true
		}

		var primitive, capturingPrimitive Primitive
		if a.mouseCapturingPrimitive != nil {
			primitive = a.mouseCapturingPrimitive
			targetPrimitive = a.mouseCapturingPrimitive
		} else if targetPrimitive != nil {
			primitive = targetPrimitive
		} else {
			a.RLock()
			primitive = a.root
			a.RUnlock()
		}
		if primitive != nil {
			var cmd Command
			capturingPrimitive, cmd = primitive.MouseHandler(action, event)
			if a.executeCommand(cmd) {
				handled = true
			}
		}
		a.mouseCapturingPrimitive = capturingPrimitive
	}

	x, y := event.Position()
	buttons := event.Buttons()
	clickMoved := x != a.mouseDownX || y != a.mouseDownY
	buttonChanges := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX = x
		a.lastMouseY = y
	}

	if buttonChanges&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			fire(MouseLeftDown)
		} else {
			fire(MouseLeftUp)
			if !clickMoved {
				if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
					fire(MouseLeftClick)
					a.lastMouseClick = time.Now()
				} else {
					fire(MouseLeftDoubleClick)
					a.lastMouseClick = time.Time{}
				}
			}
		}
	}

	for _, wheelEvent := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&wheelEvent.button != 0 {
			fire(wheelEvent.action)
		}
	}

	return handled, isMouseDownAction
}

// Stop finalizes the screen and makes Run return.
func (a *App) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
	close(a.quit)
}

// draw lays out the root over the whole screen and draws it.
func (a *App) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// QueueUpdate runs f on the event loop goroutine and returns after it has
// executed.
func (a *App) QueueUpdate(f func()) *App {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws the screen afterwards.
func (a *App) QueueUpdateDraw(f func()) *App {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// QueueEvent sends an event to the event loop.
func (a *App) QueueEvent(event tcell.Event) *App {
	a.events <- event
	return a
}

// executeCommand runs a command and reports whether a redraw is needed.
func (a *App) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		handled := false
		for _, item := range c {
			if a.executeCommand(item) {
				handled = true
			}
		}
		return handled
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	}
	return false
}
