package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ayn2op/carousel"
	"github.com/ayn2op/carousel/config"
	"github.com/ayn2op/carousel/help"
	"github.com/ayn2op/carousel/keybind"
	"github.com/ayn2op/carousel/tui"
	"github.com/gdamore/tcell/v2"
)

// view stacks the carousel surface, its position indicator and the help bar.
type view struct {
	*tui.Box

	engine    *carousel.Engine
	deck      *deck
	surface   *tui.Surface
	indicator *tui.Indicator
	help      *help.Help
	bindings  []keybind.Binding
	logger    *log.Logger

	selected    int
	hasSelected bool
}

var (
	_ tui.Primitive = (*view)(nil)
	_ tui.Animator  = (*view)(nil)
	_ help.KeyMap   = (*view)(nil)
)

func newView(settings *config.Config, d *deck, logger *log.Logger) (*view, error) {
	v := &view{
		Box:       tui.NewBox(),
		deck:      d,
		indicator: tui.NewIndicator(),
		help:      help.New(),
		bindings:  settings.Bindings(),
		logger:    logger,
	}
	a := settings.Animation
	v.surface = tui.NewSurface().
		SetSpring(a.FPS, a.Frequency, a.Damping).
		SetMomentumScale(a.MomentumScale)
	v.surface.SetBorderSet(settings.BorderSet())

	options, err := settings.EngineOptions()
	if err != nil {
		return nil, err
	}
	engine, err := carousel.New(d, v.surface, v.surface, append(options, carousel.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	v.engine = engine

	engine.SetScrolledFunc(v.scrolled)
	engine.SetWillSnapFunc(func(index int) {
		logger.Printf("snapping to %d", index)
	})
	engine.SetSelectedFunc(func(index int) {
		v.selected, v.hasSelected = index, true
		logger.Printf("selected %s", d.cards[index].Title())
	})

	v.surface.SetHandler(engine)
	v.surface.SetResizedFunc(func(carousel.Size) {
		engine.Relayout()
	})
	v.surface.SetSelectedFunc(engine.Select)
	v.help.SetKeyMap(v)
	return v, nil
}

// ShortHelp implements help.KeyMap.
func (v *view) ShortHelp() []keybind.Binding {
	return v.bindings
}

func (v *view) scrolled(offset float64) {
	layout := v.engine.Layout()
	v.indicator.
		SetLengths(int(layout.ContentWidth()), int(layout.Viewport().Width)).
		SetOffset(int(offset))
}

// SetRect gives the surface everything but the last two rows.
func (v *view) SetRect(x, y, width, height int) {
	v.Box.SetRect(x, y, width, height)
	v.surface.SetRect(x, y, width, max(height-2, 0))
	v.indicator.SetRect(x+1, y+height-2, max(width-2, 0), 1)
	v.help.SetRect(x+1, y+height-1, max(width-2, 0), 1)
}

func (v *view) Draw(screen tcell.Screen) {
	v.DrawFrame(screen)
	v.surface.SetTitle(v.title())
	v.surface.Draw(screen)
	v.indicator.Draw(screen)
	v.help.Draw(screen)
}

func (v *view) title() string {
	wrap := "off"
	if v.engine.Infinite() {
		wrap = "on"
	}
	status := fmt.Sprintf(" snap %s · wrap %s ", v.engine.SnapBehavior(), wrap)
	if index, ok := v.engine.CenterIndex(); ok {
		status = fmt.Sprintf(" %d/%d ·%s", index+1, v.deck.Count(), status)
	}
	if v.hasSelected {
		status += fmt.Sprintf("· selected %s ", v.deck.cards[v.selected].Title())
	}
	return status
}

// Animate implements tui.Animator.
func (v *view) Animate(now time.Time) bool {
	return v.surface.Animate(now)
}

func (v *view) InputHandler(event *tcell.EventKey) tui.Command {
	action, ok := keybind.Resolve(event, v.bindings...)
	if !ok {
		return nil
	}

	count := v.deck.Count()
	switch action {
	case keybind.ActionPrevious:
		v.step(-1)
	case keybind.ActionNext:
		v.step(1)
	case keybind.ActionFirst:
		v.engine.ScrollTo(0, true)
	case keybind.ActionLast:
		v.engine.ScrollTo(count-1, true)
	case keybind.ActionSelect:
		center := v.surface.Offset() + v.surface.ViewportSize().Width/2
		if physical, ok := v.engine.ItemAt(center); ok {
			v.engine.Select(physical)
		}
	case keybind.ActionToggleSnap:
		v.engine.SetSnapBehavior((v.engine.SnapBehavior() + 1) % (carousel.SnapNone + 1))
		v.logger.Printf("snap behavior %s", v.engine.SnapBehavior())
	case keybind.ActionToggleInfinite:
		v.engine.SetInfinite(!v.engine.Infinite())
		v.logger.Printf("infinite %t", v.engine.Infinite())
	case keybind.ActionQuit:
		return tui.QuitCommand{}
	}
	return tui.RedrawCommand{}
}

// step scrolls to the neighbor of the centered card, wrapping around when
// the carousel is infinite.
func (v *view) step(direction int) {
	count := v.deck.Count()
	center, ok := v.engine.CenterIndex()
	if !ok {
		return
	}
	next := center + direction
	if v.engine.Infinite() {
		next = (next%count + count) % count
	} else {
		next = min(max(next, 0), count-1)
	}
	v.engine.ScrollTo(next, true)
}

func (v *view) MouseHandler(action tui.MouseAction, event *tcell.EventMouse) (tui.Primitive, tui.Command) {
	x, y := event.Position()
	if !v.surface.InRect(x, y) {
		return nil, nil
	}
	return v.surface.MouseHandler(action, event)
}
