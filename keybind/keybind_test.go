package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "  q ", want: "q"},
		{in: "Q", want: "Q"},
		{in: "Left", want: "left"},
		{in: "Escape", want: "esc"},
		{in: "Return", want: "enter"},
		{in: "PageDown", want: "pgdn"},
		{in: "space", want: " "},
		{in: "Rune[h]", want: "h"},
		{in: "Ctrl+C", want: "ctrl+c"},
		{in: "ctrl-c", want: "ctrl+c"},
		{in: "shift+ctrl+X", want: "ctrl+shift+x"},
		{in: "backtab", want: "shift+tab"},
		{in: "+", want: "+"},
		{in: "ctrl+", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		want  string
	}{
		{name: "rune", event: tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), want: "l"},
		{name: "shifted rune", event: tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), want: "G"},
		{name: "alt rune", event: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), want: "alt+x"},
		{name: "arrow", event: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), want: "left"},
		{name: "shift arrow", event: tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), want: "shift+right"},
		{name: "ctrl letter", event: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), want: "ctrl+c"},
		{name: "enter", event: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), want: "enter"},
		{name: "tab", event: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), want: "tab"},
		{name: "backtab", event: tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), want: "shift+tab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EventString(tt.event))
		})
	}
}

func TestResolve(t *testing.T) {
	next := NewBinding(ActionNext, WithKeys("right", "l"), WithHelp("→", "next"))
	quit := NewBinding(ActionQuit, WithKeys("q", "ctrl+c"))

	action, ok := Resolve(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), next, quit)
	assert.True(t, ok)
	assert.Equal(t, ActionNext, action)

	action, ok = Resolve(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), next, quit)
	assert.True(t, ok)
	assert.Equal(t, ActionQuit, action)

	_, ok = Resolve(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), next, quit)
	assert.False(t, ok)
}

func TestBindingEnabled(t *testing.T) {
	b := NewBinding(ActionSelect, WithKeys("enter", "Return"))
	assert.Equal(t, []string{"enter"}, b.Keys())
	assert.True(t, b.Enabled())

	event := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	assert.True(t, b.Matches(event))

	b.SetEnabled(false)
	assert.False(t, b.Matches(event))

	b.SetEnabled(true)
	b.SetKeys()
	assert.False(t, b.Enabled())
	assert.False(t, b.Matches(nil))
}
