// Package keybind maps normalized key strings to carousel actions.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action is something a key press asks the carousel to do.
type Action string

const (
	ActionPrevious       Action = "previous"
	ActionNext           Action = "next"
	ActionFirst          Action = "first"
	ActionLast           Action = "last"
	ActionSelect         Action = "select"
	ActionToggleSnap     Action = "toggle_snap"
	ActionToggleInfinite Action = "toggle_infinite"
	ActionQuit           Action = "quit"
)

// Binding ties a set of keys to an action and a help entry.
type Binding struct {
	action   Action
	keys     []string
	help     Help
	disabled bool
}

// Help is the short description shown in the help bar.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Binding)

// NewBinding returns a binding for action configured by options.
func NewBinding(action Action, options ...Option) Binding {
	b := Binding{action: action}
	for _, option := range options {
		option(&b)
	}
	return b
}

// WithKeys sets the keys, normalized.
func WithKeys(keys ...string) Option {
	return func(b *Binding) {
		b.keys = normalizeKeys(keys)
	}
}

// WithHelp sets the help entry.
func WithHelp(key, desc string) Option {
	return func(b *Binding) {
		b.help = Help{Key: key, Desc: desc}
	}
}

func (b Binding) Action() Action {
	return b.action
}

func (b Binding) Keys() []string {
	return b.keys
}

// SetKeys replaces the keys. An empty list disables the binding.
func (b *Binding) SetKeys(keys ...string) {
	b.keys = normalizeKeys(keys)
}

func (b Binding) Help() Help {
	return b.help
}

func (b Binding) Enabled() bool {
	return !b.disabled && len(b.keys) > 0
}

func (b *Binding) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Matches reports whether the event triggers the binding.
func (b Binding) Matches(event *tcell.EventKey) bool {
	if event == nil || !b.Enabled() {
		return false
	}
	return slices.Contains(b.keys, EventString(event))
}

// Resolve returns the action of the first binding matching the event.
func Resolve(event *tcell.EventKey, bindings ...Binding) (Action, bool) {
	for _, b := range bindings {
		if b.Matches(event) {
			return b.action, true
		}
	}
	return "", false
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = Normalize(key); key != "" && !slices.Contains(out, key) {
			out = append(out, key)
		}
	}
	return out
}

// Normalize turns a user written key such as "Ctrl+C", "ctrl-c" or "Rune[q]"
// into the form produced by EventString.
func Normalize(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	// A lone "+" is the plus key, not a separator.
	if key == "+" {
		return key
	}
	if lower := strings.ToLower(key); strings.HasPrefix(lower, "ctrl-") && len(key) > len("ctrl-") {
		key = "ctrl+" + key[len("ctrl-"):]
	}

	var mods []string
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "":
		case "ctrl", "control":
			mods = appendUnique(mods, "ctrl")
		case "alt":
			mods = appendUnique(mods, "alt")
		case "shift":
			mods = appendUnique(mods, "shift")
		case "meta":
			mods = appendUnique(mods, "meta")
		default:
			primary = normalizePrimary(part)
		}
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods = appendUnique(mods, "shift")
		primary = "tab"
	}
	if len(mods) == 0 {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinMods(mods, primary)
}

func normalizePrimary(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) > len("Rune[]") {
		return key[len("Rune[") : len(key)-1]
	}
	if len([]rune(key)) == 1 {
		return key
	}
	switch lower := strings.ToLower(key); lower {
	case "escape":
		return "esc"
	case "return":
		return "enter"
	case "pageup":
		return "pgup"
	case "pagedown":
		return "pgdn"
	case "space":
		return " "
	default:
		return lower
	}
}

// EventString returns the normalized key string of a key event.
func EventString(event *tcell.EventKey) string {
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && key != tcell.KeyTab && key != tcell.KeyEnter && key != tcell.KeyBackspace {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	if key == tcell.KeyBacktab {
		return "shift+tab"
	}

	var primary string
	if key == tcell.KeyRune {
		primary = string(event.Rune())
	} else {
		primary = keyName(key)
	}
	if primary == "" {
		return Normalize(event.Name())
	}

	var mods []string
	m := event.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods = append(mods, "ctrl")
	}
	if m&tcell.ModAlt != 0 {
		mods = append(mods, "alt")
	}
	// Shift is already part of the rune.
	if m&tcell.ModShift != 0 && key != tcell.KeyRune {
		mods = append(mods, "shift")
	}
	if m&tcell.ModMeta != 0 {
		mods = append(mods, "meta")
	}
	if len(mods) == 0 {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	return joinMods(mods, primary)
}

func keyName(key tcell.Key) string {
	switch key {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	}
	return ""
}

// joinMods orders modifiers canonically so "shift+ctrl+x" and
// "ctrl+shift+x" normalize alike.
func joinMods(mods []string, primary string) string {
	ordered := make([]string, 0, len(mods)+1)
	for _, m := range []string{"ctrl", "alt", "shift", "meta"} {
		if slices.Contains(mods, m) {
			ordered = append(ordered, m)
		}
	}
	return strings.Join(append(ordered, primary), "+")
}

func appendUnique(in []string, value string) []string {
	if slices.Contains(in, value) {
		return in
	}
	return append(in, value)
}
