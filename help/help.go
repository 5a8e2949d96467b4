package help

import (
	"strings"

	"github.com/ayn2op/carousel/keybind"
	"github.com/ayn2op/carousel/tui"
	"github.com/gdamore/tcell/v2"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Binding
}

// Help is a single line listing the enabled bindings of a key map.
type Help struct {
	*tui.Box
	Styles Styles

	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       tui.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  tui.Ellipsis,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetSeparator sets the separator placed between bindings.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetEllipsis sets the marker appended when bindings were left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawFrame(screen)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	h.drawSegments(screen, x, y, width, h.segments(h.keyMap.ShortHelp(), width))
}

// Line renders the short help as plain text.
func (h *Help) Line(bindings []keybind.Binding, maxWidth int) string {
	var b strings.Builder
	for _, s := range h.segments(bindings, maxWidth) {
		b.WriteString(s.text)
	}
	return b.String()
}

type segment struct {
	text  string
	style tcell.Style
}

// segments lays out as many bindings as fit in maxWidth, followed by an
// ellipsis when some had to be left out.
func (h *Help) segments(bindings []keybind.Binding, maxWidth int) []segment {
	items := make([][]segment, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		if item := itemSegments(b, h.Styles.KeyStyle, h.Styles.DescStyle); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sepText := h.separator
	if sepText == "" {
		sepText = " "
	}
	sep := segment{text: sepText, style: h.Styles.SeparatorStyle}

	out := items[0]
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(cloneSegments(out), sep), item...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) truncationTail(current []segment, maxWidth int) []segment {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	// The ellipsis is only added when it fits completely.
	tail := []segment{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: h.ellipsis, style: h.Styles.EllipsisStyle},
	}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func (h *Help) drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	cursor, remaining := x, width
	for _, s := range segments {
		if remaining <= 0 {
			return
		}
		_, printed := tui.Print(screen, s.text, cursor, y, remaining, tui.AlignmentLeft, s.style)
		cursor += printed
		remaining -= printed
	}
}

func itemSegments(b keybind.Binding, keyStyle, descStyle tcell.Style) []segment {
	help := b.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: descStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: keyStyle}}
	default:
		return []segment{{text: help.Key, style: keyStyle}, {text: " ", style: descStyle}, {text: help.Desc, style: descStyle}}
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += tui.StringWidth(s.text)
	}
	return width
}

func cloneSegments(in []segment) []segment {
	out := make([]segment, len(in))
	copy(out, in)
	return out
}
