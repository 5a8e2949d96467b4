package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// cluster is one grapheme cluster with its width in cells.
type cluster struct {
	text  string
	width int
	// Line break opportunity after this cluster.
	canBreak, mustBreak bool
}

func clusters(text string) []cluster {
	var out []cluster
	state := -1
	for len(text) > 0 {
		var c string
		var boundaries int
		c, text, boundaries, state = uniseg.StepString(text, state)
		next := cluster{text: c, width: boundaries >> uniseg.ShiftWidth}
		switch boundaries & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			next.canBreak = true
		case uniseg.LineMustBreak:
			// The end of the text is always a mandatory break.
			next.mustBreak = len(text) > 0 || uniseg.HasTrailingLineBreakInString(c)
		}
		out = append(out, next)
	}
	return out
}

// StringWidth returns the number of cells text occupies.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate shortens text to at most width cells, ending it with an ellipsis
// when anything was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, Ellipsis)
}

// WordWrap splits text into lines no wider than width, breaking at line
// break opportunities where possible.
func WordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines     []string
		line      strings.Builder
		lineWidth int
		// Byte length of the line up to the last break opportunity.
		breakAt int
	)
	flush := func(upTo int) {
		s := line.String()
		lines = append(lines, strings.TrimRight(s[:upTo], " \n\r"))
		rest := s[upTo:]
		line.Reset()
		line.WriteString(rest)
		lineWidth = StringWidth(rest)
		breakAt = 0
	}

	for _, c := range clusters(text) {
		// Trailing spaces may hang past the edge; they are trimmed on flush.
		if lineWidth+c.width > width && line.Len() > 0 && strings.TrimSpace(c.text) != "" {
			if breakAt > 0 {
				flush(breakAt)
			} else {
				flush(line.Len())
			}
		}
		line.WriteString(c.text)
		lineWidth += c.width
		switch {
		case c.mustBreak:
			flush(line.Len())
		case c.canBreak:
			breakAt = line.Len()
		}
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " \n\r"))
	}
	return lines
}

// Print writes text at (x, y) within maxWidth cells using the given style.
// When the style has no background, the existing background is kept. It
// returns the number of bytes and the number of cells printed.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= totalHeight {
		return 0, 0
	}

	cs := clusters(text)
	textWidth := 0
	for _, c := range cs {
		textWidth += c.width
	}

	switch alignment {
	case AlignmentRight:
		// Drop clusters on the left until the text fits.
		for len(cs) > 0 && textWidth > maxWidth {
			textWidth -= cs[0].width
			cs = cs[1:]
		}
		x += maxWidth - textWidth
	case AlignmentCenter:
		if textWidth < maxWidth {
			x += (maxWidth - textWidth) / 2
		}
	}

	_, bg, _ := style.Decompose()
	printed, bytes := 0, 0
	for _, c := range cs {
		if c.width == 0 {
			bytes += len(c.text)
			continue
		}
		if printed+c.width > maxWidth || x >= totalWidth {
			break
		}
		cellStyle := style
		if bg == tcell.ColorDefault {
			_, _, existing, _ := screen.GetContent(x, y)
			_, existingBg, _ := existing.Decompose()
			cellStyle = cellStyle.Background(existingBg)
		}
		runes := []rune(c.text)
		screen.SetContent(x, y, runes[0], runes[1:], cellStyle)
		for i := 1; i < c.width; i++ {
			screen.SetContent(x+i, y, ' ', nil, cellStyle)
		}
		x += c.width
		printed += c.width
		bytes += len(c.text)
	}
	return bytes, printed
}

// fill paints a rectangle with one rune.
func fill(screen tcell.Screen, x, y, width, height int, r rune, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, r, nil, style)
		}
	}
}
