package help

import (
	"github.com/ayn2op/carousel/tui"
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Foreground(tui.Styles.BorderColor)
	normal := tcell.StyleDefault.Foreground(tui.Styles.SecondaryTextColor)
	return Styles{
		KeyStyle:       tcell.StyleDefault.Foreground(tui.Styles.TitleColor).Bold(true),
		DescStyle:      normal,
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}
