package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/dshills/blockstorm/internal/convert"
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

var (
	prefixStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
	linkColor   = tcell.ColorBlue
)

// MarkStyle maps a run's marks to a terminal style.
func MarkStyle(marks model.MarkSet) tcell.Style {
	st := tcell.StyleDefault
	for _, m := range marks {
		switch m.Type {
		case model.MarkBold:
			st = st.Bold(true)
		case model.MarkItalic:
			st = st.Italic(true)
		case model.MarkUnderline:
			st = st.Underline(true)
		case model.MarkStrike:
			st = st.StrikeThrough(true)
		case model.MarkCode:
			st = st.Dim(true)
		case model.MarkLink:
			st = st.Underline(true).Foreground(linkColor)
		case model.MarkColor:
			if c, ok := TermColor(m.Color); ok {
				st = st.Foreground(c)
			}
		case model.MarkBackground:
			if c, ok := TermColor(m.Color); ok {
				st = st.Background(c)
			}
		}
	}
	return st
}

// TermColor converts a CSS color to a terminal color. Hex colors become
// true colors; other values are looked up as color names.
func TermColor(css string) (tcell.Color, bool) {
	if c, err := colorful.Hex(convert.NormalizeColor(css)); err == nil {
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}
	c := tcell.GetColor(strings.ToLower(strings.TrimSpace(css)))
	return c, c != tcell.ColorDefault
}

// drawText writes s at (x, y) grapheme by grapheme, clipping at width,
// and returns the next column.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if x+w > width {
			break
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// draw renders the visible lines, the status bar and the cursor.
func (a *Application) draw() {
	scr := a.screen
	if scr == nil {
		return
	}
	scr.Clear()
	width, height := scr.Size()
	if height < 1 {
		return
	}
	viewHeight := height - 1

	state := a.engine.State()
	lines := Layout(state.Doc)
	row, col, found := Locate(lines, state.Selection)
	a.scrollTo(row, viewHeight)

	_, nodeSel := state.Selection.(selection.NodeSelection)
	for y := 0; y < viewHeight && a.top+y < len(lines); y++ {
		l := lines[a.top+y]
		x := drawText(scr, 0, y, width, l.Prefix, prefixStyle)
		for _, seg := range l.Segments {
			st := MarkStyle(seg.Marks)
			if l.Atom && nodeSel && found && a.top+y == row {
				st = st.Reverse(true)
			}
			x = drawText(scr, x, y, width, seg.Text, st)
		}
	}

	a.drawStatus(width, height-1)
	if found && !nodeSel && row-a.top < viewHeight {
		scr.ShowCursor(col, row-a.top)
	} else {
		scr.HideCursor()
	}
	scr.Show()
}

// scrollTo keeps row inside the view.
func (a *Application) scrollTo(row, viewHeight int) {
	switch {
	case viewHeight <= 0:
		a.top = 0
	case row < a.top:
		a.top = row
	case row >= a.top+viewHeight:
		a.top = row - viewHeight + 1
	}
}

func (a *Application) drawStatus(width, y int) {
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
	drawText(a.screen, 0, y, width, a.StatusLine(), statusStyle)
}

// StatusLine describes the document and the last action outcome.
func (a *Application) StatusLine() string {
	doc := a.engine.Doc()
	name := a.opts.File
	if name == "" {
		name = "[scratch]"
	}
	if a.Modified() {
		name += " +"
	}
	parts := []string{
		name,
		fmt.Sprintf("%d blocks", doc.BlockCount()),
		fmt.Sprintf("%d words", convert.WordCount(doc)),
		a.engine.Selection().String(),
	}
	if msg := a.Message(); msg != "" {
		parts = append(parts, msg)
	}
	return " " + strings.Join(parts, " | ")
}
