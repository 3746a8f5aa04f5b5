package app

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/blockstorm/internal/engine"
	"github.com/dshills/blockstorm/internal/engine/model"
	"github.com/dshills/blockstorm/internal/engine/selection"
)

// Line is one screen row of the document view. Text blocks and atomic
// blocks each take one line; containers only contribute prefixes.
type Line struct {
	// Prefix carries list bullets and quote bars.
	Prefix string

	Segments []Segment

	// Start is the first content address of a text block, or the address
	// just before an atomic block.
	Start int

	// Size is the content size of a text block; zero for atoms.
	Size int

	// Atom is set for image and horizontal rule lines.
	Atom bool
}

// Segment is a run of text drawn with one set of marks.
type Segment struct {
	Text  string
	Marks model.MarkSet
}

const ruleWidth = 24

// Layout flattens a document into lines.
func Layout(doc *model.Node) []Line {
	var lines []Line
	if doc != nil {
		layoutChildren(doc, 0, "", "", &lines)
	}
	return lines
}

// layoutChildren lays out the children of a container whose content starts
// at pos. The first line produced gets first as its prefix, the rest get
// rest.
func layoutChildren(parent *model.Node, pos int, first, rest string, lines *[]Line) {
	for i, c := range parent.Children() {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		layoutNode(c, pos, prefix, rest, lines)
		pos += c.NodeSize()
	}
}

func layoutNode(n *model.Node, pos int, first, rest string, lines *[]Line) {
	switch n.Kind() {
	case model.KindParagraph, model.KindHeading:
		line := Line{Prefix: first, Start: pos + 1, Size: n.ContentSize()}
		if n.Kind() == model.KindHeading {
			line.Prefix += strings.Repeat("#", n.Level()) + " "
		}
		for _, run := range n.Children() {
			line.Segments = append(line.Segments, Segment{Text: run.Text(), Marks: run.Marks()})
		}
		*lines = append(*lines, line)
	case model.KindImage:
		label := "[image " + n.Src()
		if n.Alt() != "" {
			label += ": " + n.Alt()
		}
		*lines = append(*lines, Line{Prefix: first, Start: pos, Atom: true, Segments: []Segment{{Text: label + "]"}}})
	case model.KindHorizontalRule:
		*lines = append(*lines, Line{Prefix: first, Start: pos, Atom: true, Segments: []Segment{{Text: strings.Repeat("─", ruleWidth)}}})
	case model.KindBlockquote:
		layoutChildren(n, pos+1, first+"│ ", rest+"│ ", lines)
	case model.KindBulletList, model.KindOrderedList:
		itemPos := pos + 1
		for i, item := range n.Children() {
			bullet := "• "
			if n.Kind() == model.KindOrderedList {
				bullet = strconv.Itoa(i+1) + ". "
			}
			indent := strings.Repeat(" ", uniseg.StringWidth(bullet))
			itemFirst := rest + bullet
			if i == 0 {
				itemFirst = first + bullet
			}
			layoutChildren(item, itemPos+1, itemFirst, rest+indent, lines)
			itemPos += item.NodeSize()
		}
	default:
		layoutChildren(n, pos+1, first, rest, lines)
	}
}

// Contains reports whether a text address falls inside the line.
func (l Line) Contains(pos int) bool {
	return !l.Atom && pos >= l.Start && pos <= l.Start+l.Size
}

// Text returns the line's content without prefix.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Column returns the screen column of a text address in the line,
// counting grapheme widths.
func (l Line) Column(pos int) int {
	col := uniseg.StringWidth(l.Prefix)
	remaining := pos - l.Start
	for _, s := range l.Segments {
		g := uniseg.NewGraphemes(s.Text)
		for remaining > 0 && g.Next() {
			col += g.Width()
			remaining -= len(g.Runes())
		}
		if remaining <= 0 {
			break
		}
	}
	return col
}

// Locate finds the row and column of the selection head. A node
// selection points at the start of its atom's line.
func Locate(lines []Line, sel engine.Selection) (row, col int, ok bool) {
	switch s := sel.(type) {
	case selection.NodeSelection:
		for i, l := range lines {
			if l.Atom && l.Start == s.From() {
				return i, uniseg.StringWidth(l.Prefix), true
			}
		}
	case selection.TextSelection:
		for i, l := range lines {
			if l.Contains(s.Head()) {
				return i, l.Column(s.Head()), true
			}
		}
	}
	return 0, 0, false
}
