package convert

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/net/html"

	"github.com/dshills/blockstorm/internal/engine/model"
)

// markTags maps marks to their wrapping element, outermost first.
var markTags = []struct {
	mark model.MarkType
	tag  string
}{
	{model.MarkBold, "strong"},
	{model.MarkItalic, "em"},
	{model.MarkUnderline, "u"},
	{model.MarkStrike, "s"},
	{model.MarkCode, "code"},
	{model.MarkLink, "a"},
}

// DocumentToHTML renders a document as HTML, one top-level block per line.
// The output is readable by LegacyHTMLToDocument; structure and plain text
// survive the round trip for headings, paragraphs, quotes and single-level
// lists. Text is NFC-normalized on the way back in, so decomposed
// characters return in composed form.
func DocumentToHTML(doc *model.Node) string {
	if doc == nil {
		return ""
	}
	var lines []string
	for _, b := range doc.Children() {
		lines = append(lines, blockLines(b)...)
	}
	return strings.Join(lines, "\n")
}

func blockLines(n *model.Node) []string {
	switch n.Kind() {
	case model.KindParagraph:
		return []string{render(elem("p", inlineNodes(n)...))}
	case model.KindHeading:
		return []string{render(elem("h"+strconv.Itoa(n.Level()), inlineNodes(n)...))}
	case model.KindImage:
		img := elem("img")
		img.Attr = []html.Attribute{{Key: "src", Val: n.Src()}, {Key: "alt", Val: n.Alt()}}
		return []string{render(img)}
	case model.KindHorizontalRule:
		return []string{render(elem("hr"))}
	case model.KindBlockquote:
		if n.ChildCount() == 1 && n.Child(0).Kind() == model.KindParagraph {
			return []string{render(elem("blockquote", inlineNodes(n.Child(0))...))}
		}
		lines := []string{"<blockquote>"}
		for _, c := range n.Children() {
			lines = append(lines, blockLines(c)...)
		}
		return append(lines, "</blockquote>")
	case model.KindBulletList, model.KindOrderedList:
		tag := "ul"
		if n.Kind() == model.KindOrderedList {
			tag = "ol"
		}
		lines := []string{"<" + tag + ">"}
		for _, item := range n.Children() {
			lines = append(lines, itemLines(item)...)
		}
		return append(lines, "</"+tag+">")
	default:
		var lines []string
		for _, c := range n.Children() {
			lines = append(lines, blockLines(c)...)
		}
		return lines
	}
}

// itemLines renders a list item. The item's leading textblock becomes the
// <li> line; further children follow as their own lines.
func itemLines(item *model.Node) []string {
	rest := item.Children()
	var li *html.Node
	if first := item.FirstChild(); first != nil && first.IsTextblock() {
		li = elem("li", inlineNodes(first)...)
		rest = rest[1:]
	} else {
		li = elem("li")
	}
	lines := []string{render(li)}
	for _, c := range rest {
		lines = append(lines, blockLines(c)...)
	}
	return lines
}

func inlineNodes(block *model.Node) []*html.Node {
	out := make([]*html.Node, 0, block.ChildCount())
	for _, run := range block.Children() {
		if run.IsText() {
			out = append(out, textNode(run))
		}
	}
	return out
}

// textNode wraps a run's text in one element per mark. Color and background
// share a single styled span innermost.
func textNode(run *model.Node) *html.Node {
	n := &html.Node{Type: html.TextNode, Data: run.Text()}
	marks := run.Marks()

	if style := markStyle(marks); style != "" {
		span := elem("span", n)
		span.Attr = []html.Attribute{{Key: "style", Val: style}}
		n = span
	}
	for i := len(markTags) - 1; i >= 0; i-- {
		m, ok := marks.Get(markTags[i].mark)
		if !ok {
			continue
		}
		wrap := elem(markTags[i].tag, n)
		if m.Type == model.MarkLink {
			wrap.Attr = []html.Attribute{{Key: "href", Val: m.Href}}
		}
		n = wrap
	}
	return n
}

func markStyle(marks model.MarkSet) string {
	var parts []string
	if m, ok := marks.Get(model.MarkColor); ok {
		parts = append(parts, "color: "+NormalizeColor(m.Color))
	}
	if m, ok := marks.Get(model.MarkBackground); ok {
		parts = append(parts, "background-color: "+NormalizeColor(m.Color))
	}
	return strings.Join(parts, "; ")
}

// NormalizeColor returns a hex color in #rrggbb form. Values that are not
// hex colors, such as CSS names, are returned unchanged.
func NormalizeColor(c string) string {
	parsed, err := colorful.Hex(strings.TrimSpace(c))
	if err != nil {
		return c
	}
	return parsed.Hex()
}

func elem(tag string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// render writes n on a single line. The renderer leaves newlines in text
// and attribute values raw, which would split the block for line readers.
func render(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return strings.ReplaceAll(b.String(), "\n", "&#10;")
}
