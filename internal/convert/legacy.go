// Package convert moves documents between the block tree and its external
// forms: the legacy line-oriented HTML used by older content, rendered HTML,
// plain text for search and read-aloud, and the serialized JSON tree.
//
// The legacy reader understands a deliberately small subset of HTML, one
// block per line. Inline formatting survives only when a whole line is a
// single bold or italic wrapper; any other inline markup is reduced to its
// text. Conversion never fails outward: a line that cannot be read becomes
// an empty paragraph and unusable input becomes the minimal document.
package convert

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/blockstorm/internal/engine/model"
)

// StripTagsPolicy removes every tag and keeps text content.
var StripTagsPolicy = bluemonday.StrictPolicy()

var (
	pageBreakRe   = regexp.MustCompile(`(?i)^(<!--\s*pagebreak\s*-->|<div\s+class\s*=\s*["']page-break["']\s*>\s*</div>)$`)
	bulletRe      = regexp.MustCompile(`^[-*]\s+`)
	orderedItemRe = regexp.MustCompile(`^\d+\.\s+`)
)

// Legacy is the result of reading legacy HTML.
type Legacy struct {
	// Doc is the converted document; never nil.
	Doc *model.Node
	// PageBreaks holds, for each page-break marker, the index of the
	// top-level block that follows it. A marker inside an open list or
	// quote ends that container.
	PageBreaks []int
}

// LegacyHTMLToDocument converts legacy HTML into a document.
func LegacyHTMLToDocument(src string) *model.Node {
	return ParseLegacy(src).Doc
}

// ParseLegacy converts legacy HTML and reports where page breaks were.
func ParseLegacy(src string) (result Legacy) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Legacy conversion failed", "panic", r)
			result = Legacy{Doc: model.EmptyDoc()}
		}
	}()

	b := &legacyBuilder{}
	for i, line := range strings.Split(src, "\n") {
		b.line(i+1, strings.TrimSpace(line))
	}
	b.closeList()
	b.closeQuote()

	if len(b.blocks) == 0 {
		return Legacy{Doc: model.EmptyDoc()}
	}
	doc, err := model.NewDoc(b.blocks...)
	if err != nil {
		slog.Warn("Legacy document rejected", "err", err)
		return Legacy{Doc: model.EmptyDoc()}
	}
	return Legacy{Doc: doc.Normalize(), PageBreaks: b.breaks}
}

type legacyBuilder struct {
	blocks []*model.Node
	breaks []int

	quote     []*model.Node
	inQuote   bool
	listKind  model.Kind
	listItems []*model.Node
	inList    bool
}

func (b *legacyBuilder) emit(n *model.Node) {
	if b.inQuote {
		b.quote = append(b.quote, n)
		return
	}
	b.blocks = append(b.blocks, n)
}

func (b *legacyBuilder) line(num int, line string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Unreadable legacy line", "line", num, "panic", r)
			b.emit(model.Paragraph())
		}
	}()

	if line == "" {
		return
	}
	if pageBreakRe.MatchString(line) {
		b.closeList()
		b.closeQuote()
		b.breaks = append(b.breaks, len(b.blocks))
		return
	}

	switch strings.ToLower(line) {
	case "<ul>", "<ol>":
		b.closeList()
		b.openList(strings.EqualFold(line, "<ol>"))
		return
	case "</ul>", "</ol>":
		b.closeList()
		return
	case "<blockquote>":
		b.closeList()
		b.closeQuote()
		b.inQuote = true
		return
	case "</blockquote>":
		b.closeList()
		b.closeQuote()
		return
	}

	if el, ok := parseElement(line); ok {
		b.element(el, line)
		return
	}

	if m := bulletRe.FindString(line); m != "" {
		b.item(false, inline(line[len(m):]))
		return
	}
	if m := orderedItemRe.FindString(line); m != "" {
		b.item(true, inline(line[len(m):]))
		return
	}

	b.closeList()
	b.emit(model.Paragraph(inline(line)...))
}

func (b *legacyBuilder) element(el element, line string) {
	if el.tag == "li" {
		b.item(b.inList && b.listKind == model.KindOrderedList, inline(el.inner))
		return
	}
	b.closeList()

	switch el.tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		b.emit(model.Heading(int(el.tag[1]-'0'), inline(el.inner)...))
	case "p":
		b.emit(model.Paragraph(inline(el.inner)...))
	case "hr":
		b.emit(model.HorizontalRule())
	case "img":
		b.emit(model.Image(el.attr("src"), el.attr("alt")))
	case "blockquote":
		b.closeQuote()
		b.blocks = append(b.blocks, model.Blockquote(model.Paragraph(inline(el.inner)...)))
	default:
		b.emit(model.Paragraph(inline(line)...))
	}
}

func (b *legacyBuilder) openList(ordered bool) {
	b.inList = true
	b.listKind = model.KindBulletList
	if ordered {
		b.listKind = model.KindOrderedList
	}
}

// item adds a list item, opening a list of the matching kind when needed.
// Any line that is not an item closes the open list.
func (b *legacyBuilder) item(ordered bool, runs []*model.Node) {
	kind := model.KindBulletList
	if ordered {
		kind = model.KindOrderedList
	}
	if b.inList && b.listKind != kind {
		b.closeList()
	}
	if !b.inList {
		b.openList(ordered)
	}
	b.listItems = append(b.listItems, model.ListItem(model.Paragraph(runs...)))
}

func (b *legacyBuilder) closeList() {
	if !b.inList {
		return
	}
	if len(b.listItems) > 0 {
		if b.listKind == model.KindOrderedList {
			b.emit(model.OrderedList(b.listItems...))
		} else {
			b.emit(model.BulletList(b.listItems...))
		}
	}
	b.inList = false
	b.listItems = nil
}

func (b *legacyBuilder) closeQuote() {
	if !b.inQuote {
		return
	}
	b.inQuote = false
	if len(b.quote) > 0 {
		b.blocks = append(b.blocks, model.Blockquote(b.quote...))
	}
	b.quote = nil
}

// inline converts the inside of a block element into Text runs.
// A single <strong>/<b> or <em>/<i> wrapper around plain text keeps its
// mark; any other markup is reduced to text.
func inline(inner string) []*model.Node {
	if el, ok := parseElement(strings.TrimSpace(inner)); ok && !strings.Contains(el.inner, "<") {
		var mark model.Mark
		switch el.tag {
		case "strong", "b":
			mark = model.Bold()
		case "em", "i":
			mark = model.Italic()
		default:
			return plainRuns(inner)
		}
		if text := cleanText(el.inner); text != "" {
			return []*model.Node{model.Text(text, mark)}
		}
		return nil
	}
	return plainRuns(inner)
}

func plainRuns(inner string) []*model.Node {
	text := cleanText(StripTagsPolicy.Sanitize(inner))
	if text == "" {
		return nil
	}
	return []*model.Node{model.Text(text)}
}

// cleanText unescapes entities and normalizes to NFC so rune addresses are
// stable across equivalent inputs.
func cleanText(s string) string {
	return norm.NFC.String(html.UnescapeString(s))
}

// String returns a short description, used in logs.
func (l Legacy) String() string {
	return fmt.Sprintf("legacy(%d blocks, %d page breaks)", l.Doc.BlockCount(), len(l.PageBreaks))
}
