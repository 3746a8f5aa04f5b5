package model

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// jsonNode is the serialized form of a node: {type, attrs, content, text, marks}.
type jsonNode struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []jsonNode     `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Marks   []jsonMark     `json:"marks,omitempty"`
}

type jsonMark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Encode serializes a tree to JSON.
func Encode(n *Node) ([]byte, error) {
	return json.Marshal(toJSON(n))
}

func toJSON(n *Node) jsonNode {
	out := jsonNode{Type: n.kind.String()}
	switch n.kind {
	case KindText:
		out.Text = n.text
		for _, m := range n.marks {
			out.Marks = append(out.Marks, markToJSON(m))
		}
		return out
	case KindHeading:
		out.Attrs = map[string]any{"level": n.level}
	case KindImage:
		out.Attrs = map[string]any{"src": n.src, "alt": n.alt}
	}
	for _, c := range n.content {
		out.Content = append(out.Content, toJSON(c))
	}
	return out
}

func markToJSON(m Mark) jsonMark {
	out := jsonMark{Type: m.Type.String()}
	switch m.Type {
	case MarkLink:
		out.Attrs = map[string]any{"href": m.Href}
	case MarkColor, MarkBackground:
		out.Attrs = map[string]any{"color": m.Color}
	}
	return out
}

// Decode parses a serialized tree and normalizes it into a valid document.
//
// Decoding is lenient: unknown node types are replaced by their children,
// inline text found at block level is wrapped in a paragraph, empty lists and
// quotes are dropped and an empty document receives one empty paragraph.
// Only malformed JSON or a root that is not a doc is an error.
func Decode(data []byte) (*Node, error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if root.Type != KindDoc.String() {
		return nil, fmt.Errorf("decode document: type %q: %w", root.Type, ErrNotDocument)
	}

	blocks := decodeBlocks(root.Content)
	if len(blocks) == 0 {
		blocks = []*Node{Paragraph()}
	}
	doc := newNode(KindDoc, blocks).Normalize()
	if err := doc.Check(); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// decodeBlocks decodes content that must consist of blocks.
func decodeBlocks(in []jsonNode) []*Node {
	var (
		out     []*Node
		pending []*Node
	)
	flush := func() {
		if len(pending) > 0 {
			out = append(out, Paragraph(pending...))
			pending = nil
		}
	}

	for _, jn := range in {
		kind, ok := KindFromName(jn.Type)
		if !ok {
			slog.Warn("Unknown node type", "type", jn.Type)
			flush()
			out = append(out, decodeBlocks(jn.Content)...)
			continue
		}

		switch kind {
		case KindText:
			if t := decodeText(jn); t != nil {
				pending = append(pending, t)
			}
			continue
		case KindDoc, KindListItem:
			flush()
			out = append(out, decodeBlocks(jn.Content)...)
			continue
		}

		flush()
		if b := decodeBlock(kind, jn); b != nil {
			out = append(out, b)
		}
	}
	flush()
	return out
}

func decodeBlock(kind Kind, jn jsonNode) *Node {
	switch kind {
	case KindParagraph:
		return Paragraph(decodeInline(jn.Content)...)
	case KindHeading:
		level := getAttrInt(jn.Attrs, "level", 1)
		level = max(1, min(6, level))
		return Heading(level, decodeInline(jn.Content)...)
	case KindBlockquote:
		children := decodeBlocks(jn.Content)
		if len(children) == 0 {
			return nil
		}
		return Blockquote(children...)
	case KindBulletList, KindOrderedList:
		items := decodeItems(jn.Content)
		if len(items) == 0 {
			return nil
		}
		return newNode(kind, items)
	case KindImage:
		return Image(getAttrString(jn.Attrs, "src"), getAttrString(jn.Attrs, "alt"))
	case KindHorizontalRule:
		return HorizontalRule()
	}
	return nil
}

// decodeItems decodes list content, wrapping stray blocks in list items.
func decodeItems(in []jsonNode) []*Node {
	var out []*Node
	for _, jn := range in {
		if kind, ok := KindFromName(jn.Type); ok && kind == KindListItem {
			blocks := decodeBlocks(jn.Content)
			if len(blocks) == 0 {
				blocks = []*Node{Paragraph()}
			}
			out = append(out, ListItem(blocks...))
			continue
		}
		if blocks := decodeBlocks([]jsonNode{jn}); len(blocks) > 0 {
			out = append(out, ListItem(blocks...))
		}
	}
	return out
}

// decodeInline decodes textblock content, lifting text out of anything else.
func decodeInline(in []jsonNode) []*Node {
	var out []*Node
	for _, jn := range in {
		if jn.Type == KindText.String() {
			if t := decodeText(jn); t != nil {
				out = append(out, t)
			}
			continue
		}
		if _, ok := KindFromName(jn.Type); !ok {
			slog.Warn("Unknown node type", "type", jn.Type)
		}
		out = append(out, decodeInline(jn.Content)...)
	}
	return out
}

func decodeText(jn jsonNode) *Node {
	if jn.Text == "" {
		return nil
	}
	var marks []Mark
	for _, jm := range jn.Marks {
		t, ok := MarkTypeFromName(jm.Type)
		if !ok {
			slog.Warn("Unknown mark type", "type", jm.Type)
			continue
		}
		m := Mark{Type: t}
		switch t {
		case MarkLink:
			m.Href = getAttrString(jm.Attrs, "href")
		case MarkColor, MarkBackground:
			m.Color = getAttrString(jm.Attrs, "color")
			if m.Color == "" {
				continue
			}
		}
		marks = append(marks, m)
	}
	return Text(jn.Text, marks...)
}

func getAttrString(attrs map[string]any, key string) string {
	if attrs == nil {
		return ""
	}
	if v, ok := attrs[key].(string); ok {
		return v
	}
	return ""
}

func getAttrInt(attrs map[string]any, key string, def int) int {
	if attrs == nil {
		return def
	}
	switch v := attrs[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}
