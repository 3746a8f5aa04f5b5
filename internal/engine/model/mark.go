package model

import (
	"fmt"
	"slices"
	"strings"
)

// MarkType identifies an inline formatting attribute.
// The numeric order is the canonical order of marks in a set.
type MarkType uint8

const (
	MarkBold MarkType = iota
	MarkItalic
	MarkUnderline
	MarkStrike
	MarkCode
	MarkLink
	MarkColor
	MarkBackground
)

// String returns the serialized name of the mark type.
func (t MarkType) String() string {
	switch t {
	case MarkBold:
		return "bold"
	case MarkItalic:
		return "italic"
	case MarkUnderline:
		return "underline"
	case MarkStrike:
		return "strike"
	case MarkCode:
		return "code"
	case MarkLink:
		return "link"
	case MarkColor:
		return "color"
	case MarkBackground:
		return "background"
	default:
		return fmt.Sprintf("MarkType(%d)", t)
	}
}

// MarkTypeFromName returns the mark type for a serialized name.
// TipTap names ("textStyle", "highlight") map to color and background.
func MarkTypeFromName(name string) (MarkType, bool) {
	switch name {
	case "bold", "strong":
		return MarkBold, true
	case "italic", "em":
		return MarkItalic, true
	case "underline":
		return MarkUnderline, true
	case "strike":
		return MarkStrike, true
	case "code":
		return MarkCode, true
	case "link":
		return MarkLink, true
	case "color", "textStyle":
		return MarkColor, true
	case "background", "highlight":
		return MarkBackground, true
	}
	return MarkBold, false
}

// Mark is an inline formatting attribute applied to a whole Text run.
// Href is set for links; Color for color and background marks.
type Mark struct {
	Type  MarkType
	Href  string
	Color string
}

// Bold returns a bold mark.
func Bold() Mark { return Mark{Type: MarkBold} }

// Italic returns an italic mark.
func Italic() Mark { return Mark{Type: MarkItalic} }

// Underline returns an underline mark.
func Underline() Mark { return Mark{Type: MarkUnderline} }

// Strike returns a strikethrough mark.
func Strike() Mark { return Mark{Type: MarkStrike} }

// Code returns an inline code mark.
func Code() Mark { return Mark{Type: MarkCode} }

// Link returns a link mark pointing at href.
func Link(href string) Mark { return Mark{Type: MarkLink, Href: href} }

// Color returns a text color mark.
func Color(color string) Mark { return Mark{Type: MarkColor, Color: color} }

// Background returns a background color mark.
func Background(color string) Mark { return Mark{Type: MarkBackground, Color: color} }

// String returns a compact representation like "link(https://x)".
func (m Mark) String() string {
	switch m.Type {
	case MarkLink:
		return fmt.Sprintf("link(%s)", m.Href)
	case MarkColor, MarkBackground:
		return fmt.Sprintf("%s(%s)", m.Type, m.Color)
	}
	return m.Type.String()
}

// MarkSet is an ordered set of marks with at most one mark per type.
type MarkSet []Mark

// NewMarkSet builds a canonical set: sorted by type, later marks of the
// same type replacing earlier ones.
func NewMarkSet(marks ...Mark) MarkSet {
	if len(marks) == 0 {
		return nil
	}
	set := make(MarkSet, 0, len(marks))
	for _, m := range marks {
		set = set.Add(m)
	}
	return set
}

// Add returns a new set containing m.
func (s MarkSet) Add(m Mark) MarkSet {
	out := make(MarkSet, 0, len(s)+1)
	inserted := false
	for _, existing := range s {
		switch {
		case existing.Type == m.Type:
			out = append(out, m)
			inserted = true
		case !inserted && existing.Type > m.Type:
			out = append(out, m, existing)
			inserted = true
		default:
			out = append(out, existing)
		}
	}
	if !inserted {
		out = append(out, m)
	}
	return out
}

// Has reports whether the set contains a mark of type t.
func (s MarkSet) Has(t MarkType) bool {
	_, ok := s.Get(t)
	return ok
}

// Get returns the mark of type t.
func (s MarkSet) Get(t MarkType) (Mark, bool) {
	for _, m := range s {
		if m.Type == t {
			return m, true
		}
	}
	return Mark{}, false
}

// Equal reports whether two sets hold the same marks.
func (s MarkSet) Equal(other MarkSet) bool {
	return slices.Equal(s, other)
}

// String returns the marks joined by "+".
func (s MarkSet) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return strings.Join(parts, "+")
}
