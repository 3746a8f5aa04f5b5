package model

import "fmt"

// Kind identifies the type of a node.
type Kind uint8

const (
	// KindDoc is the document root.
	KindDoc Kind = iota
	// KindParagraph is a plain text block.
	KindParagraph
	// KindHeading is a text block with a level from 1 to 6.
	KindHeading
	// KindBlockquote wraps one or more blocks.
	KindBlockquote
	// KindBulletList holds list items rendered with bullets.
	KindBulletList
	// KindOrderedList holds list items rendered with numbers.
	KindOrderedList
	// KindListItem wraps one or more blocks inside a list.
	KindListItem
	// KindImage is an atomic image block.
	KindImage
	// KindHorizontalRule is an atomic separator block.
	KindHorizontalRule
	// KindText is an inline run of text.
	KindText
)

// String returns the serialized type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDoc:
		return "doc"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindBlockquote:
		return "blockquote"
	case KindBulletList:
		return "bulletList"
	case KindOrderedList:
		return "orderedList"
	case KindListItem:
		return "listItem"
	case KindImage:
		return "image"
	case KindHorizontalRule:
		return "horizontalRule"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// KindFromName returns the kind for a serialized type name.
// Snake-case aliases used by ProseMirror schemas are accepted.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "doc":
		return KindDoc, true
	case "paragraph":
		return KindParagraph, true
	case "heading":
		return KindHeading, true
	case "blockquote":
		return KindBlockquote, true
	case "bulletList", "bullet_list":
		return KindBulletList, true
	case "orderedList", "ordered_list":
		return KindOrderedList, true
	case "listItem", "list_item":
		return KindListItem, true
	case "image", "imageResize":
		return KindImage, true
	case "horizontalRule", "horizontal_rule":
		return KindHorizontalRule, true
	case "text":
		return KindText, true
	}
	return KindDoc, false
}

// IsBlock reports whether nodes of this kind are blocks.
func (k Kind) IsBlock() bool {
	return k != KindDoc && k != KindText
}

// IsTextblock reports whether nodes of this kind hold Text runs.
func (k Kind) IsTextblock() bool {
	return k == KindParagraph || k == KindHeading
}

// IsAtom reports whether nodes of this kind are atomic leaf blocks.
func (k Kind) IsAtom() bool {
	return k == KindImage || k == KindHorizontalRule
}

// IsList reports whether nodes of this kind are lists.
func (k Kind) IsList() bool {
	return k == KindBulletList || k == KindOrderedList
}

// IsContainer reports whether nodes of this kind hold other blocks.
func (k Kind) IsContainer() bool {
	switch k {
	case KindDoc, KindBlockquote, KindBulletList, KindOrderedList, KindListItem:
		return true
	}
	return false
}
