// Package model defines the block document tree used by the editing engine.
//
// A document is an immutable tree of nodes. The tree is built bottom-up from
// constructors, so a node can never reference one of its ancestors:
//
//	doc, err := model.NewDoc(
//	    model.Heading(1, model.Text("Title")),
//	    model.Paragraph(model.Text("Hello ", model.Bold()), model.Text("world")),
//	    model.Image("cat.png", "a cat"),
//	)
//
// Node Kinds:
//
// Every node carries a Kind. Kinds fall into three groups:
//
//   - Text-bearing blocks (Paragraph, Heading) hold Text runs
//   - Container blocks (Blockquote, BulletList, OrderedList, ListItem) hold blocks
//   - Atomic blocks (Image, HorizontalRule) hold nothing and cannot contain a cursor
//
// Sizes:
//
// Each node occupies a number of address units in the linearized document:
// a container with content size S occupies S+2 (open boundary, content,
// close boundary), an atomic block occupies 1 and a Text run occupies its
// length in runes. The document's own boundaries are not counted, so valid
// positions run from 0 to Doc.ContentSize().
//
// Edits never modify a node in place. Functions that change a tree return a
// new root that shares unchanged subtrees with the old one.
package model
