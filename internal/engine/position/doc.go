// Package position maps integer addresses onto the document tree.
//
// An address counts the units a node occupies in document order: entering
// or leaving a container costs one unit, an atomic block costs one and each
// rune of text costs one. Resolve turns an address into a path through the
// tree; AddressOf goes the other way.
//
// Given the document
//
//	paragraph("Hi"), image, blockquote(paragraph("x"))
//
// the addresses are
//
//	0 before the paragraph
//	1 start of "Hi", 3 end of "Hi"
//	4 between paragraph and image
//	5 between image and blockquote
//	6 inside the blockquote, 7 start of "x", 8 end of "x"
//	10 end of the document
package position
