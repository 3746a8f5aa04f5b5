// Package engine provides the block editing engine for Blockstorm.
//
// The engine package is the facade over the document model and the editing
// commands. It owns the current (document, selection) pair, runs commands
// against it and replaces the pair only when the command's result passes the
// document invariants.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - model: immutable block tree, schema and JSON codec
//   - position: integer addressing over the tree and block adjacency
//   - selection: text and node selections, nearest-valid search
//   - transform: copy-on-write structural edits
//   - navigation: arrow movement across block boundaries
//   - command: Enter, Mod-Enter, Backspace, Delete, Escape and arrows
//
// # Thread Safety
//
// All Engine operations are thread-safe. Commands are serialized by a
// read-write mutex and read operations may run concurrently with each other.
//
// # Basic Usage
//
//	doc := model.MustDoc(
//	    model.Image("cat.png", "a cat"),
//	)
//	e := engine.New(engine.WithDocument(doc))
//
//	// Select the image and press Enter
//	e.Select(selection.Cursor(1))
//	e.Enter() // true: a paragraph follows the image, cursor inside it
//
//	e.BlockCount() // 2
//
// # Declining
//
// Every command returns a bool. False means the command did not apply and
// the state is exactly as before; the host should run its default behaviour
// for the key. When a command's result would break an invariant the engine
// discards it, logs the rollback and also returns false.
//
// # Read-Only Mode
//
// A read-only engine still moves the selection but declines every command
// that would change the document:
//
//	e := engine.New(engine.WithDocument(doc), engine.WithReadOnly())
//	e.SplitBlock() // false
//
// # Error Handling
//
// Commands never return errors. Load and SetState return:
//
//   - ErrInvalidDocument: the document violates the schema
//   - ErrInvalidSelection: no valid selection could be derived
package engine
