// Package wasm holds the in-memory representation of a WebAssembly module
// that the transformation passes operate on: the module-level tables of
// types, locals, globals, memories, functions, and exports, and the
// per-function expression IR with its arena, builders, and visitor
// protocol.
//
// The representation is produced by a parser and consumed by an emitter;
// neither lives in this repository. Passes take exclusive mutation access
// to a Module for their duration.
package wasm

// Config carries module-wide transformation options.
type Config struct {
	// GenerateNames makes passes attach human-readable names to the
	// temporaries they create, for friendlier disassembly.
	GenerateNames bool
}

// Module aggregates the tables a WebAssembly module is made of.
type Module struct {
	Types    Types
	Locals   Locals
	Globals  Globals
	Memories Memories
	Funcs    Funcs
	Exports  Exports
	Config   Config
}

// New returns an empty module.
func New() *Module { return &Module{} }
