package wasm

// Identifiers are small integer handles into the arenas that own the
// corresponding entities. The zero value of every identifier type is
// invalid; valid identifiers start at 1. Identifiers are cheap to copy,
// totally ordered, and usable as map keys. An ExprID is only meaningful
// with respect to the function whose arena allocated it.

// ExprID identifies an expression in a function's arena.
type ExprID uint32

// TypeID identifies a function signature in the module's type table.
type TypeID uint32

// LocalID identifies a local (including parameters) in the module's
// local table.
type LocalID uint32

// GlobalID identifies a global in the module's global table.
type GlobalID uint32

// MemoryID identifies a linear memory.
type MemoryID uint32

// FuncID identifies a function.
type FuncID uint32

// IsValid reports whether the identifier refers to an allocated expression.
func (id ExprID) IsValid() bool { return id != 0 }

// Index returns the zero-based arena index of the local. Useful for
// generated names and deterministic output.
func (id LocalID) Index() int { return int(id) - 1 }

// Index returns the zero-based arena index of the global.
func (id GlobalID) Index() int { return int(id) - 1 }

// Index returns the zero-based arena index of the function.
func (id FuncID) Index() int { return int(id) - 1 }
