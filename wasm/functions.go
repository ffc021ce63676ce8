package wasm

import "fmt"

// LocalFunction is the body of a function defined in this module: its
// argument locals, its expression arena, and the entry block. The arena
// grows monotonically; expressions are never freed. Nodes detached by a
// rewrite simply become unreachable from the entry block.
type LocalFunction struct {
	// Args are the locals bound to the function's parameters, in order.
	Args []LocalID

	exprs []Expr
	entry ExprID
}

// NewLocalFunction creates an empty function body with the given argument
// locals. The entry block must be allocated with AllocEntry before the
// body is usable.
func NewLocalFunction(args []LocalID) *LocalFunction {
	return &LocalFunction{Args: args}
}

// Alloc adds an expression to the arena and returns its identifier.
func (fn *LocalFunction) Alloc(e Expr) ExprID {
	fn.exprs = append(fn.exprs, e)
	return ExprID(len(fn.exprs))
}

// AllocEntry allocates the function-entry block with the given result
// types and records it as the entry point.
func (fn *LocalFunction) AllocEntry(results []ValType) ExprID {
	fn.entry = fn.Alloc(&Block{
		Kind:    FunctionEntry,
		Results: results,
	})
	return fn.entry
}

// SetEntry records an existing block as the function's entry point.
func (fn *LocalFunction) SetEntry(id ExprID) {
	fn.mustBlock(id)
	fn.entry = id
}

// Entry returns the id of the function's entry block.
func (fn *LocalFunction) Entry() ExprID {
	if !fn.entry.IsValid() {
		panic("wasm: function has no entry block")
	}
	return fn.entry
}

// Expr returns the expression behind id. The id must have been allocated
// by this function's arena.
func (fn *LocalFunction) Expr(id ExprID) Expr {
	if !id.IsValid() || int(id) > len(fn.exprs) {
		panic(fmt.Sprintf("wasm: expression id %d out of range", id))
	}
	return fn.exprs[id-1]
}

// Block returns the block behind id, or nil if the node is not a block.
func (fn *LocalFunction) Block(id ExprID) *Block {
	b, _ := fn.Expr(id).(*Block)
	return b
}

func (fn *LocalFunction) mustBlock(id ExprID) *Block {
	b := fn.Block(id)
	if b == nil {
		panic(fmt.Sprintf("wasm: expression %d is not a block", id))
	}
	return b
}

// MustBlock returns the block behind id, panicking if the node is any
// other variant.
func (fn *LocalFunction) MustBlock(id ExprID) *Block {
	return fn.mustBlock(id)
}

// FuncKind distinguishes imported functions from locally defined ones.
type FuncKind uint8

const (
	FuncImported FuncKind = iota
	FuncLocal
)

// Function is an entry of the module's function table: a signature plus,
// for local functions, a body.
type Function struct {
	Kind FuncKind
	Type TypeID
	Name string

	// Body is non-nil exactly when Kind is FuncLocal.
	Body *LocalFunction
}

// Funcs is the module's function table.
type Funcs struct {
	arena []Function
}

// AddLocal adds a locally defined function with the given signature and
// body, returning its id.
func (f *Funcs) AddLocal(ty TypeID, body *LocalFunction) FuncID {
	f.arena = append(f.arena, Function{Kind: FuncLocal, Type: ty, Body: body})
	return FuncID(len(f.arena))
}

// AddImported adds an imported function with the given signature.
func (f *Funcs) AddImported(ty TypeID, name string) FuncID {
	f.arena = append(f.arena, Function{Kind: FuncImported, Type: ty, Name: name})
	return FuncID(len(f.arena))
}

// Get returns the function with the given id.
func (f *Funcs) Get(id FuncID) *Function {
	return &f.arena[id-1]
}

// Len returns the number of functions in the table.
func (f *Funcs) Len() int { return len(f.arena) }

// Iter calls fn for every function in the table, in id order.
func (f *Funcs) Iter(fn func(id FuncID, fun *Function)) {
	for i := range f.arena {
		fn(FuncID(i+1), &f.arena[i])
	}
}

// IterLocal calls fn for every locally defined function, in id order. The
// callback receives the mutable function entry.
func (f *Funcs) IterLocal(fn func(id FuncID, fun *Function)) {
	for i := range f.arena {
		if f.arena[i].Kind == FuncLocal {
			fn(FuncID(i+1), &f.arena[i])
		}
	}
}
