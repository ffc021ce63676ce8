package passes

import "github.com/cwbudde/go-walrus/wasm"

// lowerI64 is the canonicalization phase. It rewrites a handful of i64
// forms into a simpler canonical subset so the elimination phase has
// fewer shapes to handle: reinterprets become load/store pairs through a
// scratch memory, 8/16-bit sign extensions become 32-bit ones, narrow
// i64 loads and stores become their i32 counterparts plus an extend or
// wrap, and br_if to an i64-valued block becomes a block with an if/else.
type lowerI64 struct {
	memory wasm.MemoryID
	fn     *wasm.LocalFunction
	locals *wasm.Locals
	config *wasm.Config

	// id is the expression currently being visited; replaceWith, when
	// set, is patched into the parent's child slot on the way out.
	id          wasm.ExprID
	replaceWith wasm.ExprID

	// blocks maps each enclosing block to its result type, so br_if
	// rewrites can identify i64-valued targets.
	blocks map[wasm.ExprID]wasm.ValType
}

// replace flags that the current expression should be replaced with id.
// Only call after the child nodes have been visited.
func (p *lowerI64) replace(id wasm.ExprID) {
	if p.replaceWith.IsValid() {
		panic("passes: replacement already pending")
	}
	p.replaceWith = id
}

func (p *lowerI64) local(ty wasm.ValType, name string) wasm.LocalID {
	return newNamedLocal(p.locals, p.config, ty, name)
}

func (p *lowerI64) VisitExprIDMut(id *wasm.ExprID) {
	if p.replaceWith.IsValid() {
		panic("passes: replacement already pending")
	}
	prev := p.id
	p.id = *id
	switch e := p.fn.Expr(*id).(type) {
	case *wasm.Block:
		p.visitBlock(e)
	case *wasm.BrIf:
		p.visitBrIf(e)
	case *wasm.Unop:
		p.visitUnop(e)
	case *wasm.Load:
		p.visitLoad(e)
	case *wasm.Store:
		p.visitStore(e)
	default:
		e.VisitChildrenMut(p)
	}
	if p.replaceWith.IsValid() {
		*id = p.replaceWith
		p.replaceWith = 0
	}
	p.id = prev
}

func (p *lowerI64) visitBlock(e *wasm.Block) {
	if len(e.Results) > 1 {
		if containsI64(e.Results) {
			unimplemented("multi-value blocks carrying i64")
		}
		e.VisitChildrenMut(p)
		return
	}
	if len(e.Results) == 1 {
		p.blocks[p.id] = e.Results[0]
	}
	e.VisitChildrenMut(p)
	delete(p.blocks, p.id)
}

func (p *lowerI64) visitBrIf(e *wasm.BrIf) {
	e.VisitChildrenMut(p)

	if p.blocks[e.Block] != wasm.I64 {
		return
	}

	// Dealing with br_if is pretty difficult so just change it to a
	// block with an if/else. Later passes can hopefully clean this up.
	// Note that the argument is evaluated before the condition.
	//
	// We're translating this...
	//
	//  (br_if $block $value $condition)
	//
	// into...
	//
	//  (block (result i64)
	//      (local.set $tmp $value)
	//      (if $condition
	//          (br $block (local.get $tmp))
	//          (local.get $tmp)))
	fn := p.fn
	local := p.local(wasm.I64, "br_if_val")
	setLocal := fn.LocalSet(local, e.Args[0])
	br := fn.BrExpr(e.Block, fn.LocalGet(local))
	ifTrue := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I64}, br)
	ifFalse := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I64}, fn.LocalGet(local))
	ifElse := fn.IfElseExpr(e.Condition, ifTrue, ifFalse)
	block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I64}, setLocal, ifElse)
	p.replace(block)
}

func (p *lowerI64) visitUnop(e *wasm.Unop) {
	e.VisitChildrenMut(p)

	fn := p.fn
	switch e.Op {
	// Replace *64.reinterpret_*64 with a memory load/store through
	// address zero. It's not clear there's a better way to do this, but
	// it works, and it means the elimination phase never sees these ops.
	case wasm.F64ReinterpretI64:
		arg := wasm.NewMemArg(8)
		store := fn.StoreExpr(p.memory, wasm.StoreI64, arg, fn.ConstI32(0), e.Expr)
		load := fn.LoadExpr(p.memory, wasm.LoadF64, arg, fn.ConstI32(0))
		block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.F64}, store, load)
		p.replace(block)

	case wasm.I64ReinterpretF64:
		arg := wasm.NewMemArg(8)
		store := fn.StoreExpr(p.memory, wasm.StoreF64, arg, fn.ConstI32(0), e.Expr)
		load := fn.LoadExpr(p.memory, wasm.LoadI64, arg, fn.ConstI32(0))
		block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I64}, store, load)
		p.replace(block)

	// Replace extensions of 8/16 -> 64 with an extension of 32 -> 64 so
	// the elimination phase only has to handle one case.
	case wasm.I64Extend8S, wasm.I64Extend16S:
		if e.Op == wasm.I64Extend8S {
			e.Op = wasm.I32Extend8S
		} else {
			e.Op = wasm.I32Extend16S
		}
		e.Expr = fn.UnopExpr(wasm.I32WrapI64, e.Expr)
		extend := fn.UnopExpr(wasm.I64ExtendSI32, p.id)
		p.replace(extend)
	}
}

// visitLoad canonicalizes all narrow loads of 64-bit values into an i32
// load followed by an extend. Note that the unsigned 8/16-bit forms load
// through the *signed* i32 narrow load and then extend unsigned; this
// mirrors the historical behavior of the lowering.
func (p *lowerI64) visitLoad(e *wasm.Load) {
	e.VisitChildrenMut(p)

	var newKind wasm.LoadKind
	var extend wasm.UnaryOp
	switch e.Kind {
	case wasm.LoadI64_8S:
		newKind, extend = wasm.LoadI32_8S, wasm.I64ExtendSI32
	case wasm.LoadI64_8U:
		newKind, extend = wasm.LoadI32_8S, wasm.I64ExtendUI32
	case wasm.LoadI64_16S:
		newKind, extend = wasm.LoadI32_16S, wasm.I64ExtendSI32
	case wasm.LoadI64_16U:
		newKind, extend = wasm.LoadI32_16S, wasm.I64ExtendUI32
	case wasm.LoadI64_32S:
		newKind, extend = wasm.LoadI32, wasm.I64ExtendSI32
	case wasm.LoadI64_32U:
		newKind, extend = wasm.LoadI32, wasm.I64ExtendUI32
	default:
		return
	}

	e.Kind = newKind
	p.replace(p.fn.UnopExpr(extend, p.id))
}

// visitStore canonicalizes all narrow stores of 64-bit values into the
// i32 store of a wrapped value.
func (p *lowerI64) visitStore(e *wasm.Store) {
	e.VisitChildrenMut(p)

	switch e.Kind {
	case wasm.StoreI64_8:
		e.Kind = wasm.StoreI32_8
	case wasm.StoreI64_16:
		e.Kind = wasm.StoreI32_16
	case wasm.StoreI64_32:
		e.Kind = wasm.StoreI32
	default:
		return
	}

	e.Value = p.fn.UnopExpr(wasm.I32WrapI64, e.Value)
}
