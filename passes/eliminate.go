package passes

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/go-walrus/wasm"
)

// removeI64 is the elimination phase. It walks a function bottom-up and
// removes every remaining i64 producer and consumer.
//
// The invariant threaded through the whole walk: for every expression
// that originally evaluated to an i64, lowBits records an i32 local that
// holds the low 32 bits of that value by the time the (rewritten)
// expression finishes. The rewritten expression itself leaves only the
// high 32 bits on the operand stack.
type removeI64 struct {
	fn       *wasm.LocalFunction
	funcID   wasm.FuncID
	analysis *analysis
	locals   *wasm.Locals
	types    *wasm.Types
	memory   wasm.MemoryID
	config   *wasm.Config

	id          wasm.ExprID
	replaceWith wasm.ExprID

	lowBits     map[wasm.ExprID]wasm.LocalID
	localHalves map[wasm.LocalID]localPair
}

func (p *removeI64) local(ty wasm.ValType, name string) wasm.LocalID {
	return newNamedLocal(p.locals, p.config, ty, name)
}

// halves returns the two i32 locals standing in for the given i64 local,
// splitting it lazily on first use. Function arguments were already split
// by the analysis phase.
func (p *removeI64) halves(local wasm.LocalID) localPair {
	if pair, ok := p.localHalves[local]; ok {
		return pair
	}
	if pair, ok := p.analysis.arguments[local]; ok {
		return pair
	}
	pair := localPair{low: p.locals.Add(wasm.I32), high: p.locals.Add(wasm.I32)}
	if p.config.GenerateNames {
		base := p.locals.Get(local).Name
		if base == "" {
			base = strconv.Itoa(local.Index())
		}
		p.locals.Get(pair.low).Name = base + "_low"
		p.locals.Get(pair.high).Name = base + "_high"
	}
	p.localHalves[local] = pair
	return pair
}

// spill stores the given expression into a fresh i32 local, returning the
// local.set expression and the local.
func (p *removeI64) spill(bits wasm.ExprID) (wasm.ExprID, wasm.LocalID) {
	local := p.local(wasm.I32, "temp_low")
	return p.fn.LocalSet(local, bits), local
}

// split replaces the current expression, which originally produced an
// i64, with a block that evaluates lowBits into a spill local and then
// leaves highBits on the stack. lowBits is evaluated before highBits.
func (p *removeI64) split(lowBits, highBits wasm.ExprID) {
	set, local := p.spill(lowBits)
	block := p.fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, set, highBits)
	p.replace(block)
	p.lowBits[block] = local
}

// consume replaces the current expression with a block of a then b. Only
// for expressions which don't produce a value.
func (p *removeI64) consume(a, b wasm.ExprID) {
	block := p.fn.BlockExpr(wasm.BlockNormal, nil, a, b)
	p.replace(block)
}

// replace flags that the current expression should be replaced with id.
// Only call after the child nodes have been visited.
func (p *removeI64) replace(id wasm.ExprID) {
	if p.replaceWith.IsValid() {
		panic("passes: replacement already pending")
	}
	p.replaceWith = id
}

// mustLowBits returns the low-bits local registered for the given
// expression. Every rewritten i64 producer registers one; a miss means
// the operand is one we can't thread low bits through.
func (p *removeI64) mustLowBits(id wasm.ExprID) wasm.LocalID {
	local, ok := p.lowBits[id]
	if !ok {
		unimplemented("i64 operand with untracked low bits")
	}
	return local
}

func (p *removeI64) VisitExprIDMut(id *wasm.ExprID) {
	if p.replaceWith.IsValid() {
		panic("passes: replacement already pending")
	}
	prev := p.id
	p.id = *id
	switch e := p.fn.Expr(*id).(type) {
	case *wasm.Block:
		p.visitBlock(e)
	case *wasm.IfElse:
		p.visitIfElse(e)
	case *wasm.Const:
		p.visitConst(e)
	case *wasm.GlobalGet:
		p.visitGlobalGet(e)
	case *wasm.GlobalSet:
		p.visitGlobalSet(e)
	case *wasm.LocalGet:
		p.visitLocalGet(e)
	case *wasm.LocalSet:
		p.visitLocalSet(e)
	case *wasm.LocalTee:
		p.visitLocalTee(e)
	case *wasm.Unop:
		p.visitUnop(e)
	case *wasm.Binop:
		p.visitBinop(e)
	case *wasm.Load:
		p.visitLoad(e)
	case *wasm.Store:
		p.visitStore(e)
	case *wasm.Br:
		p.visitBr(e)
	case *wasm.BrIf:
		p.visitBrIf(e)
	case *wasm.BrTable:
		p.visitBrTable(e)
	case *wasm.Call:
		p.visitCall(e)
	case *wasm.CallIndirect:
		p.visitCallIndirect(e)
	case *wasm.Select:
		p.visitSelect(e)
	case *wasm.Return:
		p.visitReturn(e)
	case *wasm.AtomicRmw:
		e.VisitChildrenMut(p)
		if e.Width.ResultType() == wasm.I64 {
			unimplemented("64-bit atomic read-modify-writes")
		}
	case *wasm.AtomicCmpxchg:
		e.VisitChildrenMut(p)
		if e.Width.ResultType() == wasm.I64 {
			unimplemented("64-bit atomic compare-exchanges")
		}
	case *wasm.AtomicWait:
		e.VisitChildrenMut(p)
		if e.Is64 {
			unimplemented("64-bit atomic waits")
		}
	default:
		e.VisitChildrenMut(p)
	}
	if p.replaceWith.IsValid() {
		*id = p.replaceWith
		p.replaceWith = 0
	}
	p.id = prev
}

func (p *removeI64) visitConst(e *wasm.Const) {
	if e.Value.Kind != wasm.I64 {
		return
	}
	v := e.Value.I64
	low := p.fn.ConstI32(int32(v))
	high := p.fn.ConstI32(int32(v >> 32))
	p.split(low, high)
}

func (p *removeI64) visitGlobalGet(e *wasm.GlobalGet) {
	replace, ok := p.analysis.globals[e.Global]
	if !ok {
		return
	}
	// Turn this expression into a fetch of the low bits, allocate a new
	// expression fetching the high bits, and split with the two.
	e.Global = replace.low
	highBits := p.fn.GlobalGet(replace.high)
	p.split(p.id, highBits)
}

func (p *removeI64) visitGlobalSet(e *wasm.GlobalSet) {
	e.VisitChildrenMut(p)

	replace, ok := p.analysis.globals[e.Global]
	if !ok {
		return
	}

	// The value expression is now the high bits plus the computation
	// tree, so execute that first by retargeting where this expression
	// stores into, then store the spilled low bits afterwards.
	e.Global = replace.high
	local := p.mustLowBits(e.Value)
	lowBits := p.fn.GlobalSet(replace.low, p.fn.LocalGet(local))
	p.consume(p.id, lowBits)
}

func (p *removeI64) visitLocalGet(e *wasm.LocalGet) {
	if p.locals.Get(e.Local).Type != wasm.I64 {
		return
	}
	// Same dance as global.get.
	replace := p.halves(e.Local)
	e.Local = replace.low
	highBits := p.fn.LocalGet(replace.high)
	p.split(p.id, highBits)
}

func (p *removeI64) visitLocalSet(e *wasm.LocalSet) {
	e.VisitChildrenMut(p)

	if p.locals.Get(e.Local).Type != wasm.I64 {
		return
	}
	// Same dance as global.set.
	replace := p.halves(e.Local)
	e.Local = replace.high
	local := p.mustLowBits(e.Value)
	lowBits := p.fn.LocalSet(replace.low, p.fn.LocalGet(local))
	p.consume(p.id, lowBits)
}

func (p *removeI64) visitLocalTee(e *wasm.LocalTee) {
	e.VisitChildrenMut(p)

	if p.locals.Get(e.Local).Type != wasm.I64 {
		return
	}

	// Transform into:
	//
	//  (block (result i32)
	//      (local.set $tmp
	//          (block (result i32)
	//              (local.set $local_high ($high_bits))
	//              (local.tee $local_low (local.get $low_bits))))
	//      (local.get $local_high))
	//
	// The high bits are evaluated into the local's own high half, the
	// low bits are teed from the value's low temporary into the low
	// half, and the high half is fetched again to finish.
	fn := p.fn
	replace := p.halves(e.Local)
	setHigh := fn.LocalSet(replace.high, e.Value)
	lowTemp := p.mustLowBits(e.Value)
	teeLow := fn.LocalTee(replace.low, fn.LocalGet(lowTemp))
	getHigh := fn.LocalGet(replace.high)

	block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, setHigh, teeLow)
	p.split(block, getHigh)
}

func (p *removeI64) visitBr(e *wasm.Br) {
	if len(e.Args) > 1 {
		unimplemented("multi-value branches")
	}
	e.VisitChildrenMut(p)
	if len(e.Args) == 0 {
		return
	}
	arg := e.Args[0]
	lowBits, ok := p.lowBits[arg]
	if !ok {
		return
	}

	// The branch's value expression now carries the high bits, which we
	// keep, but the low bits need to make their way into the target
	// block's low-bits local, which consumers read after the block ends.
	// So a branch becomes:
	//
	//  (block
	//      (local.set $tmp $expr)
	//      (local.set $block_low (local.get $expr_low))
	//      (br (local.get $tmp)))
	fn := p.fn
	blockLow := p.mustLowBits(e.Block)

	highTmp := p.local(wasm.I32, "br_high")
	setHigh := fn.LocalSet(highTmp, arg)
	setLow := fn.LocalSet(blockLow, fn.LocalGet(lowBits))
	e.Args[0] = fn.LocalGet(highTmp)

	block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, setHigh, setLow, p.id)
	p.replace(block)
}

func (p *removeI64) visitBrIf(e *wasm.BrIf) {
	if len(e.Args) > 1 {
		unimplemented("multi-value branches")
	}
	e.VisitChildrenMut(p)
	if len(e.Args) == 1 {
		// br_if to i64-valued blocks was rewritten away during
		// canonicalization.
		if _, ok := p.lowBits[e.Args[0]]; ok {
			unimplemented("br_if carrying i64")
		}
	}
}

func (p *removeI64) visitBrTable(e *wasm.BrTable) {
	if len(e.Args) > 1 {
		unimplemented("multi-value branches")
	}
	e.VisitChildrenMut(p)
	if len(e.Args) == 1 {
		if _, ok := p.lowBits[e.Args[0]]; ok {
			unimplemented("br_table carrying i64")
		}
	}
}

func (p *removeI64) visitCall(e *wasm.Call) {
	e.VisitChildrenMut(p)
	if old, ok := p.analysis.oldFuncTypes[e.Func]; ok {
		if _, rewritten := p.analysis.oldToNewTypes[old]; rewritten {
			unimplemented("calls to functions taking or returning i64")
		}
	}
	for _, arg := range e.Args {
		if _, ok := p.lowBits[arg]; ok {
			unimplemented("calls to functions taking or returning i64")
		}
	}
}

func (p *removeI64) visitCallIndirect(e *wasm.CallIndirect) {
	e.VisitChildrenMut(p)
	if p.types.Get(e.Type).HasI64() {
		unimplemented("indirect calls taking or returning i64")
	}
	for _, arg := range e.Args {
		if _, ok := p.lowBits[arg]; ok {
			unimplemented("indirect calls taking or returning i64")
		}
	}
}

func (p *removeI64) visitSelect(e *wasm.Select) {
	e.VisitChildrenMut(p)
	if _, ok := p.lowBits[e.IfTrue]; ok {
		unimplemented("select on i64")
	}
	if _, ok := p.lowBits[e.IfFalse]; ok {
		unimplemented("select on i64")
	}
}

func (p *removeI64) visitReturn(e *wasm.Return) {
	e.VisitChildrenMut(p)
	for _, v := range e.Values {
		if _, ok := p.lowBits[v]; ok {
			unimplemented("returns carrying i64")
		}
	}
}

func (p *removeI64) visitIfElse(e *wasm.IfElse) {
	results := p.fn.MustBlock(e.Consequent).Results
	if len(results) > 1 && containsI64(results) {
		unimplemented("multi-value blocks carrying i64")
	}
	returnsI64 := len(results) == 1 && results[0] == wasm.I64
	e.VisitChildrenMut(p)

	if !returnsI64 {
		return
	}

	// Both arms now leave high bits on the stack with their low bits in
	// each arm's own block-low local. Funnel both into one shared pair
	// so consumers of the if/else can read them uniformly.
	fn := p.fn
	lowLocal := p.local(wasm.I32, "if_else_low")
	tempHigh := p.local(wasm.I32, "if_else_high")

	update := func(blockID wasm.ExprID) {
		block := fn.MustBlock(blockID)
		low := p.mustLowBits(blockID)
		last := &block.Exprs[len(block.Exprs)-1]
		getLow := fn.LocalGet(low)
		*last = fn.LocalSet(tempHigh, *last)
		block.Exprs = append(block.Exprs, fn.LocalSet(lowLocal, getLow))
		block.Exprs = append(block.Exprs, fn.LocalGet(tempHigh))
	}

	update(e.Consequent)
	update(e.Alternative)
	p.lowBits[p.id] = lowLocal
}

func (p *removeI64) visitBinop(e *wasm.Binop) {
	e.VisitChildrenMut(p)

	switch e.Op {
	case wasm.I64Eq, wasm.I64Ne,
		wasm.I64LtS, wasm.I64LtU, wasm.I64GtS, wasm.I64GtU,
		wasm.I64LeS, wasm.I64LeU, wasm.I64GeS, wasm.I64GeU:
		unimplemented("i64 comparison operators")

	case wasm.I64Add, wasm.I64Sub, wasm.I64Mul,
		wasm.I64DivS, wasm.I64DivU, wasm.I64RemS, wasm.I64RemU:
		unimplemented("i64 arithmetic operators")

	case wasm.I64Shl, wasm.I64ShrS, wasm.I64ShrU, wasm.I64Rotl, wasm.I64Rotr:
		unimplemented("i64 shift and rotate operators")

	case wasm.I64And:
		p.binaryBitop(e, wasm.I32And)
	case wasm.I64Or:
		p.binaryBitop(e, wasm.I32Or)
	case wasm.I64Xor:
		p.binaryBitop(e, wasm.I32Xor)
	}
}

// binaryBitop replaces a 64-bit bitwise operation with two 32-bit
// components: the high halves are spilled into temporaries while their
// low halves are combined, then the outer node combines the spilled high
// temporaries.
func (p *removeI64) binaryBitop(e *wasm.Binop, op32 wasm.BinaryOp) {
	fn := p.fn
	lhsTempHigh := p.local(wasm.I32, "binop_lhs_high")
	rhsTempHigh := p.local(wasm.I32, "binop_rhs_high")

	lhsTemp := fn.LocalSet(lhsTempHigh, e.LHS)
	rhsTemp := fn.LocalSet(rhsTempHigh, e.RHS)

	lhsLow := p.mustLowBits(e.LHS)
	rhsLow := p.mustLowBits(e.RHS)

	low := fn.BinopExpr(op32, fn.LocalGet(lhsLow), fn.LocalGet(rhsLow))
	lowBlock := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, lhsTemp, rhsTemp, low)

	e.Op = op32
	e.LHS = fn.LocalGet(lhsTempHigh)
	e.RHS = fn.LocalGet(rhsTempHigh)
	p.split(lowBlock, p.id)
}

func (p *removeI64) visitUnop(e *wasm.Unop) {
	e.VisitChildrenMut(p)

	fn := p.fn
	switch e.Op {
	case wasm.F32ConvertSI64, wasm.F32ConvertUI64,
		wasm.F64ConvertSI64, wasm.F64ConvertUI64,
		wasm.I64TruncSF32, wasm.I64TruncUF32,
		wasm.I64TruncSF64, wasm.I64TruncUF64:
		unimplemented("conversions between i64 and floats")

	case wasm.F64ReinterpretI64, wasm.I64ReinterpretF64,
		wasm.I64Extend8S, wasm.I64Extend16S:
		// Canonicalization removed these.
		panic(fmt.Sprintf("passes: %s survived canonicalization", e.Op))

	case wasm.I64ExtendUI32:
		// Easy: the high bits are always zero.
		p.split(e.Expr, fn.ConstI32(0))

	case wasm.I64ExtendSI32:
		// The operand becomes the low bits unconditionally. The upper 32
		// bits are the 31st bit of the low bits broadcast to all bits, a
		// signed shift right.
		local := p.local(wasm.I32, "extend")
		teeLow := fn.LocalTee(local, e.Expr)
		shift := fn.BinopExpr(wasm.I32ShrS, fn.LocalGet(local), fn.ConstI32(31))
		p.split(teeLow, shift)

	case wasm.I64Extend32S:
		// Same as above, except the low bits come from the operand's
		// low-bits local after its high bits are dropped.
		local := p.local(wasm.I32, "extend")
		low := p.mustLowBits(e.Expr)
		dropHigh := fn.DropExpr(e.Expr)
		block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, dropHigh, fn.LocalGet(low))
		teeLow := fn.LocalTee(local, block)
		shift := fn.BinopExpr(wasm.I32ShrS, fn.LocalGet(local), fn.ConstI32(31))
		p.split(teeLow, shift)

	case wasm.I64Eqz:
		// Become a 32-bit eqz of the high bits, and combine with an eqz
		// of the low bits.
		low := p.mustLowBits(e.Expr)
		e.Op = wasm.I32Eqz
		rhs := fn.UnopExpr(wasm.I32Eqz, fn.LocalGet(low))
		result := fn.BinopExpr(wasm.I32And, p.id, rhs)
		p.replace(result)

	case wasm.I64Popcnt:
		// Become a 32-bit popcnt of the high bits, added to the popcnt
		// of the spilled low bits. The high half of the result is always
		// zero since there can't be more than 2^32 bits.
		low := p.mustLowBits(e.Expr)
		e.Op = wasm.I32Popcnt
		rhs := fn.UnopExpr(wasm.I32Popcnt, fn.LocalGet(low))
		sum := fn.BinopExpr(wasm.I32Add, p.id, rhs)
		p.split(sum, fn.ConstI32(0))

	case wasm.I32WrapI64:
		// Execute the high bits, drop them, and return the low bits.
		low := p.mustLowBits(e.Expr)
		dropHigh := fn.DropExpr(e.Expr)
		block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, dropHigh, fn.LocalGet(low))
		p.replace(block)

	case wasm.I64Ctz:
		// Mapping roughly to:
		//
		//  (block (result i32)
		//      (local.set $tmp $high_bits)
		//      (select
		//          (i32.add (i32.const 32) (i32.ctz (local.get $high)))
		//          (i32.ctz (local.get $low))
		//          (i32.eqz (local.get $low))))
		//
		// The high half of the result is always zero since there can't
		// be more than 2^32 bits.
		high := p.local(wasm.I32, "ctz")
		low := p.mustLowBits(e.Expr)

		setHigh := fn.LocalSet(high, e.Expr)

		loadLow := fn.LocalGet(low)
		condition := fn.UnopExpr(wasm.I32Eqz, loadLow)

		ctzHigh := fn.UnopExpr(wasm.I32Ctz, fn.LocalGet(high))
		ifTrue := fn.BinopExpr(wasm.I32Add, fn.ConstI32(32), ctzHigh)
		ifFalse := fn.UnopExpr(wasm.I32Ctz, loadLow)
		sel := fn.SelectExpr(condition, ifTrue, ifFalse)

		block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, setHigh, sel)
		p.split(block, fn.ConstI32(0))

	case wasm.I64Clz:
		// Symmetric to ctz, keyed on the high half being zero.
		high := p.local(wasm.I32, "clz")
		low := p.mustLowBits(e.Expr)

		setHigh := fn.LocalSet(high, e.Expr)

		loadLow := fn.LocalGet(low)
		loadHigh := fn.LocalGet(high)
		condition := fn.UnopExpr(wasm.I32Eqz, loadHigh)

		clzLow := fn.UnopExpr(wasm.I32Clz, loadLow)
		ifTrue := fn.BinopExpr(wasm.I32Add, fn.ConstI32(32), clzLow)
		ifFalse := fn.UnopExpr(wasm.I32Clz, loadHigh)
		sel := fn.SelectExpr(condition, ifTrue, ifFalse)

		block := fn.BlockExpr(wasm.BlockNormal, []wasm.ValType{wasm.I32}, setHigh, sel)
		p.split(block, fn.ConstI32(0))
	}
}

func (p *removeI64) visitLoad(e *wasm.Load) {
	e.VisitChildrenMut(p)

	fn := p.fn
	switch e.Kind {
	case wasm.LoadI64:
		// Change this into:
		//
		//  (block (result i32)
		//      (local.set $tmp_low
		//          (i32.load (local.tee $tmp ($address))))
		//      (i32.load offset=4 (local.get $tmp)))
		addressLocal := p.local(wasm.I32, "load_address")
		address := fn.LocalTee(addressLocal, e.Address)

		arg := e.Arg.WithAlign(min(e.Arg.Align, 4))
		low := fn.LoadExpr(e.Memory, wasm.LoadI32, arg, address)

		e.Kind = wasm.LoadI32
		e.Arg = arg.WithOffset(arg.Offset + 4)
		e.Address = fn.LocalGet(addressLocal)

		p.split(low, p.id)

	case wasm.LoadI64Atomic:
		unimplemented("64-bit atomic loads")

	case wasm.LoadI64_8S, wasm.LoadI64_8U,
		wasm.LoadI64_16S, wasm.LoadI64_16U,
		wasm.LoadI64_32S, wasm.LoadI64_32U:
		// Canonicalization removed these.
		panic(fmt.Sprintf("passes: %s survived canonicalization", e.Kind))
	}
}

func (p *removeI64) visitStore(e *wasm.Store) {
	e.VisitChildrenMut(p)

	fn := p.fn
	switch e.Kind {
	case wasm.StoreI64:
		// Change this into:
		//
		//  (block
		//      (i32.store offset=4 (local.tee $tmp ($address)) $high)
		//      (i32.store (local.get $tmp) (local.get $low)))
		addressLocal := p.local(wasm.I32, "store_address")
		arg := e.Arg.WithAlign(min(e.Arg.Align, 4))

		e.Kind = wasm.StoreI32
		e.Arg = arg.WithOffset(arg.Offset + 4)
		e.Address = fn.LocalTee(addressLocal, e.Address)

		local := p.mustLowBits(e.Value)
		low := fn.StoreExpr(e.Memory, wasm.StoreI32, arg, fn.LocalGet(addressLocal), fn.LocalGet(local))

		p.consume(p.id, low)

	case wasm.StoreI64Atomic:
		unimplemented("64-bit atomic stores")

	case wasm.StoreI64_8, wasm.StoreI64_16, wasm.StoreI64_32:
		// Canonicalization removed these.
		panic(fmt.Sprintf("passes: %s survived canonicalization", e.Kind))
	}
}

func (p *removeI64) visitBlock(e *wasm.Block) {
	if len(e.Results) > 1 {
		if containsI64(e.Results) {
			unimplemented("multi-value blocks carrying i64")
		}
		e.VisitChildrenMut(p)
		return
	}

	// A block with an i64 result will end up with an i32 result (the
	// high bits), with the low bits readable from a local the block
	// fills in at the end. The local must be allocated before descending
	// so that branches to this block can find it and fill it in
	// themselves. Overall:
	//
	//  (block (result i32)
	//      ...
	//      (local.set $temp ($high_bits))
	//      (local.set $block_low (local.get $low_bits))
	//      (local.get $temp))
	if len(e.Results) != 1 || e.Results[0] != wasm.I64 {
		e.VisitChildrenMut(p)
		return
	}

	fn := p.fn
	lowBits := p.local(wasm.I32, "block_low")
	if _, dup := p.lowBits[p.id]; dup {
		panic("passes: block low-bits local registered twice")
	}
	p.lowBits[p.id] = lowBits

	e.VisitChildrenMut(p)

	e.Results[0] = wasm.I32
	highTemp := p.local(wasm.I32, "block_high")

	last := &e.Exprs[len(e.Exprs)-1]

	// If the block doesn't actually end in a 64-bit expression, such as
	// some unreachable value, there are no low bits registered and no
	// dance is necessary.
	local, ok := p.lowBits[*last]
	if !ok {
		return
	}
	getLow := fn.LocalGet(local)

	*last = fn.LocalSet(highTemp, *last)
	e.Exprs = append(e.Exprs, fn.LocalSet(lowBits, getLow))
	e.Exprs = append(e.Exprs, fn.LocalGet(highTemp))
}
