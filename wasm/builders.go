package wasm

// Builders allocate common expression shapes and return the new id. Pass
// code creates IR exclusively through these, which keeps construction
// uniform and makes rewrites easy to read.

// Const allocates a literal.
func (fn *LocalFunction) Const(v Value) ExprID {
	return fn.Alloc(&Const{Value: v})
}

// ConstI32 allocates an i32 literal.
func (fn *LocalFunction) ConstI32(v int32) ExprID {
	return fn.Const(ValueI32(v))
}

// ConstI64 allocates an i64 literal.
func (fn *LocalFunction) ConstI64(v int64) ExprID {
	return fn.Const(ValueI64(v))
}

// LocalGet allocates a read of the given local.
func (fn *LocalFunction) LocalGet(local LocalID) ExprID {
	return fn.Alloc(&LocalGet{Local: local})
}

// LocalSet allocates a write of the given local.
func (fn *LocalFunction) LocalSet(local LocalID, value ExprID) ExprID {
	return fn.Alloc(&LocalSet{Local: local, Value: value})
}

// LocalTee allocates a write of the given local that leaves the value on
// the stack.
func (fn *LocalFunction) LocalTee(local LocalID, value ExprID) ExprID {
	return fn.Alloc(&LocalTee{Local: local, Value: value})
}

// GlobalGet allocates a read of the given global.
func (fn *LocalFunction) GlobalGet(global GlobalID) ExprID {
	return fn.Alloc(&GlobalGet{Global: global})
}

// GlobalSet allocates a write of the given global.
func (fn *LocalFunction) GlobalSet(global GlobalID, value ExprID) ExprID {
	return fn.Alloc(&GlobalSet{Global: global, Value: value})
}

// UnopExpr allocates a one-operand operator application.
func (fn *LocalFunction) UnopExpr(op UnaryOp, expr ExprID) ExprID {
	return fn.Alloc(&Unop{Op: op, Expr: expr})
}

// BinopExpr allocates a two-operand operator application.
func (fn *LocalFunction) BinopExpr(op BinaryOp, lhs, rhs ExprID) ExprID {
	return fn.Alloc(&Binop{Op: op, LHS: lhs, RHS: rhs})
}

// LoadExpr allocates a memory load.
func (fn *LocalFunction) LoadExpr(memory MemoryID, kind LoadKind, arg MemArg, address ExprID) ExprID {
	return fn.Alloc(&Load{Memory: memory, Kind: kind, Arg: arg, Address: address})
}

// StoreExpr allocates a memory store.
func (fn *LocalFunction) StoreExpr(memory MemoryID, kind StoreKind, arg MemArg, address, value ExprID) ExprID {
	return fn.Alloc(&Store{Memory: memory, Kind: kind, Arg: arg, Address: address, Value: value})
}

// DropExpr allocates a drop of the given expression's value.
func (fn *LocalFunction) DropExpr(expr ExprID) ExprID {
	return fn.Alloc(&Drop{Expr: expr})
}

// SelectExpr allocates a select between two values.
func (fn *LocalFunction) SelectExpr(condition, ifTrue, ifFalse ExprID) ExprID {
	return fn.Alloc(&Select{Condition: condition, IfTrue: ifTrue, IfFalse: ifFalse})
}

// BrExpr allocates an unconditional branch to the labeled block, carrying
// the given values.
func (fn *LocalFunction) BrExpr(block ExprID, args ...ExprID) ExprID {
	return fn.Alloc(&Br{Block: block, Args: args})
}

// IfElseExpr allocates an if/else whose arms are the given blocks.
func (fn *LocalFunction) IfElseExpr(condition, consequent, alternative ExprID) ExprID {
	return fn.Alloc(&IfElse{Condition: condition, Consequent: consequent, Alternative: alternative})
}

// BlockExpr allocates a block of the given kind with the given result
// types and body.
func (fn *LocalFunction) BlockExpr(kind BlockKind, results []ValType, exprs ...ExprID) ExprID {
	return fn.Alloc(&Block{Kind: kind, Results: results, Exprs: exprs})
}
