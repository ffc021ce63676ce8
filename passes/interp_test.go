package passes

import (
	"encoding/binary"
	"math"
	"math/bits"
	"testing"

	"github.com/cwbudde/go-walrus/wasm"
)

// A miniature evaluator for the IR subset the lowering emits, used by the
// end-to-end tests to observe the behavior of lowered modules without an
// external wasm engine. Values are carried as int64 bit containers: i32
// values are kept sign-extended, floats as their raw bit patterns.

type branch struct {
	target wasm.ExprID
	values []int64
}

type testVM struct {
	t       *testing.T
	m       *wasm.Module
	fn      *wasm.LocalFunction
	locals  map[wasm.LocalID]int64
	globals map[wasm.GlobalID]int64
	memory  []byte
}

func newTestVM(t *testing.T, m *wasm.Module) *testVM {
	v := &testVM{
		t:       t,
		m:       m,
		globals: make(map[wasm.GlobalID]int64),
		memory:  make([]byte, 2*65536),
	}
	m.Globals.Iter(func(id wasm.GlobalID, g *wasm.Global) {
		if g.Kind != wasm.GlobalLocal {
			t.Fatalf("global %d: imported globals not supported by the test vm", id)
		}
		if g.Init.Global != 0 {
			v.globals[id] = v.globals[g.Init.Global]
			return
		}
		switch g.Init.Value.Kind {
		case wasm.I32:
			v.globals[id] = int64(g.Init.Value.I32)
		case wasm.I64:
			v.globals[id] = g.Init.Value.I64
		case wasm.F32:
			v.globals[id] = int64(math.Float32bits(g.Init.Value.F32))
		case wasm.F64:
			v.globals[id] = int64(math.Float64bits(g.Init.Value.F64))
		}
	})
	return v
}

// run evaluates the given function with the given argument values and
// returns its results.
func (v *testVM) run(id wasm.FuncID, args ...int64) []int64 {
	f := v.m.Funcs.Get(id)
	if f.Kind != wasm.FuncLocal {
		v.t.Fatalf("function %d is imported", id)
	}
	v.fn = f.Body
	v.locals = make(map[wasm.LocalID]int64)
	if len(args) != len(f.Body.Args) {
		v.t.Fatalf("function %d: got %d arguments, want %d", id, len(args), len(f.Body.Args))
	}
	for i, arg := range f.Body.Args {
		v.locals[arg] = args[i]
	}
	vals, br := v.eval(f.Body.Entry())
	if br != nil {
		v.t.Fatalf("branch escaped the function entry block")
	}
	return vals
}

// runI32 evaluates a single-result function and returns the result as a
// raw 32-bit pattern.
func (v *testVM) runI32(id wasm.FuncID, args ...int64) uint32 {
	vals := v.run(id, args...)
	if len(vals) != 1 {
		v.t.Fatalf("got %d results, want 1", len(vals))
	}
	return uint32(vals[0])
}

func (v *testVM) eval1(id wasm.ExprID) (int64, *branch) {
	vals, br := v.eval(id)
	if br != nil {
		return 0, br
	}
	if len(vals) != 1 {
		v.t.Fatalf("expression %d: got %d values, want 1", id, len(vals))
	}
	return vals[0], nil
}

func (v *testVM) eval(id wasm.ExprID) ([]int64, *branch) {
	switch e := v.fn.Expr(id).(type) {
	case *wasm.Block:
		var last []int64
		for _, child := range e.Exprs {
			vals, br := v.eval(child)
			if br != nil {
				if br.target == id {
					return br.values, nil
				}
				return nil, br
			}
			last = vals
		}
		if len(e.Results) == 0 {
			return nil, nil
		}
		return last, nil

	case *wasm.Const:
		switch e.Value.Kind {
		case wasm.I32:
			return []int64{int64(e.Value.I32)}, nil
		case wasm.I64:
			return []int64{e.Value.I64}, nil
		case wasm.F32:
			return []int64{int64(math.Float32bits(e.Value.F32))}, nil
		case wasm.F64:
			return []int64{int64(math.Float64bits(e.Value.F64))}, nil
		}
		v.t.Fatalf("const %d: bad value kind", id)

	case *wasm.LocalGet:
		return []int64{v.locals[e.Local]}, nil

	case *wasm.LocalSet:
		val, br := v.eval1(e.Value)
		if br != nil {
			return nil, br
		}
		v.locals[e.Local] = val
		return nil, nil

	case *wasm.LocalTee:
		val, br := v.eval1(e.Value)
		if br != nil {
			return nil, br
		}
		v.locals[e.Local] = val
		return []int64{val}, nil

	case *wasm.GlobalGet:
		return []int64{v.globals[e.Global]}, nil

	case *wasm.GlobalSet:
		val, br := v.eval1(e.Value)
		if br != nil {
			return nil, br
		}
		v.globals[e.Global] = val
		return nil, nil

	case *wasm.Drop:
		_, br := v.eval(e.Expr)
		return nil, br

	case *wasm.Select:
		t, br := v.eval1(e.IfTrue)
		if br != nil {
			return nil, br
		}
		f, br := v.eval1(e.IfFalse)
		if br != nil {
			return nil, br
		}
		cond, br := v.eval1(e.Condition)
		if br != nil {
			return nil, br
		}
		if int32(cond) != 0 {
			return []int64{t}, nil
		}
		return []int64{f}, nil

	case *wasm.Unop:
		x, br := v.eval1(e.Expr)
		if br != nil {
			return nil, br
		}
		return []int64{v.unop(e.Op, x)}, nil

	case *wasm.Binop:
		lhs, br := v.eval1(e.LHS)
		if br != nil {
			return nil, br
		}
		rhs, br := v.eval1(e.RHS)
		if br != nil {
			return nil, br
		}
		return []int64{v.binop(e.Op, lhs, rhs)}, nil

	case *wasm.Load:
		addr, br := v.eval1(e.Address)
		if br != nil {
			return nil, br
		}
		ea := uint32(addr) + e.Arg.Offset
		switch e.Kind {
		case wasm.LoadI32:
			return []int64{int64(int32(binary.LittleEndian.Uint32(v.memory[ea:])))}, nil
		case wasm.LoadI64, wasm.LoadF64:
			return []int64{int64(binary.LittleEndian.Uint64(v.memory[ea:]))}, nil
		case wasm.LoadF32:
			return []int64{int64(binary.LittleEndian.Uint32(v.memory[ea:]))}, nil
		case wasm.LoadI32_8S:
			return []int64{int64(int8(v.memory[ea]))}, nil
		case wasm.LoadI32_8U:
			return []int64{int64(v.memory[ea])}, nil
		case wasm.LoadI32_16S:
			return []int64{int64(int16(binary.LittleEndian.Uint16(v.memory[ea:])))}, nil
		case wasm.LoadI32_16U:
			return []int64{int64(binary.LittleEndian.Uint16(v.memory[ea:]))}, nil
		}
		v.t.Fatalf("load %d: unsupported kind %s", id, e.Kind)

	case *wasm.Store:
		addr, br := v.eval1(e.Address)
		if br != nil {
			return nil, br
		}
		val, br := v.eval1(e.Value)
		if br != nil {
			return nil, br
		}
		ea := uint32(addr) + e.Arg.Offset
		switch e.Kind {
		case wasm.StoreI32:
			binary.LittleEndian.PutUint32(v.memory[ea:], uint32(val))
		case wasm.StoreI64, wasm.StoreF64:
			binary.LittleEndian.PutUint64(v.memory[ea:], uint64(val))
		case wasm.StoreF32:
			binary.LittleEndian.PutUint32(v.memory[ea:], uint32(val))
		case wasm.StoreI32_8:
			v.memory[ea] = byte(val)
		case wasm.StoreI32_16:
			binary.LittleEndian.PutUint16(v.memory[ea:], uint16(val))
		default:
			v.t.Fatalf("store %d: unsupported kind %s", id, e.Kind)
		}
		return nil, nil

	case *wasm.Br:
		var vals []int64
		for _, arg := range e.Args {
			val, br := v.eval1(arg)
			if br != nil {
				return nil, br
			}
			vals = append(vals, val)
		}
		return nil, &branch{target: e.Block, values: vals}

	case *wasm.BrIf:
		var vals []int64
		for _, arg := range e.Args {
			val, br := v.eval1(arg)
			if br != nil {
				return nil, br
			}
			vals = append(vals, val)
		}
		cond, br := v.eval1(e.Condition)
		if br != nil {
			return nil, br
		}
		if int32(cond) != 0 {
			return nil, &branch{target: e.Block, values: vals}
		}
		return vals, nil

	case *wasm.IfElse:
		cond, br := v.eval1(e.Condition)
		if br != nil {
			return nil, br
		}
		if int32(cond) != 0 {
			return v.eval(e.Consequent)
		}
		return v.eval(e.Alternative)

	case *wasm.Unreachable:
		v.t.Fatalf("unreachable executed")
	}
	v.t.Fatalf("expression %d: unsupported node %T", id, v.fn.Expr(id))
	return nil, nil
}

func (v *testVM) unop(op wasm.UnaryOp, x int64) int64 {
	switch op {
	case wasm.I32Eqz:
		return b2i(int32(x) == 0)
	case wasm.I32Clz:
		return int64(bits.LeadingZeros32(uint32(x)))
	case wasm.I32Ctz:
		return int64(bits.TrailingZeros32(uint32(x)))
	case wasm.I32Popcnt:
		return int64(bits.OnesCount32(uint32(x)))
	case wasm.I32Extend8S:
		return int64(int8(x))
	case wasm.I32Extend16S:
		return int64(int16(x))
	case wasm.I32WrapI64:
		return int64(int32(x))
	case wasm.I64ExtendSI32:
		return int64(int32(x))
	case wasm.I64ExtendUI32:
		return int64(uint32(x))
	case wasm.I64Eqz:
		return b2i(x == 0)
	}
	v.t.Fatalf("unsupported unary op %s", op)
	return 0
}

func (v *testVM) binop(op wasm.BinaryOp, lhs, rhs int64) int64 {
	a, b := int32(lhs), int32(rhs)
	switch op {
	case wasm.I32Add:
		return int64(a + b)
	case wasm.I32Sub:
		return int64(a - b)
	case wasm.I32Mul:
		return int64(a * b)
	case wasm.I32And:
		return int64(a & b)
	case wasm.I32Or:
		return int64(a | b)
	case wasm.I32Xor:
		return int64(a ^ b)
	case wasm.I32Shl:
		return int64(a << (uint32(b) & 31))
	case wasm.I32ShrS:
		return int64(a >> (uint32(b) & 31))
	case wasm.I32ShrU:
		return int64(int32(uint32(a) >> (uint32(b) & 31)))
	case wasm.I32Eq:
		return b2i(a == b)
	case wasm.I32Ne:
		return b2i(a != b)
	}
	v.t.Fatalf("unsupported binary op %s", op)
	return 0
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
