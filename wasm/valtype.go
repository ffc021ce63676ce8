package wasm

import "fmt"

// ValType is one of the five WebAssembly value types.
type ValType uint8

const (
	I32 ValType = iota + 1
	I64
	F32
	F64
	V128
)

func (t ValType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	}
	return fmt.Sprintf("ValType(%d)", uint8(t))
}

// Value is a literal WebAssembly value. Kind selects which payload field
// is meaningful.
type Value struct {
	Kind ValType
	I32  int32
	I64  int64
	F32  float32
	F64  float64
	V128 [16]byte
}

// ValueI32 builds an i32 literal.
func ValueI32(v int32) Value { return Value{Kind: I32, I32: v} }

// ValueI64 builds an i64 literal.
func ValueI64(v int64) Value { return Value{Kind: I64, I64: v} }

// ValueF32 builds an f32 literal.
func ValueF32(v float32) Value { return Value{Kind: F32, F32: v} }

// ValueF64 builds an f64 literal.
func ValueF64(v float64) Value { return Value{Kind: F64, F64: v} }

func (v Value) String() string {
	switch v.Kind {
	case I32:
		return fmt.Sprintf("i32.const %d", v.I32)
	case I64:
		return fmt.Sprintf("i64.const %d", v.I64)
	case F32:
		return fmt.Sprintf("f32.const %g", v.F32)
	case F64:
		return fmt.Sprintf("f64.const %g", v.F64)
	case V128:
		return fmt.Sprintf("v128.const %x", v.V128)
	}
	return "<invalid value>"
}
