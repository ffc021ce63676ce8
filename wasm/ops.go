package wasm

import "fmt"

// UnaryOp enumerates the one-operand operators the IR models.
type UnaryOp uint8

const (
	I32Eqz UnaryOp = iota + 1
	I32Clz
	I32Ctz
	I32Popcnt
	I32Extend8S
	I32Extend16S

	I64Eqz
	I64Clz
	I64Ctz
	I64Popcnt
	I64Extend8S
	I64Extend16S
	I64Extend32S

	I32WrapI64
	I64ExtendSI32
	I64ExtendUI32

	I32ReinterpretF32
	F32ReinterpretI32
	I64ReinterpretF64
	F64ReinterpretI64

	F32ConvertSI32
	F32ConvertUI32
	F32ConvertSI64
	F32ConvertUI64
	F64ConvertSI32
	F64ConvertUI32
	F64ConvertSI64
	F64ConvertUI64

	I32TruncSF32
	I32TruncUF32
	I32TruncSF64
	I32TruncUF64
	I64TruncSF32
	I64TruncUF32
	I64TruncSF64
	I64TruncUF64

	F32Neg
	F32Abs
	F32Sqrt
	F64Neg
	F64Abs
	F64Sqrt
)

var unaryNames = map[UnaryOp]string{
	I32Eqz:            "i32.eqz",
	I32Clz:            "i32.clz",
	I32Ctz:            "i32.ctz",
	I32Popcnt:         "i32.popcnt",
	I32Extend8S:       "i32.extend8_s",
	I32Extend16S:      "i32.extend16_s",
	I64Eqz:            "i64.eqz",
	I64Clz:            "i64.clz",
	I64Ctz:            "i64.ctz",
	I64Popcnt:         "i64.popcnt",
	I64Extend8S:       "i64.extend8_s",
	I64Extend16S:      "i64.extend16_s",
	I64Extend32S:      "i64.extend32_s",
	I32WrapI64:        "i32.wrap_i64",
	I64ExtendSI32:     "i64.extend_i32_s",
	I64ExtendUI32:     "i64.extend_i32_u",
	I32ReinterpretF32: "i32.reinterpret_f32",
	F32ReinterpretI32: "f32.reinterpret_i32",
	I64ReinterpretF64: "i64.reinterpret_f64",
	F64ReinterpretI64: "f64.reinterpret_i64",
	F32ConvertSI32:    "f32.convert_i32_s",
	F32ConvertUI32:    "f32.convert_i32_u",
	F32ConvertSI64:    "f32.convert_i64_s",
	F32ConvertUI64:    "f32.convert_i64_u",
	F64ConvertSI32:    "f64.convert_i32_s",
	F64ConvertUI32:    "f64.convert_i32_u",
	F64ConvertSI64:    "f64.convert_i64_s",
	F64ConvertUI64:    "f64.convert_i64_u",
	I32TruncSF32:      "i32.trunc_f32_s",
	I32TruncUF32:      "i32.trunc_f32_u",
	I32TruncSF64:      "i32.trunc_f64_s",
	I32TruncUF64:      "i32.trunc_f64_u",
	I64TruncSF32:      "i64.trunc_f32_s",
	I64TruncUF32:      "i64.trunc_f32_u",
	I64TruncSF64:      "i64.trunc_f64_s",
	I64TruncUF64:      "i64.trunc_f64_u",
	F32Neg:            "f32.neg",
	F32Abs:            "f32.abs",
	F32Sqrt:           "f32.sqrt",
	F64Neg:            "f64.neg",
	F64Abs:            "f64.abs",
	F64Sqrt:           "f64.sqrt",
}

func (op UnaryOp) String() string {
	if s, ok := unaryNames[op]; ok {
		return s
	}
	return fmt.Sprintf("UnaryOp(%d)", uint8(op))
}

// BinaryOp enumerates the two-operand operators the IR models.
type BinaryOp uint8

const (
	I32Add BinaryOp = iota + 1
	I32Sub
	I32Mul
	I32DivS
	I32DivU
	I32RemS
	I32RemU
	I32And
	I32Or
	I32Xor
	I32Shl
	I32ShrS
	I32ShrU
	I32Rotl
	I32Rotr
	I32Eq
	I32Ne
	I32LtS
	I32LtU
	I32GtS
	I32GtU
	I32LeS
	I32LeU
	I32GeS
	I32GeU

	I64Add
	I64Sub
	I64Mul
	I64DivS
	I64DivU
	I64RemS
	I64RemU
	I64And
	I64Or
	I64Xor
	I64Shl
	I64ShrS
	I64ShrU
	I64Rotl
	I64Rotr
	I64Eq
	I64Ne
	I64LtS
	I64LtU
	I64GtS
	I64GtU
	I64LeS
	I64LeU
	I64GeS
	I64GeU

	F32Add
	F32Sub
	F32Mul
	F32Div
	F32Eq
	F32Ne
	F64Add
	F64Sub
	F64Mul
	F64Div
	F64Eq
	F64Ne
)

var binaryNames = map[BinaryOp]string{
	I32Add: "i32.add", I32Sub: "i32.sub", I32Mul: "i32.mul",
	I32DivS: "i32.div_s", I32DivU: "i32.div_u",
	I32RemS: "i32.rem_s", I32RemU: "i32.rem_u",
	I32And: "i32.and", I32Or: "i32.or", I32Xor: "i32.xor",
	I32Shl: "i32.shl", I32ShrS: "i32.shr_s", I32ShrU: "i32.shr_u",
	I32Rotl: "i32.rotl", I32Rotr: "i32.rotr",
	I32Eq: "i32.eq", I32Ne: "i32.ne",
	I32LtS: "i32.lt_s", I32LtU: "i32.lt_u",
	I32GtS: "i32.gt_s", I32GtU: "i32.gt_u",
	I32LeS: "i32.le_s", I32LeU: "i32.le_u",
	I32GeS: "i32.ge_s", I32GeU: "i32.ge_u",

	I64Add: "i64.add", I64Sub: "i64.sub", I64Mul: "i64.mul",
	I64DivS: "i64.div_s", I64DivU: "i64.div_u",
	I64RemS: "i64.rem_s", I64RemU: "i64.rem_u",
	I64And: "i64.and", I64Or: "i64.or", I64Xor: "i64.xor",
	I64Shl: "i64.shl", I64ShrS: "i64.shr_s", I64ShrU: "i64.shr_u",
	I64Rotl: "i64.rotl", I64Rotr: "i64.rotr",
	I64Eq: "i64.eq", I64Ne: "i64.ne",
	I64LtS: "i64.lt_s", I64LtU: "i64.lt_u",
	I64GtS: "i64.gt_s", I64GtU: "i64.gt_u",
	I64LeS: "i64.le_s", I64LeU: "i64.le_u",
	I64GeS: "i64.ge_s", I64GeU: "i64.ge_u",

	F32Add: "f32.add", F32Sub: "f32.sub", F32Mul: "f32.mul", F32Div: "f32.div",
	F32Eq: "f32.eq", F32Ne: "f32.ne",
	F64Add: "f64.add", F64Sub: "f64.sub", F64Mul: "f64.mul", F64Div: "f64.div",
	F64Eq: "f64.eq", F64Ne: "f64.ne",
}

func (op BinaryOp) String() string {
	if s, ok := binaryNames[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", uint8(op))
}

// LoadKind describes the width, result type, extension, and atomicity of
// a memory load.
type LoadKind uint8

const (
	LoadI32 LoadKind = iota + 1
	LoadI32Atomic
	LoadI64
	LoadI64Atomic
	LoadF32
	LoadF64
	LoadV128
	LoadI32_8S
	LoadI32_8U
	LoadI32_16S
	LoadI32_16U
	LoadI64_8S
	LoadI64_8U
	LoadI64_16S
	LoadI64_16U
	LoadI64_32S
	LoadI64_32U
)

var loadNames = map[LoadKind]string{
	LoadI32:       "i32.load",
	LoadI32Atomic: "i32.atomic.load",
	LoadI64:       "i64.load",
	LoadI64Atomic: "i64.atomic.load",
	LoadF32:       "f32.load",
	LoadF64:       "f64.load",
	LoadV128:      "v128.load",
	LoadI32_8S:    "i32.load8_s",
	LoadI32_8U:    "i32.load8_u",
	LoadI32_16S:   "i32.load16_s",
	LoadI32_16U:   "i32.load16_u",
	LoadI64_8S:    "i64.load8_s",
	LoadI64_8U:    "i64.load8_u",
	LoadI64_16S:   "i64.load16_s",
	LoadI64_16U:   "i64.load16_u",
	LoadI64_32S:   "i64.load32_s",
	LoadI64_32U:   "i64.load32_u",
}

func (k LoadKind) String() string {
	if s, ok := loadNames[k]; ok {
		return s
	}
	return fmt.Sprintf("LoadKind(%d)", uint8(k))
}

// ResultType is the value type the load leaves on the stack.
func (k LoadKind) ResultType() ValType {
	switch k {
	case LoadI32, LoadI32Atomic, LoadI32_8S, LoadI32_8U, LoadI32_16S, LoadI32_16U:
		return I32
	case LoadI64, LoadI64Atomic, LoadI64_8S, LoadI64_8U, LoadI64_16S, LoadI64_16U, LoadI64_32S, LoadI64_32U:
		return I64
	case LoadF32:
		return F32
	case LoadF64:
		return F64
	case LoadV128:
		return V128
	}
	return 0
}

// StoreKind describes the width, operand type, and atomicity of a memory
// store.
type StoreKind uint8

const (
	StoreI32 StoreKind = iota + 1
	StoreI32Atomic
	StoreI64
	StoreI64Atomic
	StoreF32
	StoreF64
	StoreV128
	StoreI32_8
	StoreI32_16
	StoreI64_8
	StoreI64_16
	StoreI64_32
)

var storeNames = map[StoreKind]string{
	StoreI32:       "i32.store",
	StoreI32Atomic: "i32.atomic.store",
	StoreI64:       "i64.store",
	StoreI64Atomic: "i64.atomic.store",
	StoreF32:       "f32.store",
	StoreF64:       "f64.store",
	StoreV128:      "v128.store",
	StoreI32_8:     "i32.store8",
	StoreI32_16:    "i32.store16",
	StoreI64_8:     "i64.store8",
	StoreI64_16:    "i64.store16",
	StoreI64_32:    "i64.store32",
}

func (k StoreKind) String() string {
	if s, ok := storeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("StoreKind(%d)", uint8(k))
}

// OperandType is the value type the store consumes from the stack.
func (k StoreKind) OperandType() ValType {
	switch k {
	case StoreI32, StoreI32Atomic, StoreI32_8, StoreI32_16:
		return I32
	case StoreI64, StoreI64Atomic, StoreI64_8, StoreI64_16, StoreI64_32:
		return I64
	case StoreF32:
		return F32
	case StoreF64:
		return F64
	case StoreV128:
		return V128
	}
	return 0
}

// MemArg is the (alignment, offset) immediate attached to every memory
// access. Align is in bytes and must be a power of two.
type MemArg struct {
	Align  uint32
	Offset uint32
}

// NewMemArg builds a MemArg with the given alignment and a zero offset.
func NewMemArg(align uint32) MemArg { return MemArg{Align: align} }

// WithAlign returns a copy of the MemArg with the alignment replaced.
func (a MemArg) WithAlign(align uint32) MemArg {
	a.Align = align
	return a
}

// WithOffset returns a copy of the MemArg with the offset replaced.
func (a MemArg) WithOffset(offset uint32) MemArg {
	a.Offset = offset
	return a
}

// AtomicOp enumerates read-modify-write atomic operators.
type AtomicOp uint8

const (
	AtomicAdd AtomicOp = iota + 1
	AtomicSub
	AtomicAnd
	AtomicOr
	AtomicXor
	AtomicXchg
)

func (op AtomicOp) String() string {
	switch op {
	case AtomicAdd:
		return "add"
	case AtomicSub:
		return "sub"
	case AtomicAnd:
		return "and"
	case AtomicOr:
		return "or"
	case AtomicXor:
		return "xor"
	case AtomicXchg:
		return "xchg"
	}
	return fmt.Sprintf("AtomicOp(%d)", uint8(op))
}

// AtomicWidth is the operand width of an atomic access.
type AtomicWidth uint8

const (
	AtomicI32 AtomicWidth = iota + 1
	AtomicI32_8
	AtomicI32_16
	AtomicI64
	AtomicI64_8
	AtomicI64_16
	AtomicI64_32
)

// ResultType is the value type an atomic access of this width produces.
func (w AtomicWidth) ResultType() ValType {
	switch w {
	case AtomicI32, AtomicI32_8, AtomicI32_16:
		return I32
	default:
		return I64
	}
}
