package wasm

import (
	"strings"
	"testing"
)

func TestSprintFunc(t *testing.T) {
	m := New()
	ty := m.Types.Add(nil, []ValType{I32})
	body := NewLocalFunction(nil)
	entry := body.AllocEntry([]ValType{I32})
	body.MustBlock(entry).Exprs = []ExprID{body.ConstI32(1)}
	fn := m.Funcs.AddLocal(ty, body)

	want := `(func (result i32)
  (entry (result i32)
    (i32.const 1)
  )
)
`
	if got := SprintFunc(m, fn); got != want {
		t.Errorf("SprintFunc() = %q, want %q", got, want)
	}
}

func TestSprintFuncNames(t *testing.T) {
	m := New()
	l := m.Locals.Add(I32)
	m.Locals.Get(l).Name = "count"
	ty := m.Types.Add(nil, nil)
	body := NewLocalFunction(nil)
	entry := body.AllocEntry(nil)
	body.MustBlock(entry).Exprs = []ExprID{body.LocalSet(l, body.ConstI32(3))}
	fn := m.Funcs.AddLocal(ty, body)

	out := SprintFunc(m, fn)
	if !strings.Contains(out, "local.set $count") {
		t.Errorf("SprintFunc() = %q, want a $count reference", out)
	}
}

func TestSprintModule(t *testing.T) {
	m := New()
	m.Globals.AddLocal(I32, true, ValueI32(5))
	one := uint32(2)
	m.Memories.AddLocal(false, 1, &one)
	ty := m.Types.Add(nil, nil)
	body := NewLocalFunction(nil)
	body.AllocEntry(nil)
	m.Funcs.AddLocal(ty, body)

	out := SprintModule(m)
	for _, want := range []string{"(module", "(global $g0 mut i32 (i32.const 5))", "(memory 1 2)", "(func"} {
		if !strings.Contains(out, want) {
			t.Errorf("SprintModule() missing %q:\n%s", want, out)
		}
	}
}

func TestMemArgString(t *testing.T) {
	if got := memArgString(MemArg{}); got != "" {
		t.Errorf("memArgString(zero) = %q, want empty", got)
	}
	if got := memArgString(MemArg{Align: 4, Offset: 8}); got != " offset=8 align=4" {
		t.Errorf("memArgString = %q, want \" offset=8 align=4\"", got)
	}
}
