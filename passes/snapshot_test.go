package passes

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-walrus/wasm"
	"github.com/gkampitakis/go-snaps/snaps"
)

// Snapshot the printed IR of a few lowered modules so that accidental
// changes to the rewrite shapes show up in review.
func TestLoweredIRSnapshots(t *testing.T) {
	fixtures := []struct {
		name  string
		build func() *wasm.Module
	}{
		{
			"const_wrap",
			func() *wasm.Module {
				m, _ := buildFunc([]wasm.ValType{wasm.I32}, func(body *wasm.LocalFunction) []wasm.ExprID {
					c := int64(0x11223344)<<32 | 0x55667788
					return []wasm.ExprID{body.UnopExpr(wasm.I32WrapI64, body.ConstI64(c))}
				})
				return m
			},
		},
		{
			"bitwise_or",
			func() *wasm.Module {
				m, _ := buildFunc([]wasm.ValType{wasm.I32}, func(body *wasm.LocalFunction) []wasm.ExprID {
					or := body.BinopExpr(wasm.I64Or, body.ConstI64(3), body.ConstI64(5))
					return []wasm.ExprID{body.UnopExpr(wasm.I32WrapI64, or)}
				})
				return m
			},
		},
		{
			"global_roundtrip",
			func() *wasm.Module {
				m := wasm.New()
				g := m.Globals.AddLocal(wasm.I64, true, wasm.ValueI64(7))
				ty := m.Types.Add(nil, []wasm.ValType{wasm.I32})
				body := wasm.NewLocalFunction(nil)
				entry := body.AllocEntry([]wasm.ValType{wasm.I32})
				set := body.GlobalSet(g, body.ConstI64(9))
				wrap := body.UnopExpr(wasm.I32WrapI64, body.GlobalGet(g))
				body.MustBlock(entry).Exprs = []wasm.ExprID{set, wrap}
				m.Funcs.AddLocal(ty, body)
				return m
			},
		},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			m := fixture.build()
			m.Config.GenerateNames = true
			if err := RemoveI64(m); err != nil {
				t.Fatalf("RemoveI64() = %v, want nil", err)
			}
			snaps.MatchSnapshot(t, fixture.name+"_lowered", wasm.SprintModule(m))
		})
	}
}

func TestGeneratedNames(t *testing.T) {
	m := wasm.New()
	l := m.Locals.Add(wasm.I64)
	m.Locals.Get(l).Name = "counter"
	m.Config.GenerateNames = true
	ty := m.Types.Add(nil, []wasm.ValType{wasm.I32})
	body := wasm.NewLocalFunction(nil)
	entry := body.AllocEntry([]wasm.ValType{wasm.I32})
	set := body.LocalSet(l, body.ConstI64(1))
	wrap := body.UnopExpr(wasm.I32WrapI64, body.LocalGet(l))
	body.MustBlock(entry).Exprs = []wasm.ExprID{set, wrap}
	m.Funcs.AddLocal(ty, body)

	if err := RemoveI64(m); err != nil {
		t.Fatalf("RemoveI64() = %v, want nil", err)
	}

	var names []string
	m.Locals.Iter(func(_ wasm.LocalID, local *wasm.Local) {
		if local.Name != "" {
			names = append(names, local.Name)
		}
	})
	wantSubstrings := []string{"counter_low", "counter_high", "temp_low"}
	for _, want := range wantSubstrings {
		found := false
		for _, name := range names {
			if strings.HasPrefix(name, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no generated local named %s* (have %v)", want, names)
		}
	}
}

func TestNoNamesByDefault(t *testing.T) {
	m, _ := buildFunc([]wasm.ValType{wasm.I32}, func(body *wasm.LocalFunction) []wasm.ExprID {
		return []wasm.ExprID{body.UnopExpr(wasm.I32WrapI64, body.ConstI64(1))}
	})
	if err := RemoveI64(m); err != nil {
		t.Fatalf("RemoveI64() = %v, want nil", err)
	}
	m.Locals.Iter(func(id wasm.LocalID, local *wasm.Local) {
		if local.Name != "" {
			t.Errorf("local %d unexpectedly named %q", id, local.Name)
		}
	})
}
