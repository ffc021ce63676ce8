package passes

import "github.com/cwbudde/go-walrus/wasm"

// localPair is the low/high i32 replacement for a split i64 local.
type localPair struct {
	low  wasm.LocalID
	high wasm.LocalID
}

// globalPair is the low/high i32 replacement for a split i64 global.
type globalPair struct {
	low  wasm.GlobalID
	high wasm.GlobalID
}

// analysis is the module-wide record produced before any function body is
// rewritten. All four maps are read-only once the per-function phases
// start.
type analysis struct {
	globals       map[wasm.GlobalID]globalPair
	arguments     map[wasm.LocalID]localPair
	oldFuncTypes  map[wasm.FuncID]wasm.TypeID
	oldToNewTypes map[wasm.TypeID]wasm.TypeID
}

func newAnalysis() *analysis {
	return &analysis{
		globals:       make(map[wasm.GlobalID]globalPair),
		arguments:     make(map[wasm.LocalID]localPair),
		oldFuncTypes:  make(map[wasm.FuncID]wasm.TypeID),
		oldToNewTypes: make(map[wasm.TypeID]wasm.TypeID),
	}
}

// splitGlobals splits every i64 global into two i32 halves, recording
// which holds the high bits and which the low bits. The original globals
// are left in place; they become unreferenced once function bodies are
// rewritten, and the emitter's usage pass drops them.
func (a *analysis) splitGlobals(m *wasm.Module) error {
	exports := m.Exports.Globals()

	type splitItem struct {
		id      wasm.GlobalID
		val     int64
		mutable bool
	}
	var toSplit []splitItem
	var err error
	m.Globals.Iter(func(id wasm.GlobalID, g *wasm.Global) {
		if err != nil || g.Type != wasm.I64 {
			return
		}
		if exports[id] {
			err = invalidInputf("can't export a 64-bit global")
			return
		}
		if g.Kind == wasm.GlobalImported || g.Init.Global != 0 {
			err = invalidInputf("can't import 64-bit globals")
			return
		}
		if g.Init.Value.Kind != wasm.I64 {
			err = invalidInputf("type mismatch in globals")
			return
		}
		toSplit = append(toSplit, splitItem{id: id, val: g.Init.Value.I64, mutable: g.Mutable})
	})
	if err != nil {
		return err
	}

	for _, item := range toSplit {
		low := m.Globals.AddLocal(wasm.I32, item.mutable, wasm.ValueI32(int32(item.val)))
		high := m.Globals.AddLocal(wasm.I32, item.mutable, wasm.ValueI32(int32(item.val>>32)))
		a.globals[item.id] = globalPair{low: low, high: high}
	}

	return nil
}

// splitFunctionArguments fixes all function signatures to not mention
// i64. Each i64 argument becomes two i32 arguments (low then high), and
// an i64 result becomes an i32 result carrying the high bits. The low
// bits of such a result are not passed back to callers: the function's
// entry block leaves them in a local of its own, and calls to these
// functions are rejected during elimination.
func (a *analysis) splitFunctionArguments(m *wasm.Module) error {
	exports := m.Exports.Funcs()

	var err error
	m.Funcs.Iter(func(id wasm.FuncID, f *wasm.Function) {
		if err != nil {
			return
		}
		a.oldFuncTypes[id] = f.Type
		ty := m.Types.Get(f.Type)
		if !ty.HasI64() {
			return
		}
		if exports[id] {
			err = invalidInputf("can't export a function which takes or returns i64")
			return
		}
		if f.Kind == wasm.FuncImported {
			err = invalidInputf("cannot import functions which take or return i64")
			return
		}
		if len(ty.Results) > 1 {
			err = invalidInputf("multi-value returns not supported yet")
			return
		}

		params := append([]wasm.ValType(nil), ty.Params...)
		results := append([]wasm.ValType(nil), ty.Results...)

		body := f.Body
		oldArgs := body.Args
		body.Args = nil
		var newParams []wasm.ValType
		for i, arg := range oldArgs {
			if params[i] != wasm.I64 {
				body.Args = append(body.Args, arg)
				newParams = append(newParams, params[i])
				continue
			}
			low := m.Locals.Add(wasm.I32)
			high := m.Locals.Add(wasm.I32)
			body.Args = append(body.Args, low, high)
			newParams = append(newParams, wasm.I32, wasm.I32)
			a.arguments[arg] = localPair{low: low, high: high}
		}

		prev := f.Type
		if len(results) == 1 && results[0] == wasm.I64 {
			f.Type = m.Types.Add(newParams, []wasm.ValType{wasm.I32})
		} else {
			f.Type = m.Types.Add(newParams, results)
		}
		a.oldToNewTypes[prev] = f.Type
	})

	return err
}
