// Package passes contains whole-module transformations over the wasm IR.
//
// The flagship pass is RemoveI64, which rewrites a module so that every
// occurrence of the 64-bit integer type is replaced by functionally
// equivalent operations over pairs of 32-bit integers.
package passes

import (
	"fmt"

	"github.com/cwbudde/go-walrus/wasm"
)

// RemoveI64 lowers every use of i64 in the module to operations over
// pairs of i32 values: globals are split into low/high halves, function
// signatures gain an extra i32 parameter per i64 parameter, and every
// producer of a 64-bit value is rewritten to leave the high 32 bits on
// the operand stack with the low 32 bits spilled to a dedicated local.
//
// Lowering may require a scratch memory for reinterpret rewrites; if the
// module has none, a one-page memory is added, and address 0 of the first
// memory is assumed unused.
//
// The module is mutated in place. On error the module's contents are
// undefined and must be discarded.
func RemoveI64(m *wasm.Module) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if u, ok := r.(*UnimplementedError); ok {
				err = u
				return
			}
			panic(r)
		}
	}()

	a := newAnalysis()
	if err := a.splitGlobals(m); err != nil {
		return err
	}

	// Lowering might require a memory, so if one isn't already here then
	// we go ahead and add one. If one is already here then we assume
	// address 0 and near are not used.
	memory := m.Memories.First()
	if memory == 0 {
		one := uint32(1)
		memory = m.Memories.AddLocal(false, 1, &one)
	}

	// Map all function signatures up front. This modifies the global
	// registry of types and updates function signatures all over the
	// place.
	if err := a.splitFunctionArguments(m); err != nil {
		return err
	}

	m.Funcs.IterLocal(func(id wasm.FuncID, f *wasm.Function) {
		body := f.Body
		entry := body.Entry()

		// First, remove a number of 64-bit operations by lowering them
		// to simpler alternatives. The next pass will reject these
		// operations if they still exist in the IR.
		lower := &lowerI64{
			memory: memory,
			fn:     body,
			locals: &m.Locals,
			config: &m.Config,
			blocks: make(map[wasm.ExprID]wasm.ValType),
		}
		lower.VisitExprIDMut(&entry)
		body.SetEntry(entry)

		// And now that the IR is pruned a bit, fully delete the i64
		// types.
		elim := &removeI64{
			fn:          body,
			funcID:      id,
			analysis:    a,
			locals:      &m.Locals,
			types:       &m.Types,
			lowBits:     make(map[wasm.ExprID]wasm.LocalID),
			localHalves: make(map[wasm.LocalID]localPair),
			memory:      memory,
			config:      &m.Config,
		}
		elim.VisitExprIDMut(&entry)
		body.SetEntry(entry)
	})

	return nil
}

// newNamedLocal creates a local, attaching a descriptive name when name
// generation is enabled.
func newNamedLocal(locals *wasm.Locals, config *wasm.Config, ty wasm.ValType, name string) wasm.LocalID {
	id := locals.Add(ty)
	if config.GenerateNames {
		locals.Get(id).Name = fmt.Sprintf("%s%d", name, id.Index())
	}
	return id
}

func containsI64(types []wasm.ValType) bool {
	for _, t := range types {
		if t == wasm.I64 {
			return true
		}
	}
	return false
}
