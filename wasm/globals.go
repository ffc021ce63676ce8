package wasm

// GlobalKind distinguishes imported globals from locally defined ones.
type GlobalKind uint8

const (
	GlobalImported GlobalKind = iota
	GlobalLocal
)

// InitExpr is a global's constant initializer: either a literal value or
// a reference to another (imported) global.
type InitExpr struct {
	// Global, when valid, means the initializer copies another global.
	Global GlobalID
	// Value is the literal initializer when Global is invalid.
	Value Value
}

// Global is a module-scoped variable slot.
type Global struct {
	Type    ValType
	Mutable bool
	Kind    GlobalKind
	Name    string

	// Init is meaningful only when Kind is GlobalLocal.
	Init InitExpr
}

// Globals is the module's global table.
type Globals struct {
	arena []Global
}

// AddLocal adds a locally defined global with a literal initializer.
func (g *Globals) AddLocal(ty ValType, mutable bool, init Value) GlobalID {
	g.arena = append(g.arena, Global{
		Type:    ty,
		Mutable: mutable,
		Kind:    GlobalLocal,
		Init:    InitExpr{Value: init},
	})
	return GlobalID(len(g.arena))
}

// AddLocalRef adds a locally defined global initialized from another
// global.
func (g *Globals) AddLocalRef(ty ValType, mutable bool, from GlobalID) GlobalID {
	g.arena = append(g.arena, Global{
		Type:    ty,
		Mutable: mutable,
		Kind:    GlobalLocal,
		Init:    InitExpr{Global: from},
	})
	return GlobalID(len(g.arena))
}

// AddImported adds an imported global.
func (g *Globals) AddImported(ty ValType, mutable bool, name string) GlobalID {
	g.arena = append(g.arena, Global{
		Type:    ty,
		Mutable: mutable,
		Kind:    GlobalImported,
		Name:    name,
	})
	return GlobalID(len(g.arena))
}

// Get returns the global with the given id.
func (g *Globals) Get(id GlobalID) *Global {
	return &g.arena[id-1]
}

// Len returns the number of globals in the table.
func (g *Globals) Len() int { return len(g.arena) }

// Iter calls fn for every global, in id order.
func (g *Globals) Iter(fn func(id GlobalID, global *Global)) {
	for i := range g.arena {
		fn(GlobalID(i+1), &g.arena[i])
	}
}
