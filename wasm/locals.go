package wasm

// Local is a function-scoped variable slot with a value type and an
// optional name. Locals for every function live in one module-wide table.
type Local struct {
	Type ValType
	Name string
}

// Locals is the module's local table.
type Locals struct {
	arena []Local
}

// Add allocates a new local of the given type and returns its id.
func (l *Locals) Add(ty ValType) LocalID {
	l.arena = append(l.arena, Local{Type: ty})
	return LocalID(len(l.arena))
}

// Get returns the local with the given id.
func (l *Locals) Get(id LocalID) *Local {
	return &l.arena[id-1]
}

// Len returns the number of locals in the table.
func (l *Locals) Len() int { return len(l.arena) }

// Iter calls fn for every local, in id order.
func (l *Locals) Iter(fn func(id LocalID, local *Local)) {
	for i := range l.arena {
		fn(LocalID(i+1), &l.arena[i])
	}
}
