package wasm

// ExportKind is the kind of entity an export names.
type ExportKind uint8

const (
	ExportFunc ExportKind = iota
	ExportGlobal
	ExportMemory
)

// Export is one entry of the module's export section.
type Export struct {
	Name   string
	Kind   ExportKind
	Func   FuncID
	Global GlobalID
	Memory MemoryID
}

// Exports is the module's export list.
type Exports struct {
	list []Export
}

// AddFunc exports a function under the given name.
func (e *Exports) AddFunc(name string, id FuncID) {
	e.list = append(e.list, Export{Name: name, Kind: ExportFunc, Func: id})
}

// AddGlobal exports a global under the given name.
func (e *Exports) AddGlobal(name string, id GlobalID) {
	e.list = append(e.list, Export{Name: name, Kind: ExportGlobal, Global: id})
}

// AddMemory exports a memory under the given name.
func (e *Exports) AddMemory(name string, id MemoryID) {
	e.list = append(e.list, Export{Name: name, Kind: ExportMemory, Memory: id})
}

// List returns the exports in declaration order.
func (e *Exports) List() []Export { return e.list }

// Funcs returns the set of exported function ids.
func (e *Exports) Funcs() map[FuncID]bool {
	set := make(map[FuncID]bool)
	for _, exp := range e.list {
		if exp.Kind == ExportFunc {
			set[exp.Func] = true
		}
	}
	return set
}

// Globals returns the set of exported global ids.
func (e *Exports) Globals() map[GlobalID]bool {
	set := make(map[GlobalID]bool)
	for _, exp := range e.list {
		if exp.Kind == ExportGlobal {
			set[exp.Global] = true
		}
	}
	return set
}
