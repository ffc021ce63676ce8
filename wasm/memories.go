package wasm

// Memory is a linear memory declared or imported by the module. Sizes are
// in 64 KiB pages.
type Memory struct {
	Shared  bool
	Initial uint32
	Max     *uint32
}

// Memories is the module's memory table.
type Memories struct {
	arena []Memory
}

// AddLocal declares a new memory and returns its id. max may be nil for
// an unbounded memory.
func (m *Memories) AddLocal(shared bool, initial uint32, max *uint32) MemoryID {
	mem := Memory{Shared: shared, Initial: initial}
	if max != nil {
		v := *max
		mem.Max = &v
	}
	m.arena = append(m.arena, mem)
	return MemoryID(len(m.arena))
}

// Get returns the memory with the given id.
func (m *Memories) Get(id MemoryID) *Memory {
	return &m.arena[id-1]
}

// Len returns the number of memories in the table.
func (m *Memories) Len() int { return len(m.arena) }

// First returns the id of the first memory, or zero when the module has
// none.
func (m *Memories) First() MemoryID {
	if len(m.arena) == 0 {
		return 0
	}
	return 1
}
