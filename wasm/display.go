package wasm

import (
	"fmt"
	"io"
	"strings"
)

// The display routines render the IR in an s-expression form close to the
// text format. The output is for debugging and snapshot tests only; it is
// not a faithful .wat emitter.

type irPrinter struct {
	w      io.Writer
	m      *Module
	fn     *LocalFunction
	indent int
}

func (p *irPrinter) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *irPrinter) localRef(id LocalID) string {
	if name := p.m.Locals.Get(id).Name; name != "" {
		return "$" + name
	}
	return fmt.Sprintf("$%d", id.Index())
}

func (p *irPrinter) globalRef(id GlobalID) string {
	if name := p.m.Globals.Get(id).Name; name != "" {
		return "$" + name
	}
	return fmt.Sprintf("$g%d", id.Index())
}

func memArgString(arg MemArg) string {
	s := ""
	if arg.Offset != 0 {
		s += fmt.Sprintf(" offset=%d", arg.Offset)
	}
	if arg.Align != 0 {
		s += fmt.Sprintf(" align=%d", arg.Align)
	}
	return s
}

func typeList(label string, types []ValType) string {
	if len(types) == 0 {
		return ""
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return fmt.Sprintf(" (%s %s)", label, strings.Join(parts, " "))
}

func (p *irPrinter) open(format string, args ...any) {
	p.line("("+format, args...)
	p.indent++
}

func (p *irPrinter) close() {
	p.indent--
	p.line(")")
}

func (p *irPrinter) expr(id ExprID) {
	switch e := p.fn.Expr(id).(type) {
	case *Block:
		head := e.Kind.String()
		p.open("%s%s%s", head, typeList("param", e.Params), typeList("result", e.Results))
		for _, child := range e.Exprs {
			p.expr(child)
		}
		p.close()
	case *Const:
		p.line("(%s)", e.Value)
	case *LocalGet:
		p.line("(local.get %s)", p.localRef(e.Local))
	case *LocalSet:
		p.open("local.set %s", p.localRef(e.Local))
		p.expr(e.Value)
		p.close()
	case *LocalTee:
		p.open("local.tee %s", p.localRef(e.Local))
		p.expr(e.Value)
		p.close()
	case *GlobalGet:
		p.line("(global.get %s)", p.globalRef(e.Global))
	case *GlobalSet:
		p.open("global.set %s", p.globalRef(e.Global))
		p.expr(e.Value)
		p.close()
	case *Unop:
		p.open("%s", e.Op)
		p.expr(e.Expr)
		p.close()
	case *Binop:
		p.open("%s", e.Op)
		p.expr(e.LHS)
		p.expr(e.RHS)
		p.close()
	case *Load:
		p.open("%s%s", e.Kind, memArgString(e.Arg))
		p.expr(e.Address)
		p.close()
	case *Store:
		p.open("%s%s", e.Kind, memArgString(e.Arg))
		p.expr(e.Address)
		p.expr(e.Value)
		p.close()
	case *Drop:
		p.open("drop")
		p.expr(e.Expr)
		p.close()
	case *Select:
		p.open("select")
		p.expr(e.IfTrue)
		p.expr(e.IfFalse)
		p.expr(e.Condition)
		p.close()
	case *Return:
		p.open("return")
		for _, v := range e.Values {
			p.expr(v)
		}
		p.close()
	case *Unreachable:
		p.line("(unreachable)")
	case *Br:
		p.open("br %d", e.Block)
		for _, a := range e.Args {
			p.expr(a)
		}
		p.close()
	case *BrIf:
		p.open("br_if %d", e.Block)
		for _, a := range e.Args {
			p.expr(a)
		}
		p.expr(e.Condition)
		p.close()
	case *BrTable:
		p.open("br_table")
		for _, a := range e.Args {
			p.expr(a)
		}
		p.expr(e.Condition)
		p.close()
	case *IfElse:
		p.open("if")
		p.expr(e.Condition)
		p.expr(e.Consequent)
		p.expr(e.Alternative)
		p.close()
	case *Call:
		p.open("call %d", e.Func.Index())
		for _, a := range e.Args {
			p.expr(a)
		}
		p.close()
	case *CallIndirect:
		p.open("call_indirect")
		for _, a := range e.Args {
			p.expr(a)
		}
		p.expr(e.Index)
		p.close()
	case *MemorySize:
		p.line("(memory.size)")
	case *MemoryGrow:
		p.open("memory.grow")
		p.expr(e.Pages)
		p.close()
	default:
		p.line("(%T)", e)
	}
}

// FprintFunc writes the IR of the given function to w.
func FprintFunc(w io.Writer, m *Module, id FuncID) {
	f := m.Funcs.Get(id)
	ty := m.Types.Get(f.Type)
	p := &irPrinter{w: w, m: m}
	if f.Kind == FuncImported {
		p.line("(func (import) %s%s)", typeList("param", ty.Params), typeList("result", ty.Results))
		return
	}
	p.fn = f.Body
	p.open("func%s%s", typeList("param", ty.Params), typeList("result", ty.Results))
	p.expr(f.Body.Entry())
	p.close()
}

// SprintFunc returns the IR of the given function as a string.
func SprintFunc(m *Module, id FuncID) string {
	var sb strings.Builder
	FprintFunc(&sb, m, id)
	return sb.String()
}

// FprintModule writes the globals, memories, and functions of the module
// to w.
func FprintModule(w io.Writer, m *Module) {
	p := &irPrinter{w: w, m: m}
	p.open("module")
	m.Globals.Iter(func(id GlobalID, g *Global) {
		mut := ""
		if g.Mutable {
			mut = " mut"
		}
		switch {
		case g.Kind == GlobalImported:
			p.line("(global %s (import %q)%s %s)", p.globalRef(id), g.Name, mut, g.Type)
		case g.Init.Global != 0:
			p.line("(global %s%s %s (global.get %s))", p.globalRef(id), mut, g.Type, p.globalRef(g.Init.Global))
		default:
			p.line("(global %s%s %s (%s))", p.globalRef(id), mut, g.Type, g.Init.Value)
		}
	})
	for i := 0; i < m.Memories.Len(); i++ {
		mem := m.Memories.Get(MemoryID(i + 1))
		if mem.Max != nil {
			p.line("(memory %d %d)", mem.Initial, *mem.Max)
		} else {
			p.line("(memory %d)", mem.Initial)
		}
	}
	m.Funcs.Iter(func(id FuncID, _ *Function) {
		FprintFunc(indentWriter{w: w, prefix: strings.Repeat("  ", p.indent)}, m, id)
	})
	p.close()
}

// SprintModule returns the module's IR as a string.
func SprintModule(m *Module) string {
	var sb strings.Builder
	FprintModule(&sb, m)
	return sb.String()
}

type indentWriter struct {
	w      io.Writer
	prefix string
}

func (iw indentWriter) Write(p []byte) (int, error) {
	lines := strings.SplitAfter(string(p), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, err := io.WriteString(iw.w, iw.prefix+line); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
