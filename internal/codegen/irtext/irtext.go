// Package irtext implements a debug backend that dumps TAC back out as
// readable text instead of lowering it to machine assembly. It exists
// to exercise the backend registry's extensibility point end to end
// (see codegen.Register) and to give procedures a human-readable trace
// independent of any target architecture, the way a compiler's "-S
// -emit-ir" flag would.
package irtext

import (
	"fmt"
	"strings"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen"
	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

const backendName = "irtext"

func init() {
	codegen.Register(backendName, func() codegen.Backend { return &Emitter{} })
}

// Emitter renders TAC as a flat, architecture-agnostic trace. Locals
// print by their symbolic slot index rather than a real address, since
// there is no frame to address into.
type Emitter struct {
	*codegen.SlotTracker
}

// FormatTemp renders a location symbolically: "@name" for a global,
// "param<j>" for a stack parameter, "slot<i>" for a local slot.
func (e *Emitter) FormatTemp(loc codegen.Location) string {
	switch loc.Kind {
	case codegen.LocGlobal:
		return "@" + loc.Global
	case codegen.LocStackParam:
		return e.FormatParam(loc.Index)
	default:
		return fmt.Sprintf("slot%d", loc.Index)
	}
}

// FormatParam renders the j-th stack parameter symbolically.
func (e *Emitter) FormatParam(index int) string {
	return fmt.Sprintf("param%d", index)
}

func (e *Emitter) operand(op tac.Operand) string {
	switch op.Kind {
	case tac.OperandImmediate:
		return fmt.Sprintf("%d", op.Imm)
	case tac.OperandLabel:
		return op.Name
	default:
		return e.FormatTemp(e.Resolve(op.Name))
	}
}

// LowerProc prints a "proc name(params):" header, one line per
// instruction as "opcode args -> result", and a blank trailer line.
func (e *Emitter) LowerProc(p *tac.TACProc) ([]string, error) {
	e.SlotTracker = codegen.NewSlotTracker(p.VarSizes)
	for i, name := range p.Params {
		e.RegisterStackParam(name, i)
	}

	lines := []string{fmt.Sprintf("proc %s(%s):", p.Name, strings.Join(p.Params, ", "))}
	for _, in := range p.Instructions {
		lines = append(lines, "\t"+e.formatInst(in))
	}
	lines = append(lines, "")
	return lines, nil
}

// LowerVar prints a "var name = init" line.
func (e *Emitter) LowerVar(v *tac.TACVar) []string {
	return []string{fmt.Sprintf("var %s = %d", v.Name, v.Init)}
}

func (e *Emitter) formatInst(in tac.Instruction) string {
	if in.Op == tac.OpLabel {
		return in.Args[0].Name + ":"
	}

	args := make([]string, len(in.Args))
	for i, a := range in.Args {
		args[i] = e.operand(a)
	}

	text := in.Op.String()
	if len(args) > 0 {
		text += " " + strings.Join(args, ", ")
	}
	if in.HasRes {
		text += " -> " + e.operand(in.Result)
	}
	return text
}
