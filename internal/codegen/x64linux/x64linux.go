// Package x64linux lowers TAC to AT&T-syntax x86-64 assembly for
// Linux (System V AMD64 ABI). It registers itself under the backend
// name "x64-linux".
//
// Register convention within a single emitted instruction sequence:
// %r11 is the primary scratch register, %rax/%rdx serve mul/div,
// %rcx holds shift counts, and %r8-%r12 serve the memory opcodes. No
// live value crosses an opcode boundary in a register — every TAC
// result is written back to its stack slot before the next opcode
// executes. This sacrifices register-allocation quality for a
// dead-simple per-opcode expansion.
package x64linux

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen"
	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

const backendName = "x64-linux"

func init() {
	codegen.Register(backendName, func() codegen.Backend { return &Emitter{} })
}

// argRegs holds the System V integer/pointer argument registers, in
// calling-convention order.
var argRegs = [6]string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}

// condJumps maps a TAC conditional-jump opcode to its x86 mnemonic.
var condJumps = map[tac.Opcode]string{
	tac.OpJz:  "jz",
	tac.OpJnz: "jnz",
	tac.OpJlt: "jl",
	tac.OpJle: "jle",
	tac.OpJgt: "jg",
	tac.OpJge: "jge",
}

// Emitter is the concrete x86-64/Linux backend. One instance lowers
// exactly one TACProc or TACVar; LowerProc resets all per-item state
// before walking the instruction stream.
type Emitter struct {
	*codegen.SlotTracker
	lines         []string
	epilogueLabel string
	params        []tac.Operand // buffered outgoing call arguments
}

// FormatTemp renders a resolved local-or-global location as an
// operand string: "-8*(i+1)(%rbp)" for a local slot, "name(%rip)" for
// a global.
func (e *Emitter) FormatTemp(loc codegen.Location) string {
	switch loc.Kind {
	case codegen.LocGlobal:
		return fmt.Sprintf("%s(%%rip)", loc.Global)
	case codegen.LocStackParam:
		return e.FormatParam(loc.Index)
	default:
		return fmt.Sprintf("-%d(%%rbp)", 8*(loc.Index+1))
	}
}

// FormatParam renders the j-th stack parameter (0-based, counting
// from the 7th procedure argument) as "8*(j+2)(%rbp)".
func (e *Emitter) FormatParam(index int) string {
	return fmt.Sprintf("%d(%%rbp)", 8*(index+2))
}

// operand renders any TAC operand: an immediate as "$k", a label
// as its bare name, and a temp through FormatTemp/FormatParam.
func (e *Emitter) operand(op tac.Operand) string {
	switch op.Kind {
	case tac.OperandImmediate:
		return fmt.Sprintf("$%d", op.Imm)
	case tac.OperandLabel:
		return op.Name
	default:
		return e.FormatTemp(e.Resolve(op.Name))
	}
}

func (e *Emitter) emit(opcode string, args ...string) {
	if len(args) == 0 {
		e.lines = append(e.lines, "\t"+opcode)
		return
	}
	e.lines = append(e.lines, "\t"+opcode+"\t"+strings.Join(args, ", "))
}

func (e *Emitter) emitLabel(name string) {
	e.lines = append(e.lines, name+":")
}

// LowerProc lowers a single procedure: spills register parameters,
// records stack parameters, walks the instruction stream, and wraps
// the result in a prologue/epilogue pair (§4.3).
func (e *Emitter) LowerProc(p *tac.TACProc) ([]string, error) {
	e.SlotTracker = codegen.NewSlotTracker(p.VarSizes)
	e.lines = nil
	e.params = nil
	e.epilogueLabel = ".E_" + p.Name

	regCount := len(p.Params)
	if regCount > 6 {
		regCount = 6
	}
	for i := 0; i < regCount; i++ {
		loc := e.Resolve(p.Params[i])
		e.emit("movq", argRegs[i], e.FormatTemp(loc))
	}
	for i, name := range p.Params[regCount:] {
		e.RegisterStackParam(name, i)
	}

	for _, instr := range p.Instructions {
		if err := e.compileInst(instr); err != nil {
			return nil, err
		}
	}

	nvars := e.FrameSlots()

	out := make([]string, 0, len(e.lines)+10)
	out = append(out,
		"\t.text",
		"\t.globl\t"+p.Name,
		p.Name+":",
		"\tpushq\t%rbp",
		"\tmovq\t%rsp, %rbp",
		fmt.Sprintf("\tsubq\t$%d, %%rsp", 8*nvars),
	)
	out = append(out, e.lines...)
	out = append(out,
		e.epilogueLabel+":",
		"\tmovq\t%rbp, %rsp",
		"\tpopq\t%rbp",
		"\tretq",
	)
	return out, nil
}

// LowerVar lowers a global variable to its .data directives.
func (e *Emitter) LowerVar(v *tac.TACVar) []string {
	return []string{
		"\t.data",
		"\t.globl\t" + v.Name,
		v.Name + ":",
		"\t.quad\t" + strconv.FormatInt(v.Init, 10),
	}
}

// compileInst dispatches a single TAC instruction to its per-opcode
// expansion (§4.2). Unknown opcodes and malformed call/param
// sequencing are fatal per §7.
func (e *Emitter) compileInst(in tac.Instruction) error {
	switch in.Op {
	case tac.OpConst:
		e.emit("movq", e.operand(in.Args[0]), e.operand(in.Result))

	case tac.OpCopy:
		e.emit("movq", e.operand(in.Args[0]), "%r11")
		e.emit("movq", "%r11", e.operand(in.Result))

	case tac.OpNeg:
		e.emitUnary("negq", in)
	case tac.OpNot:
		e.emitUnary("notq", in)

	case tac.OpAdd:
		e.emitBinary("addq", in)
	case tac.OpSub:
		e.emitBinary("subq", in)
	case tac.OpAnd:
		e.emitBinary("andq", in)
	case tac.OpOr:
		e.emitBinary("orq", in)
	case tac.OpXor:
		e.emitBinary("xorq", in)

	case tac.OpMul:
		e.emit("movq", e.operand(in.Args[0]), "%rax")
		e.emit("imulq", e.operand(in.Args[1]))
		e.emit("movq", "%rax", e.operand(in.Result))

	case tac.OpDiv:
		e.emit("movq", e.operand(in.Args[0]), "%rax")
		e.emit("cqto")
		e.emit("idivq", e.operand(in.Args[1]))
		e.emit("movq", "%rax", e.operand(in.Result))

	case tac.OpMod:
		e.emit("movq", e.operand(in.Args[0]), "%rax")
		e.emit("cqto")
		e.emit("idivq", e.operand(in.Args[1]))
		e.emit("movq", "%rdx", e.operand(in.Result))

	case tac.OpShl:
		e.emitShift("salq", in)
	case tac.OpShr:
		e.emitShift("sarq", in)

	case tac.OpPrint:
		e.emit("leaq", ".lprintfmt(%rip)", "%rdi")
		e.emit("movq", e.operand(in.Args[0]), "%rsi")
		e.emit("xorq", "%rax", "%rax")
		e.emit("callq", "printf@PLT")

	case tac.OpJmp:
		e.emit("jmp", in.Args[0].Name)

	case tac.OpJz, tac.OpJnz, tac.OpJlt, tac.OpJle, tac.OpJgt, tac.OpJge:
		e.emit("cmpq", "$0", e.operand(in.Args[0]))
		e.emit(condJumps[in.Op], in.Args[1].Name)

	case tac.OpParam:
		i := int(in.Args[0].Imm)
		if i != len(e.params)+1 {
			return fmt.Errorf("param %d, expected %d: %w", i, len(e.params)+1, codegen.ErrParamSequencing)
		}
		e.params = append(e.params, in.Args[1])

	case tac.OpCall:
		return e.compileCall(in)

	case tac.OpRet:
		if len(in.Args) > 0 {
			e.emit("movq", e.operand(in.Args[0]), "%rax")
		}
		e.emit("jmp", e.epilogueLabel)

	case tac.OpLabel:
		e.emitLabel(in.Args[0].Name)

	case tac.OpMemoryAllocation:
		e.emit("movq", e.operand(in.Args[1]), "%rsi")
		e.emit("movq", e.operand(in.Args[0]), "%rdi")
		e.emit("movq", "$0", "%rax")
		e.emit("callq", "alloc")
		e.emit("movq", "%rax", e.operand(in.Result))

	case tac.OpMemoryInitialization:
		e.emit("movq", e.operand(in.Args[1]), "%rsi")
		e.emit("movq", e.operand(in.Args[0]), "%rdi")
		e.emit("movq", "$0", "%rax")
		e.emit("callq", "zero_out")

	case tac.OpMemoryPointer:
		e.emit("leaq", e.operand(in.Args[0]), "%r12")
		e.emit("movq", "%r12", e.operand(in.Result))

	case tac.OpMemoryLoad:
		e.emit("movq", e.operand(in.Args[0]), "%r8")
		e.emit("addq", e.operand(in.Args[1]), "%r8")
		e.emit("movq", "(%r8)", "%r9")
		e.emit("movq", "%r9", e.operand(in.Result))

	case tac.OpMemoryStore:
		e.emit("movq", e.operand(in.Args[1]), "%r10")
		e.emit("addq", e.operand(in.Args[2]), "%r10")
		e.emit("movq", e.operand(in.Args[0]), "%r11")
		e.emit("movq", "%r11", "(%r10)")

	case tac.OpMemoryArrayCopy:
		e.emit("movq", e.operand(in.Args[0]), "%rdi")
		e.emit("movq", e.operand(in.Args[1]), "%rsi")
		e.emit("movq", e.operand(in.Args[2]), "%rdx")
		e.emit("callq", "copy_array")

	default:
		return fmt.Errorf("%s: %w", in.Op, codegen.ErrUnknownOpcode)
	}
	return nil
}

func (e *Emitter) emitUnary(opcode string, in tac.Instruction) {
	e.emit("movq", e.operand(in.Args[0]), "%r11")
	e.emit(opcode, "%r11")
	e.emit("movq", "%r11", e.operand(in.Result))
}

func (e *Emitter) emitBinary(opcode string, in tac.Instruction) {
	e.emit("movq", e.operand(in.Args[0]), "%r11")
	e.emit(opcode, e.operand(in.Args[1]), "%r11")
	e.emit("movq", "%r11", e.operand(in.Result))
}

func (e *Emitter) emitShift(opcode string, in tac.Instruction) {
	e.emit("movq", e.operand(in.Args[0]), "%r11")
	e.emit("movq", e.operand(in.Args[1]), "%rcx")
	e.emit(opcode, "%cl", "%r11")
	e.emit("movq", "%r11", e.operand(in.Result))
}

// compileCall lowers a call site: up to 6 arguments in registers, the
// rest pushed right-to-left with alignment padding so the call lands
// with a 16-byte-aligned stack, per the System V AMD64 ABI.
func (e *Emitter) compileCall(in tac.Instruction) error {
	target := in.Args[0].Name
	n := int(in.Args[1].Imm)
	if n != len(e.params) {
		return fmt.Errorf("call %s: got %d buffered arguments, declared %d: %w", target, len(e.params), n, codegen.ErrArgCountMismatch)
	}

	regArgs := e.params
	if len(regArgs) > 6 {
		regArgs = regArgs[:6]
	}
	for i, arg := range regArgs {
		e.emit("movq", e.operand(arg), argRegs[i])
	}

	q := 0
	if n > 6 {
		q = n - 6
	}
	if q%2 != 0 {
		e.emit("subq", "$8", "%rsp")
	}
	for i := n - 1; i >= 6; i-- {
		e.emit("pushq", e.operand(e.params[i]))
	}

	e.emit("callq", target)

	if q > 0 {
		e.emit("addq", fmt.Sprintf("$%d", 8*(q+q%2)), "%rsp")
	}

	if in.HasRes {
		e.emit("movq", "%rax", e.operand(in.Result))
	}

	e.params = nil
	return nil
}
