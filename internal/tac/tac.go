package tac

// Instruction is the TAC triple: an opcode, its argument list, and an
// optional result operand. The opcode dictates arity and semantics;
// there are no implicit side effects beyond those the opcode names.
type Instruction struct {
	Op     Opcode
	Args   []Operand
	Result Operand
	HasRes bool
}

// Inst builds an Instruction with no result (control flow, stores,
// prints, param buffering).
func Inst(op Opcode, args ...Operand) Instruction {
	return Instruction{Op: op, Args: args}
}

// InstR builds an Instruction with a result operand.
func InstR(op Opcode, result Operand, args ...Operand) Instruction {
	return Instruction{Op: op, Args: args, Result: result, HasRes: true}
}

// TACProc is a single procedure: its name, its formal parameters (by
// temp name, in declaration order), its instruction stream, and the
// byte sizes of any locals whose footprint isn't the default 8 bytes
// (arrays, chiefly). A temp absent from VarSizes defaults to 8 bytes.
type TACProc struct {
	Name         string
	Params       []string
	Instructions []Instruction
	VarSizes     map[string]int
}

// TACVar is a globally addressable 8-byte cell initialized at link time.
type TACVar struct {
	Name string
	Init int64
}

// Item is a top-level unit a program consists of: either a *TACProc or
// a *TACVar.
type Item interface {
	isItem()
}

func (*TACProc) isItem() {}
func (*TACVar) isItem()  {}

// Program is an ordered list of top-level items, procedures and
// globals interleaved as the upstream translator produced them.
type Program struct {
	Items []Item
}
