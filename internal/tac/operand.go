package tac

import "fmt"

// OperandKind distinguishes the three operand shapes TAC instructions
// carry: a named temp (possibly a global, when the name starts with
// "@"), a label reference, or an integer literal.
type OperandKind int

const (
	OperandTemp OperandKind = iota
	OperandLabel
	OperandImmediate
)

// Operand is either a temp name, a label name, or an integer literal.
// Temporaries beginning with "@" name globals; all others name
// stack-allocated locals or virtual registers.
type Operand struct {
	Kind OperandKind
	Name string // temp or label name
	Imm  int64  // valid when Kind == OperandImmediate
}

// Temp builds a temp-name operand. A name starting with "@" refers to
// a global.
func Temp(name string) Operand { return Operand{Kind: OperandTemp, Name: name} }

// Label builds a label-reference operand, used by jumps and calls.
func Label(name string) Operand { return Operand{Kind: OperandLabel, Name: name} }

// Imm builds an integer-literal operand.
func Imm(v int64) Operand { return Operand{Kind: OperandImmediate, Imm: v} }

// IsGlobal reports whether a temp operand names a global ("@"-prefixed).
func (o Operand) IsGlobal() bool {
	return o.Kind == OperandTemp && len(o.Name) > 0 && o.Name[0] == '@'
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandImmediate:
		return fmt.Sprintf("%d", o.Imm)
	case OperandLabel:
		return o.Name
	default:
		return o.Name
	}
}
