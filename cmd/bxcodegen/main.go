// Command bxcodegen is a minimal harness around the code-generation
// core: it builds a small in-memory TAC program and lowers it with the
// requested backend. The lexer, parser, type-checker and AST-to-TAC
// translator that would normally produce this TAC are out of scope
// (see spec.md §1) — this binary exists only to exercise the backend
// registry end to end, the way tinyrange-rtg/std/compiler/main.go
// wires its own backend dispatch from flags.
package main

import (
	"fmt"
	"os"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen"
	_ "github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen/irtext"
	_ "github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen/x64linux"
	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

func main() {
	backend := "x64-linux"
	if len(os.Args) > 1 {
		backend = os.Args[1]
	}

	prog := demoProgram()

	out, err := codegen.Lower(backend, prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bxcodegen: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// demoProgram builds the identity procedure from spec.md §8 scenario 2:
// "id(x) = x", plus a global it never touches, so both TACProc and
// TACVar lowering run.
func demoProgram() *tac.Program {
	id := &tac.TACProc{
		Name:   "id",
		Params: []string{"x"},
		Instructions: []tac.Instruction{
			tac.InstR(tac.OpCopy, tac.Temp("r"), tac.Temp("x")),
			tac.Inst(tac.OpRet, tac.Temp("r")),
		},
		VarSizes: map[string]int{},
	}
	g := &tac.TACVar{Name: "g", Init: 42}

	return &tac.Program{Items: []tac.Item{g, id}}
}
