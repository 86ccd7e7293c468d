package codegen_test

import (
	"strings"
	"testing"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen"
	_ "github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/codegen/x64linux"
	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

func TestLowerProgramConcatenatesItems(t *testing.T) {
	prog := &tac.Program{
		Items: []tac.Item{
			&tac.TACVar{Name: "g", Init: 42},
			&tac.TACProc{
				Name: "id",
				Instructions: []tac.Instruction{
					tac.Inst(tac.OpRet),
				},
				VarSizes: map[string]int{},
			},
		},
	}

	out, err := codegen.Lower("x64-linux", prog)
	if err != nil {
		t.Fatalf("Lower: unexpected error %v", err)
	}
	if !strings.HasPrefix(out, "\t.data\n") {
		t.Fatalf("expected output to start with the global's .data directive, got:\n%s", out)
	}
	if !strings.Contains(out, "\t.globl\tid\n") {
		t.Fatalf("expected the procedure's .globl directive, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("Lower must terminate output with a single trailing newline")
	}
}

func TestLowerUnknownBackend(t *testing.T) {
	prog := &tac.Program{Items: []tac.Item{&tac.TACVar{Name: "g", Init: 1}}}
	_, err := codegen.Lower("does-not-exist", prog)
	if err == nil {
		t.Fatal("expected an error for an unregistered backend")
	}
}
