package codegen

import (
	"fmt"
	"strings"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

// Lower walks a program's top-level items, lowering each through a
// freshly constructed backend instance, and concatenates the results
// into one assembly text. A fresh instance per item means no emitter
// state (slot map, parameter buffer, epilogue label) ever leaks
// between procedures or globals.
func Lower(backendName string, prog *tac.Program) (string, error) {
	var lines []string
	for _, item := range prog.Items {
		b, err := GetBackend(backendName)
		if err != nil {
			return "", err
		}
		switch v := item.(type) {
		case *tac.TACProc:
			out, err := b.LowerProc(v)
			if err != nil {
				return "", fmt.Errorf("procedure %s: %w", v.Name, err)
			}
			lines = append(lines, out...)
		case *tac.TACVar:
			lines = append(lines, b.LowerVar(v)...)
		default:
			return "", fmt.Errorf("unrecognized top-level item %T", v)
		}
	}
	return strings.Join(lines, "\n") + "\n", nil
}
