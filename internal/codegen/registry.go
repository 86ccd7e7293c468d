package codegen

import (
	"fmt"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

// Backend lowers TAC to a target's assembly text. format_temp and
// format_param expose the operand-formatting half of the contract
// (useful on their own for diagnostics and tests); LowerProc and
// LowerVar produce the assembly lines for a single top-level item.
// A fresh Backend is constructed per item lowered — no state survives
// across items (see GetBackend).
type Backend interface {
	FormatTemp(loc Location) string
	FormatParam(index int) string
	LowerProc(p *tac.TACProc) ([]string, error)
	LowerVar(v *tac.TACVar) []string
}

// Factory constructs a fresh, zero-valued Backend instance.
type Factory func() Backend

// registry is the process-wide backend-name → factory mapping. It is
// populated once at init time by each concrete backend package
// (registering itself via Register from its own init func) and is
// read-only from then on; GetBackend never mutates it.
var registry = map[string]Factory{}

// Register adds a backend factory under name. Intended to be called
// from a backend package's init function, once, at program startup.
func Register(name string, f Factory) {
	registry[name] = f
}

// GetBackend looks up a backend factory by name and constructs a
// fresh instance. Returns ErrNoSuchBackend if name was never registered.
func GetBackend(name string) (Backend, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNoSuchBackend)
	}
	return f(), nil
}

// Names returns the currently registered backend names, for -help text
// and tests; order is unspecified.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
