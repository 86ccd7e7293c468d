package codegen

import (
	"errors"
	"testing"

	"github.com/etienne-leroy/CSE302-Structured-and-Aggregate-Types/internal/tac"
)

// fakeBackend has a non-zero size so that two instances never share
// an address and the fresh-instance check below can tell them apart.
type fakeBackend struct{ _ byte }

func (*fakeBackend) FormatTemp(Location) string { return "" }
func (*fakeBackend) FormatParam(int) string      { return "" }
func (*fakeBackend) LowerProc(*tac.TACProc) ([]string, error) {
	return nil, nil
}
func (*fakeBackend) LowerVar(*tac.TACVar) []string { return nil }

func TestGetBackendUnknownName(t *testing.T) {
	_, err := GetBackend("no-such-target")
	if !errors.Is(err, ErrNoSuchBackend) {
		t.Fatalf("GetBackend(unknown): got %v, want ErrNoSuchBackend", err)
	}
}

func TestRegisterThenGetBackend(t *testing.T) {
	Register("test-only-backend", func() Backend { return &fakeBackend{} })

	b, err := GetBackend("test-only-backend")
	if err != nil {
		t.Fatalf("GetBackend: unexpected error %v", err)
	}
	if b == nil {
		t.Fatal("GetBackend: got nil backend")
	}

	// A second call must hand back a fresh instance, not the same one.
	b2, _ := GetBackend("test-only-backend")
	if b == b2 {
		t.Fatal("GetBackend must construct a fresh instance per call")
	}
}
