package codegen

import "errors"

// Fatal conditions the generator can hit. The generator assumes
// well-formed TAC from upstream (parser, type-checker); any of these
// firing means upstream produced something the generator was never
// meant to recover from, so lowering aborts without partial output.
var (
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrParamSequencing  = errors.New("parameter sequencing error")
	ErrArgCountMismatch = errors.New("argument count mismatch")
	ErrNoSuchBackend    = errors.New("no such backend")
)
