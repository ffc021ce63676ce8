package passes

import "fmt"

// InvalidInputError reports a module that uses i64 in a way the pass
// refuses to lower: i64 imports or exports, i64 globals initialized from
// other globals, or multi-value function results. Invalid inputs are
// detected before any IR is rewritten.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Msg
}

func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// UnimplementedError reports an i64 form the pass recognizes but does not
// lower yet. Unimplemented forms may be detected deep inside a traversal;
// the whole module transformation is aborted and the half-rewritten module
// must be discarded by the caller.
type UnimplementedError struct {
	Feature string
}

func (e *UnimplementedError) Error() string {
	return "not yet implemented: " + e.Feature
}

// unimplemented aborts the current traversal. The panic is recovered at
// the pass entry point and surfaced as the returned error.
func unimplemented(feature string) {
	panic(&UnimplementedError{Feature: feature})
}
