// ==============================================================================================
// FILE: rolangerr/errors.go
// ==============================================================================================
// PACKAGE: rolangerr
// PURPOSE: The two fail-fast error kinds rolang raises outside of the
//          parser's accumulated syntax-error list: lex errors (bad
//          characters, malformed numbers, diacritic misspellings) and
//          runtime errors (evaluator failures). Both carry Romanian-
//          language messages verbatim — no source-location data, since
//          that is an explicit non-goal.
// ==============================================================================================

package rolangerr

import "fmt"

// LexError is raised by the lexer when it cannot produce a valid token.
type LexError struct {
	msg string
}

func NewLexError(msg string) *LexError { return &LexError{msg: msg} }

func (e *LexError) Error() string   { return e.msg }
func (e *LexError) Message() string { return e.msg }

// RuntimeError carries an evaluator failure out of interp.Exec, which
// builds it from the evaluator's *object.Error value: division/modulo by
// a Null literal, floor of a Bool/String, a bad citește argument, an
// unknown function name, and so on.
type RuntimeError struct {
	msg string
}

func NewRuntimeError(msg string) *RuntimeError { return &RuntimeError{msg: msg} }

func NewRuntimeErrorf(format string, args ...any) *RuntimeError {
	return &RuntimeError{msg: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string   { return e.msg }
func (e *RuntimeError) Message() string { return e.msg }

// SyntaxErrors bundles the parser's accumulated, non-fatal error list
// into a single error value for callers (interp.Exec, the REPL, the
// CLI) that want a single `error` to check.
type SyntaxErrors struct {
	Errors []string
}

func (e *SyntaxErrors) Error() string {
	msg := "Erori găsite:\n"
	for i, s := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, s)
	}
	return msg
}
