// ==============================================================================================
// FILE: interp/interp.go
// ==============================================================================================
// PACKAGE: interp
// PURPOSE: The single lex → parse → evaluate pipeline that the REPL and
//          CLI both drive. Syntax errors abort before evaluation ever
//          starts; a runtime error value from the evaluator is unwrapped
//          into a Go error at this boundary.
// ==============================================================================================

package interp

import (
	"bufio"
	"io"

	"github.com/xslendix/rolang/evaluator"
	"github.com/xslendix/rolang/lexer"
	"github.com/xslendix/rolang/object"
	"github.com/xslendix/rolang/parser"
	"github.com/xslendix/rolang/rolangerr"
)

// Interp bundles the evaluator and the environment a source string runs
// against, so callers (REPL, CLI) can share one persistent environment
// across repeated Exec calls. It owns the single *bufio.Reader wrapping
// in, exposed via Reader so a REPL's own line-reading loop shares it
// with citește instead of double-buffering the same stream.
type Interp struct {
	eval   *evaluator.Evaluator
	env    *object.Environment
	reader *bufio.Reader
}

func New(out io.Writer, in io.Reader) *Interp {
	reader := bufio.NewReader(in)
	return &Interp{
		eval:   evaluator.New(out, reader),
		env:    object.NewEnvironment(),
		reader: reader,
	}
}

// Reader returns the shared input buffer, for callers (the REPL) that
// need to read lines from the same stream citește consumes.
func (i *Interp) Reader() *bufio.Reader { return i.reader }

// Exec lexes, parses, and evaluates source against the interpreter's
// persistent environment. A non-empty parser error list aborts before
// evaluation and is returned as a *rolangerr.SyntaxErrors; a runtime
// error value from the evaluator is unwrapped into a *rolangerr.RuntimeError.
func (i *Interp) Exec(source string) (object.Object, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		return nil, &rolangerr.SyntaxErrors{Errors: errs}
	}

	result, err := i.eval.Eval(program, i.env)
	if err != nil {
		return nil, err
	}
	if errObj, ok := result.(*object.Error); ok {
		return nil, rolangerr.NewRuntimeError(errObj.Message)
	}
	return result, nil
}

// Exec is a convenience one-shot entry point for callers that don't need
// a persistent environment across multiple calls (e.g. a single file
// run): it builds a fresh Interp, evaluates source once, and discards
// the environment.
func Exec(source string, out io.Writer, in io.Reader) (object.Object, error) {
	return New(out, in).Exec(source)
}
