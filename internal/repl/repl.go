// ==============================================================================================
// FILE: internal/repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects an input stream to the
//          lex/parse/eval pipeline and keeps one persistent environment
//          for the session. No history, tab-completion, or cursor
//          probing — out of scope for this layer.
// ==============================================================================================

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/xslendix/rolang/interp"
	"github.com/xslendix/rolang/object"
)

const prompt = "> "

// Start launches the loop: read a line, skip it if blank, evaluate it
// against the session's persistent environment, print either the
// result or the error, repeat until the input stream is exhausted.
//
// Lines are read from the same *bufio.Reader the session's citește
// built-in consumes (via session.Reader()) rather than an independent
// bufio.Scanner, so a mid-session "citește x" sees exactly the bytes
// typed after the line that triggered it — no separate buffer racing
// the scanner for the same stdin.
func Start(in io.Reader, out io.Writer) {
	session := interp.New(out, in)
	reader := session.Reader()

	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			if err != nil {
				return
			}
			continue
		}

		result, execErr := session.Exec(line + "\n")
		if execErr != nil {
			fmt.Fprintf(out, "Eroare ROLang: %s\n", execErr.Error())
			continue
		}
		if _, isNull := result.(*object.Null); !isNull {
			fmt.Fprintf(out, "Rezultat: %s\n", result.Inspect())
		}
	}
}
