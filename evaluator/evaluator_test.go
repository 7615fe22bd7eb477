package evaluator_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xslendix/rolang/ast"
	"github.com/xslendix/rolang/evaluator"
	"github.com/xslendix/rolang/lexer"
	"github.com/xslendix/rolang/object"
	"github.com/xslendix/rolang/parser"
)

// run lexes, parses, and evaluates source against a fresh environment,
// feeding stdin and capturing stdout so citește/scrie can be exercised.
func run(t *testing.T, source, stdin string) (object.Object, string, error) {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors for %q", source)

	var out bytes.Buffer
	eval := evaluator.New(&out, bufio.NewReader(strings.NewReader(stdin)))
	result, err := eval.Eval(program, object.NewEnvironment())
	return result, out.String(), err
}

func mustEval(t *testing.T, source string) object.Object {
	t.Helper()
	result, _, err := run(t, source, "")
	require.NoError(t, err)
	require.False(t, object.IsError(result), "runtime error: %s", errMessage(result))
	return result
}

func evalError(t *testing.T, source string) string {
	t.Helper()
	result, _, err := run(t, source, "")
	require.NoError(t, err)
	require.True(t, object.IsError(result), "expected runtime error for %q, got %s", source, result.Inspect())
	return errMessage(result)
}

func errMessage(obj object.Object) string {
	if e, ok := obj.(*object.Error); ok {
		return e.Message
	}
	return ""
}

func TestArithmeticLaws(t *testing.T) {
	require.Equal(t, &object.Integer{Value: 2}, mustEval(t, "1+1"))
	require.Equal(t, &object.Float{Value: 0.5}, mustEval(t, "1/2"))
	require.Equal(t, &object.Integer{Value: 1}, mustEval(t, "7%3"))
	require.Equal(t, &object.Integer{Value: 3}, mustEval(t, "[3.7]"))
	require.Equal(t, &object.String{Value: "ababab"}, mustEval(t, `"ab"*3`))
	require.Equal(t, &object.String{Value: "cba"}, mustEval(t, `-"abc"`))
	require.Equal(t, &object.String{Value: "hello5"}, mustEval(t, `"hello" + 5`))
}

func TestComparisonLaws(t *testing.T) {
	require.Equal(t, object.TRUE, mustEval(t, "1 < 2.0"))
	require.Equal(t, object.TRUE, mustEval(t, `"a" < "b"`))
}

func TestNotLaws(t *testing.T) {
	require.Equal(t, object.TRUE, mustEval(t, "not nul"))
	require.Equal(t, object.FALSE, mustEval(t, "not 0"))
	require.Equal(t, object.FALSE, mustEval(t, `not ""`))
}

func TestDivisionByLiteralNullIsFatal(t *testing.T) {
	require.Equal(t, "Împărțirea la zero este ilegală.", evalError(t, "1/nul"))
}

func TestModByLiteralNullIsFatal(t *testing.T) {
	require.Equal(t, "Modul la zero este ilegal.", evalError(t, "1%nul"))
}

func TestLogicalOperandsEvaluatedExactlyOnce(t *testing.T) {
	// Built directly from AST nodes (rather than source text) so the
	// operands can be assignments whose side effect is observable: if
	// either side of și were evaluated twice, n would end at 3 or 4
	// instead of 2.
	increment := ast.NewSet("n", ast.NewBinary(ast.Add, ast.NewIdentifier("n"), ast.NewInt(1)))
	program := ast.NewProgram(
		ast.NewSet("n", ast.NewInt(0)),
		ast.NewBinary(ast.And, increment, increment),
	)

	eval := evaluator.New(io.Discard, bufio.NewReader(strings.NewReader("")))
	env := object.NewEnvironment()
	_, err := eval.Eval(program, env)
	require.NoError(t, err)

	n, ok := env.Get("n")
	require.True(t, ok)
	require.Equal(t, &object.Integer{Value: 2}, n)
}

func TestIntDivideIntPromotesToFloat(t *testing.T) {
	require.Equal(t, &object.Float{Value: 2.5}, mustEval(t, "5/2"))
}

func TestIntMultiplyIntStaysInt(t *testing.T) {
	require.Equal(t, &object.Integer{Value: 12}, mustEval(t, "3*4"))
}

func TestStringDivideNumericTruncatesPrefix(t *testing.T) {
	require.Equal(t, &object.String{Value: "ab"}, mustEval(t, `"abcd"/2`))
}

func TestStringDivideStringIsError(t *testing.T) {
	require.Equal(t, "Nu poți împărți la un șir de caractere.", evalError(t, `"ab"/"cd"`))
}

func TestNumericMultiplyStringIsNullNotRepeat(t *testing.T) {
	require.Equal(t, object.NULL, mustEval(t, `3*"ab"`))
}

func TestFloorOnBooleanIsError(t *testing.T) {
	require.Equal(t, "Nu poti rotunji în jos un bool.", evalError(t, "[adevărat]"))
}

func TestExecuteRunsBodyOnceBeforeFalseCondition(t *testing.T) {
	_, out, err := run(t, `execută
scrie "a"
cât timp fals`, "")
	require.NoError(t, err)
	require.Equal(t, "a", out)
}

func TestCitesteReadsLineIntoIdentifier(t *testing.T) {
	result, _, err := run(t, "citește nume\nscrie nume", "Ion\n")
	require.NoError(t, err)
	require.Equal(t, &object.Integer{Value: 3}, result)
}

func TestCitesteParsesCastReferenceAsInt(t *testing.T) {
	// Built directly from AST nodes: the cast-reference phrases aren't
	// valid starts of a bare-call argument in source text, so this
	// exercises evalCiteste's CastRef dispatch without going through
	// the parser's bare-call grammar.
	program := ast.NewProgram(
		ast.NewFunctionCall("citește", ast.NewCastRef(ast.CastRef, "x")),
		ast.NewFunctionCall("scrie", ast.NewIdentifier("x")),
	)
	eval := evaluator.New(io.Discard, bufio.NewReader(strings.NewReader("42\n")))
	var out bytes.Buffer
	eval.Out = &out
	_, err := eval.Eval(program, object.NewEnvironment())
	require.NoError(t, err)
	require.Equal(t, "42", out.String())
}

func TestIfElse(t *testing.T) {
	require.Equal(t, &object.Integer{Value: 1}, mustEval(t, "dacă adevărat atunci 1 altfel 2 ■"))
	require.Equal(t, &object.Integer{Value: 2}, mustEval(t, "dacă fals atunci 1 altfel 2 ■"))
}

func TestForLoopAccumulates(t *testing.T) {
	result, _, err := run(t, `s <- 0
pentru i <- 1, 5 execută
s <- s + i
■`, "")
	require.NoError(t, err)
	require.Equal(t, &object.Integer{Value: 15}, result)
}
