package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xslendix/rolang/ast"
	"github.com/xslendix/rolang/lexer"
	"github.com/xslendix/rolang/parser"
)

func parseSingleStatement(t *testing.T, source string) *ast.Node {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "unexpected parse errors for %q", source)
	require.Len(t, program.Children, 1, "expected exactly one statement in %q", source)
	return program.Children[0]
}

func TestParseSetStatement(t *testing.T) {
	node := parseSingleStatement(t, "x <- 5")
	require.Equal(t, ast.Set, node.Kind)
	require.Equal(t, "x", node.Ident)
	require.Equal(t, ast.NewInt(5), node.Children[0])
}

func TestParseArithmeticIsRightAssociative(t *testing.T) {
	// "1 - 2 - 3" must parse as 1 - (2 - 3), matching the source
	// language's right-associative +/- quirk.
	node := parseSingleStatement(t, "1 - 2 - 3")
	require.Equal(t, ast.Subtract, node.Kind)
	require.Equal(t, ast.NewInt(1), node.Children[0])

	right := node.Children[1]
	require.Equal(t, ast.Subtract, right.Kind)
	require.Equal(t, ast.NewInt(2), right.Children[0])
	require.Equal(t, ast.NewInt(3), right.Children[1])
}

func TestParseBareCallCollectsCommaSeparatedArgs(t *testing.T) {
	node := parseSingleStatement(t, `scrie 1, 2, 3`)
	require.Equal(t, ast.FunctionCall, node.Kind)
	require.Equal(t, "scrie", node.Ident)
	require.Len(t, node.Children, 3)
}

func TestParseIfWithoutElse(t *testing.T) {
	node := parseSingleStatement(t, "dacă adevărat atunci 1 ■")
	require.Equal(t, ast.If, node.Kind)
	require.Len(t, node.Children, 2)
}

func TestParseIfWithElse(t *testing.T) {
	node := parseSingleStatement(t, "dacă adevărat atunci 1 altfel 2 ■")
	require.Equal(t, ast.If, node.Kind)
	require.Len(t, node.Children, 3)
}

func TestParseWhile(t *testing.T) {
	node := parseSingleStatement(t, "cât timp adevărat execută 1 ■")
	require.Equal(t, ast.While, node.Kind)
	require.Len(t, node.Children, 2)
}

func TestParseUntil(t *testing.T) {
	node := parseSingleStatement(t, "până când adevărat execută 1 ■")
	require.Equal(t, ast.Until, node.Kind)
	require.Len(t, node.Children, 2)
}

func TestParseForWithoutStep(t *testing.T) {
	node := parseSingleStatement(t, "pentru i <- 1, 10 execută 1 ■")
	require.Equal(t, ast.For, node.Kind)
	require.Len(t, node.Children, 3) // set, end, body
}

func TestParseForWithStep(t *testing.T) {
	node := parseSingleStatement(t, "pentru i <- 1, 10, 2 execută 1 ■")
	require.Equal(t, ast.For, node.Kind)
	require.Len(t, node.Children, 4) // set, end, step, body
}

func TestParseExecuteWhileTail(t *testing.T) {
	node := parseSingleStatement(t, `execută
1
cât timp adevărat`)
	require.Equal(t, ast.Execute, node.Kind)
	require.Len(t, node.Children, 2)
	require.Equal(t, ast.While, node.Children[1].Kind)
	require.Len(t, node.Children[1].Children, 1, "the tail header carries no body child")
}

func TestParseFloor(t *testing.T) {
	node := parseSingleStatement(t, "[3.7]")
	require.Equal(t, ast.Floor, node.Kind)
}

func TestParseCastRef(t *testing.T) {
	node := parseSingleStatement(t, "(ref)x")
	require.Equal(t, ast.CastRef, node.Kind)
	require.Equal(t, "x", node.Ident)
}

func TestParseIllegalTokenRecordsError(t *testing.T) {
	l := lexer.New("@")
	p := parser.New(l)
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}
