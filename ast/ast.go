// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: The single node type shared by every syntactic construct of
//          rolang. A node is a (kind, ordered children) pair, exactly as
//          the language's data model specifies — leaf kinds additionally
//          carry their literal payload in one of the typed fields below.
// ==============================================================================================

package ast

import (
	"fmt"
	"io"
	"strings"
)

// Kind identifies the syntactic role of a Node. Kinds mirror token types
// (Identifier, Int, Float, String, Bool, Null, the operator family) plus
// the structural kinds that only the parser introduces: Program, Set,
// Floor, FunctionCall, If, While, Until, For, Execute.
type Kind string

const (
	Program Kind = "Program"

	Identifier Kind = "Identifier"
	Int        Kind = "Int"
	Float      Kind = "Float"
	String     Kind = "String"
	Bool       Kind = "Bool"
	Null       Kind = "Null"

	CastRef          Kind = "CastRef"
	CastFloatRef     Kind = "CastFloatRef"
	CastUnsignedRef  Kind = "CastUnsignedRef"

	Add      Kind = "Add"
	Subtract Kind = "Subtract" // 2 children: binary subtract. 1 child: unary minus.
	Multiply Kind = "Multiply"
	Divide   Kind = "Divide"
	Mod      Kind = "Mod"

	Equal              Kind = "Equal"
	NotEqual           Kind = "NotEqual"
	LessThan           Kind = "LessThan"
	LessThanEqual      Kind = "LessThanEqual"
	GreaterThan        Kind = "GreaterThan"
	GreaterThanEqual   Kind = "GreaterThanEqual"

	Not Kind = "Not"
	And Kind = "And"
	Or  Kind = "Or"

	Floor        Kind = "Floor"
	Set          Kind = "Set"
	FunctionCall Kind = "FunctionCall"

	If      Kind = "If"
	While   Kind = "While"
	Until   Kind = "Until"
	For     Kind = "For"
	Execute Kind = "Execute"
)

// Node is the universal AST node. Only the fields relevant to Kind are
// meaningful; the New* constructors below show exactly what Children
// holds for each kind.
type Node struct {
	Kind Kind

	// Ident carries the payload for Identifier, the assignment target for
	// Set, the callee name for FunctionCall, and the read-target name for
	// CastRef/CastFloatRef/CastUnsignedRef.
	Ident string

	IntVal   int64
	FloatVal float64
	StrVal   string
	BoolVal  bool

	Children []*Node
}

func NewIdentifier(name string) *Node { return &Node{Kind: Identifier, Ident: name} }
func NewInt(v int64) *Node            { return &Node{Kind: Int, IntVal: v} }
func NewFloat(v float64) *Node        { return &Node{Kind: Float, FloatVal: v} }
func NewString(v string) *Node        { return &Node{Kind: String, StrVal: v} }
func NewBool(v bool) *Node            { return &Node{Kind: Bool, BoolVal: v} }
func NewNull() *Node                  { return &Node{Kind: Null} }

func NewCastRef(kind Kind, name string) *Node { return &Node{Kind: kind, Ident: name} }

func NewProgram(stmts ...*Node) *Node { return &Node{Kind: Program, Children: stmts} }

func NewSet(name string, value *Node) *Node {
	return &Node{Kind: Set, Ident: name, Children: []*Node{value}}
}

func NewFunctionCall(name string, args ...*Node) *Node {
	return &Node{Kind: FunctionCall, Ident: name, Children: args}
}

func NewUnary(kind Kind, operand *Node) *Node { return &Node{Kind: kind, Children: []*Node{operand}} }

func NewBinary(kind Kind, left, right *Node) *Node {
	return &Node{Kind: kind, Children: []*Node{left, right}}
}

func NewFloor(operand *Node) *Node { return &Node{Kind: Floor, Children: []*Node{operand}} }

func NewIf(cond, then, els *Node) *Node {
	children := []*Node{cond, then}
	if els != nil {
		children = append(children, els)
	}
	return &Node{Kind: If, Children: children}
}

func NewWhile(cond, body *Node) *Node { return &Node{Kind: While, Children: []*Node{cond, body}} }
func NewUntil(cond, body *Node) *Node { return &Node{Kind: Until, Children: []*Node{cond, body}} }

// NewWhileHeader/NewUntilHeader/NewForHeader build loop constructs with
// no body child — the shape an Execute statement's tail takes. The
// evaluator loops over the header's children and re-runs the Execute
// body itself; it never appends the body to the header.
func NewWhileHeader(cond *Node) *Node { return &Node{Kind: While, Children: []*Node{cond}} }
func NewUntilHeader(cond *Node) *Node { return &Node{Kind: Until, Children: []*Node{cond}} }

func NewForHeader(set, end, step *Node) *Node {
	children := []*Node{set, end}
	if step != nil {
		children = append(children, step)
	}
	return &Node{Kind: For, Children: children}
}

// WithBody returns a NEW node of the same kind with body appended as
// the final child — the immutable reconstruction §9 mandates in place
// of the original interpreter's in-place splice.
func (n *Node) WithBody(body *Node) *Node {
	children := make([]*Node, len(n.Children)+1)
	copy(children, n.Children)
	children[len(n.Children)] = body
	return &Node{Kind: n.Kind, Ident: n.Ident, Children: children}
}

// NewFor builds a For node: set, end, step, body. step may be nil to
// mean "default step of 1"; it is then omitted, leaving 3 children (set,
// end, body) — the evaluator, not the AST, carries that default.
func NewFor(set, end, step, body *Node) *Node {
	children := []*Node{set, end}
	if step != nil {
		children = append(children, step)
	}
	children = append(children, body)
	return &Node{Kind: For, Children: children}
}

// NewExecute pairs a once-evaluated body with the loop header it feeds.
// tail is a While/Until/For node built WITHOUT its body child (the
// header alone); the evaluator runs body once, then loops on tail's
// children re-running the same body node, without modifying tail.
func NewExecute(body, tail *Node) *Node {
	return &Node{Kind: Execute, Children: []*Node{body, tail}}
}

// Dump writes a human-readable, indented tree to w. It exists purely as
// a debugging aid (wired to the --dump-ast CLI flag) and is never
// consulted by the evaluator.
func (n *Node) Dump(w io.Writer) {
	n.dump(w, 0)
}

func (n *Node) dump(w io.Writer, depth int) {
	if n == nil {
		fmt.Fprintf(w, "%s<nil>\n", strings.Repeat("  ", depth))
		return
	}
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case Identifier, Set, FunctionCall, CastRef, CastFloatRef, CastUnsignedRef:
		fmt.Fprintf(w, "%s%s(%q)\n", indent, n.Kind, n.Ident)
	case Int:
		fmt.Fprintf(w, "%s%s(%d)\n", indent, n.Kind, n.IntVal)
	case Float:
		fmt.Fprintf(w, "%s%s(%g)\n", indent, n.Kind, n.FloatVal)
	case String:
		fmt.Fprintf(w, "%s%s(%q)\n", indent, n.Kind, n.StrVal)
	case Bool:
		fmt.Fprintf(w, "%s%s(%t)\n", indent, n.Kind, n.BoolVal)
	default:
		fmt.Fprintf(w, "%s%s\n", indent, n.Kind)
	}
	for _, c := range n.Children {
		c.dump(w, depth+1)
	}
}

// String renders the same indented, newline-terminated tree as Dump
// (one line per node), useful in error messages and test failure output.
func (n *Node) String() string {
	var b strings.Builder
	n.Dump(&b)
	return b.String()
}
