// ==============================================================================================
// FILE: evaluator/evaluator.go
// ==============================================================================================
// PACKAGE: evaluator
// PURPOSE: Walks the AST against a single mutable environment,
//          implementing the Romanian-specific coercion matrices,
//          control flow, and scrie/citește built-ins. Runtime failures
//          bubble as *object.Error values through every recursive call
//          (the teacher's error-as-value idiom); only genuine I/O
//          failures surface as a Go error.
// ==============================================================================================

package evaluator

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xslendix/rolang/ast"
	"github.com/xslendix/rolang/object"
)

// Evaluator carries the I/O streams scrie/citește consume. Injecting
// them (rather than reaching for os.Stdout/os.Stdin directly, as the
// teacher's builtins do) keeps the evaluator testable and lets the REPL
// and CLI share one implementation. In is taken as an already-built
// *bufio.Reader, not a raw io.Reader, so a REPL reading its own input
// lines can share the exact same buffer with citește instead of each
// wrapping the underlying stream separately and losing bytes to the
// other's read-ahead.
type Evaluator struct {
	Out io.Writer
	In  *bufio.Reader
}

func New(out io.Writer, in *bufio.Reader) *Evaluator {
	return &Evaluator{Out: out, In: in}
}

type flusher interface{ Flush() error }

// newError builds a runtime error value, matching the teacher's
// newError helper shape.
func newError(format string, args ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}

// stop reports whether recursive evaluation must halt and bubble obj/err
// straight up to the caller — either a genuine Go error (I/O failure)
// or a runtime error value.
func stop(obj object.Object, err error) bool {
	return err != nil || object.IsError(obj)
}

// Eval walks node, threading env through every recursive call. The
// returned error is non-nil only for unrecoverable Go-level failures
// (stdin/stdout I/O); language-level runtime errors are *object.Error
// values, matching spec's "Result<Value>" entry point once interp.Exec
// unwraps them into a Go error at the boundary.
func (e *Evaluator) Eval(node *ast.Node, env *object.Environment) (object.Object, error) {
	switch node.Kind {
	case ast.Program:
		return e.evalProgram(node, env)
	case ast.Int:
		return &object.Integer{Value: node.IntVal}, nil
	case ast.Float:
		return &object.Float{Value: node.FloatVal}, nil
	case ast.Bool:
		return object.NativeBool(node.BoolVal), nil
	case ast.Null:
		return object.NULL, nil
	case ast.String:
		return &object.String{Value: node.StrVal}, nil
	case ast.Identifier:
		if val, ok := env.Get(node.Ident); ok {
			return val, nil
		}
		return object.NULL, nil
	case ast.CastRef:
		return &object.CastRef{Name: node.Ident}, nil
	case ast.CastFloatRef:
		return &object.CastFloatRef{Name: node.Ident}, nil
	case ast.CastUnsignedRef:
		return &object.CastUnsignedRef{Name: node.Ident}, nil

	case ast.Set:
		val, err := e.Eval(node.Children[0], env)
		if stop(val, err) {
			return val, err
		}
		return env.Set(node.Ident, val), nil

	case ast.Add, ast.Subtract, ast.Mod:
		if len(node.Children) == 1 {
			return e.evalUnary(node, env)
		}
		return e.evalAdditive(node, env)
	case ast.Multiply, ast.Divide:
		return e.evalMultiplicative(node, env)

	case ast.Not:
		return e.evalNot(node, env)
	case ast.And, ast.Or:
		return e.evalLogical(node, env)

	case ast.Equal, ast.NotEqual, ast.LessThan, ast.LessThanEqual, ast.GreaterThan, ast.GreaterThanEqual:
		return e.evalComparison(node, env)

	case ast.Floor:
		return e.evalFloor(node, env)

	case ast.If:
		return e.evalIf(node, env)
	case ast.While:
		return e.evalWhile(node, env)
	case ast.Until:
		return e.evalUntil(node, env)
	case ast.For:
		return e.evalFor(node, env)
	case ast.Execute:
		return e.evalExecute(node, env)

	case ast.FunctionCall:
		return e.evalFunctionCall(node, env)
	}
	return newError("Nod AST necunoscut: %s", string(node.Kind)), nil
}

func (e *Evaluator) evalProgram(node *ast.Node, env *object.Environment) (object.Object, error) {
	var result object.Object = object.NULL
	for _, stmt := range node.Children {
		var err error
		result, err = e.Eval(stmt, env)
		if stop(result, err) {
			return result, err
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Unary operators
// ---------------------------------------------------------------------------

func (e *Evaluator) evalUnary(node *ast.Node, env *object.Environment) (object.Object, error) {
	val, err := e.Eval(node.Children[0], env)
	if stop(val, err) {
		return val, err
	}
	switch node.Kind {
	case ast.Subtract:
		return evalUnaryMinus(val), nil
	default:
		return newError("Operator unar necunoscut: %s", string(node.Kind)), nil
	}
}

// evalUnaryMinus implements §4.3's unary table: negate numbers, logical
// -negate Bool (counter-intuitive but intentional), reverse strings by
// codepoint, Null stays Null.
func evalUnaryMinus(val object.Object) object.Object {
	switch v := val.(type) {
	case *object.Integer:
		return &object.Integer{Value: -v.Value}
	case *object.Float:
		return &object.Float{Value: -v.Value}
	case *object.Boolean:
		return object.NativeBool(!v.Value)
	case *object.String:
		runes := []rune(v.Value)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return &object.String{Value: string(runes)}
	case *object.Null:
		return object.NULL
	default:
		return newError("Nu pot aplica minus unar pe %s", val.Type())
	}
}

func (e *Evaluator) evalNot(node *ast.Node, env *object.Environment) (object.Object, error) {
	val, err := e.Eval(node.Children[0], env)
	if stop(val, err) {
		return val, err
	}
	switch v := val.(type) {
	case *object.Null:
		return object.TRUE, nil
	case *object.Boolean:
		return object.NativeBool(!v.Value), nil
	default:
		return object.FALSE, nil
	}
}

// ---------------------------------------------------------------------------
// Logical operators — și/sau. Both operands are ALWAYS evaluated, each
// exactly once (the original interpreter evaluated the left operand
// twice; §9 calls this a bug to fix, not preserve).
// ---------------------------------------------------------------------------

func (e *Evaluator) evalLogical(node *ast.Node, env *object.Environment) (object.Object, error) {
	left, err := e.Eval(node.Children[0], env)
	if stop(left, err) {
		return left, err
	}
	right, err := e.Eval(node.Children[1], env)
	if stop(right, err) {
		return right, err
	}
	switch node.Kind {
	case ast.And:
		return object.NativeBool(object.IsTruthy(left) && object.IsTruthy(right)), nil
	default: // ast.Or
		return object.NativeBool(object.IsTruthy(left) || object.IsTruthy(right)), nil
	}
}

// ---------------------------------------------------------------------------
// Additive family: +, -, % share one coercion table. String operands
// are absorbed additively regardless of which of the three operators is
// in play — a preserved language quirk, not an oversight.
// ---------------------------------------------------------------------------

func (e *Evaluator) evalAdditive(node *ast.Node, env *object.Environment) (object.Object, error) {
	left, err := e.Eval(node.Children[0], env)
	if stop(left, err) {
		return left, err
	}

	if node.Kind == ast.Mod && node.Children[1].Kind == ast.Null {
		return newError("Modul la zero este ilegal."), nil
	}

	right, err := e.Eval(node.Children[1], env)
	if stop(right, err) {
		return right, err
	}

	return additiveCoerce(node.Kind, left, right), nil
}

func additiveCoerce(kind ast.Kind, l, r object.Object) object.Object {
	switch lv := l.(type) {
	case *object.Integer:
		switch rv := r.(type) {
		case *object.Integer:
			v, errObj := intOp(kind, lv.Value, rv.Value)
			if errObj != nil {
				return errObj
			}
			return &object.Integer{Value: v}
		case *object.Float:
			return &object.Float{Value: floatOp(kind, float64(lv.Value), rv.Value)}
		case *object.Boolean:
			v, errObj := intOp(kind, lv.Value, boolToInt(rv.Value))
			if errObj != nil {
				return errObj
			}
			return &object.Integer{Value: v}
		case *object.String:
			return &object.String{Value: lv.Inspect() + rv.Value}
		case *object.Null:
			return lv
		}
	case *object.Float:
		switch rv := r.(type) {
		case *object.Integer:
			return &object.Float{Value: floatOp(kind, lv.Value, float64(rv.Value))}
		case *object.Float:
			return &object.Float{Value: floatOp(kind, lv.Value, rv.Value)}
		case *object.Boolean:
			return &object.Float{Value: floatOp(kind, lv.Value, float64(boolToInt(rv.Value)))}
		case *object.String:
			return &object.String{Value: lv.Inspect() + rv.Value}
		case *object.Null:
			return lv
		}
	case *object.Boolean:
		switch rv := r.(type) {
		case *object.Integer:
			v, errObj := intOp(kind, boolToInt(lv.Value), rv.Value)
			if errObj != nil {
				return errObj
			}
			return &object.Integer{Value: v}
		case *object.Float:
			return &object.Float{Value: floatOp(kind, float64(boolToInt(lv.Value)), rv.Value)}
		case *object.Boolean:
			v, errObj := intOp(kind, boolToInt(lv.Value), boolToInt(rv.Value))
			if errObj != nil {
				return errObj
			}
			return &object.Integer{Value: v}
		case *object.String:
			return &object.String{Value: lv.Inspect() + rv.Value}
		case *object.Null:
			return lv
		}
	case *object.String:
		switch rv := r.(type) {
		case *object.Integer:
			return &object.String{Value: lv.Value + rv.Inspect()}
		case *object.Float:
			return &object.String{Value: lv.Value + rv.Inspect()}
		case *object.Boolean:
			return &object.String{Value: lv.Value + rv.Inspect()}
		case *object.String:
			return &object.String{Value: lv.Value + rv.Value}
		case *object.Null:
			return &object.String{Value: lv.Value + "nul"}
		}
	case *object.Null:
		return object.NULL
	}
	return newError("Operanzi incompatibili pentru %s: %s și %s", string(kind), l.Type(), r.Type())
}

func intOp(kind ast.Kind, a, b int64) (int64, *object.Error) {
	switch kind {
	case ast.Add:
		return a + b, nil
	case ast.Subtract:
		return a - b, nil
	case ast.Mod:
		if b == 0 {
			return 0, newError("Modul la zero este ilegal.")
		}
		return a % b, nil
	}
	return 0, newError("Operator aditiv necunoscut: %s", string(kind))
}

func floatOp(kind ast.Kind, a, b float64) float64 {
	switch kind {
	case ast.Add:
		return a + b
	case ast.Subtract:
		return a - b
	case ast.Mod:
		return math.Mod(a, b)
	}
	return 0
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// ---------------------------------------------------------------------------
// Multiplicative family: ×, ÷. Int÷Int promotes to Float; String×numeric
// repeats; String÷numeric truncates; String÷String is an error; division
// by a LITERAL nul (checked syntactically, before evaluating the right
// operand) is always a fatal division-by-zero error. Modulo belongs to
// the additive family above, which makes the same check for %.
// ---------------------------------------------------------------------------

func (e *Evaluator) evalMultiplicative(node *ast.Node, env *object.Environment) (object.Object, error) {
	left, err := e.Eval(node.Children[0], env)
	if stop(left, err) {
		return left, err
	}

	if node.Kind == ast.Divide && node.Children[1].Kind == ast.Null {
		return newError("Împărțirea la zero este ilegală."), nil
	}

	right, err := e.Eval(node.Children[1], env)
	if stop(right, err) {
		return right, err
	}

	return multiplicativeCoerce(node.Kind, left, right), nil
}

func multiplicativeCoerce(kind ast.Kind, l, r object.Object) object.Object {
	if kind == ast.Multiply {
		if s, ok := l.(*object.String); ok {
			return repeatString(s.Value, r)
		}
		if _, ok := r.(*object.String); ok {
			return object.NULL
		}
	}
	if kind == ast.Divide {
		if ls, ok := l.(*object.String); ok {
			if _, ok := r.(*object.String); ok {
				return newError("Nu poți împărți la un șir de caractere.")
			}
			return divideString(ls.Value, r)
		}
		if _, ok := r.(*object.String); ok {
			return object.NULL
		}
	}
	if _, ok := l.(*object.Null); ok {
		return object.NULL
	}
	if _, ok := r.(*object.Null); ok {
		return object.NULL
	}

	lf, lok := asFloat(l)
	rf, rok := asFloat(r)
	if !lok || !rok {
		return newError("Operanzi incompatibili pentru %s: %s și %s", string(kind), l.Type(), r.Type())
	}

	if kind == ast.Divide {
		if rf == 0 {
			return newError("Împărțirea la zero este ilegală.")
		}
		return &object.Float{Value: lf / rf}
	}

	// Multiply: Int*Int stays Int; anything involving a Float stays Float.
	_, lIsInt := asIntExact(l)
	_, rIsInt := asIntExact(r)
	if lIsInt && rIsInt {
		li, _ := asIntExact(l)
		ri, _ := asIntExact(r)
		return &object.Integer{Value: li * ri}
	}
	return &object.Float{Value: lf * rf}
}

func asFloat(obj object.Object) (float64, bool) {
	switch v := obj.(type) {
	case *object.Integer:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	case *object.Boolean:
		return float64(boolToInt(v.Value)), true
	}
	return 0, false
}

func asIntExact(obj object.Object) (int64, bool) {
	switch v := obj.(type) {
	case *object.Integer:
		return v.Value, true
	case *object.Boolean:
		return boolToInt(v.Value), true
	}
	return 0, false
}

// repeatString implements String×numeric: the string repeated
// max(0, trunc(numeric)) times; Bool true/false count as 1/0; any other
// right operand (including another String) repeats zero times.
func repeatString(s string, factor object.Object) object.Object {
	n, ok := asFloat(factor)
	if !ok {
		return &object.String{Value: ""}
	}
	count := int(n)
	if count < 0 {
		count = 0
	}
	return &object.String{Value: strings.Repeat(s, count)}
}

// divideString implements String÷numeric: the first floor(|s|/n)
// codepoints of s, n truncated to a usize.
func divideString(s string, divisor object.Object) object.Object {
	n, ok := asFloat(divisor)
	if !ok || n == 0 {
		return &object.String{Value: ""}
	}
	runes := []rune(s)
	count := int(float64(len(runes)) / math.Trunc(math.Abs(n)))
	if count < 0 {
		count = 0
	}
	if count > len(runes) {
		count = len(runes)
	}
	return &object.String{Value: string(runes[:count])}
}

// ---------------------------------------------------------------------------
// Comparisons
// ---------------------------------------------------------------------------

func (e *Evaluator) evalComparison(node *ast.Node, env *object.Environment) (object.Object, error) {
	left, err := e.Eval(node.Children[0], env)
	if stop(left, err) {
		return left, err
	}
	right, err := e.Eval(node.Children[1], env)
	if stop(right, err) {
		return right, err
	}

	switch node.Kind {
	case ast.Equal:
		return object.NativeBool(valuesEqual(left, right)), nil
	case ast.NotEqual:
		return object.NativeBool(!valuesEqual(left, right)), nil
	default:
		return compareOrdered(node.Kind, left, right), nil
	}
}

// valuesEqual compares by structural equality, promoting Int<->Float
// before comparing; any other mixed-tag pair compares unequal.
func valuesEqual(l, r object.Object) bool {
	switch lv := l.(type) {
	case *object.Integer:
		switch rv := r.(type) {
		case *object.Integer:
			return lv.Value == rv.Value
		case *object.Float:
			return float64(lv.Value) == rv.Value
		}
		return false
	case *object.Float:
		switch rv := r.(type) {
		case *object.Integer:
			return lv.Value == float64(rv.Value)
		case *object.Float:
			return lv.Value == rv.Value
		}
		return false
	case *object.Boolean:
		rv, ok := r.(*object.Boolean)
		return ok && lv.Value == rv.Value
	case *object.String:
		rv, ok := r.(*object.String)
		return ok && lv.Value == rv.Value
	case *object.Null:
		_, ok := r.(*object.Null)
		return ok
	}
	return false
}

// compareOrdered implements <, <=, >, >= between Int/Float (promoted),
// Bool, String (lexicographic on codepoints), and Null (always equal).
// Any other mixed-tag pair is false.
func compareOrdered(kind ast.Kind, l, r object.Object) object.Object {
	if lf, lok := asOrderedFloat(l); lok {
		if rf, rok := asOrderedFloat(r); rok {
			return object.NativeBool(applyOrdering(kind, compareFloat(lf, rf)))
		}
	}
	if ls, ok := l.(*object.String); ok {
		if rs, ok := r.(*object.String); ok {
			return object.NativeBool(applyOrdering(kind, strings.Compare(ls.Value, rs.Value)))
		}
	}
	if lb, ok := l.(*object.Boolean); ok {
		if rb, ok := r.(*object.Boolean); ok {
			return object.NativeBool(applyOrdering(kind, compareBool(lb.Value, rb.Value)))
		}
	}
	if _, ok := l.(*object.Null); ok {
		if _, ok := r.(*object.Null); ok {
			return object.NativeBool(kind == ast.LessThanEqual || kind == ast.GreaterThanEqual)
		}
	}
	return object.FALSE
}

// asOrderedFloat only accepts Int/Float (Bool has its own ordering path
// so true/false don't silently compare as 1/0 against numbers).
func asOrderedFloat(obj object.Object) (float64, bool) {
	switch v := obj.(type) {
	case *object.Integer:
		return float64(v.Value), true
	case *object.Float:
		return v.Value, true
	}
	return 0, false
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	ai, bi := boolToInt(a), boolToInt(b)
	if ai < bi {
		return -1
	}
	if ai > bi {
		return 1
	}
	return 0
}

func applyOrdering(kind ast.Kind, cmp int) bool {
	switch kind {
	case ast.LessThan:
		return cmp < 0
	case ast.LessThanEqual:
		return cmp <= 0
	case ast.GreaterThan:
		return cmp > 0
	case ast.GreaterThanEqual:
		return cmp >= 0
	}
	return false
}

// ---------------------------------------------------------------------------
// Floor
// ---------------------------------------------------------------------------

func (e *Evaluator) evalFloor(node *ast.Node, env *object.Environment) (object.Object, error) {
	val, err := e.Eval(node.Children[0], env)
	if stop(val, err) {
		return val, err
	}
	switch v := val.(type) {
	case *object.Integer:
		return v, nil
	case *object.Float:
		return &object.Integer{Value: int64(math.Floor(v.Value))}, nil
	case *object.Null:
		return object.NULL, nil
	case *object.Boolean:
		return newError("Nu poti rotunji în jos un bool."), nil
	case *object.String:
		return newError("Nu poți calcula partea întreagă a unui șir de caractere."), nil
	default:
		return newError("Nu poți calcula partea întreagă a unui %s.", val.Type()), nil
	}
}

// ---------------------------------------------------------------------------
// Control flow
// ---------------------------------------------------------------------------

func (e *Evaluator) evalIf(node *ast.Node, env *object.Environment) (object.Object, error) {
	cond, err := e.Eval(node.Children[0], env)
	if stop(cond, err) {
		return cond, err
	}
	if object.IsTruthy(cond) {
		return e.Eval(node.Children[1], env)
	}
	if len(node.Children) > 2 {
		return e.Eval(node.Children[2], env)
	}
	return object.NULL, nil
}

func (e *Evaluator) evalWhile(node *ast.Node, env *object.Environment) (object.Object, error) {
	cond, body := node.Children[0], node.Children[1]
	var result object.Object = object.NULL
	for {
		c, err := e.Eval(cond, env)
		if stop(c, err) {
			return c, err
		}
		if !object.IsTruthy(c) {
			break
		}
		var err2 error
		result, err2 = e.Eval(body, env)
		if stop(result, err2) {
			return result, err2
		}
	}
	return result, nil
}

func (e *Evaluator) evalUntil(node *ast.Node, env *object.Environment) (object.Object, error) {
	cond, body := node.Children[0], node.Children[1]
	var result object.Object = object.NULL
	for {
		c, err := e.Eval(cond, env)
		if stop(c, err) {
			return c, err
		}
		if object.IsTruthy(c) {
			break
		}
		var err2 error
		result, err2 = e.Eval(body, env)
		if stop(result, err2) {
			return result, err2
		}
	}
	return result, nil
}

// forBounds is the resolved start/end/step triple a pentru header
// computes once before looping.
type forBounds struct {
	name             string
	start, end, step int64
}

func (e *Evaluator) computeForBounds(setNode, endExpr, stepExpr *ast.Node, env *object.Environment) (forBounds, object.Object, error) {
	name := setNode.Ident
	startVal, err := e.Eval(setNode.Children[0], env)
	if stop(startVal, err) {
		return forBounds{}, startVal, err
	}
	start, errObj := asInt(startVal)
	if errObj != nil {
		return forBounds{}, errObj, nil
	}
	env.Set(name, &object.Integer{Value: start})

	endVal, err := e.Eval(endExpr, env)
	if stop(endVal, err) {
		return forBounds{}, endVal, err
	}
	end, errObj := asInt(endVal)
	if errObj != nil {
		return forBounds{}, errObj, nil
	}

	step := int64(1)
	if stepExpr != nil {
		stepVal, err := e.Eval(stepExpr, env)
		if stop(stepVal, err) {
			return forBounds{}, stepVal, err
		}
		s, errObj := asInt(stepVal)
		if errObj != nil {
			return forBounds{}, errObj, nil
		}
		step = s
	}
	if step <= 0 {
		return forBounds{}, newError("Pasul trebuie să fie un număr întreg pozitiv."), nil
	}
	return forBounds{name: name, start: start, end: end, step: step}, nil, nil
}

func asInt(obj object.Object) (int64, *object.Error) {
	switch v := obj.(type) {
	case *object.Integer:
		return v.Value, nil
	case *object.Float:
		return int64(v.Value), nil
	default:
		return 0, newError("Aștept o valoare întreagă, am primit %s.", obj.Type())
	}
}

func (e *Evaluator) evalFor(node *ast.Node, env *object.Environment) (object.Object, error) {
	setNode := node.Children[0]
	endExpr := node.Children[1]
	var stepExpr, body *ast.Node
	if len(node.Children) == 4 {
		stepExpr, body = node.Children[2], node.Children[3]
	} else {
		body = node.Children[2]
	}

	bounds, errObj, err := e.computeForBounds(setNode, endExpr, stepExpr, env)
	if err != nil || errObj != nil {
		return errObj, err
	}

	var result object.Object = object.NULL
	for n := bounds.start; n <= bounds.end; n += bounds.step {
		env.Set(bounds.name, &object.Integer{Value: n})
		var err2 error
		result, err2 = e.Eval(body, env)
		if stop(result, err2) {
			return result, err2
		}
		env.Set(bounds.name, &object.Integer{Value: n})
	}
	return result, nil
}

// evalExecute realises "execută body [cât timp|până când|pentru] tail":
// body runs once unconditionally, then the tail header runs as a
// normal loop re-evaluating the same, already-parsed body node each
// iteration, rather than the source interpreter's in-place splice.
func (e *Evaluator) evalExecute(node *ast.Node, env *object.Environment) (object.Object, error) {
	body, tail := node.Children[0], node.Children[1]

	result, err := e.Eval(body, env)
	if stop(result, err) {
		return result, err
	}

	switch tail.Kind {
	case ast.While:
		cond := tail.Children[0]
		for {
			c, err := e.Eval(cond, env)
			if stop(c, err) {
				return c, err
			}
			if !object.IsTruthy(c) {
				break
			}
			result, err = e.Eval(body, env)
			if stop(result, err) {
				return result, err
			}
		}
	case ast.Until:
		cond := tail.Children[0]
		for {
			c, err := e.Eval(cond, env)
			if stop(c, err) {
				return c, err
			}
			if object.IsTruthy(c) {
				break
			}
			result, err = e.Eval(body, env)
			if stop(result, err) {
				return result, err
			}
		}
	case ast.For:
		setNode := tail.Children[0]
		endExpr := tail.Children[1]
		var stepExpr *ast.Node
		if len(tail.Children) > 2 {
			stepExpr = tail.Children[2]
		}
		bounds, errObj, bErr := e.computeForBounds(setNode, endExpr, stepExpr, env)
		if bErr != nil || errObj != nil {
			return errObj, bErr
		}
		for n := bounds.start; n <= bounds.end; n += bounds.step {
			env.Set(bounds.name, &object.Integer{Value: n})
			result, err = e.Eval(body, env)
			if stop(result, err) {
				return result, err
			}
			env.Set(bounds.name, &object.Integer{Value: n})
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Built-in functions: scrie and citește. Looked up before variables are
// ever consulted — object.Environment.Get already refuses these two
// reserved names, so any call through here is the only dispatch path.
// ---------------------------------------------------------------------------

func (e *Evaluator) evalFunctionCall(node *ast.Node, env *object.Environment) (object.Object, error) {
	switch node.Ident {
	case "scrie":
		return e.evalScrie(node, env)
	case "citește":
		return e.evalCiteste(node, env)
	default:
		return newError("Funcție necunoscută: %s", node.Ident), nil
	}
}

func (e *Evaluator) evalScrie(node *ast.Node, env *object.Environment) (object.Object, error) {
	total := 0
	for _, argNode := range node.Children {
		val, err := e.Eval(argNode, env)
		if stop(val, err) {
			return val, err
		}
		text := val.Inspect()
		if _, werr := io.WriteString(e.Out, text); werr != nil {
			return nil, werr
		}
		if f, ok := e.Out.(flusher); ok {
			if ferr := f.Flush(); ferr != nil {
				return nil, ferr
			}
		}
		total += utf8.RuneCountInString(text)
	}
	return &object.Integer{Value: int64(total)}, nil
}

func (e *Evaluator) evalCiteste(node *ast.Node, env *object.Environment) (object.Object, error) {
	for _, argNode := range node.Children {
		switch argNode.Kind {
		case ast.Identifier:
			line, err := e.readLine()
			if err != nil {
				return nil, err
			}
			env.Set(argNode.Ident, &object.String{Value: line})

		case ast.CastRef:
			tok, err := e.readToken()
			if err != nil {
				return nil, err
			}
			v, perr := strconv.ParseInt(tok, 10, 64)
			if perr != nil {
				return newError("Nu pot interpreta `%s` ca număr întreg.", tok), nil
			}
			env.Set(argNode.Ident, &object.Integer{Value: v})

		case ast.CastFloatRef:
			tok, err := e.readToken()
			if err != nil {
				return nil, err
			}
			v, perr := strconv.ParseFloat(tok, 64)
			if perr != nil {
				return newError("Nu pot interpreta `%s` ca număr real.", tok), nil
			}
			env.Set(argNode.Ident, &object.Float{Value: v})

		case ast.CastUnsignedRef:
			tok, err := e.readToken()
			if err != nil {
				return nil, err
			}
			v, perr := strconv.ParseUint(tok, 10, 64)
			if perr != nil {
				return newError("Nu pot interpreta `%s` ca număr natural.", tok), nil
			}
			env.Set(argNode.Ident, &object.Integer{Value: int64(v)})

		default:
			return newError("Argument invalid pentru citește."), nil
		}
	}
	return object.NULL, nil
}

func (e *Evaluator) readLine() (string, error) {
	line, err := e.In.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readToken reads one whitespace-separated token, skipping leading
// whitespace, for the numeric citește forms.
func (e *Evaluator) readToken() (string, error) {
	var b strings.Builder
	for {
		r, _, err := e.In.ReadRune()
		if err != nil {
			if b.Len() > 0 {
				break
			}
			return "", err
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if b.Len() == 0 {
				continue
			}
			break
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
