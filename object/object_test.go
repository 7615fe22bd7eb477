package object_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xslendix/rolang/object"
)

func TestBooleanInspectUsesRomanianLiterals(t *testing.T) {
	require.Equal(t, "adevărat", object.TRUE.Inspect())
	require.Equal(t, "fals", object.FALSE.Inspect())
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	require.Same(t, object.TRUE, object.NativeBool(true))
	require.Same(t, object.FALSE, object.NativeBool(false))
}

func TestIsError(t *testing.T) {
	require.True(t, object.IsError(&object.Error{Message: "oops"}))
	require.False(t, object.IsError(&object.Integer{Value: 1}))
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		obj  object.Object
		want bool
	}{
		{"null", object.NULL, false},
		{"zero int", &object.Integer{Value: 0}, false},
		{"nonzero int", &object.Integer{Value: 1}, true},
		{"zero float", &object.Float{Value: 0}, false},
		{"nonzero float", &object.Float{Value: 0.5}, true},
		{"false bool", object.FALSE, false},
		{"true bool", object.TRUE, true},
		{"empty string", &object.String{Value: ""}, true},
		{"nonempty string", &object.String{Value: "x"}, true},
	}
	for _, c := range cases {
		require.Equal(t, c.want, object.IsTruthy(c.obj), c.name)
	}
}

func TestInspect(t *testing.T) {
	require.Equal(t, "42", (&object.Integer{Value: 42}).Inspect())
	require.Equal(t, "3.5", (&object.Float{Value: 3.5}).Inspect())
	require.Equal(t, "nul", object.NULL.Inspect())
	require.Equal(t, "(ref)x", (&object.CastRef{Name: "x"}).Inspect())
	require.Equal(t, "(număr)x", (&object.CastFloatRef{Name: "x"}).Inspect())
	require.Equal(t, "(număr natural)x", (&object.CastUnsignedRef{Name: "x"}).Inspect())
	require.Equal(t, "EROARE: ceva rău", (&object.Error{Message: "ceva rău"}).Inspect())
}
