package object_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xslendix/rolang/object"
)

func TestEnvironmentSetAndGet(t *testing.T) {
	env := object.NewEnvironment()
	val := env.Set("x", &object.Integer{Value: 7})
	require.Equal(t, &object.Integer{Value: 7}, val)

	got, ok := env.Get("x")
	require.True(t, ok)
	require.Equal(t, &object.Integer{Value: 7}, got)
}

func TestEnvironmentGetMissingNameIsNotFound(t *testing.T) {
	env := object.NewEnvironment()
	_, ok := env.Get("necunoscut")
	require.False(t, ok)
}

func TestReservedNamesNeverResolve(t *testing.T) {
	env := object.NewEnvironment()
	_, ok := env.Get("scrie")
	require.False(t, ok)
	_, ok = env.Get("citește")
	require.False(t, ok)

	require.True(t, object.IsReserved("scrie"))
	require.True(t, object.IsReserved("citește"))
	require.False(t, object.IsReserved("x"))
}

func TestEnvironmentSetOverwrites(t *testing.T) {
	env := object.NewEnvironment()
	env.Set("x", &object.Integer{Value: 1})
	env.Set("x", &object.Integer{Value: 2})
	got, ok := env.Get("x")
	require.True(t, ok)
	require.Equal(t, &object.Integer{Value: 2}, got)
}
