package rolangerr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xslendix/rolang/rolangerr"
)

func TestLexError(t *testing.T) {
	err := rolangerr.NewLexError("Caracter necunoscut: '@'")
	require.Equal(t, "Caracter necunoscut: '@'", err.Error())
	require.Equal(t, err.Error(), err.Message())
}

func TestRuntimeError(t *testing.T) {
	err := rolangerr.NewRuntimeErrorf("Funcție necunoscută: %s", "adaugă")
	require.Equal(t, "Funcție necunoscută: adaugă", err.Error())
}

func TestSyntaxErrorsFormatsNumberedList(t *testing.T) {
	err := &rolangerr.SyntaxErrors{Errors: []string{"prima eroare", "a doua eroare"}}
	require.Equal(t, "Erori găsite:\n  1. prima eroare\n  2. a doua eroare\n", err.Error())
}
