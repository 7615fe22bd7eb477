package repl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xslendix/rolang/internal/repl"
)

func TestReplEchoesResults(t *testing.T) {
	var out bytes.Buffer
	repl.Start(strings.NewReader("1+1\n"), &out)
	require.Contains(t, out.String(), "Rezultat: 2")
}

func TestReplPrintsRuntimeErrors(t *testing.T) {
	var out bytes.Buffer
	repl.Start(strings.NewReader("1/nul\n"), &out)
	require.Contains(t, out.String(), "Eroare ROLang: Împărțirea la zero este ilegală.")
}

func TestReplSkipsBlankLines(t *testing.T) {
	var out bytes.Buffer
	repl.Start(strings.NewReader("\n\n1+1\n"), &out)
	require.Equal(t, 1, strings.Count(out.String(), "Rezultat:"))
}

func TestReplSuppressesNullResults(t *testing.T) {
	var out bytes.Buffer
	repl.Start(strings.NewReader("dacă fals atunci 1 ■\n"), &out)
	require.NotContains(t, out.String(), "Rezultat:")
}

func TestReplPersistsEnvironmentAcrossLines(t *testing.T) {
	var out bytes.Buffer
	repl.Start(strings.NewReader("x <- 41\nx + 1\n"), &out)
	require.Contains(t, out.String(), "Rezultat: 42")
}
