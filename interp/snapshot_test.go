package interp_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/xslendix/rolang/interp"
)

// end-to-end scenarios run through the full lex/parse/eval pipeline and
// snapshotted by stdout, mirroring how the teacher's fixture tests
// pin whole-program behaviour rather than individual evaluator calls.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := map[string]string{
		"write_and_arithmetic": `scrie 1 + 1
scrie "\n"
scrie 7 % 3`,
		"nested_if": `x <- 5
dacă x > 3 atunci
  scrie "mare"
altfel
  scrie "mic"
■`,
		"while_loop": `n <- 0
cât timp n < 3 execută
  scrie n
  n <- n + 1
■`,
		"execute_until": `n <- 0
execută
  scrie n
  n <- n + 1
până când n >= 3`,
		"string_repeat": `scrie "ab" * 3`,
		"floor_division": `scrie [7/2]`,
	}

	for name, source := range scenarios {
		name, source := name, source
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			result, err := interp.Exec(source, &out, strings.NewReader(""))
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stdout", name), out.String())
			if err != nil {
				snaps.MatchSnapshot(t, fmt.Sprintf("%s_error", name), err.Error())
				return
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", name), result.Inspect())
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
