// ==============================================================================================
// FILE: cmd/rolang/cmd/root.go
// ==============================================================================================
// PACKAGE: cmd
// PURPOSE: The rolang command line: `rolang [file]`. No arguments drops
//          into the REPL; one argument executes that file (falling back
//          to FILE.ro if the literal path doesn't exist). -v/--version/
//          --versiune print the version and exit.
// ==============================================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xslendix/rolang/ast"
	"github.com/xslendix/rolang/internal/repl"
	"github.com/xslendix/rolang/interp"
	"github.com/xslendix/rolang/lexer"
	"github.com/xslendix/rolang/parser"
	"github.com/xslendix/rolang/rolangerr"
)

// Version is the program version printed by -v/--version/--versiune.
const Version = "0.1.0"

var (
	showVersion bool
	dumpAST     bool
)

var rootCmd = &cobra.Command{
	Use:   "rolang [file]",
	Short: "A tree-walking interpreter for Romanian pseudocode",
	Long: `rolang runs programs written in the Romanian pseudocode ("rolang")
imperative language: dacă/atunci/altfel, cât timp, până când, pentru,
scrie/citește.

With no arguments it starts an interactive REPL; with a file argument
it runs that file (or FILE.ro, if FILE itself doesn't exist).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	rootCmd.Flags().BoolVar(&showVersion, "versiune", false, "print version and exit")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before evaluating (file mode only)")
}

func Execute() error {
	return rootCmd.Execute()
}

func runRoot(_ *cobra.Command, args []string) error {
	if showVersion {
		fmt.Printf("rolang v%s\n", Version)
		return nil
	}
	if len(args) == 0 {
		repl.Start(os.Stdin, os.Stdout)
		return nil
	}
	return runFile(args[0])
}

func runFile(path string) error {
	source, err := readSourceFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Nu există fișierul %s.\n", path)
		os.Exit(1)
	}

	if dumpAST {
		l := lexer.New(source)
		p := parser.New(l)
		program := p.ParseProgram()
		if errs := p.Errors(); len(errs) > 0 {
			fmt.Fprint(os.Stderr, (&rolangerr.SyntaxErrors{Errors: errs}).Error())
			os.Exit(1)
		}
		printAST(program)
	}

	_, execErr := interp.Exec(source, os.Stdout, os.Stdin)
	if execErr != nil {
		fmt.Fprintf(os.Stderr, "Eroare ROLang: %s\n", execErr.Error())
		os.Exit(1)
	}
	return nil
}

// readSourceFile tries path as given, then path+".ro".
func readSourceFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	data, err = os.ReadFile(path + ".ro")
	if err == nil {
		return string(data), nil
	}
	return "", err
}

func printAST(program *ast.Node) {
	fmt.Println("AST:")
	fmt.Print(program.String())
	fmt.Println()
}
