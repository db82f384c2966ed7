package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/errors"
	"github.com/lumen-lang/lumen/pkg/lumen"
)

var (
	dumpAST bool
	trace   bool
)

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Run a Lumen source file",
	Long: `Execute a Lumen program from a .lum source file.

Examples:
  # Run a script file
  lumen run script.lum

  # Run with AST dump (for debugging)
  lumen run --dump-ast script.lum

  # Run with execution trace
  lumen run --trace script.lum`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed statement tree")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace statement execution to stderr")
}

func runScript(_ *cobra.Command, args []string) error {
	path := args[0]

	if !hasLumSuffix(path) {
		return &lumen.UsageError{Message: fmt.Sprintf("source file must have a %s suffix: %s", lumen.FileSuffix, path)}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	source := string(content)

	if dumpAST {
		stmts, perr := lumen.Parse(source, path)
		if perr != nil {
			printErr(perr)
			return fmt.Errorf("parsing failed")
		}
		fmt.Println(ast.Dump(stmts))
	}

	opts := []lumen.Option{lumen.WithOutput(os.Stdout), lumen.WithInput(os.Stdin)}
	if trace {
		opts = append(opts, lumen.WithTrace(os.Stderr))
	}
	engine := lumen.New(opts...)

	if err := engine.Run(source, path); err != nil {
		printErr(err)
		return fmt.Errorf("execution failed")
	}
	return nil
}

func hasLumSuffix(path string) bool {
	return len(path) >= len(lumen.FileSuffix) && path[len(path)-len(lumen.FileSuffix):] == lumen.FileSuffix
}

// printErr renders a pipeline error to stderr, coloring the output when
// stderr is a terminal (fatih/color, gated on mattn/go-isatty).
func printErr(err error) {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) && !color.NoColor
	switch e := err.(type) {
	case *errors.CompilerError:
		fmt.Fprintln(os.Stderr, e.Format(useColor))
	case errors.List:
		fmt.Fprintln(os.Stderr, e.Format(useColor))
	default:
		fmt.Fprintln(os.Stderr, err)
	}
}
