package cmd

import (
	"errors"
	"os"

	"github.com/jscompiler/jsmin/internal/clierror"
	"github.com/spf13/cobra"
)

// Version is set by build flags.
var Version = "0.1.0-dev"

var (
	showVersion  bool
	renameLocals bool
	outputPath   string
)

var rootCmd = &cobra.Command{
	Use:   "jsmin FILENAME",
	Short: "Minify a JavaScript source file",
	Long: `jsmin parses a single JavaScript file, analyzes its variable and
function scopes, and re-emits it with the minimum whitespace that keeps the
token stream unambiguous.

By default local identifiers keep their source names. Pass -r to shorten
names declared inside functions to the shortest identifier that does not
collide with a name the scope references from outside it. Top-level names,
and names in a function that contains a with statement or references eval
(directly or in a nested function), keep their source names.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	rootCmd.Flags().BoolVarP(&renameLocals, "rename-locals", "r", false, "shorten local identifier names")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to PATH instead of stdout")
}

// Execute runs the root command and exits the process with the exit code
// its result implies: 0 on success, 1 on any error (spec §7 — every error
// kind shares the same exit code; only parse errors also print a message).
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		os.Exit(0)
	}
	var ce *clierror.Error
	if errors.As(err, &ce) {
		ce.WriteMessage(os.Stderr)
		os.Exit(ce.ExitCode())
	}
	os.Exit(1)
}
