package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jscompiler/jsmin/internal/clierror"
	"github.com/jscompiler/jsmin/internal/pipeline"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Println("jsmin version " + Version)
		return nil
	}

	if len(args) != 1 {
		return clierror.NewArgument(fmt.Errorf("expected exactly one FILENAME argument, got %d", len(args)))
	}
	filename := args[0]

	src, err := os.ReadFile(filename)
	if err != nil {
		return clierror.NewArgument(err)
	}

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return clierror.NewArgument(err)
	}
	defer closeOut()

	return pipeline.Run(pipeline.Options{
		Filename:     filename,
		Source:       src,
		RenameLocals: renameLocals,
		Output:       out,
	})
}

// openOutput returns stdout and a no-op closer when path is empty, or the
// created file at path and its Close method otherwise.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
