// Package pipeline wires the minifier's stages into the single entry point
// the CLI (and tests) call: parse, build scopes, collect references,
// optionally rename, generate. It owns the one recover() in the module,
// converting the tree-transform stages' panics (scopebuild, refcollect,
// rename all panic on a structurally impossible node per spec §4.9) into
// the same clierror.Internal value that codegen's own sticky error returns,
// so callers see one error shape regardless of which stage failed.
package pipeline

import (
	"fmt"
	"io"

	"github.com/jscompiler/jsmin/internal/clierror"
	"github.com/jscompiler/jsmin/internal/codegen"
	"github.com/jscompiler/jsmin/internal/jsparse"
	"github.com/jscompiler/jsmin/internal/refcollect"
	"github.com/jscompiler/jsmin/internal/rename"
	"github.com/jscompiler/jsmin/internal/scopebuild"
	"github.com/jscompiler/jsmin/internal/sink"
)

// Options configures a single run of the pipeline.
type Options struct {
	// Filename is used only for parse-error messages; the pipeline never
	// touches the filesystem itself.
	Filename string
	Source   []byte
	// RenameLocals gates the identifier-shortening pass (spec §4.5); off by
	// default, matching the CLI's -r/--rename-locals flag.
	RenameLocals bool
	Output       io.Writer
}

// Run parses Source, analyzes and optionally renames its scopes, and emits
// minified tokens to Output. The returned error, when non-nil, is always a
// *clierror.Error.
func Run(opts Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = clierror.NewInternal(fmt.Errorf("%v", r))
		}
	}()

	prog, perr := jsparse.Parse(opts.Filename, opts.Source)
	if perr != nil {
		return clierror.NewParse(perr)
	}

	scopebuild.Build(prog)
	refcollect.Collect(prog)
	if opts.RenameLocals {
		rename.Rename(prog)
	}

	s := sink.New(opts.Output)
	if gerr := codegen.Generate(prog, s); gerr != nil {
		return clierror.NewInternal(gerr)
	}
	return nil
}
