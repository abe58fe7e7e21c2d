// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"isoplan/internal/appshell"
	"isoplan/internal/catalog"
	"isoplan/internal/cmdutil"
	"isoplan/internal/plan"
	"isoplan/internal/report"
	"isoplan/internal/version"
	"isoplan/internal/writers"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitUsage  = 2 // bad flags or catalog
	ExitOutput = 3 // results could not be written
)

// exitError carries the exit code chosen by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error  { return &exitError{code: ExitUsage, err: err} }
func outputErr(err error) error { return &exitError{code: ExitOutput, err: err} }

// NewRootCmd builds the isoplan command tree writing to stdout/stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:   "isoplan",
		Short: "Build the structural analysis plan for alternatively spliced isoforms",
		Long: `isoplan lists proteins with known alternative-splicing events, marks which ones
already have a reference PDB structure, and writes the analysis plan consumed by
the AlphaFold2 / PyMOL comparison steps.

Run without arguments to write ./structure_analysis_results/protein_structures_analysis_plan.csv.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	register(root, &opts)

	root.AddCommand(catalogCmd(&opts))
	return root
}

func catalogCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the effective isoform catalog as YAML",
		Long: `Print the isoform catalog (built-in, or the --config file after validation)
in the YAML format accepted by --config. Use it as a starting point:

  isoplan catalog > isoforms.yaml
  isoplan --config isoforms.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := loadCatalog(opts.Config)
			if err != nil {
				return usageErr(err)
			}
			data, err := catalog.Marshal(entries)
			if err != nil {
				return outputErr(err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return outputErr(err)
			}
			return nil
		},
	}
}

func loadCatalog(path string) ([]catalog.Entry, error) {
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.LoadFile(path)
}

func runPlan(ctx context.Context, stdout, stderr io.Writer, opts Options) error {
	if err := opts.Validate(); err != nil {
		return usageErr(err)
	}
	entries, err := loadCatalog(opts.Config)
	if err != nil {
		return usageErr(err)
	}

	// The built-in catalog's pending entries are expected; only flag user catalogs.
	if missing := catalog.Unreferenced(entries); opts.Config != "" && len(missing) > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no reference structure for %s; AlphaFold2 models are required before comparison",
			strings.Join(missing, ", "))
	}

	rep := report.New(stdout, report.Options{
		OutDir:   opts.OutDir,
		Format:   opts.Format,
		Manifest: opts.Manifest,
		Quiet:    opts.Quiet,
	})
	rep.Begin(len(entries))
	records := plan.Build(entries, rep.Progress())

	if _, err := rep.Persist(ctx, records); err != nil {
		if ctx.Err() != nil {
			return &exitError{code: appshell.ExitInterrupted, err: err}
		}
		return outputErr(err)
	}

	rep.Summary(records)
	return nil
}

// RunContext executes isoplan with argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := NewRootCmd(outw, stderr)
	if argv == nil {
		argv = []string{} // nil makes cobra read os.Args
	}
	root.SetArgs(argv)
	err := root.ExecuteContext(parent)

	code := ExitOK
	if err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		} else {
			// cobra flag/argument errors
			code = ExitUsage
			err = fmt.Errorf("%w (see 'isoplan --help')", err)
		}
	}

	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		cmdutil.Errorf(stderr, "%v", e)
		if code == ExitOK {
			code = ExitOutput
		}
	}
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
