package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kamusis/jobskill-cli/internal/config"
	"github.com/spf13/cobra"
)

// rootFlags holds flag values for the root command.
type rootFlags struct {
	limit      int
	apiBase    string
	timeout    time.Duration
	strict     bool
	debug      bool
	saveConfig bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	root := &cobra.Command{
		Use:   "jobskill [flags] <skill> [skill...]",
		Short: "Find job postings that require a set of skills",
		Long: `jobskill asks a Job Posting Aggregator API for postings matching every
skill given on the command line and prints them.

Run without arguments to list the skills the service knows about.
Use -- before skills that start with a dash.

Examples:
  jobskill Python
  jobskill JavaScript React Node.js
  jobskill --limit 5 Go Kubernetes`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // don't print usage on operational errors
		SilenceErrors: true, // run() prints errors itself
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, &f, args)
		},
	}
	root.SetVersionTemplate(versionTemplate())

	root.Flags().IntVar(&f.limit, "limit", config.DefaultLimit, "Maximum number of postings to request")
	root.Flags().StringVar(&f.apiBase, "api-base", config.DefaultAPIBase, "Base URL of the job aggregator API")
	root.Flags().DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "HTTP timeout per request")
	root.Flags().BoolVar(&f.strict, "strict", false, "Exit with status 2 when the search fails")
	root.Flags().BoolVar(&f.debug, "debug", false, "Print debug logs to stderr")
	root.Flags().BoolVar(&f.saveConfig, "save-config", false, "Persist --api-base, --limit and --timeout to ~/.jobskill/config.yaml")
	return root
}

// exitError carries a process exit code out of RunE. A nil err means the
// command already reported everything it had to say.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// Execute is called by main.go.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra reads os.Args when given nil
	}
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(stderr, ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, err)
	return 1
}
