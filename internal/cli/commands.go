// Package cli implements the charbuf command line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/charbuf"
	"github.com/iw2rmb/charbuf/internal/logtrace"
)

// ErrStepFailed is returned by run when a step fails under --stop-on-error.
var ErrStepFailed = errors.New("script step failed")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

type rootOptions struct {
	jsonOutput bool
	logLevel   string
	logConsole bool
}

// NewRootCmd builds the charbuf command tree.
func NewRootCmd() *cobra.Command {
	opt := &rootOptions{}

	root := &cobra.Command{
		Use:   "charbuf [command] [flags]",
		Short: "charbuf - run scripts against fixed-capacity byte buffers",
		Long: `charbuf executes YAML scripts of buffer operations and reports the
outcome of every step, including range and allocation failures.

Examples:
  # Run a script file
  charbuf run script.yaml

  # Run a script from stdin and print JSON
  cat script.yaml | charbuf run - --json

  # Stop at the first failing step
  charbuf run script.yaml --stop-on-error`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logtrace.InitWriter(cmd.ErrOrStderr(), opt.logLevel, opt.logConsole)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().BoolVarP(&opt.jsonOutput, "json", "j", false, "Output in JSON format")
	root.PersistentFlags().StringVar(&opt.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opt.logConsole, "log-console", false, "Human-readable logs instead of JSON lines")

	root.AddCommand(newRunCmd(opt))
	root.AddCommand(newVersionCmd(opt))
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, ErrStepFailed) {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newVersionCmd(opt *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of charbuf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]string{"version": charbuf.VersionTag()})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "charbuf %s\n", charbuf.VersionTag())
			return err
		},
	}
}

// printJSON writes data as indented JSON.
func printJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
