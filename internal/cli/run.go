package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/charbuf/internal/display"
	"github.com/iw2rmb/charbuf/internal/script"
)

func newRunCmd(opt *rootOptions) *cobra.Command {
	var stopOnError bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a buffer script",
		Long: `Run a YAML buffer script. Use "-" to read the script from stdin.

Example script:

  buffers:
    main: {capacity: 5}
  steps:
    - op: append
      text: hello
    - op: append
      text: "!"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				s   *script.Script
				err error
			)
			if args[0] == "-" {
				s, err = script.Parse(cmd.InOrStdin())
			} else {
				s, err = script.ParseFile(args[0])
			}
			if err != nil {
				return err
			}

			log.Debug().Str("script", args[0]).Int("steps", len(s.Steps)).Msg("running script")
			rep, err := script.Run(s, script.Options{StopOnError: stopOnError})
			if err != nil {
				return fmt.Errorf("running script: %w", err)
			}

			if opt.jsonOutput {
				if err := printJSON(cmd.OutOrStdout(), rep); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), rep)
			}

			if stopOnError && rep.Failed > 0 {
				return ErrStepFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Stop at the first failing step and exit 1")
	return cmd
}

func printReport(w io.Writer, rep *script.Report) {
	for _, res := range rep.Results {
		if res.OK {
			okLabel.Fprint(w, "OK  ")
		} else {
			errorLabel.Fprint(w, "FAIL")
		}
		line := fmt.Sprintf(" %3d %-14s %-8s", res.Step, res.Op, res.Target)
		if res.Value != "" {
			line += " = " + res.Value
		}
		if !res.OK {
			line += " (" + res.Kind + ")"
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "          %s %d/%d \"%s\"\n",
			display.Slots(res.State.Len, res.State.Cap), res.State.Len, res.State.Cap, display.Render([]byte(res.State.Content)))
	}

	names := make([]string, 0, len(rep.Final))
	width := 0
	for name := range rep.Final {
		names = append(names, name)
		width = max(width, display.Width(name))
	}
	sort.Strings(names)

	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, name := range names {
		snap := rep.Final[name]
		fmt.Fprintf(w, "%s  %d/%d  %s\n", display.Pad(name, width), snap.Len, snap.Cap, display.Render([]byte(snap.Content)))
	}
	fmt.Fprintf(w, "%d steps, %d failed\n", len(rep.Results), rep.Failed)
}
