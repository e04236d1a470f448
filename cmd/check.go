package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Arma75/dtogen/internal/action/check"
)

var ErrDrift = errors.New("generated files are out of date")

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

func NewCheckCommand() *cobra.Command {
	var quiet bool

	// checkCmd represents the dtogen check command
	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "report generated files that drifted from the schema",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := actionOptions()
			if err != nil {
				return err
			}
			drift, err := check.Diff(opts)
			if err != nil {
				return err
			}
			if len(drift) == 0 {
				fmt.Fprintln(c.OutOrStdout(), okColor.Sprint("up to date"))
				return nil
			}

			files := make([]string, 0, len(drift))
			for f := range drift {
				files = append(files, f)
			}
			slices.Sort(files)
			for _, f := range files {
				fmt.Fprintf(c.OutOrStdout(), "%s %s\n", warnColor.Sprint("DRIFT"), f)
				if !quiet {
					fmt.Fprintln(c.OutOrStdout(), drift[f])
				}
			}
			fmt.Fprintln(c.OutOrStdout(), errorColor.Sprintf("%d file(s) drifted", len(files)))
			return fmt.Errorf("%w: %d file(s)", ErrDrift, len(files))
		},
	}
	ioFlags(checkCmd, "dto")
	checkCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "list drifted files without diffs")

	return checkCmd
}
