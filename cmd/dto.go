package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arma75/dtogen/internal/action/generate"
)

func init() {
	rootCmd.AddCommand(NewDTOCommand())
}

func NewDTOCommand() *cobra.Command {
	var tables []string

	// dtoCmd represents the dtogen dto command
	var dtoCmd = &cobra.Command{
		Use:   "dto",
		Short: "render DTO classes",
		Long:  "Render the DTO class of each selected table. Without --output-directory the source is printed.",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := actionOptions()
			if err != nil {
				return err
			}
			opts.Tables = tables
			opts.SkipCompanions = true

			if opts.OutDir != "" {
				artifacts, err := generate.Generate(opts)
				if err != nil {
					return err
				}
				for _, a := range artifacts {
					fmt.Fprintf(c.OutOrStdout(), "%s %s\n", okColor.Sprint("wrote"), a.File)
				}
				return nil
			}

			_, outs, err := generate.Render(opts)
			if err != nil {
				return err
			}
			for i, o := range outs {
				if i > 0 {
					fmt.Fprintln(c.OutOrStdout())
				}
				fmt.Fprint(c.OutOrStdout(), o.Content)
			}
			return nil
		},
	}
	ioFlags(dtoCmd, "")
	dtoCmd.Flags().StringSliceVarP(&tables, "table", "t", []string{}, "tables to render (default all)")

	return dtoCmd
}
