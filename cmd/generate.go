package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arma75/dtogen/internal/action/generate"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	// generateCmd represents the dtogen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate every artifact for a schema",
		Long:  "Write the DTO of every table plus PageRequest/PageResponse and record them in dtogen.yaml.",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := actionOptions()
			if err != nil {
				return err
			}
			artifacts, err := generate.Generate(opts)
			if err != nil {
				return err
			}
			for _, a := range artifacts {
				fmt.Fprintf(c.OutOrStdout(), "%s %-14s %s\n", okColor.Sprint("wrote"), a.Kind, a.File)
			}
			return nil
		},
	}
	ioFlags(generateCmd, "dto")

	return generateCmd
}
