package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Arma75/dtogen/internal/action/generate"
	"github.com/Arma75/dtogen/internal/generator"
)

var (
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// ioFlags registers --input/-i and --output-directory/-o on c. They are bound
// to the "schema" and "out" config keys when c runs, so that the command
// actually executing owns the binding.
func ioFlags(c *cobra.Command, outDefault string) {
	c.Flags().StringP("input", "i", "", "schema file (yaml or json)")
	c.Flags().StringP("output-directory", "o", outDefault, "directory to write generated files")
	c.PreRunE = func(c *cobra.Command, _ []string) error {
		if err := viper.BindPFlag("schema", c.Flags().Lookup("input")); err != nil {
			return err
		}
		return viper.BindPFlag("out", c.Flags().Lookup("output-directory"))
	}
}

// actionOptions collects the generate/check options from flags, environment
// and config.
func actionOptions() (generate.Options, error) {
	strategy, err := generator.ParseStrategy(viper.GetString("strategy"))
	if err != nil {
		return generate.Options{}, err
	}
	overrides, err := projectOverrides()
	if err != nil {
		return generate.Options{}, err
	}
	schemaPath := viper.GetString("schema")
	if schemaPath == "" {
		return generate.Options{}, fmt.Errorf("a schema file is required (--input)")
	}
	return generate.Options{
		SchemaPath: schemaPath,
		OutDir:     viper.GetString("out"),
		Strategy:   strategy,
		Overrides:  overrides,
		Logger:     slog.Default(),
	}, nil
}
