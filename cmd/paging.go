package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Arma75/dtogen/internal/generator"
	"github.com/Arma75/dtogen/internal/model"
	"github.com/Arma75/dtogen/pkg/schema"
)

func init() {
	rootCmd.AddCommand(NewPagingCommand())
}

func NewPagingCommand() *cobra.Command {
	var input, outDir string

	// pagingCmd represents the dtogen paging command
	var pagingCmd = &cobra.Command{
		Use:   "paging",
		Short: "render PageRequest and PageResponse",
		Long:  "Render the common paging companions. Project settings come from --input when given, then from flags and config.",
		RunE: func(c *cobra.Command, args []string) error {
			p := model.DefaultProject()
			if input != "" {
				s, err := schema.Load(input)
				if err != nil {
					return err
				}
				p = s.Project
			}
			overrides, err := projectOverrides()
			if err != nil {
				return err
			}
			for _, fn := range overrides {
				fn(&p)
			}

			g := generator.New(generator.WithLogger(slog.Default()))
			req, err := g.PageRequest(&p)
			if err != nil {
				return err
			}
			resp, err := g.PageResponse(&p)
			if err != nil {
				return err
			}

			if outDir == "" {
				fmt.Fprint(c.OutOrStdout(), req+"\n"+resp)
				return nil
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, f := range []struct{ name, src string }{
				{generator.PageRequestClass, req},
				{generator.PageResponseClass, resp},
			} {
				path := filepath.Join(outDir, f.name+".java")
				if err := os.WriteFile(path, []byte(f.src), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", f.name, err)
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s\n", okColor.Sprint("wrote"), path)
			}
			return nil
		},
	}
	pagingCmd.Flags().StringVarP(&input, "input", "i", "", "schema file supplying project settings")
	pagingCmd.Flags().StringVarP(&outDir, "output-directory", "o", "", "directory to write generated files")

	return pagingCmd
}
