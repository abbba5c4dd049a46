package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/classbound/lib/generator"
)

type generateOptions struct {
	output string
	pkg    string
	dryRun bool
}

func newGenerateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go declarations for every component",
		Long: "Generate writes one package-level var per catalog component, in dependency order.\n" +
			"Without --output the source is written to stdout.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			g := generator.New(generator.Options{
				Package: opts.pkg,
				Source:  rootFlags.catalog,
				DryRun:  opts.dryRun,
				Out:     cmd.OutOrStdout(),
			})

			if opts.output != "" {
				return g.WriteFile(cat, opts.output)
			}

			src, err := g.Generate(cat)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(src)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "components", "Package name of the generated file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be generated without writing files")

	return cmd
}
