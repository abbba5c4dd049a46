package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/classbound/lib/catalog"
)

func newCompileCmd(rootFlags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the catalog into a signed " + catalog.BundleExt + " bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := rootFlags.encoder()
			if err != nil {
				return err
			}
			cat, log, err := rootFlags.load(cmd)
			if err != nil {
				return err
			}

			data, err := cat.EncodeBundle(enc)
			if err != nil {
				return err
			}

			if output == "" {
				output = bundlePath(rootFlags.catalog)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write bundle: %w", err)
			}

			log.Info().Str("path", output).Int("components", cat.Len()).Int("bytes", len(data)).Msg("catalog compiled")
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: catalog path with "+catalog.BundleExt+" extension)")

	return cmd
}

func bundlePath(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + catalog.BundleExt
}
