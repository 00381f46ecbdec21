package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lawfully-illegal/masterhub/internal/config"
	"github.com/lawfully-illegal/masterhub/internal/docs"
	"github.com/lawfully-illegal/masterhub/internal/lib/letter"
)

func newDocsCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Write the Markdown API reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			renderer, err := letter.NewRenderer()
			if err != nil {
				return err
			}

			generator, err := docs.NewGenerator(cfg.Hub, renderer)
			if err != nil {
				return err
			}

			body, err := generator.Markdown()
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			if err := os.WriteFile(out, body, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}
			cmd.PrintErrf("API reference written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
