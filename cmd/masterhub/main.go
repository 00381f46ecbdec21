// Command masterhub runs the Lawfully Illegal Master Hub API.
//
//	masterhub              same as `masterhub serve`
//	masterhub serve        start the HTTP server
//	masterhub docs --out   write the Markdown API reference
//
// Configuration comes from MASTERHUB_* environment variables (and a .env
// file, when present).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:          "masterhub",
		Short:        "Lawfully Illegal Master Hub API",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}

	root.AddCommand(serve, newDocsCommand())
	return root
}
