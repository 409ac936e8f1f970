// Package main provides the entry point for the bbforge CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the bbforge CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbforge",
		Short: "Convert documents to BBCode forum markup",
		Long: `bbforge converts documents (Markdown, HTML, plain text, CSV, PDF, DOCX)
into BBCode markup suitable for forum posts.

Conversion is all-or-nothing: a document that uses a construct with no
BBCode equivalent is rejected with an error naming the construct, rather
than silently producing a lossy post.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}
