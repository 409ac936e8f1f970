package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bbforge/bbforge/internal/bbcode"
	"github.com/bbforge/bbforge/internal/parser"
)

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var outPath string
	var format string
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert one document to BBCode",
		Long: `Convert a document to BBCode and write the result to stdout.

With no file argument, reads from stdin; use --format to name the input
format since there is no filename to infer it from.

Examples:
  bbforge convert notes.md
  bbforge convert report.docx -o report.bbcode
  cat page.html | bbforge convert --format html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, outPath, format)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write BBCode to this file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format for stdin (md, html, txt, csv, pdf, docx)")
	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string, outPath, format string) error {
	var (
		in       io.Reader
		filename string
	)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
		filename = filepath.Base(args[0])
	} else {
		if format == "" {
			return fmt.Errorf("--format is required when reading from stdin")
		}
		in = cmd.InOrStdin()
		filename = "stdin." + format
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		return err
	}

	tree, err := p.Parse(in, filename)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	out, err := bbcode.Transcode(tree)
	if err != nil {
		var unsup *bbcode.UnsupportedError
		if errors.As(err, &unsup) {
			return fmt.Errorf("%s cannot be converted: %w", filename, err)
		}
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
