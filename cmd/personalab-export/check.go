package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"personalab/internal/core/export"
	"personalab/internal/core/listtext"
	"personalab/internal/core/persona"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var in, bounds string
	var defaults bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a persona document and print every violation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			doc, err := decodeDocument(raw)
			if err != nil {
				return err
			}
			v, err := newValidator(bounds)
			if err != nil {
				return err
			}
			if defaults {
				persona.ApplyDefaults(&doc.Record.Data)
			}

			if doc.Wrapped {
				_, err = v.Payload(persona.Payload{
					Title:  doc.Record.Title,
					Locale: doc.Record.Locale,
					Data:   doc.Record.Data,
				})
			} else {
				_, err = v.Data(doc.Record.Data)
			}
			if err != nil {
				printViolations(cmd, err)
				return exitError{code: 1}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "-", "persona JSON file, - for stdin")
	cmd.Flags().StringVar(&bounds, "bounds", "", "YAML text bounds merged over the defaults")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "fill simplified-mode defaults before validating")
	return cmd
}

// printViolations writes one path and reason per line to stderr
func printViolations(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	var ve *persona.ValidationError
	if !errors.As(err, &ve) {
		fmt.Fprintln(w, err)
		return
	}
	for _, v := range ve.Violations {
		fmt.Fprintf(w, "%s\t%s\n", v.Path, v.Reason)
	}
}

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug TITLE...",
		Short: "Print the export filename stem for a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), export.Slug(strings.Join(args, " ")))
			return nil
		},
	}
}

func newListTextCmd() *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "list-text",
		Short: "Convert form text on stdin to its canonical list as JSON",
		Long: "Reads newline separated form text and prints the canonical list.\n" +
			"With --reverse, reads a JSON string array and prints the form text.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if reverse {
				var items []string
				if err := json.Unmarshal(raw, &items); err != nil {
					return fmt.Errorf("input is not a JSON string array: %w", err)
				}
				_, err = fmt.Fprintln(out, listtext.ToText(items))
				return err
			}
			enc := json.NewEncoder(out)
			return enc.Encode(listtext.FromText(string(raw)))
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "turn a JSON list back into form text")
	return cmd
}
