package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"personalab/internal/core/export"
	"personalab/internal/core/labels"
	"personalab/internal/core/persona"

	"github.com/spf13/cobra"
)

type renderFlags struct {
	in       string
	title    string
	formats  []string
	out      string
	labels   string
	bounds   string
	defaults bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a persona into export files",
		Example: "  personalab-export render --in persona.json --out dist\n" +
			"  personalab-export render --in - --format markdown --format json < persona.json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, f, time.Now().UTC())
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.in, "in", "-", "persona JSON file, - for stdin")
	fl.StringVar(&f.title, "title", "", "document title, overrides the input title")
	fl.StringSliceVar(&f.formats, "format", []string{"all"}, "all or any of pdf-executive, pdf-detailed, markdown, json")
	fl.StringVar(&f.out, "out", ".", "output directory")
	fl.StringVar(&f.labels, "labels", "", "YAML label table merged over the defaults")
	fl.StringVar(&f.bounds, "bounds", "", "YAML text bounds merged over the defaults")
	fl.BoolVar(&f.defaults, "defaults", false, "fill simplified-mode defaults before validating")
	return cmd
}

func parseFormats(in []string) ([]export.Format, error) {
	var out []export.Format
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.EqualFold(part, "all") {
				return export.Formats, nil
			}
			fm, err := export.ParseFormat(part)
			if err != nil {
				return nil, err
			}
			out = append(out, fm)
		}
	}
	if len(out) == 0 {
		return export.Formats, nil
	}
	return out, nil
}

func runRender(cmd *cobra.Command, f renderFlags, now time.Time) error {
	formats, err := parseFormats(f.formats)
	if err != nil {
		return err
	}
	raw, err := readInput(f.in, cmd.InOrStdin())
	if err != nil {
		return err
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return err
	}
	doc.prepare(f.title, now)

	v, err := newValidator(f.bounds)
	if err != nil {
		return err
	}
	if f.defaults {
		persona.ApplyDefaults(&doc.Record.Data)
	}
	data, err := v.Data(doc.Record.Data)
	if err != nil {
		printViolations(cmd, err)
		return exitError{code: 1}
	}
	doc.Record.Data = data

	var opts []export.Option
	if f.labels != "" {
		t, err := labels.Load(f.labels)
		if err != nil {
			return err
		}
		opts = append(opts, export.WithLabels(t))
	}
	exp, err := export.New(opts...)
	if err != nil {
		return err
	}

	arts, err := exp.Some(cmd.Context(), doc.Record, formats...)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return err
	}
	for _, a := range arts {
		path := filepath.Join(f.out, a.Filename)
		if err := os.WriteFile(path, a.Body, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", path, len(a.Body))
	}
	return nil
}

func newValidator(boundsFile string) (*persona.Validator, error) {
	if boundsFile == "" {
		return persona.NewValidator(), nil
	}
	b, err := persona.LoadBounds(boundsFile)
	if err != nil {
		return nil, err
	}
	return persona.NewValidator(persona.WithBounds(b)), nil
}
