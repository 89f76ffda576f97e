package module

import (
	"fmt"

	"personalab/internal/core/labels"
	"personalab/internal/core/persona"
	"personalab/internal/platform/config"
	"personalab/internal/services/api/personas/service"
)

// Options controls persona record behavior
type Options struct {
	ListLimit  int
	ForkSuffix string // empty takes the label table text
	LabelsFile string
	BoundsFile string
}

// FromConfig reads the persona keys from the application config view
func FromConfig(cfg config.Conf) Options {
	return Options{
		ListLimit:  cfg.MayInt("LIST_LIMIT", service.DefaultListLimit),
		ForkSuffix: cfg.MayRaw("FORK_SUFFIX", ""),
		LabelsFile: cfg.MayString("LABELS_FILE", ""),
		BoundsFile: cfg.MayString("BOUNDS_FILE", ""),
	}
}

// serviceOptions resolves the override files into service options
func (o Options) serviceOptions() (service.Options, error) {
	out := service.Options{ListLimit: o.ListLimit, ForkSuffix: o.ForkSuffix}

	if out.ForkSuffix == "" && o.LabelsFile != "" {
		t, err := labels.Load(o.LabelsFile)
		if err != nil {
			return service.Options{}, fmt.Errorf("personas labels: %w", err)
		}
		out.ForkSuffix = t.Text(labels.ForkSuffix)
	}

	if o.BoundsFile != "" {
		b, err := persona.LoadBounds(o.BoundsFile)
		if err != nil {
			return service.Options{}, fmt.Errorf("personas bounds: %w", err)
		}
		out.Validator = persona.NewValidator(persona.WithBounds(b))
	}
	return out, nil
}
