package module

import (
	"personalab/internal/core/export"
	"personalab/internal/core/labels"
	"personalab/internal/platform/config"
)

// Options controls export rendering
type Options struct {
	CacheSize  int
	LabelsFile string
}

// FromConfig reads the export keys from the application config view
func FromConfig(cfg config.Conf) Options {
	return Options{
		CacheSize:  cfg.MayInt("EXPORT_CACHE_SIZE", 256),
		LabelsFile: cfg.MayString("LABELS_FILE", ""),
	}
}

// exporterOptions resolves the label file into exporter options
func (o Options) exporterOptions() ([]export.Option, error) {
	t := labels.Default()
	if o.LabelsFile != "" {
		var err error
		if t, err = labels.Load(o.LabelsFile); err != nil {
			return nil, err
		}
	}
	return []export.Option{export.WithLabels(t), export.WithCache(o.CacheSize)}, nil
}
