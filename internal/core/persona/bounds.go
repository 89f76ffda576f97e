package persona

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bound is an inclusive character range for a text field. Max 0 means unbounded
type Bound struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Bounds maps text field paths, plus the payload "title", to their range
type Bounds map[string]Bound

// DefaultBounds returns the product defaults
func DefaultBounds() Bounds {
	return Bounds{
		"title": {3, 120},

		"name":      {2, 120},
		"archetype": {2, 120},
		"shortBio":  {20, 1000},
		"quote":     {10, 260},

		"demographics.ageRange":             {2, 60},
		"demographics.genderIdentity":       {2, 80},
		"demographics.location":             {2, 120},
		"demographics.educationLevel":       {2, 120},
		"demographics.occupation":           {2, 120},
		"demographics.incomeRange":          {2, 120},
		"demographics.householdComposition": {2, 120},

		"context.sector":           {2, 120},
		"context.productOrService": {2, 160},
		"context.scenario":         {10, 1200},
		"context.environment":      {10, 1200},

		"behavior.decisionStyle": {5, 300},

		"journey.awareness":     {10, 1200},
		"journey.consideration": {10, 1200},
		"journey.decision":      {10, 1200},
		"journey.retention":     {10, 1200},

		"personality.communicationStyle": {4, 300},
		"personality.brandAffinity":      {4, 300},

		"representativeStory": {20, 2200},
		"notes":               {0, 2200},
	}
}

// Merge returns a copy of b with o applied on top. Unknown paths are rejected
func (b Bounds) Merge(o Bounds) (Bounds, error) {
	out := make(Bounds, len(b))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range o {
		if _, ok := b[k]; !ok {
			return nil, fmt.Errorf("bounds: unknown field %q", k)
		}
		if v.Min < 0 || (v.Max > 0 && v.Max < v.Min) {
			return nil, fmt.Errorf("bounds: invalid range for %q: %d..%d", k, v.Min, v.Max)
		}
		out[k] = v
	}
	return out, nil
}

// LoadBounds reads a YAML map of path -> {min, max} and merges it over the defaults
func LoadBounds(path string) (Bounds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bounds: read %s: %w", path, err)
	}
	var o Bounds
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, fmt.Errorf("bounds: parse %s: %w", path, err)
	}
	return DefaultBounds().Merge(o)
}
