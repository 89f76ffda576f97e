// Package labels holds the display strings used by the renderers. A Table is
// passed to each renderer; nothing here is global
package labels

import (
	"fmt"
	"os"
	"slices"

	"personalab/internal/core/persona"

	"gopkg.in/yaml.v3"
)

// Section keys
const (
	Summary            = "summary"
	Demographics       = "demographics"
	Context            = "context"
	Goals              = "goals"
	Frustrations       = "frustrations"
	Motivations        = "motivations"
	Behaviors          = "behaviors"
	Journey            = "journey"
	Personality        = "personality"
	Accessibility      = "accessibility"
	DecisionImpact     = "decisionImpact"
	GoalsAndPains      = "goalsAndPains"
	BehaviorAndJourney = "behaviorAndJourney"
	DecisionCriteria   = "decisionCriteria"
	Narrative          = "narrative"
)

// Text keys
const (
	NotInformed         = "notInformed"
	NotInformedSentence = "notInformedSentence"
	NoItems             = "noItems"
	NoNotes             = "noNotes"
	ForkSuffix          = "forkSuffix"
	PersonaLine         = "persona"
	CreatedBy           = "createdBy"
	Date                = "date"
	DateLayout          = "dateLayout"
	GoalsLine           = "goalsLine"
	PainsLine           = "painsLine"
	MotivationsLine     = "motivationsLine"
)

// Table is a full set of labels. Fields is keyed by persona field path;
// Compact holds the shorter variants the PDF layouts prefer and falls back to
// Fields
type Table struct {
	Sections map[string]string `yaml:"sections"`
	Fields   map[string]string `yaml:"fields"`
	Compact  map[string]string `yaml:"compact"`
	Levels   map[string]string `yaml:"levels"`
	Texts    map[string]string `yaml:"texts"`
}

// Section returns a section title
func (t Table) Section(key string) string { return lookup(t.Sections, key) }

// Field returns the label of a field path
func (t Table) Field(path string) string { return lookup(t.Fields, path) }

// CompactField returns the short label of a field path
func (t Table) CompactField(path string) string {
	if s, ok := t.Compact[path]; ok {
		return s
	}
	return t.Field(path)
}

// Level returns the display name of a level
func (t Table) Level(l persona.Level) string { return lookup(t.Levels, string(l)) }

// Text returns a fallback or connective text
func (t Table) Text(key string) string { return lookup(t.Texts, key) }

// unknown keys render as themselves rather than as nothing
func lookup(m map[string]string, key string) string {
	if s, ok := m[key]; ok {
		return s
	}
	return key
}

// Merge returns a copy of t with every entry of o applied on top. Keys that
// no renderer asks for are rejected so typos in override files surface
func (t Table) Merge(o Table) (Table, error) {
	paths := persona.Paths()
	out := Table{
		Sections: clone(t.Sections),
		Fields:   clone(t.Fields),
		Compact:  clone(t.Compact),
		Levels:   clone(t.Levels),
		Texts:    clone(t.Texts),
	}
	steps := []struct {
		name  string
		dst   map[string]string
		src   map[string]string
		known func(string) bool
	}{
		{"sections", out.Sections, o.Sections, func(k string) bool { _, ok := defaultSections[k]; return ok }},
		{"fields", out.Fields, o.Fields, func(k string) bool { return slices.Contains(paths, k) }},
		{"compact", out.Compact, o.Compact, func(k string) bool { return slices.Contains(paths, k) }},
		{"levels", out.Levels, o.Levels, func(k string) bool { return persona.Level(k).Valid() }},
		{"texts", out.Texts, o.Texts, func(k string) bool { _, ok := defaultTexts[k]; return ok }},
	}
	for _, s := range steps {
		for k, v := range s.src {
			if !s.known(k) {
				return Table{}, fmt.Errorf("labels: unknown %s key %q", s.name, k)
			}
			s.dst[k] = v
		}
	}
	return out, nil
}

// Load reads a YAML override file and merges it over Default
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("labels: read %s: %w", path, err)
	}
	var o Table
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return Table{}, fmt.Errorf("labels: parse %s: %w", path, err)
	}
	return Default().Merge(o)
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
