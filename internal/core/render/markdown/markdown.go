// Package markdown renders a persona document as a Markdown report
package markdown

import (
	"strconv"
	"strings"

	"personalab/internal/core/labels"
	"personalab/internal/core/persona"
)

// Option configures Render
type Option func(*writer)

// WithLabels replaces the default English labels
func WithLabels(t labels.Table) Option {
	return func(w *writer) { w.l = t }
}

type writer struct {
	l     labels.Table
	lines []string
}

func (w *writer) add(s string) { w.lines = append(w.lines, s) }

func (w *writer) section(key string) { w.add("\n## " + w.l.Section(key)) }

func (w *writer) field(path, value string) {
	w.add("- **" + w.l.Field(path) + ":** " + value)
}

func (w *writer) list(path string, items []string) {
	w.add("\n### " + w.l.Field(path))
	if len(items) == 0 {
		w.add("- _" + w.l.Text(labels.NotInformed) + "_")
		return
	}
	for _, it := range items {
		w.add("- " + it)
	}
}

func (w *writer) score(path string, s persona.Score) {
	w.field(path, strconv.FormatFloat(float64(s), 'f', -1, 64)+"/5")
}

// Render returns the report for d under title. d is expected to have passed
// validation; Render does not check it. The result has no leading or trailing
// whitespace
func Render(title string, d persona.Data, opts ...Option) string {
	w := &writer{l: labels.Default()}
	for _, o := range opts {
		o(w)
	}

	w.add("# " + title)
	w.add("_" + w.l.Text(labels.PersonaLine) + ": " + d.Name + "_")
	w.add("")
	w.add(`> "` + d.Quote + `"`)

	w.section(labels.Summary)
	w.field("archetype", d.Archetype)
	w.field("shortBio", d.ShortBio)

	w.section(labels.Demographics)
	w.field("demographics.ageRange", d.Demographics.AgeRange)
	w.field("demographics.genderIdentity", d.Demographics.GenderIdentity)
	w.field("demographics.location", d.Demographics.Location)
	w.field("demographics.educationLevel", d.Demographics.EducationLevel)
	w.field("demographics.occupation", d.Demographics.Occupation)
	w.field("demographics.incomeRange", d.Demographics.IncomeRange)
	w.field("demographics.householdComposition", d.Demographics.HouseholdComposition)

	w.section(labels.Context)
	w.field("context.sector", d.Context.Sector)
	w.field("context.productOrService", d.Context.ProductOrService)
	w.field("context.scenario", d.Context.Scenario)
	w.field("context.environment", d.Context.Environment)
	w.field("context.digitalProficiency", w.l.Level(d.Context.DigitalProficiency))

	w.section(labels.Goals)
	w.list("goals.primary", d.Goals.Primary)
	w.list("goals.secondary", d.Goals.Secondary)

	w.section(labels.Frustrations)
	w.list("frustrations.painPoints", d.Frustrations.PainPoints)
	w.list("frustrations.barriers", d.Frustrations.Barriers)
	w.list("frustrations.fears", d.Frustrations.Fears)

	w.section(labels.Motivations)
	w.list("motivations.intrinsic", d.Motivations.Intrinsic)
	w.list("motivations.extrinsic", d.Motivations.Extrinsic)
	w.list("motivations.values", d.Motivations.Values)

	w.section(labels.Behaviors)
	w.list("behavior.habits", d.Behavior.Habits)
	w.list("behavior.channels", d.Behavior.Channels)
	w.list("behavior.devices", d.Behavior.Devices)
	w.list("behavior.contentFormats", d.Behavior.ContentFormats)
	w.field("behavior.techComfort", w.l.Level(d.Behavior.TechComfort))
	w.field("behavior.decisionStyle", d.Behavior.DecisionStyle)
	w.list("behavior.purchaseTriggers", d.Behavior.PurchaseTriggers)

	w.section(labels.Journey)
	w.field("journey.awareness", d.Journey.Awareness)
	w.field("journey.consideration", d.Journey.Consideration)
	w.field("journey.decision", d.Journey.Decision)
	w.field("journey.retention", d.Journey.Retention)

	w.section(labels.Personality)
	w.field("personality.communicationStyle", d.Personality.CommunicationStyle)
	w.field("personality.brandAffinity", d.Personality.BrandAffinity)
	for _, s := range d.Personality.Scores() {
		w.score(s.Path, s.Score)
	}

	w.section(labels.Accessibility)
	w.list("accessibility.needs", d.Accessibility.Needs)
	w.list("accessibility.assistiveTech", d.Accessibility.AssistiveTech)
	w.list("accessibility.constraints", d.Accessibility.Constraints)

	w.section(labels.DecisionImpact)
	w.list("decisionCriteria", d.DecisionCriteria)
	w.list("objections", d.Objections)
	w.list("successMetrics", d.SuccessMetrics)
	w.list("opportunities", d.Opportunities)
	w.field("representativeStory", d.RepresentativeStory)
	notes := d.Notes
	if notes == "" {
		notes = w.l.Text(labels.NotInformed)
	}
	w.field("notes", notes)

	return strings.TrimSpace(strings.Join(w.lines, "\n"))
}
