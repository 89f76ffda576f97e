// Package pdf lays a persona document out on A4 pages. Two layouts exist: a
// condensed executive summary and a detailed report. Both paginate as needed.
//
// Text is drawn with the core Helvetica font, so it is encoded as cp1252.
// Runes outside that code page are rendered as '.'
package pdf

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"personalab/internal/core/labels"
	"personalab/internal/core/persona"
	perr "personalab/internal/platform/errors"

	"github.com/jung-kurt/gofpdf"
)

// Layout selects the page sequence
type Layout string

// Layouts
const (
	Executive Layout = "executive"
	Detailed  Layout = "detailed"
)

// ParseLayout accepts the english names and their portuguese aliases
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "executive", "executivo":
		return Executive, nil
	case "detailed", "detalhado":
		return Detailed, nil
	}
	return "", perr.InvalidArgf("unknown pdf layout %q", s)
}

// Document is what a layout draws. AuthorName and CreatedAt are optional
type Document struct {
	Title      string
	Data       persona.Data
	AuthorName string
	CreatedAt  time.Time
}

// Option configures Render
type Option func(*config)

type config struct {
	labels labels.Table
}

// WithLabels replaces the default English labels
func WithLabels(t labels.Table) Option {
	return func(c *config) { c.labels = t }
}

// page geometry in mm
const (
	margin       = 14.0
	bodySize     = 11.0
	bodyLine     = 6.0
	headingSize  = 14.0
	headingLine  = 7.0
	titleSize    = 20.0
	titleLine    = 8.0
	subtitleSize = 12.0
	blockGap     = 2.0
	fontFamily   = "Helvetica"
)

// Render draws doc with the given layout and returns the PDF bytes. doc.Data
// is expected to be valid; Render does not check it
func Render(doc Document, layout Layout, opts ...Option) ([]byte, error) {
	f, err := build(doc, layout, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "pdf: output")
	}
	return buf.Bytes(), nil
}

func build(doc Document, layout Layout, opts ...Option) (*gofpdf.Fpdf, error) {
	c := config{labels: labels.Default()}
	for _, o := range opts {
		o(&c)
	}

	f := gofpdf.New("P", "mm", "A4", "")
	f.SetMargins(margin, margin, margin)
	f.SetAutoPageBreak(false, 0)
	f.SetTitle(doc.Title, true)
	f.SetCreator("PersonaLab", true)
	if doc.AuthorName != "" {
		f.SetAuthor(doc.AuthorName, true)
	}
	if !doc.CreatedAt.IsZero() {
		f.SetCreationDate(doc.CreatedAt)
	}
	f.AddPage()
	f.SetFont(fontFamily, "", bodySize)

	w, h := f.GetPageSize()
	p := &page{
		f:      f,
		tr:     f.UnicodeTranslatorFromDescriptor(""),
		l:      c.labels,
		y:      margin,
		width:  w - 2*margin,
		bottom: h - margin,
	}

	switch layout {
	case Executive:
		p.executive(doc)
	case Detailed:
		p.detailed(doc)
	default:
		return nil, perr.InvalidArgf("unknown pdf layout %q", layout)
	}

	if err := f.Error(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "pdf: render")
	}
	return f, nil
}

// page tracks the cursor. All drawing goes through paragraph so pagination
// happens in one place
type page struct {
	f      *gofpdf.Fpdf
	tr     func(string) string
	l      labels.Table
	y      float64
	width  float64
	bottom float64
}

// paragraph wraps text at the usable width, breaking the page whenever the
// cursor has passed the bottom margin, then leaves a small gap
func (p *page) paragraph(text string, size, lineHeight float64) {
	p.f.SetFontSize(size)
	for _, line := range p.f.SplitLines([]byte(p.tr(text)), p.width) {
		if p.y > p.bottom {
			p.f.AddPage()
			p.y = margin
		}
		p.f.Text(margin, p.y, string(line))
		p.y += lineHeight
	}
	p.y += blockGap
}

func (p *page) body(text string) { p.paragraph(text, bodySize, bodyLine) }

func (p *page) labeled(label, value string) { p.body(label + ": " + value) }

func (p *page) heading(text string) {
	p.f.SetFont(fontFamily, "B", headingSize)
	p.paragraph(text, headingSize, headingLine)
	p.f.SetFont(fontFamily, "", bodySize)
}

func (p *page) bullets(title string, items []string) {
	p.heading(title)
	if len(items) == 0 {
		p.body(p.l.Text(labels.NoItems))
		return
	}
	for _, it := range items {
		p.body("- " + it)
	}
	p.y += blockGap
}

func (p *page) header(doc Document) {
	p.f.SetFont(fontFamily, "B", titleSize)
	p.paragraph(doc.Title, titleSize, titleLine)
	p.f.SetFont(fontFamily, "", bodySize)
	p.paragraph(doc.Data.Name+" • "+doc.Data.Archetype, subtitleSize, bodyLine)
}

func (p *page) joined(items []string) string {
	if len(items) == 0 {
		return p.l.Text(labels.NotInformedSentence)
	}
	return strings.Join(items, "; ")
}

func (p *page) executive(doc Document) {
	d := doc.Data
	p.header(doc)
	p.body(`"` + d.Quote + `"`)

	p.heading(p.l.Section(labels.Summary))
	p.body(d.ShortBio)

	p.heading(p.l.Section(labels.GoalsAndPains))
	p.labeled(p.l.Text(labels.GoalsLine), p.joined(d.Goals.Primary))
	p.labeled(p.l.Text(labels.PainsLine), p.joined(d.Frustrations.PainPoints))
	p.labeled(p.l.Text(labels.MotivationsLine), p.joined(d.Motivations.Intrinsic))

	p.heading(p.l.Section(labels.BehaviorAndJourney))
	p.labeled(p.l.CompactField("behavior.channels"), p.joined(d.Behavior.Channels))
	p.labeled(p.l.CompactField("behavior.devices"), p.joined(d.Behavior.Devices))
	p.labeled(p.l.CompactField("journey.awareness"), d.Journey.Awareness)
	p.labeled(p.l.CompactField("journey.decision"), d.Journey.Decision)

	p.heading(p.l.Section(labels.DecisionCriteria))
	p.body(p.joined(d.DecisionCriteria))

	p.y += blockGap
	p.labeled(p.l.Field("representativeStory"), d.RepresentativeStory)
}

func (p *page) detailed(doc Document) {
	d := doc.Data
	p.header(doc)
	if doc.AuthorName != "" {
		p.labeled(p.l.Text(labels.CreatedBy), doc.AuthorName)
	}
	if !doc.CreatedAt.IsZero() {
		p.labeled(p.l.Text(labels.Date), doc.CreatedAt.UTC().Format(p.l.Text(labels.DateLayout)))
	}
	p.body(`"` + d.Quote + `"`)

	p.heading(p.l.Section(labels.Summary))
	p.body(d.ShortBio)

	field := func(path, value string) { p.labeled(p.l.CompactField(path), value) }
	list := func(path string, items []string) { p.bullets(p.l.CompactField(path), items) }

	p.heading(p.l.Section(labels.Demographics))
	field("demographics.ageRange", d.Demographics.AgeRange)
	field("demographics.genderIdentity", d.Demographics.GenderIdentity)
	field("demographics.location", d.Demographics.Location)
	field("demographics.educationLevel", d.Demographics.EducationLevel)
	field("demographics.occupation", d.Demographics.Occupation)
	field("demographics.incomeRange", d.Demographics.IncomeRange)
	field("demographics.householdComposition", d.Demographics.HouseholdComposition)

	p.heading(p.l.Section(labels.Context))
	field("context.sector", d.Context.Sector)
	field("context.productOrService", d.Context.ProductOrService)
	field("context.scenario", d.Context.Scenario)
	field("context.environment", d.Context.Environment)
	field("context.digitalProficiency", p.l.Level(d.Context.DigitalProficiency))

	list("goals.primary", d.Goals.Primary)
	list("goals.secondary", d.Goals.Secondary)
	list("frustrations.painPoints", d.Frustrations.PainPoints)
	list("frustrations.barriers", d.Frustrations.Barriers)
	list("frustrations.fears", d.Frustrations.Fears)
	list("motivations.intrinsic", d.Motivations.Intrinsic)
	list("motivations.extrinsic", d.Motivations.Extrinsic)
	list("motivations.values", d.Motivations.Values)
	list("behavior.habits", d.Behavior.Habits)
	list("behavior.channels", d.Behavior.Channels)
	list("behavior.devices", d.Behavior.Devices)
	list("behavior.contentFormats", d.Behavior.ContentFormats)
	field("behavior.techComfort", p.l.Level(d.Behavior.TechComfort))
	field("behavior.decisionStyle", d.Behavior.DecisionStyle)
	list("behavior.purchaseTriggers", d.Behavior.PurchaseTriggers)

	p.heading(p.l.Section(labels.Journey))
	field("journey.awareness", d.Journey.Awareness)
	field("journey.consideration", d.Journey.Consideration)
	field("journey.decision", d.Journey.Decision)
	field("journey.retention", d.Journey.Retention)

	p.heading(p.l.Section(labels.Personality))
	field("personality.communicationStyle", d.Personality.CommunicationStyle)
	field("personality.brandAffinity", d.Personality.BrandAffinity)
	for _, s := range d.Personality.Scores() {
		field(s.Path, p.score(s.Score))
	}

	list("accessibility.needs", d.Accessibility.Needs)
	list("accessibility.assistiveTech", d.Accessibility.AssistiveTech)
	list("accessibility.constraints", d.Accessibility.Constraints)
	list("decisionCriteria", d.DecisionCriteria)
	list("objections", d.Objections)
	list("successMetrics", d.SuccessMetrics)
	list("opportunities", d.Opportunities)

	p.heading(p.l.Section(labels.Narrative))
	field("representativeStory", d.RepresentativeStory)
	notes := d.Notes
	if notes == "" {
		notes = p.l.Text(labels.NoNotes)
	}
	field("notes", notes)
}

// score renders "4/5 (High)"
func (p *page) score(s persona.Score) string {
	n := s.Int()
	return strconv.Itoa(n) + "/5 (" + p.l.Level(persona.ScoreLabel(n)) + ")"
}
