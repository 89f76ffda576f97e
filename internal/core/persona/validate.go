package persona

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	perr "personalab/internal/platform/errors"
	"personalab/internal/platform/validate"

	"golang.org/x/text/language"
)

// DefaultLocale is stored when a payload has no locale
const DefaultLocale = "en-US"

// Violation is one failed rule
type Violation struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ValidationError lists every violation of a candidate document in document order
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Reason
	}
	return "persona is invalid: " + strings.Join(parts, "; ")
}

// Unwrap exposes the failure as a platform validation error with one detail per violation
func (e *ValidationError) Unwrap() error {
	details := make([]perr.Detail, len(e.Violations))
	for i, v := range e.Violations {
		details[i] = perr.Detail{Field: v.Path, Message: v.Reason}
	}
	err := perr.Validationf("persona is invalid")
	if len(details) > 0 {
		err = perr.WithField(err, details[0].Field)
	}
	return perr.WithDetails(err, details...)
}

// Validator checks candidate documents. It is safe for concurrent use
type Validator struct {
	svc    *validate.Svc
	bounds Bounds
	locale string
}

// Option configures a Validator
type Option func(*Validator)

// WithBounds replaces the text bounds table
func WithBounds(b Bounds) Option {
	return func(v *Validator) {
		if b != nil {
			v.bounds = b
		}
	}
}

// WithDefaultLocale sets the locale stored for payloads without one
func WithDefaultLocale(tag string) Option {
	return func(v *Validator) {
		if tag != "" {
			v.locale = tag
		}
	}
}

// NewValidator builds a Validator with the default bounds
func NewValidator(opts ...Option) *Validator {
	svc := validate.New()
	if err := svc.Register("score", validScore, "{0} must be a whole number between 1 and 5"); err != nil {
		panic(fmt.Sprintf("persona: register score validation: %v", err))
	}
	// list items are stored one per line, see listtext
	if err := svc.Register("singleline", singleLine, "{0} must be a single line"); err != nil {
		panic(fmt.Sprintf("persona: register singleline validation: %v", err))
	}
	svc.Message("min", "{0} must contain at least {1} item(s)")
	svc.Message("required", "{0} must not be empty")
	svc.Message("uuid", "{0} must be a UUID")

	v := &Validator{svc: svc, bounds: DefaultBounds(), locale: DefaultLocale}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Bounds returns the active bounds table
func (v *Validator) Bounds() Bounds { return v.bounds }

func validScore(fl validate.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsInf(f, 0) && Score(f).Valid()
}

func singleLine(fl validate.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

// Data canonicalizes and validates a document. On success the returned copy
// has every string trimmed and no nil lists
func (v *Validator) Data(candidate Data) (Data, error) {
	d := canonical(candidate)
	var out []Violation
	v.checkText(&out, "", d.fields())
	v.checkStruct(&out, d)
	if len(out) > 0 {
		sortViolations(out)
		return Data{}, &ValidationError{Violations: out}
	}
	return d, nil
}

// Payload validates a submitted payload. The returned copy has the locale
// canonicalized (or defaulted) and IsPublic set
func (v *Validator) Payload(candidate Payload) (Payload, error) {
	p := candidate
	p.Title = strings.TrimSpace(p.Title)
	p.Data = canonical(p.Data)
	if p.SourcePersonaID != nil {
		id := strings.TrimSpace(*p.SourcePersonaID)
		p.SourcePersonaID = &id
		if id == "" {
			p.SourcePersonaID = nil
		}
	}
	public := p.Public()
	p.IsPublic = &public

	var out []Violation
	v.checkText(&out, "", []field{{path: "title", text: &p.Title}})
	if loc, ok := canonicalLocale(p.Locale, v.locale); ok {
		p.Locale = loc
	} else {
		out = append(out, Violation{Path: "locale", Reason: "locale must be a BCP 47 language tag"})
	}
	v.checkText(&out, "data.", p.Data.fields())
	v.checkStruct(&out, p)
	if len(out) > 0 {
		sortViolations(out)
		return Payload{}, &ValidationError{Violations: out}
	}
	return p, nil
}

func canonicalLocale(raw, def string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

func (v *Validator) checkText(out *[]Violation, prefix string, fs []field) {
	for _, f := range fs {
		if f.text == nil {
			continue
		}
		b, ok := v.bounds[f.path]
		if !ok {
			continue
		}
		path := prefix + f.path
		n := utf8.RuneCountInString(*f.text)
		switch {
		case n < b.Min && n == 0:
			*out = append(*out, Violation{Path: path, Reason: path + " is required"})
		case n < b.Min:
			*out = append(*out, Violation{Path: path, Reason: fmt.Sprintf("%s must be at least %d characters", path, b.Min)})
		case b.Max > 0 && n > b.Max:
			*out = append(*out, Violation{Path: path, Reason: fmt.Sprintf("%s must be at most %d characters", path, b.Max)})
		}
	}
}

func (v *Validator) checkStruct(out *[]Violation, s any) {
	err := v.svc.Validator.Struct(s)
	if err == nil {
		return
	}
	if !v.svc.Each(err, func(path, msg string) {
		*out = append(*out, Violation{Path: path, Reason: msg})
	}) {
		// struct validation only fails this way on a programming error
		panic(fmt.Sprintf("persona: validator misuse: %v", err))
	}
}

// canonical trims every text field and list item and replaces nil lists with
// empty ones. Blank items are kept so the validator can point at them
func canonical(in Data) Data {
	d := in
	for _, f := range d.fields() {
		switch {
		case f.text != nil:
			*f.text = strings.TrimSpace(*f.text)
		case f.list != nil:
			items := make([]string, len(*f.list))
			for i, s := range *f.list {
				items[i] = strings.TrimSpace(s)
			}
			*f.list = items
		}
	}
	d.Context.DigitalProficiency = Level(strings.TrimSpace(string(d.Context.DigitalProficiency)))
	d.Behavior.TechComfort = Level(strings.TrimSpace(string(d.Behavior.TechComfort)))
	return d
}

var payloadRank = map[string]int{"title": 0, "locale": 1, "sourcePersonaId": 2}

var dataRank = func() map[string]int {
	m := map[string]int{}
	for i, p := range Paths() {
		m[p] = i
	}
	return m
}()

// rank orders a violation path by document position, list indexes ignored
func rank(path string) int {
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	if r, ok := payloadRank[path]; ok {
		return r
	}
	path = strings.TrimPrefix(path, "data.")
	if r, ok := dataRank[path]; ok {
		return 10 + r
	}
	return 10 + len(dataRank)
}

func sortViolations(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool { return rank(vs[i].Path) < rank(vs[j].Path) })
}
