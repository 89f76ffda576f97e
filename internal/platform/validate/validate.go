// Package validate builds go-playground validators that report json field
// names with short english messages
package validate

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type (
	// FieldLevel aliases validator.FieldLevel
	FieldLevel = validator.FieldLevel

	// FieldError aliases validator.FieldError
	FieldError = validator.FieldError

	// Errors aliases validator.ValidationErrors
	Errors = validator.ValidationErrors

	// Translator aliases ut.Translator
	Translator = ut.Translator
)

// Svc pairs a validator with its translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	def  *Svc
)

// Default returns the process-wide validator used by request binding
func Default() *Svc {
	once.Do(func() { def = New() })
	return def
}

// New builds an independent validator, for packages that register their own tags
func New() *Svc {
	loc := en.New()
	uni := ut.New(loc, loc)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	s := &Svc{Validator: v, Translator: trans}
	s.Message("required", "{0} is required")
	s.Message("min", "{0} must be at least {1}")
	s.Message("max", "{0} must be at most {1}")
	s.Message("oneof", "{0} must be one of [{1}]")
	return s
}

// jsonName reports the json tag so error namespaces read like the wire document
func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return fld.Name
	}
	return tag
}

// Register adds a custom tag with its message. {0} is the field, {1} the param
func (s *Svc) Register(tag string, fn validator.Func, msg string) error {
	if err := s.Validator.RegisterValidation(tag, fn); err != nil {
		return err
	}
	s.Message(tag, msg)
	return nil
}

// Message overrides the translation of a tag
func (s *Svc) Message(tag, msg string) {
	_ = s.Validator.RegisterTranslation(tag, s.Translator,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			out, err := t.T(tag, Path(fe), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return out
		},
	)
}

// Path returns the field path without the root struct name, e.g.
// "Data.goals.primary[0]" becomes "goals.primary[0]"
func Path(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// Each walks every field error of err in validator order. It returns false when
// err is not a validation error (e.g. an InvalidValidationError)
func (s *Svc) Each(err error, fn func(path, msg string)) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range verrs {
		fn(Path(fe), fe.Translate(s.Translator))
	}
	return true
}
