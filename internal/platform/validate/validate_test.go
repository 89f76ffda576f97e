package validate

import (
	"testing"
)

type inner struct {
	Items []string `json:"items" validate:"min=1,dive,required"`
}

type doc struct {
	Title string `json:"title" validate:"required,max=5"`
	Level string `json:"level" validate:"oneof=Low Medium High"`
	Inner inner  `json:"inner"`
	Even  int    `json:"even" validate:"even"`
}

func TestPathsUseJSONNames(t *testing.T) {
	t.Parallel()

	s := New()
	if err := s.Register("even", func(fl FieldLevel) bool { return fl.Field().Int()%2 == 0 }, "{0} must be even"); err != nil {
		t.Fatalf("register: %v", err)
	}

	err := s.Validator.Struct(doc{Title: "too long", Level: "Huge", Inner: inner{Items: []string{"a", ""}}, Even: 3})
	got := map[string]string{}
	if !s.Each(err, func(path, msg string) { got[path] = msg }) {
		t.Fatalf("expected validation errors, got %v", err)
	}

	want := map[string]string{
		"title":          "title must be at most 5",
		"level":          "level must be one of [Low Medium High]",
		"inner.items[1]": "inner.items[1] is required",
		"even":           "even must be even",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: got %q, want %q (all: %v)", k, got[k], v, got)
		}
	}
}

func TestEachRejectsForeignErrors(t *testing.T) {
	t.Parallel()

	s := Default()
	if s.Each(s.Validator.Struct(42), func(string, string) {}) {
		t.Fatalf("InvalidValidationError must not be walked")
	}
	if Default() != s {
		t.Fatalf("Default must be a singleton")
	}
}
