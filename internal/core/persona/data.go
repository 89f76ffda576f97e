// Package persona defines the persona document, its validation and the record
// that wraps it in storage
package persona

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Level is a three step rating used for digital proficiency and tech comfort
type Level string

// The only representable levels
const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Levels lists the closed set in display order
var Levels = []Level{LevelLow, LevelMedium, LevelHigh}

// Valid reports whether l is one of Levels
func (l Level) Valid() bool {
	return l == LevelLow || l == LevelMedium || l == LevelHigh
}

// Score is a personality score. Valid scores are whole numbers in [1,5].
// Decoding is lenient so the validator, not the decoder, reports bad input:
// numeric strings are parsed and anything non-numeric becomes NaN
type Score float64

// UnmarshalJSON accepts numbers, numeric strings and null
func (s *Score) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = 0
		return nil
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			f = math.NaN()
		}
		*s = Score(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		*s = Score(math.NaN())
		return nil
	}
	*s = Score(f)
	return nil
}

// MarshalJSON writes null for values JSON cannot hold
func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Valid reports a whole number in [1,5]
func (s Score) Valid() bool {
	f := float64(s)
	return !math.IsNaN(f) && f == math.Trunc(f) && f >= 1 && f <= 5
}

// Int returns the score as an int. Only meaningful for valid scores
func (s Score) Int() int { return int(s) }

// Demographics describes who the persona is
type Demographics struct {
	AgeRange             string `json:"ageRange"`
	GenderIdentity       string `json:"genderIdentity"`
	Location             string `json:"location"`
	EducationLevel       string `json:"educationLevel"`
	Occupation           string `json:"occupation"`
	IncomeRange          string `json:"incomeRange"`
	HouseholdComposition string `json:"householdComposition"`
}

// UsageContext describes where and how the persona meets the product
type UsageContext struct {
	Sector             string `json:"sector"`
	ProductOrService   string `json:"productOrService"`
	Scenario           string `json:"scenario"`
	Environment        string `json:"environment"`
	DigitalProficiency Level  `json:"digitalProficiency" validate:"oneof=Low Medium High"`
}

// Goals of the persona
type Goals struct {
	Primary   []string `json:"primary" validate:"min=1,dive,required,singleline"`
	Secondary []string `json:"secondary" validate:"dive,required,singleline"`
}

// Frustrations of the persona
type Frustrations struct {
	PainPoints []string `json:"painPoints" validate:"min=1,dive,required,singleline"`
	Barriers   []string `json:"barriers" validate:"dive,required,singleline"`
	Fears      []string `json:"fears" validate:"dive,required,singleline"`
}

// Motivations of the persona
type Motivations struct {
	Intrinsic []string `json:"intrinsic" validate:"min=1,dive,required,singleline"`
	Extrinsic []string `json:"extrinsic" validate:"dive,required,singleline"`
	Values    []string `json:"values" validate:"min=1,dive,required,singleline"`
}

// Behavior of the persona
type Behavior struct {
	Habits           []string `json:"habits" validate:"min=1,dive,required,singleline"`
	Channels         []string `json:"channels" validate:"min=1,dive,required,singleline"`
	Devices          []string `json:"devices" validate:"min=1,dive,required,singleline"`
	ContentFormats   []string `json:"contentFormats" validate:"dive,required,singleline"`
	TechComfort      Level    `json:"techComfort" validate:"oneof=Low Medium High"`
	DecisionStyle    string   `json:"decisionStyle"`
	PurchaseTriggers []string `json:"purchaseTriggers" validate:"dive,required,singleline"`
}

// Journey narrates the four journey stages
type Journey struct {
	Awareness     string `json:"awareness"`
	Consideration string `json:"consideration"`
	Decision      string `json:"decision"`
	Retention     string `json:"retention"`
}

// Personality holds the style fields and the five trait scores
type Personality struct {
	CommunicationStyle string `json:"communicationStyle"`
	BrandAffinity      string `json:"brandAffinity"`
	Openness           Score  `json:"openness" validate:"score"`
	Conscientiousness  Score  `json:"conscientiousness" validate:"score"`
	Extroversion       Score  `json:"extroversion" validate:"score"`
	Agreeableness      Score  `json:"agreeableness" validate:"score"`
	Neuroticism        Score  `json:"neuroticism" validate:"score"`
}

// Accessibility lists are all optional
type Accessibility struct {
	Needs         []string `json:"needs" validate:"dive,required,singleline"`
	AssistiveTech []string `json:"assistiveTech" validate:"dive,required,singleline"`
	Constraints   []string `json:"constraints" validate:"dive,required,singleline"`
}

// Data is the persona document. It carries no ownership information
type Data struct {
	Name                string        `json:"name"`
	Archetype           string        `json:"archetype"`
	ShortBio            string        `json:"shortBio"`
	Quote               string        `json:"quote"`
	Demographics        Demographics  `json:"demographics"`
	Context             UsageContext  `json:"context"`
	Goals               Goals         `json:"goals"`
	Frustrations        Frustrations  `json:"frustrations"`
	Motivations         Motivations   `json:"motivations"`
	Behavior            Behavior      `json:"behavior"`
	Journey             Journey       `json:"journey"`
	Personality         Personality   `json:"personality"`
	Accessibility       Accessibility `json:"accessibility"`
	DecisionCriteria    []string      `json:"decisionCriteria" validate:"min=1,dive,required,singleline"`
	Objections          []string      `json:"objections" validate:"dive,required,singleline"`
	SuccessMetrics      []string      `json:"successMetrics" validate:"min=1,dive,required,singleline"`
	Opportunities       []string      `json:"opportunities" validate:"dive,required,singleline"`
	RepresentativeStory string        `json:"representativeStory"`
	Notes               string        `json:"notes"`
}

// Scores returns the five trait scores in display order, keyed by field path
func (p Personality) Scores() []NamedScore {
	return []NamedScore{
		{"personality.openness", p.Openness},
		{"personality.conscientiousness", p.Conscientiousness},
		{"personality.extroversion", p.Extroversion},
		{"personality.agreeableness", p.Agreeableness},
		{"personality.neuroticism", p.Neuroticism},
	}
}

// NamedScore pairs a score with its field path
type NamedScore struct {
	Path  string
	Score Score
}
