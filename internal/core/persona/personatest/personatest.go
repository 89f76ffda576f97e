// Package personatest provides persona fixtures for tests
package personatest

import (
	"strings"
	"time"

	"personalab/internal/core/persona"
)

// Data returns a complete, valid persona document
func Data() persona.Data {
	return persona.Data{
		Name:      "Ana Martins",
		Archetype: "Pragmatic buyer",
		ShortBio:  "Ana is a product manager who needs to validate hypotheses quickly with lean teams.",
		Quote:     "I want decisions with less guesswork and more evidence.",
		Demographics: persona.Demographics{
			AgeRange:             "30-39",
			GenderIdentity:       "Woman",
			Location:             "São Paulo, Brazil",
			EducationLevel:       "Postgraduate",
			Occupation:           "Product Manager",
			IncomeRange:          "USD 40k - 60k",
			HouseholdComposition: "Married, one child",
		},
		Context: persona.UsageContext{
			Sector:             "B2B SaaS",
			ProductOrService:   "Analytics platform",
			Scenario:           "Needs to prioritize the roadmap every month.",
			Environment:        "Hybrid work and a fast-paced routine.",
			DigitalProficiency: persona.LevelHigh,
		},
		Goals: persona.Goals{
			Primary:   []string{"Make data-driven decisions", "Shorten discovery cycles"},
			Secondary: []string{"Align stakeholders from different areas"},
		},
		Frustrations: persona.Frustrations{
			PainPoints: []string{"Little trust in metrics"},
			Barriers:   []string{},
			Fears:      []string{"Investing in features without impact"},
		},
		Motivations: persona.Motivations{
			Intrinsic: []string{"Autonomy to lead decisions"},
			Extrinsic: []string{"Recognition from the executive team"},
			Values:    []string{"Transparency", "Collaboration"},
		},
		Behavior: persona.Behavior{
			Habits:           []string{"Checks the dashboard daily"},
			Channels:         []string{"Slack", "Email", "Notion"},
			Devices:          []string{"Laptop", "Smartphone"},
			ContentFormats:   []string{"Short videos", "Reference guides"},
			TechComfort:      persona.LevelHigh,
			DecisionStyle:    "Analytical with collaborative validation.",
			PurchaseTriggers: []string{"Proof of value in under 30 days"},
		},
		Journey: persona.Journey{
			Awareness:     "Discovers tools through recommendations and product events.",
			Consideration: "Compares features with a focus on integrations.",
			Decision:      "Involves technical and finance leadership before buying.",
			Retention:     "Stays when support is fast and the roadmap is clear.",
		},
		Personality: persona.Personality{
			CommunicationStyle: "Direct and objective",
			BrandAffinity:      "Prefers brands with a solid technical position.",
			Openness:           4,
			Conscientiousness:  5,
			Extroversion:       3,
			Agreeableness:      4,
			Neuroticism:        2,
		},
		Accessibility: persona.Accessibility{
			Needs:         []string{"Adequate visual contrast"},
			AssistiveTech: []string{},
			Constraints:   []string{"Little time for long reads"},
		},
		DecisionCriteria:    []string{"Simple integration", "Time to deploy"},
		Objections:          []string{"Team learning curve"},
		SuccessMetrics:      []string{"Less rework", "Higher conversion"},
		Opportunities:       []string{"Guided template for problem discovery"},
		RepresentativeStory: "When a feature comes up for discussion, Ana has a few hours to gather data and feedback to defend the priority.",
		Notes:               "",
	}
}

// Minimal returns a valid document with every optional list empty and every
// required list holding a single item
func Minimal() persona.Data {
	d := Data()
	d.Goals = persona.Goals{Primary: []string{"Ship"}, Secondary: []string{}}
	d.Frustrations = persona.Frustrations{PainPoints: []string{"Slow"}, Barriers: []string{}, Fears: []string{}}
	d.Motivations = persona.Motivations{Intrinsic: []string{"Craft"}, Extrinsic: []string{}, Values: []string{"Care"}}
	d.Behavior.Habits = []string{"Reads"}
	d.Behavior.Channels = []string{"Email"}
	d.Behavior.Devices = []string{"Laptop"}
	d.Behavior.ContentFormats = []string{}
	d.Behavior.PurchaseTriggers = []string{}
	d.Accessibility = persona.Accessibility{Needs: []string{}, AssistiveTech: []string{}, Constraints: []string{}}
	d.DecisionCriteria = []string{"Price"}
	d.Objections = []string{}
	d.SuccessMetrics = []string{"Retention"}
	d.Opportunities = []string{}
	return d
}

// Long returns a valid document near the maximum sizes, long enough to need
// several PDF pages
func Long() persona.Data {
	d := Data()
	para := func(seed string, n int) string {
		return strings.TrimSpace(strings.Repeat(seed+" ", n))
	}
	many := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = prefix + " " + para("with a fairly long explanation that wraps", 3)
		}
		return out
	}
	d.ShortBio = para("Ana coordinates research, delivery and stakeholder alignment.", 15)
	d.Context.Scenario = para("Quarterly planning under pressure.", 30)
	d.Journey.Awareness = para("Hears about tools at meetups and in newsletters.", 20)
	d.Journey.Consideration = para("Builds comparison spreadsheets.", 30)
	d.Goals.Primary = many("Goal", 25)
	d.Frustrations.PainPoints = many("Pain", 25)
	d.Behavior.Channels = many("Channel", 15)
	d.DecisionCriteria = many("Criterion", 20)
	d.RepresentativeStory = para("Ana opens the dashboard before every planning meeting.", 35)
	d.Notes = para("Follow up with the research team.", 50)
	return d
}

// Record wraps d in a stored record owned by userID
func Record(id, userID string, d persona.Data) persona.Record {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	author := "Ana Martins"
	return persona.Record{
		ID:         id,
		UserID:     userID,
		AuthorName: &author,
		Title:      "Primary persona",
		Locale:     persona.DefaultLocale,
		IsPublic:   true,
		Data:       d,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

// Payload wraps Data in a submittable payload
func Payload() persona.Payload {
	return persona.Payload{Title: "Primary persona", Locale: "en-US", Data: Data()}
}
