package persona

// field is one leaf of Data in document order. text is set for bounded
// strings, list for string lists; levels and scores carry only their path
// and are checked by struct tags
type field struct {
	path string
	text *string
	list *[]string
}

func (d *Data) fields() []field {
	return []field{
		{path: "name", text: &d.Name},
		{path: "archetype", text: &d.Archetype},
		{path: "shortBio", text: &d.ShortBio},
		{path: "quote", text: &d.Quote},

		{path: "demographics.ageRange", text: &d.Demographics.AgeRange},
		{path: "demographics.genderIdentity", text: &d.Demographics.GenderIdentity},
		{path: "demographics.location", text: &d.Demographics.Location},
		{path: "demographics.educationLevel", text: &d.Demographics.EducationLevel},
		{path: "demographics.occupation", text: &d.Demographics.Occupation},
		{path: "demographics.incomeRange", text: &d.Demographics.IncomeRange},
		{path: "demographics.householdComposition", text: &d.Demographics.HouseholdComposition},

		{path: "context.sector", text: &d.Context.Sector},
		{path: "context.productOrService", text: &d.Context.ProductOrService},
		{path: "context.scenario", text: &d.Context.Scenario},
		{path: "context.environment", text: &d.Context.Environment},
		{path: "context.digitalProficiency"},

		{path: "goals.primary", list: &d.Goals.Primary},
		{path: "goals.secondary", list: &d.Goals.Secondary},

		{path: "frustrations.painPoints", list: &d.Frustrations.PainPoints},
		{path: "frustrations.barriers", list: &d.Frustrations.Barriers},
		{path: "frustrations.fears", list: &d.Frustrations.Fears},

		{path: "motivations.intrinsic", list: &d.Motivations.Intrinsic},
		{path: "motivations.extrinsic", list: &d.Motivations.Extrinsic},
		{path: "motivations.values", list: &d.Motivations.Values},

		{path: "behavior.habits", list: &d.Behavior.Habits},
		{path: "behavior.channels", list: &d.Behavior.Channels},
		{path: "behavior.devices", list: &d.Behavior.Devices},
		{path: "behavior.contentFormats", list: &d.Behavior.ContentFormats},
		{path: "behavior.techComfort"},
		{path: "behavior.decisionStyle", text: &d.Behavior.DecisionStyle},
		{path: "behavior.purchaseTriggers", list: &d.Behavior.PurchaseTriggers},

		{path: "journey.awareness", text: &d.Journey.Awareness},
		{path: "journey.consideration", text: &d.Journey.Consideration},
		{path: "journey.decision", text: &d.Journey.Decision},
		{path: "journey.retention", text: &d.Journey.Retention},

		{path: "personality.communicationStyle", text: &d.Personality.CommunicationStyle},
		{path: "personality.brandAffinity", text: &d.Personality.BrandAffinity},
		{path: "personality.openness"},
		{path: "personality.conscientiousness"},
		{path: "personality.extroversion"},
		{path: "personality.agreeableness"},
		{path: "personality.neuroticism"},

		{path: "accessibility.needs", list: &d.Accessibility.Needs},
		{path: "accessibility.assistiveTech", list: &d.Accessibility.AssistiveTech},
		{path: "accessibility.constraints", list: &d.Accessibility.Constraints},

		{path: "decisionCriteria", list: &d.DecisionCriteria},
		{path: "objections", list: &d.Objections},
		{path: "successMetrics", list: &d.SuccessMetrics},
		{path: "opportunities", list: &d.Opportunities},

		{path: "representativeStory", text: &d.RepresentativeStory},
		{path: "notes", text: &d.Notes},
	}
}

// Paths lists every leaf path of Data in document order
func Paths() []string {
	var d Data
	fs := d.fields()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.path
	}
	return out
}
