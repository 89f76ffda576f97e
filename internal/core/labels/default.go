package labels

// Default returns the bundled English table. Every call returns fresh maps
func Default() Table {
	return Table{
		Sections: clone(defaultSections),
		Fields:   clone(defaultFields),
		Compact:  clone(defaultCompact),
		Levels:   clone(defaultLevels),
		Texts:    clone(defaultTexts),
	}
}

var defaultSections = map[string]string{
	Summary:            "Summary",
	Demographics:       "Demographics",
	Context:            "Context",
	Goals:              "Goals",
	Frustrations:       "Frustrations",
	Motivations:        "Motivations",
	Behaviors:          "Behaviors",
	Journey:            "Journey",
	Personality:        "Personality",
	Accessibility:      "Accessibility",
	DecisionImpact:     "Decision & Impact",
	GoalsAndPains:      "Goals & pains",
	BehaviorAndJourney: "Behavior & journey",
	DecisionCriteria:   "Decision criteria",
	Narrative:          "Narrative & notes",
}

var defaultFields = map[string]string{
	"name":      "Name",
	"archetype": "Archetype",
	"shortBio":  "Bio",
	"quote":     "Quote",

	"demographics.ageRange":             "Age range",
	"demographics.genderIdentity":       "Gender",
	"demographics.location":             "Location",
	"demographics.educationLevel":       "Education",
	"demographics.occupation":           "Occupation",
	"demographics.incomeRange":          "Income range",
	"demographics.householdComposition": "Household",

	"context.sector":             "Sector",
	"context.productOrService":   "Product/Service",
	"context.scenario":           "Scenario",
	"context.environment":        "Environment",
	"context.digitalProficiency": "Digital proficiency",

	"goals.primary":   "Primary goals",
	"goals.secondary": "Secondary goals",

	"frustrations.painPoints": "Pain points",
	"frustrations.barriers":   "Barriers",
	"frustrations.fears":      "Fears",

	"motivations.intrinsic": "Intrinsic",
	"motivations.extrinsic": "Extrinsic",
	"motivations.values":    "Values",

	"behavior.habits":           "Habits",
	"behavior.channels":         "Channels",
	"behavior.devices":          "Devices",
	"behavior.contentFormats":   "Content formats",
	"behavior.techComfort":      "Tech comfort",
	"behavior.decisionStyle":    "Decision style",
	"behavior.purchaseTriggers": "Purchase triggers",

	"journey.awareness":     "Discovery",
	"journey.consideration": "Consideration",
	"journey.decision":      "Decision",
	"journey.retention":     "Retention",

	"personality.communicationStyle": "Communication style",
	"personality.brandAffinity":      "Brand affinity",
	"personality.openness":           "Openness",
	"personality.conscientiousness":  "Conscientiousness",
	"personality.extroversion":       "Extroversion",
	"personality.agreeableness":      "Agreeableness",
	"personality.neuroticism":        "Neuroticism",

	"accessibility.needs":         "Needs",
	"accessibility.assistiveTech": "Assistive technology",
	"accessibility.constraints":   "Constraints",

	"decisionCriteria":    "Decision criteria",
	"objections":          "Objections",
	"successMetrics":      "Success metrics",
	"opportunities":       "Opportunities",
	"representativeStory": "Representative story",
	"notes":               "Notes",
}

var defaultCompact = map[string]string{
	"demographics.incomeRange":       "Income",
	"personality.communicationStyle": "Communication",
	"motivations.intrinsic":          "Intrinsic motivations",
	"motivations.extrinsic":          "Extrinsic motivations",
	"accessibility.needs":            "Accessibility needs",
	"representativeStory":            "Story",
}

var defaultLevels = map[string]string{
	"Low":    "Low",
	"Medium": "Medium",
	"High":   "High",
}

var defaultTexts = map[string]string{
	NotInformed:         "not informed",
	NotInformedSentence: "Not informed.",
	NoItems:             "No items informed.",
	NoNotes:             "No additional notes.",
	ForkSuffix:          " (copy)",
	PersonaLine:         "Persona",
	CreatedBy:           "Created by",
	Date:                "Date",
	DateLayout:          "2006-01-02 15:04 MST",
	GoalsLine:           "Goals",
	PainsLine:           "Pain points",
	MotivationsLine:     "Motivations",
}
