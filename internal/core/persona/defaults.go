package persona

import "math"

// DefaultScore fills missing scores in a draft
const DefaultScore Score = 3

// ApplyDefaults fills the gaps a quick entry form leaves in a draft: missing or
// non-numeric scores become 3 and empty levels become Medium. It is a
// presentation convenience, Validator never calls it
func ApplyDefaults(d *Data) {
	for _, s := range []*Score{
		&d.Personality.Openness,
		&d.Personality.Conscientiousness,
		&d.Personality.Extroversion,
		&d.Personality.Agreeableness,
		&d.Personality.Neuroticism,
	} {
		if *s == 0 || math.IsNaN(float64(*s)) {
			*s = DefaultScore
		}
	}
	if d.Context.DigitalProficiency == "" {
		d.Context.DigitalProficiency = LevelMedium
	}
	if d.Behavior.TechComfort == "" {
		d.Behavior.TechComfort = LevelMedium
	}
}

// ScoreLabel maps a score onto a level: 2 or less is Low, 4 or more is High
func ScoreLabel(n int) Level {
	switch {
	case n <= 2:
		return LevelLow
	case n >= 4:
		return LevelHigh
	default:
		return LevelMedium
	}
}
