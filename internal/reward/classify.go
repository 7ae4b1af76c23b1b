package reward

// Criteria binds a tier to its minimum similarity score, point value,
// and the praise phrase used as the feedback narrative prefix.
type Criteria struct {
	Tier        Type
	MinScore    float64
	Points      int
	Description string
}

// criteriaTable lists tiers highest-to-lowest; Classify takes the first
// tier whose threshold the score meets.
var criteriaTable = []Criteria{
	{Tier: Platinum, MinScore: 0.90, Points: 100, Description: "Exceptional understanding!"},
	{Tier: Gold, MinScore: 0.80, Points: 75, Description: "Excellent work!"},
	{Tier: Silver, MinScore: 0.65, Points: 50, Description: "Good effort!"},
	{Tier: Bronze, MinScore: 0.40, Points: 25, Description: "Keep trying!"},
}

// ParticipationPoints is awarded when a score meets no tier threshold.
const ParticipationPoints = 10

// Award is the outcome of classifying a similarity score.
// A below-all-thresholds score still earns the bronze label, but with
// fewer points and Participation set so callers can tell the two bronze
// outcomes apart.
type Award struct {
	Tier          Type
	Points        int
	Participation bool
}

// Classify maps a similarity score to a reward tier and point value.
// Thresholds are evaluated highest-to-lowest; first match wins.
func Classify(score float64) Award {
	for _, c := range criteriaTable {
		if score >= c.MinScore {
			return Award{Tier: c.Tier, Points: c.Points}
		}
	}
	return Award{Tier: Bronze, Points: ParticipationPoints, Participation: true}
}

// Description returns the praise phrase for a tier.
func Description(t Type) string {
	for _, c := range criteriaTable {
		if c.Tier == t {
			return c.Description
		}
	}
	return ""
}
