package reward

// Type represents the reward tier earned for a scored response.
type Type string

const (
	Bronze   Type = "bronze"
	Silver   Type = "silver"
	Gold     Type = "gold"
	Platinum Type = "platinum"
)

// AllTypes returns all reward tiers in order from lowest to highest.
func AllTypes() []Type {
	return []Type{Bronze, Silver, Gold, Platinum}
}

// DisplayName returns a human-readable label for the tier.
func (t Type) DisplayName() string {
	switch t {
	case Bronze:
		return "Bronze"
	case Silver:
		return "Silver"
	case Gold:
		return "Gold"
	case Platinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the tier.
func (t Type) Icon() string {
	switch t {
	case Bronze:
		return "🥉"
	case Silver:
		return "🥈"
	case Gold:
		return "🥇"
	case Platinum:
		return "💎"
	default:
		return "✦"
	}
}
