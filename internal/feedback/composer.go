package feedback

import "github.com/abhisek/gradewise/internal/reward"

// Score bands for composed feedback. The high band starts at the gold
// threshold; the mid band covers scores that still show partial grasp.
const (
	highBand = 0.8
	midBand  = 0.6
)

// Composition is the narrative part of a feedback record.
type Composition struct {
	Text             string
	Strengths        []string
	ImprovementAreas []string
	Tips             []string
}

// Compose builds band-dependent feedback narrative for a score. The
// opening sentence comes from the awarded tier's praise phrase so the
// message and the reward never disagree.
func Compose(score float64, tier reward.Type) Composition {
	c := Composition{Text: reward.Description(tier) + " "}

	switch {
	case score >= highBand:
		c.Text += "You've shown excellent understanding of this topic. Your response demonstrates clear thinking and good use of relevant concepts."
		c.Strengths = []string{
			"Demonstrates strong understanding of key concepts",
			"Uses appropriate terminology",
			"Provides clear explanations",
		}
		c.Tips = []string{
			"Try to add more examples to strengthen your explanations",
			"Consider exploring advanced applications of these concepts",
		}
	case score >= midBand:
		c.Text += "You're on the right track! Your response shows good understanding, with room for more detail and precision."
		c.Strengths = []string{
			"Shows good grasp of basic concepts",
			"Attempts to explain reasoning",
		}
		c.ImprovementAreas = []string{
			"Could use more specific terminology",
			"Explanations could be more detailed",
		}
		c.Tips = []string{
			"Review key vocabulary for this topic",
			"Practice explaining concepts in your own words",
			"Try to include specific examples",
		}
	default:
		c.Text += "Keep working on this topic. Review the key concepts and try to be more specific in your explanations."
		c.Strengths = []string{
			"Shows effort in attempting the question",
		}
		c.ImprovementAreas = []string{
			"Needs to review fundamental concepts",
			"Requires more specific and detailed responses",
		}
		c.Tips = []string{
			"Review the lesson materials again",
			"Ask your teacher for clarification on confusing topics",
			"Practice with similar problems",
			"Try to break down complex problems into smaller steps",
		}
	}

	return c
}
