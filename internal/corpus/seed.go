package corpus

// Builtin returns the built-in reference corpus covering mathematics,
// science, and english at a middle-school level.
func Builtin() *Corpus {
	return New(map[string]map[string][]string{
		"mathematics": {
			"algebra": {
				"To solve linear equations, isolate the variable by performing inverse operations on both sides",
				"The quadratic formula is x = (-b ± √(b²-4ac)) / 2a for equations ax² + bx + c = 0",
				"Functions represent relationships between input and output values",
			},
			"geometry": {
				"The Pythagorean theorem states that a² + b² = c² for right triangles",
				"Area of a circle is π × radius squared",
				"Parallel lines never intersect and have the same slope",
			},
		},
		"science": {
			"physics": {
				"Newton's first law states that objects in motion stay in motion unless acted upon by force",
				"Energy cannot be created or destroyed, only transformed from one form to another",
				"Force equals mass times acceleration (F = ma)",
			},
			"chemistry": {
				"Atoms consist of protons, neutrons, and electrons",
				"Chemical reactions involve breaking and forming bonds between atoms",
				"The periodic table organizes elements by atomic number",
			},
		},
		"english": {
			"literature": {
				"Theme is the central message or meaning of a literary work",
				"Character development shows how characters change throughout a story",
				"Symbolism uses objects or actions to represent deeper meanings",
			},
			"grammar": {
				"Subjects perform the action in a sentence while objects receive it",
				"Proper punctuation helps clarify meaning and structure",
				"Active voice makes writing more direct and engaging",
			},
		},
	})
}
