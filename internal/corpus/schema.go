package corpus

// fileSchema is the JSON Schema a corpus file must conform to:
// subject → topic → non-empty list of reference sentences.
var fileSchema = map[string]any{
	"type":          "object",
	"description":   "Reference corpus: subject -> topic -> reference sentences",
	"minProperties": 1,
	"additionalProperties": map[string]any{
		"type":          "object",
		"minProperties": 1,
		"additionalProperties": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
}
