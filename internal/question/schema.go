package question

import "github.com/abhisek/prepdrill/internal/llm"

// Schema defines the JSON schema for question generation responses.
var Schema = &llm.Schema{
	Name:        "prep-question",
	Description: "A single interview or practice question with grading guidance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the candidate, in plain text",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "The level the question was generated at",
			},
			"expected_time_seconds": map[string]any{
				"type":        "integer",
				"minimum":     30,
				"maximum":     900,
				"description": "Time budget for a solid answer, in seconds",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The subject area the question covers",
			},
			"key_points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "3-6 points a strong answer should cover. Used for grading, never shown before answering.",
			},
		},
		"required":             []any{"question", "difficulty", "expected_time_seconds", "topic", "key_points"},
		"additionalProperties": false,
	},
}
