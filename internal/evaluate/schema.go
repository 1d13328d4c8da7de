package evaluate

import "github.com/abhisek/prepdrill/internal/llm"

func scoreDef(desc string) map[string]any {
	return map[string]any{
		"type":        "number",
		"minimum":     0,
		"maximum":     100,
		"description": desc,
	}
}

func stringListDef(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// InterviewSchema defines the JSON schema for interview evaluation
// responses.
var InterviewSchema = &llm.Schema{
	Name:        "interview-evaluation",
	Description: "Multi-dimension judgment of an interview answer with session steering",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"accuracy":        scoreDef("Factual correctness of the answer"),
			"clarity":         scoreDef("How clearly the answer was communicated"),
			"depth":           scoreDef("Depth of understanding demonstrated"),
			"relevance":       scoreDef("How directly the answer addresses the question"),
			"time_efficiency": scoreDef("Score for answering within the time budget"),
			"overall_score":   scoreDef("Weighted overall score"),
			"verdict": map[string]any{
				"type":        "string",
				"enum":        []any{"strong", "average", "weak"},
				"description": "Qualitative judgment of the answer",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentences of direct feedback on this answer",
			},
			"strengths":         stringListDef("What the candidate did well"),
			"improvements":      stringListDef("Specific things to improve"),
			"penalties_applied": stringListDef("Penalties applied, e.g. overtime. Empty if none."),
			"next_difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Recommended level for the next question",
			},
			"should_continue": map[string]any{
				"type":        "boolean",
				"description": "False only when continuing the interview would not be productive",
			},
			"termination_reason": map[string]any{
				"type":        "string",
				"description": "Why the interview should end. Empty when should_continue is true.",
			},
			"time_taken_seconds": map[string]any{
				"type":        "integer",
				"description": "Echo of the reported answer time",
			},
			"expected_time_seconds": map[string]any{
				"type":        "integer",
				"description": "Echo of the question's time budget",
			},
			"overtime_seconds": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Seconds over budget, 0 if within",
			},
		},
		"required": []any{
			"accuracy", "clarity", "depth", "relevance", "time_efficiency",
			"overall_score", "verdict", "feedback", "strengths", "improvements",
			"penalties_applied", "next_difficulty", "should_continue",
			"termination_reason", "time_taken_seconds", "expected_time_seconds",
			"overtime_seconds",
		},
		"additionalProperties": false,
	},
}

// PracticeSchema defines the JSON schema for practice evaluation
// responses.
var PracticeSchema = &llm.Schema{
	Name:        "practice-evaluation",
	Description: "Coaching-oriented judgment of a practice answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":        scoreDef("Overall quality of the answer"),
			"strengths":    stringListDef("What the answer covered well"),
			"improvements": stringListDef("What the answer missed or got wrong"),
			"model_answer": map[string]any{
				"type":        "string",
				"description": "A complete answer covering every key point",
			},
			"coaching_tips": stringListDef("Concrete study advice based on this answer"),
			"next_topic_suggestion": map[string]any{
				"type":        "string",
				"description": "One adjacent topic worth drilling next",
			},
		},
		"required": []any{
			"score", "strengths", "improvements", "model_answer",
			"coaching_tips", "next_topic_suggestion",
		},
		"additionalProperties": false,
	},
}

// CodeSchema defines the JSON schema for code evaluation responses.
var CodeSchema = &llm.Schema{
	Name:        "code-evaluation",
	Description: "Test-case reasoning and quality judgment of submitted code",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": scoreDef("Overall score across correctness and quality"),
			"test_results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Test case ID from the request",
						},
						"passed": map[string]any{
							"type": "boolean",
						},
						"actual_output": map[string]any{
							"type":        "string",
							"description": "What the code would produce for this input",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One sentence on why it passes or fails",
						},
					},
					"required":             []any{"id", "passed", "actual_output", "explanation"},
					"additionalProperties": false,
				},
				"description": "One entry per provided test case, in order",
			},
			"passed_count": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"total_count": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"code_quality": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"readability": scoreDef("Naming, structure, clarity"),
					"efficiency":  scoreDef("Time and space complexity for the problem"),
					"correctness": scoreDef("Handling of edge cases beyond the listed tests"),
				},
				"required":             []any{"readability", "efficiency", "correctness"},
				"additionalProperties": false,
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "2-4 sentences of direct feedback on the submission",
			},
			"suggestions": stringListDef("Specific code-level improvements"),
		},
		"required": []any{
			"score", "test_results", "passed_count", "total_count",
			"code_quality", "feedback", "suggestions",
		},
		"additionalProperties": false,
	},
}

// RunSchema defines the JSON schema for simulated code execution.
var RunSchema = &llm.Schema{
	Name:        "code-run",
	Description: "Best-effort simulated program output",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"output": map[string]any{
				"type":        "string",
				"description": "The stdout the program would produce, or the error it would raise",
			},
		},
		"required":             []any{"output"},
		"additionalProperties": false,
	},
}
