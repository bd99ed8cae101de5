package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema describes the structural shape of questions.json.
// Cross-field rules (correct answer membership, pair counts) are
// enforced separately by Validate.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"multiple-choice", "true-false", "code-completion", "matching"},
			},
			"topic": map[string]any{
				"type": "string",
				"enum": []any{"data-structure", "algorithm"},
			},
			"subtopic": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"prompt": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"code": map[string]any{
				"type": "string",
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"matchingPairs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"left":  map[string]any{"type": "string"},
						"right": map[string]any{"type": "string"},
					},
					"required":             []any{"left", "right"},
					"additionalProperties": false,
				},
			},
			"correctAnswer": map[string]any{
				"type": "string",
			},
			"correctPairs": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"explanation": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"points": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"required":             []any{"id", "type", "topic", "subtopic", "difficulty", "prompt", "explanation"},
		"additionalProperties": false,
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSchema checks raw catalog JSON against the structural schema.
func validateSchema(raw []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile schema: %w", compileErr)
	}

	// The jsonschema library validates a parsed value, not raw bytes.
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return err
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
