package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchema describes the question record the backend serves. The
// client trusts the backend on content but not on shape; a malformed
// payload is rejected before it reaches the viewer.
const questionSchema = `{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"type": {"type": "string"},
		"paper": {"type": "string"},
		"section": {"type": "string"},
		"marks": {"type": "integer"},
		"page": {"type": "integer"},
		"exam": {"type": "string"},
		"year": {"type": "integer"},
		"subject": {"type": "string"},
		"question_text": {"type": "string"},
		"options": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		},
		"answer": {"type": "string"},
		"explanation": {"type": "string"},
		"diagrams": {
			"type": "array",
			"items": {"type": "string"}
		},
		"sub_questions": {
			"type": "array",
			"items": {"$ref": "#/$defs/subQuestion"}
		}
	},
	"$defs": {
		"subQuestion": {
			"type": "object",
			"properties": {
				"label": {"type": "string"},
				"text": {"type": "string"},
				"answer": {"type": "string"},
				"explanation": {"type": "string"},
				"children": {
					"type": "array",
					"items": {"$ref": "#/$defs/subQuestion"}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func getSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question.json", def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://question.json")
	})
	return compiledSchema, schemaErr
}

// Validate checks raw against the question schema.
func Validate(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("question payload rejected: %w", err)
	}
	return nil
}
