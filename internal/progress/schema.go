package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Document schemas. A save file that fails validation is treated the same
// as an unreadable one: the load falls back to defaults. Schemas are
// deliberately loose about extra keys so older or newer files still load.
var documentSchemas = map[string]map[string]any{
	"progress": {
		"type": "object",
		"properties": map[string]any{
			"score":         map[string]any{"type": "integer", "minimum": 0},
			"level":         map[string]any{"type": "integer", "minimum": 1},
			"games_played":  map[string]any{"type": "integer", "minimum": 0},
			"words_learned": map[string]any{"type": "integer", "minimum": 0},
			"last_played":   map[string]any{"type": []any{"string", "null"}},
			"last_saved":    map[string]any{"type": "string"},
		},
	},
	"stats": {
		"type": "object",
		"properties": map[string]any{
			"total_games":      map[string]any{"type": "integer", "minimum": 0},
			"total_questions":  map[string]any{"type": "integer", "minimum": 0},
			"total_correct":    map[string]any{"type": "integer", "minimum": 0},
			"overall_accuracy": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"games": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"played":    map[string]any{"type": "integer", "minimum": 0},
						"questions": map[string]any{"type": "integer", "minimum": 0},
						"correct":   map[string]any{"type": "integer", "minimum": 0},
					},
				},
			},
			"first_play": map[string]any{"type": "string"},
			"last_play":  map[string]any{"type": []any{"string", "null"}},
		},
	},
	"player": {
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	},
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument checks raw JSON against the named document schema.
func validateDocument(name string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := documentSchemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown document schema %q", name)
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
