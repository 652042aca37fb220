package api

import (
	"errors"
	"log"

	"encoding/json"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/xeipuuv/gojsonschema"
)

// Schema validates request bodies per operation. Built-in schemas cover the
// codec API; an override document can replace them without a redeploy.
type Schema struct {
	requestSchemas  map[string]*gojsonschema.Schema
	_requestSchemas map[string]map[string]any
}

type overrideDoc struct {
	Operations []operation `json:"operations"`
}

type operation struct {
	Request map[string]any `json:"request"`
	Name    string         `json:"name"`
}

func defaultSchemas() map[string]map[string]any {
	inputSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"inline": map[string]any{"type": "string"},
			"text":   map[string]any{"type": "string"},
			"url":    map[string]any{"type": "string"},
			"headers": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}

	encodeSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"input": inputSchema,
			"options": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"render_tree": map[string]any{"type": "boolean"},
					"persist":     map[string]any{"type": "boolean"},
				},
			},
		},
		"required": []string{"input"},
	}

	decodeSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"packed":      map[string]any{"type": "string"},
			"freq_table":  map[string]any{"type": "string"},
			"artifact_id": map[string]any{"type": "string"},
		},
		"required": []string{"packed"},
	}

	return map[string]map[string]any{
		"encode": encodeSchema,
		"decode": decodeSchema,
	}
}

func NewSchema(b []byte) *Schema {
	schema := &Schema{
		requestSchemas:  make(map[string]*gojsonschema.Schema),
		_requestSchemas: defaultSchemas(),
	}

	if len(b) > 0 {
		var doc overrideDoc
		if err := json.Unmarshal(b, &doc); err != nil {
			log.Fatalf("Error parsing api schema: %v", err)
		}
		for i := range doc.Operations {
			schema._requestSchemas[doc.Operations[i].Name] = doc.Operations[i].Request
		}
	}

	for name, raw := range schema._requestSchemas {
		if _schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(raw)); err == nil {
			schema.requestSchemas[name] = _schema
		}
	}

	return schema
}

func (s *Schema) ValidateRequest(op string, raw map[string]any) error {
	if s == nil {
		return nil
	}
	if s.requestSchemas[op] == nil {
		return nil
	}

	result, err := s.requestSchemas[op].Validate(gojsonschema.NewRawLoader(raw))
	if err != nil {
		return err
	}

	if !result.Valid() {
		descriptions := slice.Map(result.Errors(), func(i int, err gojsonschema.ResultError) string {
			return "'" + err.Field() + "' " + err.Description()
		})
		return errors.New(op + ": " + slice.Join(descriptions, "; "))
	}

	return nil
}
