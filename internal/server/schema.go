// internal/server/schema.go
package server

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"skillmatch/internal/common/errors"
)

// Request schemas. Validation happens against the raw body before decoding,
// so malformed requests fail with a field-level message instead of a zero
// value slipping through.
const analyzeSchema = `{
	"type": "object",
	"required": ["sessionId", "plan", "role", "skills"],
	"properties": {
		"sessionId":  {"type": "string", "minLength": 1},
		"plan":       {"type": "string", "minLength": 1},
		"industry":   {"type": "string"},
		"role":       {"type": "string", "minLength": 1},
		"skills":     {"type": "string"}
	},
	"additionalProperties": false
}`

const resumeSchema = `{
	"type": "object",
	"required": ["sessionId", "plan", "role", "skills", "profile"],
	"properties": {
		"sessionId": {"type": "string", "minLength": 1},
		"plan":      {"type": "string", "minLength": 1},
		"industry":  {"type": "string"},
		"role":      {"type": "string", "minLength": 1},
		"skills":    {"type": "string"},
		"emailTo":   {"type": "string"},
		"profile": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name":     {"type": "string", "minLength": 1},
				"email":    {"type": "string"},
				"headline": {"type": "string"},
				"summary":  {"type": "string"},
				"experience": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["title"],
						"properties": {
							"title":      {"type": "string", "minLength": 1},
							"company":    {"type": "string"},
							"period":     {"type": "string"},
							"highlights": {"type": "array", "items": {"type": "string"}}
						}
					}
				},
				"education": {"type": "array", "items": {"type": "string"}}
			}
		}
	},
	"additionalProperties": false
}`

var (
	analyzeSchemaLoader = gojsonschema.NewStringLoader(analyzeSchema)
	resumeSchemaLoader  = gojsonschema.NewStringLoader(resumeSchema)
)

func validateBody(schemaLoader gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.NewInvalidRequestError(fmt.Sprintf("malformed JSON: %v", err))
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return errors.NewInvalidRequestError(strings.Join(msgs, "; "))
	}
	return nil
}
