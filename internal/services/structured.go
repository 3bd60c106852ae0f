package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Failure modes of best-effort extraction from free model text.
var (
	ErrNoJSONObject   = errors.New("no JSON object found in response")
	ErrUnbalancedJSON = errors.New("unbalanced braces in JSON object")
	ErrInvalidJSON    = errors.New("invalid JSON in response")
	ErrMissingFields  = errors.New("response does not match expected shape")
)

// ExtractJSONObject returns the first complete {...} object in text.
// Braces inside JSON strings are ignored while balancing.
func ExtractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return "", ErrNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrUnbalancedJSON
}

// StructuredExtractor pulls one JSON object out of model output and checks
// it against a JSON Schema before decoding.
type StructuredExtractor struct {
	schema *gojsonschema.Schema
}

func NewStructuredExtractor(schemaJSON string) (*StructuredExtractor, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	return &StructuredExtractor{schema: schema}, nil
}

func MustStructuredExtractor(schemaJSON string) *StructuredExtractor {
	e, err := NewStructuredExtractor(schemaJSON)
	if err != nil {
		panic(err)
	}
	return e
}

// Extract decodes the first JSON object in text into target. Errors wrap
// one of ErrNoJSONObject, ErrUnbalancedJSON, ErrInvalidJSON or
// ErrMissingFields.
func (e *StructuredExtractor) Extract(text string, target any) error {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return err
	}

	if !json.Valid([]byte(raw)) {
		return ErrInvalidJSON
	}

	result, err := e.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(details, "; "))
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return nil
}

const interviewAnalysisSchema = `{
  "type": "object",
  "required": ["overallScore", "strengths", "weaknesses", "improvements", "resources", "summary"],
  "properties": {
    "overallScore": {"type": "number", "minimum": 0, "maximum": 100},
    "strengths": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "weaknesses": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "improvements": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "resources": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "summary": {"type": "string", "minLength": 1}
  }
}`

const resumeAnalysisSchema = `{
  "type": "object",
  "required": ["atsScore", "suggestions"],
  "properties": {
    "atsScore": {"type": "number", "minimum": 0, "maximum": 100},
    "suggestions": {"type": "array", "items": {"type": "string"}, "minItems": 1}
  }
}`
