package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// overrideSchema validates taxonomy override files. Every list is optional;
// omitted lists fall back to the built-in defaults.
const overrideSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "techSkills":     {"type": "array", "items": {"type": "string", "minLength": 1}},
    "toolNames":      {"type": "array", "items": {"type": "string", "minLength": 1}},
    "softSkills":     {"type": "array", "items": {"type": "string", "minLength": 1}},
    "stopWords":      {"type": "array", "items": {"type": "string", "minLength": 1}},
    "phrasePatterns": {"type": "array", "items": {"type": "string", "minLength": 1}}
  }
}`

// overrideFile mirrors the JSON shape of a taxonomy override file.
type overrideFile struct {
	TechSkills     []string `json:"techSkills"`
	ToolNames      []string `json:"toolNames"`
	SoftSkills     []string `json:"softSkills"`
	StopWords      []string `json:"stopWords"`
	PhrasePatterns []string `json:"phrasePatterns"`
}

// LoadFile builds a Taxonomy from a JSON override file. The file is
// validated against the override schema before use; lists it omits keep
// their built-in defaults.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(overrideSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate taxonomy file %s: %w", path, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, fmt.Errorf("invalid taxonomy file %s: %s", path, strings.Join(messages, "; "))
	}

	var override overrideFile
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file %s: %w", path, err)
	}

	tech := defaultTechSkills
	if override.TechSkills != nil {
		tech = override.TechSkills
	}
	tools := defaultToolNames
	if override.ToolNames != nil {
		tools = lowerAll(override.ToolNames)
	}
	soft := defaultSoftSkills
	if override.SoftSkills != nil {
		soft = lowerAll(override.SoftSkills)
	}
	stop := defaultStopWords
	if override.StopWords != nil {
		stop = override.StopWords
	}
	phrases := defaultPhrasePatterns
	if override.PhrasePatterns != nil {
		phrases = lowerAll(override.PhrasePatterns)
	}

	return build(tech, tools, soft, stop, phrases), nil
}

// lowerAll lowercases every entry of a list.
func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}
