package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDocument parses the YAML document at path into a nested mapping,
// routing every scalar string through ExpandTokens. A missing,
// unreadable or malformed file yields an empty mapping; the loader never
// fails. No merging happens here, it is a pure parse-and-substitute
// step.
func LoadDocument(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return map[string]any{}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return map[string]any{}
	}
	if doc == nil {
		return map[string]any{}
	}

	for k, v := range doc {
		doc[k] = interpolateValue(v)
	}
	return doc
}

// interpolateValue walks a parsed YAML value and expands tokens in every
// string scalar, in place for containers.
func interpolateValue(v any) any {
	switch value := v.(type) {
	case string:
		return ExpandTokens(value)
	case map[string]any:
		for k, elem := range value {
			value[k] = interpolateValue(elem)
		}
		return value
	case []any:
		for i, elem := range value {
			value[i] = interpolateValue(elem)
		}
		return value
	default:
		return v
	}
}
