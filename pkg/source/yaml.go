package source

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// ParseYAML reads the top-level mapping of a YAML document.
// Keys must be scalars. Mapping order is preserved.
func ParseYAML(data []byte) (*Pairs[string, any], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ErrorIllegal{Format: "yaml", Message: err.Error()}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) < 1 {
		return nil, &ErrorIllegal{Format: "yaml", Message: "empty document"}
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, &ErrorIllegal{
			Format:  "yaml",
			Message: fmt.Sprintf("line %d: expected mapping", m.Line),
		}
	}

	p := NewPairs[string, any]()
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, &ErrorIllegal{
				Format:  "yaml",
				Message: fmt.Sprintf("line %d: expected scalar key", k.Line),
			}
		}
		var value any
		if err := v.Decode(&value); err != nil {
			return nil, &ErrorIllegal{
				Format:  "yaml",
				Message: fmt.Sprintf("line %d: %s", v.Line, err),
			}
		}
		p.Add(k.Value, value)
	}
	return p, nil
}
