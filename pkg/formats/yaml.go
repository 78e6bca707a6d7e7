package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML check reports.
//
// The document is either a sequence of records or a mapping with a
// "packages" sequence.
type YAMLParser struct{}

// yamlReport is the mapping layout of a YAML report.
type yamlReport struct {
	Packages []Record `yaml:"packages"`
}

// Parse decodes YAML report content.
//
// Parameters:
//   - content: The raw YAML bytes
//
// Returns:
//   - []Record: The decoded records in report order
//   - error: Returns an error if the YAML is invalid or has an unexpected layout
func (p *YAMLParser) Parse(content []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("invalid YAML: empty report")
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records []Record
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return records, nil
	case yaml.MappingNode:
		var report yamlReport
		if err := root.Decode(&report); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return report.Packages, nil
	default:
		return nil, fmt.Errorf("invalid YAML: expected a list of packages at line %d", root.Line)
	}
}
