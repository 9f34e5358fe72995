package rows

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// itemsDocument is the mapping form of an items file.
type itemsDocument struct {
	Items List `yaml:"items"`
}

// Load reads rows from a YAML or JSON file. JSON is parsed by the YAML decoder.
func Load(path string) (List, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items file: %w", err)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes either a top-level sequence of rows or a mapping with an
// "items" sequence. An empty document or a missing "items" key yields an
// empty list.
func Parse(data []byte) (List, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	var list List
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidItems, err)
		}
	case yaml.MappingNode:
		var wrapped itemsDocument
		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidItems, err)
		}
		list = wrapped.Items
	default:
		return nil, ErrInvalidItems
	}

	for i := range list {
		list[i].Text = normalize(list[i].Text)
	}
	return list, nil
}
