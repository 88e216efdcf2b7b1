package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orienteer/core"
)

// ParseDocument reads YAML or JSON records: either a top-level sequence or
// a mapping with a "nodes" sequence. Unknown fields are rejected.
//
// Errors:
//   - *ParseError (errors.Is(err, ErrMalformedRecord)) with the YAML line.
func ParseDocument(r io.Reader) ([]core.Record, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ParseError{Reason: err.Error()}
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = *root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		return decodeNodes(root.Content)
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			if root.Content[i].Value != "nodes" {
				continue
			}
			if nodes := root.Content[i+1]; nodes.Kind == yaml.SequenceNode {
				return decodeNodes(nodes.Content)
			}
			return nil, &ParseError{Line: root.Content[i+1].Line, Reason: `"nodes" must be a sequence`}
		}
		return nil, &ParseError{Line: root.Line, Reason: `missing "nodes"`}
	default:
		return nil, &ParseError{Line: root.Line, Text: root.Value, Reason: "expected a sequence of nodes"}
	}
}

// decodeNodes decodes each entry strictly so misspelled keys surface.
func decodeNodes(items []*yaml.Node) ([]core.Record, error) {
	out := make([]core.Record, 0, len(items))
	for _, item := range items {
		if item.Kind != yaml.MappingNode {
			return nil, &ParseError{Line: item.Line, Text: item.Value, Reason: "expected a mapping"}
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			switch key := item.Content[i].Value; key {
			case "name", "rate", "neighbors":
			default:
				return nil, &ParseError{Line: item.Content[i].Line, Text: key, Reason: "unknown field"}
			}
		}
		var rec core.Record
		if err := item.Decode(&rec); err != nil {
			return nil, &ParseError{Line: item.Line, Reason: err.Error()}
		}
		out = append(out, rec)
	}

	return out, nil
}

// WriteDocument writes recs as a YAML sequence or an indented JSON array.
func WriteDocument(w io.Writer, recs []core.Record, f Format) error {
	if recs == nil {
		recs = []core.Record{}
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return fmt.Errorf("records: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recs); err != nil {
			return fmt.Errorf("records: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
