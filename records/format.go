package records

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/orienteer/core"
)

// Format selects an input or output encoding.
type Format int

const (
	// FormatText is one line per node:
	//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
	FormatText Format = iota
	// FormatYAML is a sequence of {name, rate, neighbors} mappings, either at
	// the top level or under a "nodes" key.
	FormatYAML
	// FormatJSON is the JSON spelling of FormatYAML.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a name ("text", "yaml", "yml", "json") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath chooses a Format by file extension; anything that is not
// .yaml, .yml or .json is text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Parse reads records from r in format f.
func Parse(r io.Reader, f Format) ([]core.Record, error) {
	switch f {
	case FormatText:
		return ParseText(r)
	case FormatYAML, FormatJSON:
		return ParseDocument(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Write serializes records to w in format f.
func Write(w io.Writer, recs []core.Record, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, recs)
	case FormatYAML, FormatJSON:
		return WriteDocument(w, recs, f)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
