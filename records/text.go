package records

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/orienteer/core"
)

// lineRE accepts both the plural and the singular spelling:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
var lineRE = regexp.MustCompile(
	`^Valve (\S+) has flow rate=(-?\d+); tunnels? leads? to valves?\s*(.*)$`)

// ParseText reads one record per non-blank line. Neighbor order is kept.
//
// Errors:
//   - *ParseError (errors.Is(err, ErrMalformedRecord)) for the first bad line.
//   - I/O errors from r.
func ParseText(r io.Reader) ([]core.Record, error) {
	var out []core.Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(text)
		if m == nil {
			return nil, &ParseError{Line: line, Text: text, Reason: "unrecognized line"}
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Reason: "bad rate"}
		}
		rec := core.Record{Name: m[1], Rate: rate}
		if list := strings.TrimSpace(m[3]); list != "" {
			for _, n := range strings.Split(list, ",") {
				n = strings.TrimSpace(n)
				if n == "" {
					return nil, &ParseError{Line: line, Text: text, Reason: "empty neighbor"}
				}
				rec.Neighbors = append(rec.Neighbors, n)
			}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("records: read: %w", err)
	}

	return out, nil
}

// WriteText writes recs in the line format read by ParseText.
func WriteText(w io.Writer, recs []core.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		tunnels, valves := "tunnels lead", "valves"
		if len(r.Neighbors) == 1 {
			tunnels, valves = "tunnel leads", "valve"
		}
		if _, err := fmt.Fprintf(bw, "Valve %s has flow rate=%d; %s to %s %s\n",
			r.Name, r.Rate, tunnels, valves, strings.Join(r.Neighbors, ", ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
