package landmark

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// rosLine matches a single reasonable-order record: "<id> -r-> <id>".
var rosLine = regexp.MustCompile(`^(\d+) -r-> (\d+)$`)

// ErrMalformedROSLine is returned when a line in a reasonable-orders file
// does not match the "<id> -r-> <id>" grammar.
type ErrMalformedROSLine struct {
	LineNo int
	Text   string
}

func (e *ErrMalformedROSLine) Error() string {
	return fmt.Sprintf("landmark: ros file line %d: malformed %q", e.LineNo, e.Text)
}

// LoadReasonableOrdersFromFile is the thin "reasonable orders from file"
// collaborator: it reads lines matching "^\d+ -r-> \d+$"
// from path and adds a REASONABLE edge between the two referenced
// landmark ids to g for each one. It is not part of the core algorithm —
// callers invoke it only when that optional edge source is requested.
//
// Errors out cleanly (returns the *os.PathError from Open) only when the
// file is requested and missing; a malformed line returns
// *ErrMalformedROSLine and stops processing.
func LoadReasonableOrdersFromFile(g *Graph, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return loadReasonableOrders(g, f)
}

// loadReasonableOrders is the parsing core, split out so tests can feed
// an in-memory reader instead of a real file.
func loadReasonableOrders(g *Graph, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		m := rosLine.FindStringSubmatch(line)
		if m == nil {
			return &ErrMalformedROSLine{LineNo: lineNo, Text: line}
		}
		u, _ := strconv.Atoi(m[1])
		v, _ := strconv.Atoi(m[2])
		g.AddEdge(u, v, Reasonable)
	}

	return scanner.Err()
}
