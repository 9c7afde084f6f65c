package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zayad10/densub/graph"
)

// ErrMalformedInput indicates a non-blank, non-comment line did not contain
// exactly two non-negative integers.
var ErrMalformedInput = errors.New("loader: malformed input line")

// FromReader parses r line by line into edge pairs and builds a Graph.
// Blank lines and lines whose first non-whitespace character is '#' are
// skipped; every other line must hold exactly two whitespace-separated
// non-negative integers.
func FromReader(r io.Reader) (*graph.Graph, error) {
	var edges []graph.EdgePair

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedInput, lineNo, len(fields))
		}

		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || u < 0 {
			return nil, fmt.Errorf("%w: line %d: %q is not a non-negative integer", ErrMalformedInput, lineNo, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: line %d: %q is not a non-negative integer", ErrMalformedInput, lineNo, fields[1])
		}

		edges = append(edges, graph.EdgePair{U: u, V: v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return graph.Build(edges), nil
}

// FromFile opens path and delegates to FromReader.
func FromFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromReader(f)
}
