// Package frontier loads Pareto frontier wireframe files and computes the
// bounding geometry used to frame the initial view.
//
// The file format is line-oriented plain text. "v x y z" appends a vertex,
// "l i j" appends an edge between two 0-based vertex indices. Blank lines
// are ignored; any other command is fatal.
package frontier

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/vipo/pkg/math"
)

// Format errors.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMalformedVertex = errors.New("malformed vertex")
	ErrMalformedEdge   = errors.New("malformed edge")
	ErrEdgeOutOfRange  = errors.New("edge index out of range")
	ErrNoVertices      = errors.New("no vertices")
)

// Edge connects two vertices by index into the vertex list.
type Edge struct {
	A, B uint32
}

// Frontier is a wireframe graph: points in objective space and the line
// segments between them, in file order.
type Frontier struct {
	Vertices []math.Vec3
	Edges    []Edge
}

// LoadFile opens and parses a frontier file.
func LoadFile(path string) (*Frontier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fr, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fr, nil
}

// Parse reads a frontier description from r. Vertices and edges keep their
// insertion order. Every edge index is validated against the final vertex
// count, so a parsed frontier is always safe to index.
func Parse(r io.Reader) (*Frontier, error) {
	fr := &Frontier{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: %w: want 3 coordinates, got %d",
					lineNo, ErrMalformedVertex, len(fields)-1)
			}
			var coords [3]float32
			for i, tok := range fields[1:] {
				val, err := strconv.ParseFloat(tok, 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: bad coordinate %q",
						lineNo, ErrMalformedVertex, tok)
				}
				coords[i] = float32(val)
			}
			fr.Vertices = append(fr.Vertices, math.Vec3{X: coords[0], Y: coords[1], Z: coords[2]})

		case "l":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: %w: want 2 indices, got %d",
					lineNo, ErrMalformedEdge, len(fields)-1)
			}
			var idx [2]uint32
			for i, tok := range fields[1:] {
				val, err := strconv.ParseUint(tok, 10, 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: bad index %q",
						lineNo, ErrMalformedEdge, tok)
				}
				idx[i] = uint32(val)
			}
			fr.Edges = append(fr.Edges, Edge{A: idx[0], B: idx[1]})

		default:
			return nil, fmt.Errorf("line %d: %w %q", lineNo, ErrUnknownCommand, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo, err)
	}

	if len(fr.Vertices) == 0 {
		return nil, ErrNoVertices
	}

	// Edges may reference vertices defined later in the file, so range
	// checking happens after the whole file is read.
	count := uint32(len(fr.Vertices))
	for i, e := range fr.Edges {
		if e.A >= count || e.B >= count {
			return nil, fmt.Errorf("edge %d: %w: (%d, %d) with %d vertices",
				i, ErrEdgeOutOfRange, e.A, e.B, count)
		}
	}

	return fr, nil
}
