package labyrinth

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultWallsFile is where the viewer and server keep the wall list.
const DefaultWallsFile = "saved-walls.txt"

// ParseError reports a malformed line in a wall file.
type ParseError struct {
	Line int    // 1-based
	Text string // the offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var fieldSeparator = regexp.MustCompile(`\s*,\s*`)

// LoadWalls reads one wall per line as "x1, y1, x2, y2". Whitespace around
// the commas and at either end of a line is ignored, and so are blank lines.
func LoadWalls(r io.Reader) ([]Segment, error) {
	walls := make([]Segment, 0)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		wall, err := ParseSegment(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		walls = append(walls, wall)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read walls")
	}

	return walls, nil
}

// ParseSegment parses a single "x1, y1, x2, y2" record.
func ParseSegment(text string) (Segment, error) {
	fields := fieldSeparator.Split(strings.TrimSpace(text), -1)
	if len(fields) != 4 {
		return Segment{}, errors.Errorf("expected 4 comma-separated values, got %d", len(fields))
	}

	var values [4]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Segment{}, errors.Wrapf(err, "field %d", i+1)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Segment{}, errors.Errorf("field %d: non-finite value %q", i+1, field)
		}
		values[i] = v
	}

	return Seg(values[0], values[1], values[2], values[3]), nil
}

// FormatSegment renders a segment in the wall file format. Floats use the
// shortest representation that parses back to the same value.
func FormatSegment(s Segment) string {
	return strings.Join([]string{
		formatFloat(s.P1.X), formatFloat(s.P1.Y),
		formatFloat(s.P2.X), formatFloat(s.P2.Y),
	}, ", ")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// StoreWalls writes one segment per line in the format LoadWalls reads. It is
// also how routes are printed.
func StoreWalls(w io.Writer, segments []Segment) error {
	out := bufio.NewWriter(w)
	for _, seg := range segments {
		if _, err := fmt.Fprintln(out, FormatSegment(seg)); err != nil {
			return errors.Wrap(err, "could not write walls")
		}
	}
	return errors.Wrap(out.Flush(), "could not write walls")
}

// LoadWallsFile reads a wall file in the text format.
func LoadWallsFile(path string) ([]Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open walls file (%s)", path)
	}
	defer f.Close()

	walls, err := LoadWalls(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load walls file (%s)", path)
	}
	return walls, nil
}

// LoadWallsAuto picks the GeoJSON reader for .geojson and .json files and the
// text format for anything else.
func LoadWallsAuto(path string) ([]Segment, error) {
	if isGeoJSONPath(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open walls file (%s)", path)
		}
		walls, err := LoadWallsGeoJSON(data)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load walls file (%s)", path)
		}
		return walls, nil
	}
	return LoadWallsFile(path)
}

// SaveWallsAuto is the writing counterpart of LoadWallsAuto.
func SaveWallsAuto(path string, walls []Segment) error {
	if !isGeoJSONPath(path) {
		return SaveWallsFile(path, walls)
	}

	data, err := RouteGeoJSON(walls, Point{}, nil).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "could not encode GeoJSON")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "could not save walls file (%s)", path)
}

func isGeoJSONPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return true
	}
	return false
}

// SaveWallsFile writes walls to path, replacing it.
func SaveWallsFile(path string, walls []Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create walls file (%s)", path)
	}

	if err := StoreWalls(f, walls); err != nil {
		f.Close()
		return errors.Wrapf(err, "could not save walls file (%s)", path)
	}
	return errors.Wrapf(f.Close(), "could not save walls file (%s)", path)
}
