// SPDX-License-Identifier: MIT
// Package: molchain/xyz
//
// reader.go — parsers for the formats produced by writer.go.

package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/molchain/geom"
)

// maxPrealloc bounds the capacity reserved from a declared atom count; the
// count comes from the file and is only trusted once the rows are read.
const maxPrealloc = 1 << 16

// Frame is one parsed XYZ atom list.
type Frame struct {
	Comment  string
	Elements []string
	Points   []geom.Point3D
}

// ReadXYZ parses a single XYZ frame. The declared count must match the
// number of atom lines; trailing blank lines are ignored.
func ReadXYZ(r io.Reader) (*Frame, error) {
	sc := bufio.NewScanner(r)

	if !sc.Scan() {
		return nil, fmt.Errorf("ReadXYZ: missing atom count: %w", firstErr(sc.Err(), ErrMalformed))
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || n < 0 {
		return nil, fmt.Errorf("ReadXYZ: bad atom count %q: %w", sc.Text(), ErrMalformed)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("ReadXYZ: missing comment line: %w", firstErr(sc.Err(), ErrMalformed))
	}

	capacity := min(n, maxPrealloc)
	fr := &Frame{
		Comment:  sc.Text(),
		Elements: make([]string, 0, capacity),
		Points:   make([]geom.Point3D, 0, capacity),
	}
	line := 2
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fr.Points) == n {
			return nil, fmt.Errorf("ReadXYZ: line %d: more atoms than declared (%d): %w", line, n, ErrMalformed)
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("ReadXYZ: line %d: want element and 3 coordinates: %w", line, ErrMalformed)
		}
		p, err := parsePoint(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("ReadXYZ: line %d: %w", line, err)
		}
		fr.Elements = append(fr.Elements, fields[0])
		fr.Points = append(fr.Points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadXYZ: %w", err)
	}
	if len(fr.Points) != n {
		return nil, fmt.Errorf("ReadXYZ: declared %d atoms, found %d: %w", n, len(fr.Points), ErrMalformed)
	}

	return fr, nil
}

// ReadTXT parses plain "x y z" lines; blank lines are skipped.
func ReadTXT(r io.Reader) ([]geom.Point3D, error) {
	sc := bufio.NewScanner(r)
	var pts []geom.Point3D
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("ReadTXT: line %d: want 3 coordinates: %w", line, ErrMalformed)
		}
		p, err := parsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("ReadTXT: line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadTXT: %w", err)
	}

	return pts, nil
}

// ReadPointsFile reads points from path, choosing the parser by extension:
// ".xyz" for atom lists, anything else for plain coordinates.
func ReadPointsFile(path string) ([]geom.Point3D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xyz") {
		fr, err := ReadXYZ(f)
		if err != nil {
			return nil, err
		}
		return fr.Points, nil
	}

	return ReadTXT(f)
}

func parsePoint(fields []string) (geom.Point3D, error) {
	var xyz [3]float64
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geom.Point3D{}, fmt.Errorf("coordinate %q: %w", s, ErrMalformed)
		}
		xyz[i] = v
	}

	return geom.New(xyz[0], xyz[1], xyz[2]), nil
}

func firstErr(err, fallback error) error {
	if err != nil {
		return err
	}
	return fallback
}
