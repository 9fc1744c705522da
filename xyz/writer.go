// SPDX-License-Identifier: MIT
// Package: molchain/xyz
//
// writer.go — XYZ and TXT writers plus file sinks.

package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/molchain/geom"
)

// Labels and comments of the reference outputs.
const (
	ChainElement   = "C"
	ChainComment   = "This is a carbon chain"
	LatticeElement = "Po"
	LatticeComment = "Structure with screw dislocation"

	coordFormat = "%.3f   %.3f   %.3f\n"
)

// WriteXYZ writes points as an XYZ atom list: count, comment, then one
// "<element> x y z" line per point.
func WriteXYZ(w io.Writer, points []geom.Point3D, element, comment string) error {
	if element == "" || strings.ContainsAny(element, " \t\r\n") {
		return fmt.Errorf("WriteXYZ: %q: %w", element, ErrInvalidElement)
	}
	if strings.ContainsAny(comment, "\r\n") {
		return fmt.Errorf("WriteXYZ: %w", ErrInvalidComment)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", len(points), comment)
	for _, p := range points {
		fmt.Fprintf(bw, "%s "+coordFormat, element, p.X, p.Y, p.Z)
	}

	return bw.Flush()
}

// WriteTXT writes one "x y z" line per point, no header.
func WriteTXT(w io.Writer, points []geom.Point3D) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		fmt.Fprintf(bw, coordFormat, p.X, p.Y, p.Z)
	}

	return bw.Flush()
}

// WriteXYZFile creates (or truncates) path and writes an XYZ atom list.
func WriteXYZFile(path string, points []geom.Point3D, element, comment string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteXYZ(w, points, element, comment)
	})
}

// WriteTXTFile creates (or truncates) path and writes plain coordinates.
func WriteTXTFile(path string, points []geom.Point3D) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteTXT(w, points)
	})
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}

// XYZFile is a sink writing an XYZ atom list to Path.
// Empty Element/Comment fall back to the carbon chain defaults.
type XYZFile struct {
	Path    string
	Element string
	Comment string
}

// WritePoints implements chain.Sink.
func (s XYZFile) WritePoints(points []geom.Point3D) error {
	element, comment := s.Element, s.Comment
	if element == "" {
		element = ChainElement
	}
	if comment == "" {
		comment = ChainComment
	}

	return WriteXYZFile(s.Path, points, element, comment)
}

// TXTFile is a sink writing plain coordinates to Path.
type TXTFile struct {
	Path string
}

// WritePoints implements chain.Sink.
func (s TXTFile) WritePoints(points []geom.Point3D) error {
	return WriteTXTFile(s.Path, points)
}
