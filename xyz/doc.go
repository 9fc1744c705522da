// Package xyz writes and reads the two plain-text coordinate formats used
// for generated structures.
//
// XYZ atom list:
//
//	3
//	This is a carbon chain
//	C 0.000   0.000   0.000
//	C 0.000   0.000   1.540
//	C 1.452   0.000   2.054
//
// Plain coordinates (.txt): the same coordinate lines without header or
// element labels.
//
// Writers keep point order and emit every point; coordinates are formatted
// with three decimal places. XYZFile and TXTFile satisfy chain.Sink.
package xyz
