// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse construction and for
// the textual dump. This file defines:
//   - Option / options (construction), PrintOption / printOptions (Fprint),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / gatherPrintOptions helpers.
//
// Design goals:
//   - No global state; each call resolves its own options from defaults.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Option fields are unexported; public APIs consume ...Option.
package matrix

import "github.com/fatih/color"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the initial entry capacity of a new Sparse.
	DefaultCapacity = 0

	// DefaultSeparator separates cells within a printed row.
	DefaultSeparator = " "

	// DefaultCellFormat is the fmt verb used to render each cell.
	DefaultCellFormat = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid   = "matrix: WithCapacity: capacity must be >= 0"
	panicCellFormatInvalid = "matrix: WithCellFormat: format must be non-empty"
)

// ---------- Construction options ----------

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective construction configuration.
type options struct {
	capacity int // DefaultCapacity
}

// WithCapacity preallocates room for n entries in the backing slice.
// Panics when n < 0 (programmer error).
// Complexity: O(1) to build; allocation happens in New.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *options) { o.capacity = n }
}

// gatherOptions applies user setters on top of the defaults, in order.
func gatherOptions(user ...Option) options {
	o := options{capacity: DefaultCapacity}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// ---------- Print options ----------

// PrintOption mutates the configuration used by Fprint.
type PrintOption func(*printOptions)

// printOptions stores the effective dump configuration.
type printOptions struct {
	sep       string       // DefaultSeparator
	cellFmt   string       // DefaultCellFormat
	highlight *color.Color // nil: stored cells are printed plain
}

// WithSeparator sets the string written between two cells of the same row.
// An empty separator is legal and glues cells together.
func WithSeparator(sep string) PrintOption {
	return func(o *printOptions) { o.sep = sep }
}

// WithCellFormat sets the fmt verb used per cell (e.g. "%g", "%6.2f", "%q").
// Panics on an empty format.
func WithCellFormat(format string) PrintOption {
	if format == "" {
		panic(panicCellFormatInvalid)
	}

	return func(o *printOptions) { o.cellFmt = format }
}

// WithHighlight renders explicitly stored cells through c, leaving default
// cells plain. Passing nil disables highlighting.
//
// Notes:
//   - fatih/color honors NO_COLOR and non-terminal outputs via color.NoColor;
//     set c.EnableColor() to force escape sequences (e.g. in tests).
func WithHighlight(c *color.Color) PrintOption {
	return func(o *printOptions) { o.highlight = c }
}

// gatherPrintOptions applies user setters on top of the print defaults.
func gatherPrintOptions(user ...PrintOption) printOptions {
	o := printOptions{sep: DefaultSeparator, cellFmt: DefaultCellFormat}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
