// Package typeset implements a Knuth-style paragraph line-breaking and
// vertical-list assembly engine: glue algebra, a node model for boxes,
// glue, kerns and penalties, the paragraph optimizer that turns a
// horizontal node list into a sequence of lines by dynamic programming
// over feasible breakpoints, a vertical-list builder that stacks those
// lines with baselineskip/lineskip discipline, a generic layout reader
// that walks an assembled box tree into absolute positions, and the
// eight-style math style lattice.
//
// The package has no knowledge of fonts, glyphs, or output formats; it
// consumes pre-measured nodes and produces a positioned box tree.
package typeset
