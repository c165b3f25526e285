package typeset

import "errors"

// ErrCannotTypeset is returned by Paragraph.Create when the active
// breakpoint list empties out before the terminal node is reached: no
// sequence of lines satisfies the configured tolerance.
var ErrCannotTypeset = errors.New("typeset: no feasible sequence of breakpoints within tolerance")

// ErrMalformedInput is returned when a node list violates the closed
// node-model invariants the optimizer relies on, such as a nil entry.
var ErrMalformedInput = errors.New("typeset: malformed node in list")
