// Package renderer defines the visitor a finished vertical list is
// painted through, the way the teacher's renderer package defined a
// single Render(*layout.Result) contract for its PDF and (potential)
// alternate backends.
package renderer

import "github.com/ByLCY/typeset/typeset"

// Renderer paints a finished vertical list produced by
// typeset.Paragraph.Create. Implementations use the layout reader
// (typeset.ReadFull/ReadUntil) to walk the box tree into absolute
// positions.
type Renderer interface {
	Render(vlist typeset.List) error
}
