package typeset

// Pos is an absolute position in the coordinate system a Box tree is
// walked into: X grows rightward and Y grows downward, so walking down a
// vertical list adds each box's height and then its depth; a box's own
// height sits above (at smaller Y than) its reference point and its depth
// below it.
type Pos struct {
	X, Y float64
}

// Visitor is called once per visited leaf or container box, in document
// order, with the box's absolute reference-point position.
type Visitor func(box *Box, pos Pos)

// StopVisitor is like Visitor but may request early termination of the
// walk by returning true.
type StopVisitor func(box *Box, pos Pos) bool

// ReadFull walks every box in root, in document order, starting at
// (0, root.Height) so the whole tree sits at non-negative Y.
func ReadFull(root *Box, visit Visitor) {
	if root == nil {
		return
	}
	walkFull(root, Pos{0, root.Height}, visit)
}

func walkFull(b *Box, pos Pos, visit Visitor) {
	visit(b, pos)
	if b.Kind != BoxList {
		return
	}
	switch b.ListKind {
	case ListHBox:
		walkHBoxFull(b, pos, visit)
	case ListVBox:
		walkVBoxFull(b, pos, visit)
	}
}

func walkHBoxFull(b *Box, pos Pos, visit Visitor) {
	cur := pos
	for _, n := range b.Children {
		switch node := n.(type) {
		case *Box:
			if node.Kind == BoxList {
				walkFull(node, Pos{cur.X, cur.Y + node.ShiftAmount}, visit)
			} else {
				visit(node, cur)
			}
			cur.X += node.Width
		case *Kern:
			cur.X += node.Space
		case *Glue:
			cur.X += node.Space + flexContribution(node, b.GlueRatio, b.GlueOrder)
		}
	}
}

func walkVBoxFull(b *Box, pos Pos, visit Visitor) {
	cur := Pos{pos.X, pos.Y - b.Height}
	for _, n := range b.Children {
		switch node := n.(type) {
		case *Box:
			cur.Y += node.Height
			if node.Kind == BoxList {
				walkFull(node, Pos{cur.X + node.ShiftAmount, cur.Y}, visit)
			} else {
				visit(node, cur)
			}
			cur.Y += node.Depth
		case *Kern:
			cur.Y += node.Space
		case *Glue:
			cur.Y += node.Space + flexContribution(node, b.GlueRatio, b.GlueOrder)
		}
	}
}

// ReadUntil walks root like ReadFull but stops as soon as visit returns
// true, reporting whether the walk was stopped early.
func ReadUntil(root *Box, visit StopVisitor) bool {
	if root == nil {
		return false
	}
	return walkUntil(root, Pos{0, root.Height}, visit)
}

func walkUntil(b *Box, pos Pos, visit StopVisitor) bool {
	if visit(b, pos) {
		return true
	}
	if b.Kind != BoxList {
		return false
	}
	switch b.ListKind {
	case ListHBox:
		return walkHBoxUntil(b, pos, visit)
	case ListVBox:
		return walkVBoxUntil(b, pos, visit)
	}
	return false
}

func walkHBoxUntil(b *Box, pos Pos, visit StopVisitor) bool {
	cur := pos
	for _, n := range b.Children {
		switch node := n.(type) {
		case *Box:
			if node.Kind == BoxList {
				if walkUntil(node, Pos{cur.X, cur.Y + node.ShiftAmount}, visit) {
					return true
				}
			} else if visit(node, cur) {
				return true
			}
			cur.X += node.Width
		case *Kern:
			cur.X += node.Space
		case *Glue:
			cur.X += node.Space + flexContribution(node, b.GlueRatio, b.GlueOrder)
		}
	}
	return false
}

func walkVBoxUntil(b *Box, pos Pos, visit StopVisitor) bool {
	cur := Pos{pos.X, pos.Y - b.Height}
	for _, n := range b.Children {
		switch node := n.(type) {
		case *Box:
			cur.Y += node.Height
			if node.Kind == BoxList {
				if walkUntil(node, Pos{cur.X + node.ShiftAmount, cur.Y}, visit) {
					return true
				}
			} else if visit(node, cur) {
				return true
			}
			cur.Y += node.Depth
		case *Kern:
			cur.Y += node.Space
		case *Glue:
			cur.Y += node.Space + flexContribution(node, b.GlueRatio, b.GlueOrder)
		}
	}
	return false
}
