package dragkit

// nodeIDCounter is a plain counter (no atomic — dragkit is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a visual element in the stage's view tree. Children inherit
// their parent's transform. A Node carries only what drag tracking
// needs: a local transform, hit dimensions, and an optional attached
// Behavior.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians
	PivotX   float64
	PivotY   float64

	// Hit-test dimensions in local coordinates, origin at the top-left.
	// A node with zero dimensions is not hit-testable.
	Width, Height float64

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Computed world transform, refreshed during Stage.Update.
	worldTransform [6]float64
	transformDirty bool

	behavior *Behavior
	disposed bool
}

// NewNode creates a node with the given name and hit dimensions.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Width:          width,
		Height:         height,
		Visible:        true,
		transformDirty: true,
	}
}

// Behavior returns the drag behavior attached to this node, or nil.
func (n *Node) Behavior() *Behavior {
	return n.behavior
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dragkit: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("dragkit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dragkit: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated
// by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// --- Disposal ---

// Dispose removes this node from its parent, detaches its behavior,
// marks it as disposed, and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	if n.behavior != nil {
		n.behavior.node = nil
		n.behavior = nil
	}
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation on
// the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Hit testing ---

// containsLocal reports whether (lx, ly) falls inside the node's hit
// dimensions. Zero-sized nodes are not hit-testable.
func (n *Node) containsLocal(lx, ly float64) bool {
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in
// the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
