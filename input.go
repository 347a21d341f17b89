package dragkit

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers     = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDeadZone = 4.0 // pixels
)

// pointerState tracks one pointer across frames.
type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	target   *Node // node whose behavior owns this gesture
	dragging bool
}

// Stage owns the node tree, pointer tracking, and drag recognition. It
// dispatches cumulative drag translations to the behavior attached to
// the node under the pointer.
//
// All processing is single-threaded: call Update once per frame from the
// host's game loop.
type Stage struct {
	root *Node

	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	deadZone     float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
	script      *ScriptRunner
}

// NewStage creates a stage with a pre-created root node.
func NewStage() *Stage {
	root := NewNode("root", 0, 0)
	root.Interactable = true
	return &Stage{
		root:     root,
		deadZone: defaultDeadZone,
	}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node {
	return s.root
}

// SetDeadZone sets the minimum movement in pixels before a drag is
// recognized, for behaviors that don't set their own MinDistance.
func (s *Stage) SetDeadZone(pixels float64) {
	s.deadZone = pixels
}

// Update refreshes world transforms, processes pointer input, and
// advances behavior transitions by one frame.
func (s *Stage) Update() {
	s.step(float32(1.0 / float64(ebiten.TPS())))
}

// step runs one frame with an explicit time delta.
func (s *Stage) step(dt float32) {
	updateWorldTransform(s.root, identityTransform, false)

	if s.script != nil {
		s.script.step(s)
	}

	// Injected events replace real mouse input for the frame; touch
	// input still drains so vanished touches release cleanly.
	if !s.processInjected() {
		s.processMouse()
	}
	s.processTouches()

	updateBehaviors(s.root, dt)
}

// updateBehaviors advances the transition of every attached behavior in
// the subtree.
func updateBehaviors(n *Node, dt float32) {
	if n.behavior != nil {
		n.behavior.Update(dt)
	}
	for _, child := range n.children {
		updateBehaviors(child, dt)
	}
}

// --- Hit testing ---

// collectDraggable walks the tree in paint order, appending visible
// interactable nodes with an attached behavior to buf.
func (s *Stage) collectDraggable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.behavior != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = s.collectDraggable(child, buf)
	}
	return buf
}

// hitDraggable finds the topmost draggable node at (x, y).
// Returns nil if nothing is hit.
func (s *Stage) hitDraggable(x, y float64) *Node {
	s.hitBuf = s.collectDraggable(s.root, s.hitBuf[:0])

	// Iterate backward: topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(x, y)
		if n.containsLocal(lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processMouse handles mouse input (pointer 0).
func (s *Stage) processMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouches handles touch input (pointers 1-9).
func (s *Stage) processTouches() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// A vanished touch is a release at its last known position.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Stage) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the drag state machine for a single pointer.
// Translations delivered to the behavior are cumulative from the
// gesture's start point.
func (s *Stage) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX = x
		ps.startY = y
		ps.lastX = x
		ps.lastY = y
		ps.target = s.hitDraggable(x, y)
		ps.dragging = false

	case !pressed && ps.down:
		if ps.dragging && ps.target != nil && ps.target.behavior != nil {
			ps.target.behavior.DragEnded(Vec2{x - ps.startX, y - ps.startY})
		}
		ps.down = false
		ps.target = nil
		ps.dragging = false

	case pressed && ps.down:
		if x == ps.lastX && y == ps.lastY {
			return
		}
		if ps.target != nil && ps.target.behavior != nil {
			dx := x - ps.startX
			dy := y - ps.startY
			if !ps.dragging && math.Sqrt(dx*dx+dy*dy) > s.gateFor(ps.target) {
				ps.dragging = true
			}
			if ps.dragging {
				ps.target.behavior.DragChanged(Vec2{dx, dy})
			}
		}
		ps.lastX = x
		ps.lastY = y
	}
}

// gateFor returns the recognition distance for a node's behavior: its
// MinDistance when set, the stage dead zone otherwise.
func (s *Stage) gateFor(n *Node) float64 {
	if n.behavior != nil && n.behavior.opts.MinDistance > 0 {
		return n.behavior.opts.MinDistance
	}
	return s.deadZone
}

// CancelPointer stops tracking pointerID, for hosts where a
// higher-priority gesture claims the pointer. An in-progress drag rolls
// back to rest via Behavior.DragCancelled; the committed offset is
// preserved.
func (s *Stage) CancelPointer(pointerID int) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]
	if ps.dragging && ps.target != nil && ps.target.behavior != nil {
		ps.target.behavior.DragCancelled()
	}
	ps.down = false
	ps.target = nil
	ps.dragging = false
}
