package dragkit

import "math"

// Options configures a Behavior at attach time. The zero value is a
// plain drag: both axes, default dead zone, no rotation or scale
// response, offsets reset on release, spring settle animation.
type Options struct {
	// Axes restricts which translation components visually apply.
	Axes Axes

	// MinDistance is the cumulative movement in pixels required before
	// the stage recognizes a drag and the first change event fires.
	// Zero uses the stage's dead zone.
	MinDistance float64

	// Accumulate keeps the drag offset when a gesture ends, folding each
	// completed translation into the committed offset. When false
	// (default), the node animates back to its rest position on release
	// and the translation is discarded.
	Accumulate bool

	// Curve animates transform updates and the settle-back transition.
	// The zero value uses DefaultCurve.
	Curve Curve

	// RotationMultiplier scales the rotation response to horizontal drag
	// distance. Zero disables rotation.
	RotationMultiplier float64

	// ScaleMultiplier scales the shrink response to drag distance along
	// the configured axes. Zero disables shrink.
	ScaleMultiplier float64

	// OnChanged is invoked with the raw cumulative translation on every
	// change event, and once more with the rest translation after an
	// accumulating gesture ends. Optional.
	OnChanged func(translation Vec2)

	// OnEnded is invoked when a drag ends: with the completed gesture's
	// translation when Accumulate is false, or with the committed offset
	// before this gesture is folded in when Accumulate is true. Optional.
	OnEnded func(translation Vec2)

	// Viewport supplies the width used to normalize rotation and scale
	// percentages. Nil uses WindowWidth.
	Viewport WidthProvider
}

// Behavior is a drag gesture attached to a single Node. It owns the
// drag's transient state (live offset, committed offset, derived
// rotation and scale) and applies the resulting transform to the node
// through animated transitions.
//
// All mutation happens synchronously on the host's update loop; each
// node owns its behavior exclusively, so no locking is needed.
type Behavior struct {
	node *Node
	opts Options

	phase     Phase
	live      Vec2
	committed Vec2
	rotation  float64 // degrees, derived
	scale     float64 // factor, derived

	// Node transform at attach time. Drag transforms compose with it so
	// the behavior cooperates with whatever layout positioned the node.
	baseX, baseY           float64
	baseScaleX, baseScaleY float64
	baseRotation           float64

	// Visual values currently applied to the node, animated toward the
	// targets above.
	appliedOffset   Vec2
	appliedRotation float64
	appliedScale    float64

	anim *transition
}

// Attach creates a Behavior with the given options and binds it to node,
// replacing any previously attached behavior. The node is marked
// interactable so the stage hit-tests it.
func Attach(node *Node, opts Options) *Behavior {
	if opts.Curve.immediate() {
		opts.Curve = DefaultCurve()
	}
	if opts.Viewport == nil {
		opts.Viewport = WindowWidth{}
	}

	b := &Behavior{
		node:         node,
		opts:         opts,
		phase:        PhaseAtRest,
		scale:        1,
		appliedScale: 1,
		baseX:        node.X,
		baseY:        node.Y,
		baseScaleX:   node.ScaleX,
		baseScaleY:   node.ScaleY,
		baseRotation: node.Rotation,
	}
	node.behavior = b
	node.Interactable = true
	return b
}

// Phase returns the behavior's current lifecycle state.
func (b *Behavior) Phase() Phase {
	return b.phase
}

// LiveOffset returns the in-progress drag translation, or the zero
// vector when at rest.
func (b *Behavior) LiveOffset() Vec2 {
	return b.live
}

// CommittedOffset returns the translation accumulated across completed
// gestures. Always zero unless Options.Accumulate is set.
func (b *Behavior) CommittedOffset() Vec2 {
	return b.committed
}

// Rotation returns the current target rotation in degrees.
func (b *Behavior) Rotation() float64 {
	return b.rotation
}

// Scale returns the current target scale factor.
func (b *Behavior) Scale() float64 {
	return b.scale
}

// DragChanged handles a drag movement event carrying the cumulative
// translation since the gesture start. It invokes OnChanged with the raw
// translation, updates the live offset, recomputes rotation and scale,
// and applies all three to the node as one animated transition.
func (b *Behavior) DragChanged(translation Vec2) {
	if b.opts.OnChanged != nil {
		b.opts.OnChanged(translation)
	}
	b.phase = PhaseDragging
	b.live = translation
	b.rotation = b.computeRotation(translation)
	b.scale = b.computeScale(translation, b.committed)
	b.animate()
}

// DragEnded handles the gesture's release event.
//
// When Accumulate is set, OnEnded receives the committed offset as it
// was before this gesture, the translation is folded into the committed
// offset, and OnChanged fires once more with the rest translation.
// Otherwise OnEnded receives the completed gesture's translation and the
// translation is discarded.
//
// Either way the live offset, rotation, and scale animate back to rest.
func (b *Behavior) DragEnded(translation Vec2) {
	if b.opts.Accumulate {
		if b.opts.OnEnded != nil {
			b.opts.OnEnded(b.committed)
		}
		b.committed = b.committed.Add(translation)
	} else if b.opts.OnEnded != nil {
		b.opts.OnEnded(translation)
	}

	b.rest()

	if b.opts.Accumulate && b.opts.OnChanged != nil {
		b.opts.OnChanged(b.live)
	}
	b.animate()
}

// DragCancelled handles the pointer being claimed away mid-drag (for
// example by a higher-priority gesture). The node animates back to rest,
// the committed offset is left untouched, and neither callback fires.
func (b *Behavior) DragCancelled() {
	if b.phase != PhaseDragging {
		return
	}
	b.rest()
	b.animate()
}

// Reset animates the node back to its attach-time transform and clears
// the committed offset.
func (b *Behavior) Reset() {
	b.committed = Vec2{}
	b.rest()
	b.animate()
}

// rest returns the transient drag state to its identity values.
func (b *Behavior) rest() {
	b.phase = PhaseAtRest
	b.live = Vec2{}
	b.rotation = 0
	b.scale = 1
}

// Update advances the in-flight transition by dt seconds and applies the
// interpolated transform to the node. Called by Stage.Update; hosts
// without a stage call it directly each frame.
func (b *Behavior) Update(dt float32) {
	if b.anim == nil {
		return
	}
	b.anim.update(dt)
	if b.anim.done {
		b.anim = nil
	}
	b.apply()
}

// animate starts a transition from the currently applied visual values
// to the behavior's targets using the configured curve.
func (b *Behavior) animate() {
	target := projectOffset(b.committed.Add(b.live), b.opts.Axes)

	tr := &transition{}
	tr.add(&b.appliedOffset.X, target.X, b.opts.Curve)
	tr.add(&b.appliedOffset.Y, target.Y, b.opts.Curve)
	tr.add(&b.appliedRotation, b.rotation, b.opts.Curve)
	tr.add(&b.appliedScale, b.scale, b.opts.Curve)
	b.anim = tr
}

// apply writes the applied visual values onto the bound node: scale,
// then rotation, then translation composed with the attach-time base
// transform.
func (b *Behavior) apply() {
	n := b.node
	if n == nil || n.IsDisposed() {
		return
	}
	n.ScaleX = b.baseScaleX * b.appliedScale
	n.ScaleY = b.baseScaleY * b.appliedScale
	n.Rotation = b.baseRotation + b.appliedRotation*math.Pi/180
	n.X = b.baseX + b.appliedOffset.X
	n.Y = b.baseY + b.appliedOffset.Y
	n.MarkDirty()
}

// projectOffset projects an offset onto the allowed axes: unchanged for
// AxesBoth, horizontal component zeroed for AxesVertical, vertical
// component zeroed for AxesHorizontal.
func projectOffset(offset Vec2, axes Axes) Vec2 {
	switch axes {
	case AxesHorizontal:
		offset.Y = 0
	case AxesVertical:
		offset.X = 0
	}
	return offset
}

// computeRotation maps horizontal drag distance to a rotation in
// degrees: the translation's fraction of half the viewport width, scaled
// by the rotation multiplier, times 10. A zero multiplier or unavailable
// viewport width yields 0.
func (b *Behavior) computeRotation(translation Vec2) float64 {
	half := halfViewportWidth(b.opts.Viewport)
	if half == 0 || b.opts.RotationMultiplier == 0 {
		return 0
	}
	percentage := translation.X * b.opts.RotationMultiplier / half
	return percentage * 10
}

// computeScale maps the magnitude of translation plus committed offset
// along the configured axes (average of both components for AxesBoth) to
// a shrink factor: 1 at rest, decreasing linearly to 0.8 when the
// scaled magnitude reaches half the viewport width. A zero multiplier or
// unavailable viewport width yields 1.
func (b *Behavior) computeScale(translation, committed Vec2) float64 {
	half := halfViewportWidth(b.opts.Viewport)
	if half == 0 || b.opts.ScaleMultiplier == 0 {
		return 1
	}

	total := translation.Add(committed)
	var offsetAmount float64
	switch b.opts.Axes {
	case AxesHorizontal:
		offsetAmount = math.Abs(total.X)
	case AxesVertical:
		offsetAmount = math.Abs(total.Y)
	default:
		offsetAmount = (math.Abs(total.X) + math.Abs(total.Y)) / 2
	}

	percentage := offsetAmount * b.opts.ScaleMultiplier / half
	return 1 - 0.2*percentage
}
