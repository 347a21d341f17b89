package dragkit

import (
	"testing"
)

func stageWithCard(t *testing.T, opts Options) (*Stage, *Node, *Behavior) {
	t.Helper()
	s := NewStage()
	card := NewNode("card", 100, 100)
	s.Root().AddChild(card)
	if opts.Viewport == nil {
		opts.Viewport = FixedWidth(400)
	}
	b := Attach(card, opts)
	updateWorldTransform(s.root, identityTransform, false)
	return s, card, b
}

func TestDragRecognitionDeadZone(t *testing.T) {
	s, _, b := stageWithCard(t, Options{})

	var changed []Vec2
	b.opts.OnChanged = func(tr Vec2) { changed = append(changed, tr) }

	// Press inside the card.
	s.processPointer(0, 50, 50, true)

	// Movement within the 4px dead zone — no change events.
	s.processPointer(0, 52, 52, true)
	if len(changed) != 0 {
		t.Fatalf("expected no events within dead zone, got %v", changed)
	}

	// Beyond the dead zone — translation is cumulative from the start point.
	s.processPointer(0, 60, 50, true)
	if len(changed) != 1 || changed[0] != (Vec2{10, 0}) {
		t.Fatalf("expected [(10,0)], got %v", changed)
	}

	s.processPointer(0, 70, 55, true)
	if len(changed) != 2 || changed[1] != (Vec2{20, 5}) {
		t.Fatalf("expected cumulative (20,5), got %v", changed)
	}
}

func TestDragEndDeliversTranslation(t *testing.T) {
	s, _, b := stageWithCard(t, Options{})

	var ended []Vec2
	b.opts.OnEnded = func(tr Vec2) { ended = append(ended, tr) }

	s.processPointer(0, 50, 50, true)
	s.processPointer(0, 150, 50, true)
	s.processPointer(0, 150, 50, false)

	if len(ended) != 1 || ended[0] != (Vec2{100, 0}) {
		t.Fatalf("OnEnded received %v, want [(100,0)]", ended)
	}
	if b.Phase() != PhaseAtRest {
		t.Error("expected PhaseAtRest after release")
	}
}

func TestReleaseWithoutDragFiresNothing(t *testing.T) {
	s, _, b := stageWithCard(t, Options{})

	var ended int
	b.opts.OnEnded = func(Vec2) { ended++ }

	// Press and release without leaving the dead zone.
	s.processPointer(0, 50, 50, true)
	s.processPointer(0, 51, 51, true)
	s.processPointer(0, 51, 51, false)

	if ended != 0 {
		t.Errorf("OnEnded fired %d times for a tap, want 0", ended)
	}
}

func TestMinDistanceOverridesDeadZone(t *testing.T) {
	s, _, b := stageWithCard(t, Options{MinDistance: 20})

	var changed int
	b.opts.OnChanged = func(Vec2) { changed++ }

	s.processPointer(0, 50, 50, true)
	// 10px movement: beyond the stage dead zone but under MinDistance.
	s.processPointer(0, 60, 50, true)
	if changed != 0 {
		t.Fatal("drag should not start under MinDistance")
	}

	s.processPointer(0, 75, 50, true)
	if changed != 1 {
		t.Fatal("drag should start beyond MinDistance")
	}
}

func TestSetDeadZone(t *testing.T) {
	s, _, b := stageWithCard(t, Options{})
	s.SetDeadZone(30)

	var changed int
	b.opts.OnChanged = func(Vec2) { changed++ }

	s.processPointer(0, 50, 50, true)
	s.processPointer(0, 70, 50, true)
	if changed != 0 {
		t.Fatal("drag should not start within the 30px dead zone")
	}
	s.processPointer(0, 85, 50, true)
	if changed != 1 {
		t.Fatal("drag should start beyond the 30px dead zone")
	}
}

func TestPressOutsideNodeDoesNotDrag(t *testing.T) {
	s, _, b := stageWithCard(t, Options{})

	var changed int
	b.opts.OnChanged = func(Vec2) { changed++ }

	s.processPointer(0, 300, 300, true)
	s.processPointer(0, 400, 300, true)
	s.processPointer(0, 400, 300, false)

	if changed != 0 {
		t.Error("drag outside the node should not reach its behavior")
	}
}

func TestHitTopmostDraggable(t *testing.T) {
	s := NewStage()
	bottom := NewNode("bottom", 100, 100)
	top := NewNode("top", 100, 100)
	s.Root().AddChild(bottom)
	s.Root().AddChild(top)
	Attach(bottom, Options{Viewport: FixedWidth(400)})
	Attach(top, Options{Viewport: FixedWidth(400)})
	updateWorldTransform(s.root, identityTransform, false)

	if got := s.hitDraggable(50, 50); got != top {
		t.Errorf("hitDraggable = %v, want topmost node", got)
	}
}

func TestHitSkipsInvisibleAndNonInteractable(t *testing.T) {
	s := NewStage()
	visible := NewNode("visible", 100, 100)
	hidden := NewNode("hidden", 100, 100)
	hidden.Visible = false
	inert := NewNode("inert", 100, 100)
	s.Root().AddChild(visible)
	s.Root().AddChild(hidden)
	s.Root().AddChild(inert)
	Attach(visible, Options{Viewport: FixedWidth(400)})
	Attach(hidden, Options{Viewport: FixedWidth(400)})
	Attach(inert, Options{Viewport: FixedWidth(400)})
	inert.Interactable = false
	updateWorldTransform(s.root, identityTransform, false)

	if got := s.hitDraggable(50, 50); got != visible {
		t.Errorf("hitDraggable = %v, want the visible interactable node", got)
	}
}

func TestHitTransformedNode(t *testing.T) {
	s := NewStage()
	card := NewNode("card", 100, 100)
	card.SetPosition(200, 200)
	s.Root().AddChild(card)
	Attach(card, Options{Viewport: FixedWidth(400)})
	updateWorldTransform(s.root, identityTransform, false)

	if s.hitDraggable(50, 50) != nil {
		t.Error("expected miss at origin")
	}
	if s.hitDraggable(250, 250) != card {
		t.Error("expected hit at (250,250)")
	}
}

func TestCancelPointerRollsBackDrag(t *testing.T) {
	s, _, b := stageWithCard(t, Options{Accumulate: true})

	var ended int
	b.opts.OnEnded = func(Vec2) { ended++ }

	s.processPointer(0, 50, 50, true)
	s.processPointer(0, 120, 50, true)
	if b.Phase() != PhaseDragging {
		t.Fatal("expected an active drag")
	}

	s.CancelPointer(0)

	if b.Phase() != PhaseAtRest {
		t.Error("expected PhaseAtRest after cancel")
	}
	if ended != 0 {
		t.Error("OnEnded must not fire on cancel")
	}
	if b.CommittedOffset() != (Vec2{}) {
		t.Errorf("CommittedOffset = %v, want untouched zero", b.CommittedOffset())
	}

	// A release after the cancel is inert.
	s.processPointer(0, 120, 50, false)
	if ended != 0 {
		t.Error("release after cancel must not fire OnEnded")
	}
}

func TestCancelPointerOutOfRange(t *testing.T) {
	s := NewStage()
	s.CancelPointer(-1)
	s.CancelPointer(maxPointers)
}

func TestIndependentPointers(t *testing.T) {
	s := NewStage()
	left := NewNode("left", 100, 100)
	right := NewNode("right", 100, 100)
	right.SetPosition(200, 0)
	s.Root().AddChild(left)
	s.Root().AddChild(right)
	lb := Attach(left, Options{Viewport: FixedWidth(400)})
	rb := Attach(right, Options{Viewport: FixedWidth(400)})
	updateWorldTransform(s.root, identityTransform, false)

	var leftDrags, rightDrags int
	lb.opts.OnChanged = func(Vec2) { leftDrags++ }
	rb.opts.OnChanged = func(Vec2) { rightDrags++ }

	// Touch pointer 1 drags the left card while touch pointer 2 drags the right.
	s.processPointer(1, 50, 50, true)
	s.processPointer(2, 250, 50, true)
	s.processPointer(1, 70, 50, true)
	s.processPointer(2, 270, 50, true)
	s.processPointer(1, 70, 50, false)
	s.processPointer(2, 270, 50, false)

	if leftDrags != 1 || rightDrags != 1 {
		t.Errorf("drags = (%d,%d), want (1,1)", leftDrags, rightDrags)
	}
}

func TestUpdateBehaviorsAdvancesTransitions(t *testing.T) {
	s, card, b := stageWithCard(t, Options{Curve: snapCurve})

	b.DragChanged(Vec2{50, 0})
	updateBehaviors(s.root, snapCurve.Duration)

	if card.X != 50 {
		t.Errorf("card.X = %v, want 50 after transition", card.X)
	}
}

func TestStageRootInteractable(t *testing.T) {
	s := NewStage()
	if !s.Root().Interactable {
		t.Error("stage root should be interactable so the tree is walkable")
	}
}
