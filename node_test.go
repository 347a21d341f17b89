package dragkit

import "testing"

func TestAddChildReparents(t *testing.T) {
	a := NewNode("a", 0, 0)
	b := NewNode("b", 0, 0)
	child := NewNode("child", 10, 10)

	a.AddChild(child)
	if child.Parent != a || len(a.Children()) != 1 {
		t.Fatal("child not added to a")
	}

	b.AddChild(child)
	if child.Parent != b {
		t.Error("child not reparented to b")
	}
	if len(a.Children()) != 0 {
		t.Error("child still listed under a")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil child")
		}
	}()
	NewNode("a", 0, 0).AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewNode("a", 0, 0)
	b := NewNode("b", 0, 0)
	a.AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.AddChild(a)
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewNode("a", 0, 0)
	b := NewNode("b", 0, 0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when removing a non-child")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveFromParentNoParent(t *testing.T) {
	n := NewNode("orphan", 0, 0)
	n.RemoveFromParent() // no-op, must not panic
}

func TestDisposeDetachesSubtreeAndBehavior(t *testing.T) {
	root := NewNode("root", 0, 0)
	n := NewNode("n", 10, 10)
	child := NewNode("child", 10, 10)
	root.AddChild(n)
	n.AddChild(child)
	b := Attach(n, Options{})

	n.Dispose()

	if !n.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree not disposed")
	}
	if len(root.Children()) != 0 {
		t.Error("disposed node still attached to root")
	}
	if n.Behavior() != nil {
		t.Error("behavior still attached after dispose")
	}
	if b.node != nil {
		t.Error("behavior still references disposed node")
	}

	n.Dispose() // second dispose is a no-op
}

func TestContainsLocal(t *testing.T) {
	n := NewNode("hit", 100, 50)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 25, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 100, 50, true},
		{"outside left", -1, 25, false},
		{"outside right", 101, 25, false},
		{"outside bottom", 50, 51, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.containsLocal(tt.x, tt.y); got != tt.want {
				t.Errorf("containsLocal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestContainsLocalZeroSized(t *testing.T) {
	n := NewNode("zero", 0, 0)
	if n.containsLocal(0, 0) {
		t.Error("zero-sized node should not be hit-testable")
	}
}

func TestNodeIDsIncrease(t *testing.T) {
	a := NewNode("a", 0, 0)
	b := NewNode("b", 0, 0)
	if b.ID <= a.ID {
		t.Errorf("IDs should increase: a=%d b=%d", a.ID, b.ID)
	}
}
