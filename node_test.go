package tempo

import "testing"

// --- Constructor defaults ---

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("test")
	if n.Name != "test" {
		t.Errorf("Name = %q, want %q", n.Name, "test")
	}
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if n.Color != (Color{1, 1, 1, 1}) {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.TweenProps() != &n.Props {
		t.Error("TweenProps should return the embedded Props")
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	h := NewHandle()
	if a.ID == b.ID || b.ID == h.TargetID() || a.ID == h.TargetID() {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, h.TargetID())
	}
}

func TestNilNodeHasInvalidID(t *testing.T) {
	var n *Node
	if n.TargetID() != 0 {
		t.Errorf("nil node TargetID = %d, want 0", n.TargetID())
	}
	if validTarget(n) {
		t.Error("nil node should not be a valid target")
	}
}

// --- Update ---

func TestNodeUpdateCallsOnUpdate(t *testing.T) {
	n := NewNode("n")
	var got float64
	n.OnUpdate = func(dt float64) { got += dt }
	n.Update(0.5)
	n.Update(0.25)
	if got != 0.75 {
		t.Errorf("accumulated dt = %v, want 0.75", got)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	n := NewNode("n")
	calls := 0
	n.OnUpdate = func(float64) { calls++ }
	n.UserData = "payload"

	n.Dispose()
	n.Update(1)

	if !n.IsDisposed() {
		t.Error("node should be disposed")
	}
	if calls != 0 {
		t.Error("disposed node should not run OnUpdate")
	}
	if n.UserData != nil {
		t.Error("UserData should be cleared")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewNode("n")
	n.Dispose()
	n.Dispose() // should not panic
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}
