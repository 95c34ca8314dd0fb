package tempo

// Props holds the animatable properties of a target. Tween and instant
// actions read and write these fields directly.
type Props struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Alpha    float64
	Color    Color
	Visible  bool
}

// Tweenable is a Target whose Props can be animated.
type Tweenable interface {
	Target
	TweenProps() *Props
}

// disposable is implemented by targets that can be torn down while actions
// are still attached to them.
type disposable interface {
	IsDisposed() bool
}

// Node is a minimal animatable target. It carries identity, Props and an
// optional per-frame callback; it is not a scene graph.
type Node struct {
	// Identity
	ID   TargetID
	Name string

	Props

	// Metadata
	UserData any

	// OnUpdate is called from Update when the node is scheduled for per-frame
	// updates. Nil by default.
	OnUpdate func(dt float64)

	disposed bool
}

// NewNode creates a node with default Props (unit scale, opaque, white, visible).
func NewNode(name string) *Node {
	return &Node{
		ID:   NextTargetID(),
		Name: name,
		Props: Props{
			ScaleX:  1,
			ScaleY:  1,
			Alpha:   1,
			Color:   ColorWhite,
			Visible: true,
		},
	}
}

// TargetID implements Target. A nil node has the invalid id 0.
func (n *Node) TargetID() TargetID {
	if n == nil {
		return 0
	}
	return n.ID
}

// TweenProps implements Tweenable.
func (n *Node) TweenProps() *Props {
	return &n.Props
}

// Update implements Updatable.
func (n *Node) Update(dt float64) {
	if n.disposed || n.OnUpdate == nil {
		return
	}
	n.OnUpdate(dt)
}

// Dispose marks the node as dead. Tweens bound to it finish on their next step.
func (n *Node) Dispose() {
	n.disposed = true
	n.OnUpdate = nil
	n.UserData = nil
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
