package tempo

// ActionEventType identifies a point in an action's lifetime.
type ActionEventType uint8

const (
	ActionStarted  ActionEventType = iota // added to a manager and bound to its target
	ActionFinished                        // reported done and was stopped by the manager
	ActionRemoved                         // removed explicitly before finishing
)

// String returns a short lowercase name.
func (t ActionEventType) String() string {
	switch t {
	case ActionStarted:
		return "started"
	case ActionFinished:
		return "finished"
	case ActionRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ActionEvent describes an action lifecycle change.
type ActionEvent struct {
	Type     ActionEventType
	TargetID TargetID
	Tag      int
	Action   Action
}

// EventSink is the interface for optional lifecycle observers such as the
// Donburi adapter in tempo/ecs. When set on an ActionManager, every lifecycle
// change is forwarded synchronously.
type EventSink interface {
	EmitActionEvent(event ActionEvent)
}
