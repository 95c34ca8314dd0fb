package tempo

// TargetID is the identity handle of anything registered with a Scheduler or
// an ActionManager. Zero is never a valid id.
type TargetID uint32

// targetIDCounter is a plain counter. tempo is single-threaded.
var targetIDCounter uint32

// NextTargetID mints a new unique TargetID.
func NextTargetID() TargetID {
	targetIDCounter++
	return TargetID(targetIDCounter)
}

// Target is an externally owned object with a stable identity. The scheduler
// and the action manager only ever hold it as a non-owning reference.
type Target interface {
	TargetID() TargetID
}

// Updatable is a Target that wants a per-frame Update(dt) call.
type Updatable interface {
	Target
	Update(dt float64)
}

// Handle is an embeddable identity for user types:
//
//	type enemy struct {
//		tempo.Handle
//		hp int
//	}
//
//	e := &enemy{Handle: tempo.NewHandle()}
type Handle struct {
	id TargetID
}

// NewHandle returns a Handle with a freshly minted id.
func NewHandle() Handle {
	return Handle{id: NextTargetID()}
}

// TargetID implements Target.
func (h Handle) TargetID() TargetID {
	return h.id
}

// validTarget reports whether t is usable as a registration key.
func validTarget(t Target) bool {
	return t != nil && t.TargetID() != 0
}

// sameTarget compares identities rather than interface values, which may hold
// non-comparable types.
func sameTarget(a, b Target) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.TargetID() == b.TargetID()
}
