package tempo

import (
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// actionElement holds every action running on one target.
type actionElement struct {
	target  Target
	actions []Action

	// actionIndex is the position of the action being stepped. It lives on
	// the record so removals during a Step can shift it back.
	actionIndex           int
	currentAction         Action
	currentActionSalvaged bool

	paused bool
	state  recordState // PendingDeletion while salvaged by the running loop
}

// ActionManager steps every running action once per frame. Register it with
// a Scheduler at PrioritySystem (NewDirector does this) so actions run before
// user update callbacks.
//
// Actions and callbacks may add or remove any action, their own included,
// while Update is running. The record being stepped is never destroyed
// mid-loop: it is salvaged and removed once its loop finishes if it ended up
// empty.
type ActionManager struct {
	id       TargetID
	targets  map[TargetID]*actionElement
	elements []*actionElement

	// elementIndex is the record being stepped; adjusted when earlier
	// records are removed during Update.
	elementIndex int
	current      *actionElement

	sink  EventSink
	log   *zap.Logger
	steps int
}

// NewActionManager creates an empty ActionManager.
func NewActionManager() *ActionManager {
	return &ActionManager{
		id:      NextTargetID(),
		targets: make(map[TargetID]*actionElement),
		log:     zap.NewNop(),
	}
}

// TargetID implements Target so the manager can be scheduled.
func (m *ActionManager) TargetID() TargetID {
	return m.id
}

// SetLogger sets the logger used for diagnostics. Nil restores the no-op logger.
func (m *ActionManager) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	m.log = log
}

// SetEventSink sets the optional lifecycle observer.
func (m *ActionManager) SetEventSink(sink EventSink) {
	m.sink = sink
}

func (m *ActionManager) emit(typ ActionEventType, target Target, a Action) {
	if m.sink == nil {
		return
	}
	ev := ActionEvent{Type: typ, Action: a, Tag: a.Tag()}
	if target != nil {
		ev.TargetID = target.TargetID()
	}
	m.sink.EmitActionEvent(ev)
}

// AddAction appends action to target's list and binds it with
// StartWithTarget. paused only applies when target has no record yet.
//
// Actions are looked up by identity, so their dynamic type must be
// comparable. Use pointer types; AddAction panics otherwise.
func (m *ActionManager) AddAction(action Action, target Target, paused bool) {
	if action == nil {
		panic("tempo: AddAction requires a non-nil action")
	}
	if !reflect.TypeOf(action).Comparable() {
		panic("tempo: AddAction requires a comparable action type (use a pointer)")
	}
	if !validTarget(target) {
		panic("tempo: AddAction requires a non-nil target")
	}
	if globalDebug {
		debugCheckDisposed(target, "AddAction")
	}

	e, ok := m.targets[target.TargetID()]
	if !ok {
		e = &actionElement{target: target, paused: paused}
		m.targets[target.TargetID()] = e
		m.elements = append(m.elements, e)
	} else if e.state == recordPendingDeletion {
		e.state = recordActive
	}
	e.actions = append(e.actions, action)
	action.StartWithTarget(target)
	m.emit(ActionStarted, target, action)

	if globalDebug {
		debugCheckActionCount(m.log, e)
	}
}

// RemoveAllActions removes every action from every target.
func (m *ActionManager) RemoveAllActions() {
	for _, e := range slices.Clone(m.elements) {
		m.RemoveAllActionsFromTarget(e.target, true)
	}
}

// RemoveAllActionsFromTarget removes every action of target. When target is
// being stepped and forceDelete is false its record survives until the
// current loop ends, so actions added in the meantime keep running.
func (m *ActionManager) RemoveAllActionsFromTarget(target Target, forceDelete bool) {
	if !validTarget(target) {
		return
	}
	e, ok := m.targets[target.TargetID()]
	if !ok {
		return
	}
	if e.currentAction != nil && !e.currentActionSalvaged && slices.Contains(e.actions, e.currentAction) {
		e.currentActionSalvaged = true
	}
	removed := e.actions
	e.actions = nil
	e.actionIndex = -1
	for _, a := range removed {
		m.emit(ActionRemoved, target, a)
	}

	if m.current == e && !forceDelete {
		e.state = recordPendingDeletion
		return
	}
	m.unlinkElement(e)
}

// RemoveAction removes action from the record of its original target.
func (m *ActionManager) RemoveAction(action Action) {
	if action == nil {
		return
	}
	target := action.OriginalTarget()
	if !validTarget(target) {
		return
	}
	e, ok := m.targets[target.TargetID()]
	if !ok {
		m.log.Debug("remove action: target has no actions", zap.Uint32("target", uint32(target.TargetID())))
		return
	}
	if i := slices.Index(e.actions, action); i >= 0 {
		m.removeActionAt(e, i)
		m.emit(ActionRemoved, target, action)
	}
}

// RemoveActionByTag removes the first action of target with the given tag.
func (m *ActionManager) RemoveActionByTag(tag int, target Target) {
	if tag == TagInvalid {
		m.log.Debug("remove action by tag: invalid tag")
	}
	if !validTarget(target) {
		return
	}
	e, ok := m.targets[target.TargetID()]
	if !ok {
		return
	}
	for i, a := range e.actions {
		if a != nil && a.Tag() == tag && sameTarget(a.OriginalTarget(), target) {
			m.removeActionAt(e, i)
			m.emit(ActionRemoved, target, a)
			return
		}
	}
}

// RemoveAllActionsByTag removes every action of target with the given tag.
func (m *ActionManager) RemoveAllActionsByTag(tag int, target Target) {
	if !validTarget(target) {
		return
	}
	for {
		e, ok := m.targets[target.TargetID()]
		if !ok {
			return
		}
		i := slices.IndexFunc(e.actions, func(a Action) bool {
			return a != nil && a.Tag() == tag && sameTarget(a.OriginalTarget(), target)
		})
		if i < 0 {
			return
		}
		a := e.actions[i]
		m.removeActionAt(e, i)
		m.emit(ActionRemoved, target, a)
	}
}

// removeActionAt deletes the action at index i and shifts the running index
// back when the slot is at or before it, so the next increment lands on the
// action that followed the removed one.
func (m *ActionManager) removeActionAt(e *actionElement, i int) {
	if e.actions[i] == e.currentAction && !e.currentActionSalvaged {
		e.currentActionSalvaged = true
	}
	e.actions = slices.Delete(e.actions, i, i+1)
	if e.actionIndex >= i {
		e.actionIndex--
	}
	if len(e.actions) == 0 {
		if m.current == e {
			e.state = recordPendingDeletion
		} else {
			m.unlinkElement(e)
		}
	}
}

// unlinkElement forgets a record. The record being stepped is only detached
// from the lookup structures; the loop stepping it still holds its pointer.
func (m *ActionManager) unlinkElement(e *actionElement) {
	if e.state == recordRemoved {
		return
	}
	e.state = recordRemoved
	if cur, ok := m.targets[e.target.TargetID()]; ok && cur == e {
		delete(m.targets, e.target.TargetID())
	}
	if i := slices.Index(m.elements, e); i >= 0 {
		m.elements = slices.Delete(m.elements, i, i+1)
		if i <= m.elementIndex {
			m.elementIndex--
		}
	}
}

// ActionByTag returns the first action of target with the given tag, or nil.
func (m *ActionManager) ActionByTag(tag int, target Target) Action {
	if tag == TagInvalid {
		m.log.Debug("action by tag: invalid tag")
	}
	if !validTarget(target) {
		return nil
	}
	e, ok := m.targets[target.TargetID()]
	if !ok {
		return nil
	}
	for _, a := range e.actions {
		if a != nil && a.Tag() == tag {
			return a
		}
	}
	m.log.Debug("action by tag: not found", zap.Int("tag", tag), zap.Uint32("target", uint32(target.TargetID())))
	return nil
}

// NumberOfRunningActionsInTarget returns how many actions target has.
// Composite actions count as one.
func (m *ActionManager) NumberOfRunningActionsInTarget(target Target) int {
	if !validTarget(target) {
		return 0
	}
	e, ok := m.targets[target.TargetID()]
	if !ok {
		return 0
	}
	return len(e.actions)
}

// NumberOfTargets returns how many targets currently have a record.
func (m *ActionManager) NumberOfTargets() int {
	return len(m.elements)
}

// PauseTarget stops stepping target's actions without removing them.
func (m *ActionManager) PauseTarget(target Target) {
	if e := m.element(target); e != nil {
		e.paused = true
	}
}

// ResumeTarget undoes PauseTarget.
func (m *ActionManager) ResumeTarget(target Target) {
	if e := m.element(target); e != nil {
		e.paused = false
	}
}

// IsTargetPaused reports whether target's actions are paused.
func (m *ActionManager) IsTargetPaused(target Target) bool {
	if e := m.element(target); e != nil {
		return e.paused
	}
	return false
}

// PauseAllRunningActions pauses every target that is not already paused and
// returns them, so the caller can resume exactly that set later.
func (m *ActionManager) PauseAllRunningActions() []Target {
	var paused []Target
	for _, e := range m.elements {
		if !e.paused {
			e.paused = true
			paused = append(paused, e.target)
		}
	}
	return paused
}

// ResumeTargets resumes every target in the list.
func (m *ActionManager) ResumeTargets(targets []Target) {
	for _, t := range targets {
		m.ResumeTarget(t)
	}
}

func (m *ActionManager) element(target Target) *actionElement {
	if !validTarget(target) {
		return nil
	}
	return m.targets[target.TargetID()]
}

// Update steps every action of every unpaused target by dt (times the
// action's own speed), then stops and removes the actions that are done.
func (m *ActionManager) Update(dt float64) {
	m.steps = 0
	defer func() { m.current = nil }()

	for m.elementIndex = 0; m.elementIndex < len(m.elements); m.elementIndex++ {
		e := m.elements[m.elementIndex]
		m.current = e

		if !e.paused {
			m.stepElement(e, dt)
		}

		// A salvaged record that picked up new actions during the loop stays.
		m.current = nil
		if len(e.actions) == 0 {
			m.unlinkElement(e)
		} else if e.state == recordPendingDeletion {
			e.state = recordActive
		}
	}
}

func (m *ActionManager) stepElement(e *actionElement, dt float64) {
	for e.actionIndex = 0; e.actionIndex < len(e.actions); e.actionIndex++ {
		a := e.actions[e.actionIndex]
		if a == nil {
			continue
		}
		e.currentAction = a
		e.currentActionSalvaged = false

		a.Step(dt * speedOf(a))
		m.steps++

		// Salvaged means removed during its own Step: already gone from the list.
		if !e.currentActionSalvaged && a.IsDone() {
			a.Stop()
			e.currentAction = nil
			if i := slices.Index(e.actions, a); i >= 0 {
				m.removeActionAt(e, i)
			}
			m.emit(ActionFinished, e.target, a)
		}
		e.currentAction = nil
	}
}
