package tempo

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// recordState tracks the lifetime of bookkeeping records that may be removed
// while an Update is iterating over them.
type recordState uint8

const (
	recordActive recordState = iota
	recordPendingDeletion
	recordRemoved
)

// updateEntry is the registration of one Updatable target.
type updateEntry struct {
	target   Updatable
	priority int
	paused   bool
	state    recordState
	bucket   *[]*updateEntry // owning priority bucket
}

// timerElement holds every Timer registered for one target.
type timerElement struct {
	target Target
	timers []*Timer

	// timerIndex is the position of the timer being updated. It lives on the
	// record so removals during a callback can shift it back.
	timerIndex           int
	currentTimer         *Timer
	currentTimerSalvaged bool

	paused bool
	state  recordState
}

// schedulerStats counts work done during the most recent Update.
type schedulerStats struct {
	updates int
	timers  int
}

// Scheduler dispatches per-frame updates and interval callbacks. It is
// single-threaded: every method except Post must be called from the goroutine
// that drives Update.
//
// Callbacks may schedule and unschedule anything, themselves included, while
// Update is running. Update entries removed mid-frame are marked and swept at
// the end of the frame; timer records are removed by index with the running
// index adjusted, and the record currently being iterated is salvaged until its
// loop finishes.
type Scheduler struct {
	timeScale float64

	// Update targets, by priority bucket.
	updatesNeg  []*updateEntry
	updatesZero []*updateEntry
	updatesPos  []*updateEntry
	updates     map[TargetID]*updateEntry
	locked      bool
	snapshot    []*updateEntry

	// Interval callbacks.
	timers                map[TargetID]*timerElement
	timerTargets          []*timerElement
	timerTargetIndex      int
	currentTarget         *timerElement
	currentTargetSalvaged bool

	postMu  sync.Mutex
	posted  []func()
	running []func()

	log   *zap.Logger
	stats schedulerStats
}

// NewScheduler creates an empty scheduler with a time scale of 1.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timeScale: 1,
		updates:   make(map[TargetID]*updateEntry),
		timers:    make(map[TargetID]*timerElement),
		log:       zap.NewNop(),
	}
}

// SetLogger sets the logger used for warnings and diagnostics. Nil restores
// the no-op logger.
func (s *Scheduler) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
}

// SetTimeScale sets the multiplier applied to dt before any dispatch.
// Values below 1 give slow motion, above 1 fast forward.
func (s *Scheduler) SetTimeScale(scale float64) {
	s.timeScale = scale
}

// TimeScale returns the current dt multiplier.
func (s *Scheduler) TimeScale() float64 {
	return s.timeScale
}

// --- Per-frame updates ---

// ScheduleUpdate registers target for an Update(dt) call every frame. Lower
// priorities run first; equal priorities run in registration order.
//
// Scheduling a target that is already registered only cancels a pending
// unschedule. A different priority is not applied.
func (s *Scheduler) ScheduleUpdate(target Updatable, priority int, paused bool) {
	if !validTarget(target) {
		panic("tempo: ScheduleUpdate requires a non-nil target")
	}
	id := target.TargetID()
	if e, ok := s.updates[id]; ok {
		if e.priority != priority {
			s.log.Warn("update priority change ignored for registered target",
				zap.Uint32("target", uint32(id)),
				zap.Int("priority", e.priority),
				zap.Int("requested", priority))
		}
		if e.state == recordPendingDeletion {
			e.state = recordActive
		}
		return
	}

	e := &updateEntry{target: target, priority: priority, paused: paused}
	switch {
	case priority == 0:
		s.updatesZero = append(s.updatesZero, e)
		e.bucket = &s.updatesZero
	case priority < 0:
		s.updatesNeg = insertByPriority(s.updatesNeg, e)
		e.bucket = &s.updatesNeg
	default:
		s.updatesPos = insertByPriority(s.updatesPos, e)
		e.bucket = &s.updatesPos
	}
	s.updates[id] = e
}

// insertByPriority places e before the first entry with a strictly greater
// priority, so equal priorities keep registration order.
func insertByPriority(list []*updateEntry, e *updateEntry) []*updateEntry {
	for i, cur := range list {
		if e.priority < cur.priority {
			return slices.Insert(list, i, e)
		}
	}
	return append(list, e)
}

// UnscheduleUpdate stops per-frame updates for target. During Update the
// entry is only marked and is removed at the end of the frame.
func (s *Scheduler) UnscheduleUpdate(target Target) {
	if !validTarget(target) {
		return
	}
	e, ok := s.updates[target.TargetID()]
	if !ok {
		return
	}
	if s.locked {
		e.state = recordPendingDeletion
		return
	}
	s.removeUpdateEntry(e)
}

func (s *Scheduler) removeUpdateEntry(e *updateEntry) {
	if e.state == recordRemoved {
		return
	}
	if i := slices.Index(*e.bucket, e); i >= 0 {
		*e.bucket = slices.Delete(*e.bucket, i, i+1)
	}
	delete(s.updates, e.target.TargetID())
	e.state = recordRemoved
}

// --- Interval callbacks ---

// Schedule registers fn to run every interval seconds on behalf of target.
// The callback fires repeat+1 times (or until unscheduled when repeat is
// RepeatForever); delay postpones the first firing only. An interval of 0
// fires once per frame.
//
// Callbacks are identified by (target, key). Scheduling an existing pair only
// changes its interval.
func (s *Scheduler) Schedule(target Target, key string, fn Callback, interval float64, repeat int, delay float64, paused bool) {
	if !validTarget(target) {
		panic("tempo: Schedule requires a non-nil target")
	}
	if fn == nil {
		panic("tempo: Schedule requires a non-nil callback")
	}
	if key == "" {
		panic("tempo: Schedule requires a non-empty key")
	}
	if interval < 0 || delay < 0 || repeat < 0 {
		panic(fmt.Sprintf("tempo: invalid timer parameters interval=%v repeat=%d delay=%v", interval, repeat, delay))
	}

	id := target.TargetID()
	elt, ok := s.timers[id]
	if !ok {
		elt = &timerElement{target: target, paused: paused}
		s.timers[id] = elt
		s.timerTargets = append(s.timerTargets, elt)
	} else if elt.paused != paused {
		s.log.Warn("timer paused state differs from target; keeping target state",
			zap.Uint32("target", uint32(id)),
			zap.String("key", key),
			zap.Bool("paused", elt.paused))
	}

	for _, t := range elt.timers {
		if t.key == key {
			s.log.Warn("callback already scheduled; updating interval",
				zap.Uint32("target", uint32(id)),
				zap.String("key", key),
				zap.Float64("old", t.interval),
				zap.Float64("new", interval))
			t.interval = interval
			return
		}
	}
	elt.timers = append(elt.timers, newTimer(s, target, key, fn, interval, repeat, delay))

	if globalDebug {
		debugCheckTimerCount(s.log, elt)
	}
}

// ScheduleOnce runs fn a single time after delay seconds.
func (s *Scheduler) ScheduleOnce(target Target, key string, fn Callback, delay float64) {
	s.Schedule(target, key, fn, 0, 0, delay, false)
}

// IsScheduled reports whether a callback is registered under (target, key).
func (s *Scheduler) IsScheduled(target Target, key string) bool {
	if !validTarget(target) {
		return false
	}
	elt, ok := s.timers[target.TargetID()]
	if !ok {
		return false
	}
	return slices.ContainsFunc(elt.timers, func(t *Timer) bool { return t.key == key })
}

// Unschedule removes the callback registered under (target, key).
func (s *Scheduler) Unschedule(target Target, key string) {
	if !validTarget(target) {
		return
	}
	elt, ok := s.timers[target.TargetID()]
	if !ok {
		return
	}
	for i, t := range elt.timers {
		if t.key == key {
			s.removeTimerAt(elt, i)
			return
		}
	}
}

// removeTimer removes exactly t, if it is still registered.
func (s *Scheduler) removeTimer(t *Timer) {
	elt, ok := s.timers[t.target.TargetID()]
	if !ok {
		return
	}
	if i := slices.Index(elt.timers, t); i >= 0 {
		s.removeTimerAt(elt, i)
	}
}

func (s *Scheduler) removeTimerAt(elt *timerElement, i int) {
	if elt.timers[i] == elt.currentTimer && !elt.currentTimerSalvaged {
		elt.currentTimerSalvaged = true
	}
	elt.timers = slices.Delete(elt.timers, i, i+1)
	if elt.timerIndex >= i {
		elt.timerIndex--
	}
	if len(elt.timers) == 0 {
		if s.currentTarget == elt {
			s.currentTargetSalvaged = true
		} else {
			s.removeTimerElement(elt)
		}
	}
}

func (s *Scheduler) removeTimerElement(elt *timerElement) {
	if elt.state == recordRemoved {
		return
	}
	elt.state = recordRemoved
	delete(s.timers, elt.target.TargetID())
	if i := slices.Index(s.timerTargets, elt); i >= 0 {
		s.timerTargets = slices.Delete(s.timerTargets, i, i+1)
		if i <= s.timerTargetIndex {
			s.timerTargetIndex--
		}
	}
}

// unscheduleTimers drops every callback of target but leaves its update entry.
func (s *Scheduler) unscheduleTimers(target Target) {
	elt, ok := s.timers[target.TargetID()]
	if !ok {
		return
	}
	if elt.currentTimer != nil && !elt.currentTimerSalvaged && slices.Contains(elt.timers, elt.currentTimer) {
		elt.currentTimerSalvaged = true
	}
	clear(elt.timers)
	elt.timers = elt.timers[:0]
	elt.timerIndex = -1
	if s.currentTarget == elt {
		s.currentTargetSalvaged = true
	} else {
		s.removeTimerElement(elt)
	}
}

// UnscheduleAllForTarget removes every callback and the update entry of target.
func (s *Scheduler) UnscheduleAllForTarget(target Target) {
	if !validTarget(target) {
		return
	}
	s.unscheduleTimers(target)
	s.UnscheduleUpdate(target)
}

// UnscheduleAll removes every callback and every update entry, including
// PrioritySystem ones such as a Director's ActionManager.
func (s *Scheduler) UnscheduleAll() {
	s.UnscheduleAllWithMinPriority(PrioritySystem)
}

// UnscheduleAllWithMinPriority removes every callback, and every update entry
// whose priority is at least minPriority.
func (s *Scheduler) UnscheduleAllWithMinPriority(minPriority int) {
	for _, elt := range slices.Clone(s.timerTargets) {
		s.unscheduleTimers(elt.target)
	}
	for _, bucket := range s.buckets() {
		for _, e := range slices.Clone(*bucket) {
			if e.priority >= minPriority {
				s.UnscheduleUpdate(e.target)
			}
		}
	}
}

// --- Pausing ---

// PauseTarget suspends callbacks and updates of target without unregistering
// them. Timer progress is kept.
func (s *Scheduler) PauseTarget(target Target) {
	s.setPaused(target, true)
}

// ResumeTarget undoes PauseTarget.
func (s *Scheduler) ResumeTarget(target Target) {
	s.setPaused(target, false)
}

func (s *Scheduler) setPaused(target Target, paused bool) {
	if !validTarget(target) {
		return
	}
	id := target.TargetID()
	if elt, ok := s.timers[id]; ok {
		elt.paused = paused
	}
	if e, ok := s.updates[id]; ok {
		e.paused = paused
	}
}

// IsTargetPaused reports whether target is paused.
func (s *Scheduler) IsTargetPaused(target Target) bool {
	if !validTarget(target) {
		return false
	}
	id := target.TargetID()
	if elt, ok := s.timers[id]; ok {
		return elt.paused
	}
	if e, ok := s.updates[id]; ok {
		return e.paused
	}
	return false
}

// PauseAllTargets pauses every target and returns them so the caller can
// resume exactly that set later with ResumeTargets.
func (s *Scheduler) PauseAllTargets() []Target {
	return s.PauseAllTargetsWithMinPriority(PrioritySystem)
}

// PauseAllTargetsWithMinPriority pauses every timer target and every update
// target whose priority is at least minPriority.
func (s *Scheduler) PauseAllTargetsWithMinPriority(minPriority int) []Target {
	var paused []Target
	seen := make(map[TargetID]struct{})
	add := func(t Target) {
		if _, ok := seen[t.TargetID()]; ok {
			return
		}
		seen[t.TargetID()] = struct{}{}
		paused = append(paused, t)
	}

	for _, elt := range s.timerTargets {
		elt.paused = true
		add(elt.target)
	}
	for _, bucket := range s.buckets() {
		for _, e := range *bucket {
			if e.priority >= minPriority {
				e.paused = true
				add(e.target)
			}
		}
	}
	return paused
}

// ResumeTargets resumes every target in the list.
func (s *Scheduler) ResumeTargets(targets []Target) {
	for _, t := range targets {
		s.ResumeTarget(t)
	}
}

// --- Frame dispatch ---

// Update advances the scheduler by dt seconds (scaled by TimeScale). It must
// be called once per frame and never from inside a callback.
//
// Order: update targets by priority, then interval callbacks per target, then
// removal of update entries unscheduled during the frame, then functions
// queued with Post.
func (s *Scheduler) Update(dt float64) {
	if s.locked {
		panic("tempo: Scheduler.Update called from inside a scheduled callback")
	}
	s.locked = true
	// A panicking callback aborts the frame but must not leave the scheduler locked.
	defer s.unlock()

	if s.timeScale != 1 {
		dt *= s.timeScale
	}
	s.stats = schedulerStats{}

	s.dispatchUpdates(s.updatesNeg, dt)
	s.dispatchUpdates(s.updatesZero, dt)
	s.dispatchUpdates(s.updatesPos, dt)
	s.dispatchTimers(dt)

	s.unlock()
	s.sweepUpdates()
	s.drainPosted()
}

func (s *Scheduler) unlock() {
	s.locked = false
	s.currentTarget = nil
	s.currentTargetSalvaged = false
}

// dispatchUpdates runs a bucket over a snapshot so that entries inserted
// during the frame neither run twice nor shift the iteration.
func (s *Scheduler) dispatchUpdates(bucket []*updateEntry, dt float64) {
	s.snapshot = append(s.snapshot[:0], bucket...)
	for _, e := range s.snapshot {
		if e.paused || e.state != recordActive {
			continue
		}
		e.target.Update(dt)
		s.stats.updates++
	}
	clear(s.snapshot)
}

func (s *Scheduler) dispatchTimers(dt float64) {
	// Both indices live on records so removals inside callbacks can adjust them.
	for s.timerTargetIndex = 0; s.timerTargetIndex < len(s.timerTargets); s.timerTargetIndex++ {
		elt := s.timerTargets[s.timerTargetIndex]
		s.currentTarget = elt
		s.currentTargetSalvaged = false

		if !elt.paused {
			for elt.timerIndex = 0; elt.timerIndex < len(elt.timers); elt.timerIndex++ {
				elt.currentTimer = elt.timers[elt.timerIndex]
				elt.currentTimerSalvaged = false
				elt.currentTimer.update(dt)
				elt.currentTimer = nil
				s.stats.timers++
			}
		}

		salvaged := s.currentTargetSalvaged
		s.currentTarget = nil
		if salvaged && len(elt.timers) == 0 {
			s.removeTimerElement(elt)
		}
	}
}

func (s *Scheduler) sweepUpdates() {
	for _, bucket := range s.buckets() {
		list := *bucket
		kept := list[:0]
		for _, e := range list {
			if e.state == recordPendingDeletion {
				delete(s.updates, e.target.TargetID())
				e.state = recordRemoved
				continue
			}
			kept = append(kept, e)
		}
		clear(list[len(kept):])
		*bucket = kept
	}
}

func (s *Scheduler) buckets() [3]*[]*updateEntry {
	return [3]*[]*updateEntry{&s.updatesNeg, &s.updatesZero, &s.updatesPos}
}

// --- Cross-goroutine work ---

// Post queues fn to run on the update goroutine at the end of the next
// Update. It is the only Scheduler method that is safe to call from other
// goroutines (asset loaders, network readers).
func (s *Scheduler) Post(fn func()) {
	if fn == nil {
		return
	}
	s.postMu.Lock()
	s.posted = append(s.posted, fn)
	s.postMu.Unlock()
}

func (s *Scheduler) drainPosted() {
	s.postMu.Lock()
	if len(s.posted) == 0 {
		s.postMu.Unlock()
		return
	}
	s.running, s.posted = s.posted, s.running[:0]
	s.postMu.Unlock()

	for _, fn := range s.running {
		fn()
	}
	clear(s.running)
	s.running = s.running[:0]
}

// --- Introspection ---

// NumUpdateTargets returns how many targets are registered for per-frame
// updates, including entries pending removal.
func (s *Scheduler) NumUpdateTargets() int {
	return len(s.updates)
}

// NumTimerTargets returns how many targets have at least one callback record.
func (s *Scheduler) NumTimerTargets() int {
	return len(s.timerTargets)
}
