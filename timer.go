package tempo

// Callback is invoked by a Timer. elapsed is the time accumulated since the
// previous firing (or since the delay window started), not the frame dt.
type Callback func(elapsed float64)

// Timer fires a Callback at a fixed interval on behalf of a target. Timers are
// created and owned by a Scheduler; see Scheduler.Schedule.
type Timer struct {
	scheduler *Scheduler
	target    Target
	key       string
	fn        Callback

	interval float64
	delay    float64
	repeat   int

	elapsed       float64
	started       bool
	useDelay      bool
	runForever    bool
	timesExecuted int
}

func newTimer(s *Scheduler, target Target, key string, fn Callback, interval float64, repeat int, delay float64) *Timer {
	return &Timer{
		scheduler:  s,
		target:     target,
		key:        key,
		fn:         fn,
		interval:   interval,
		delay:      delay,
		repeat:     repeat,
		useDelay:   delay > 0,
		runForever: repeat == RepeatForever,
	}
}

// Key returns the key the timer was scheduled under.
func (t *Timer) Key() string {
	return t.key
}

// Interval returns the firing interval in seconds.
func (t *Timer) Interval() float64 {
	return t.interval
}

// Elapsed returns the time accumulated towards the next firing.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// TimesExecuted returns how many times a finite or delayed timer has fired.
// Forever timers without a delay do not count.
func (t *Timer) TimesExecuted() int {
	return t.timesExecuted
}

// update advances the timer by dt. The first call only establishes the
// baseline; it never fires.
func (t *Timer) update(dt float64) {
	if !t.started {
		t.started = true
		t.elapsed = 0
		t.timesExecuted = 0
		return
	}

	t.elapsed += dt

	if t.runForever && !t.useDelay {
		if t.elapsed >= t.interval {
			t.trigger()
			t.elapsed = 0
		}
		return
	}

	if t.useDelay {
		if t.elapsed >= t.delay {
			t.trigger()
			t.elapsed -= t.delay
			t.timesExecuted++
			t.useDelay = false
		}
	} else if t.elapsed >= t.interval {
		t.trigger()
		t.elapsed = 0
		t.timesExecuted++
	}

	if !t.runForever && t.timesExecuted > t.repeat {
		t.cancel()
	}
}

func (t *Timer) trigger() {
	if t.fn == nil || t.target == nil {
		return
	}
	t.fn(t.elapsed)
}

// cancel removes this exact timer from its scheduler. A different timer that
// replaced it under the same key is left alone.
func (t *Timer) cancel() {
	if t.scheduler == nil {
		return
	}
	t.scheduler.removeTimer(t)
}
