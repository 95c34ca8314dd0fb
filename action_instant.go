package tempo

// Instant actions have zero duration: they apply their effect on the first
// Step and are done immediately.

// CallFunc calls a function once with the target it runs on.
type CallFunc struct {
	IntervalAction
	fn func(target Target)
}

// NewCallFunc creates a CallFunc.
func NewCallFunc(fn func(target Target)) *CallFunc {
	a := &CallFunc{fn: fn}
	a.InitInterval(0, a.apply)
	return a
}

func (a *CallFunc) apply(t float64) {
	if t < 1 || a.fn == nil {
		return
	}
	a.fn(a.target)
}

// NewShow makes a Tweenable target visible.
func NewShow() *IntervalAction {
	return newPropsInstant(func(p *Props) { p.Visible = true })
}

// NewHide makes a Tweenable target invisible.
func NewHide() *IntervalAction {
	return newPropsInstant(func(p *Props) { p.Visible = false })
}

// NewPlace moves a Tweenable target to (x, y).
func NewPlace(x, y float64) *IntervalAction {
	return newPropsInstant(func(p *Props) {
		p.X = x
		p.Y = y
	})
}

func newPropsInstant(set func(p *Props)) *IntervalAction {
	a := &IntervalAction{}
	a.InitInterval(0, func(t float64) {
		if t < 1 {
			return
		}
		if tw, ok := a.target.(Tweenable); ok {
			set(tw.TweenProps())
		}
	})
	return a
}
