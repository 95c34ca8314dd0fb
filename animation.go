package tempo

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween is a finite action that animates up to 4 float64 fields of a
// Tweenable target's Props. Start values are read when the action starts, so
// a Tween inside a Sequence begins from wherever the previous step left off.
// If the target is disposed the tween finishes on its next step without
// writing.
//
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor, TweenAlpha, TweenRotation) and hand it to an ActionManager.
type Tween struct {
	IntervalAction

	ease   ease.TweenFunc
	count  int
	to     [4]float64
	fields [4]*float64
	tweens [4]*gween.Tween
	pick   func(p *Props) [4]*float64
	stale  bool
}

func newTween(duration float64, fn ease.TweenFunc, to []float64, pick func(p *Props) [4]*float64) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	tw := &Tween{ease: fn, count: len(to), pick: pick}
	copy(tw.to[:], to)
	tw.InitInterval(duration, tw.apply)
	return tw
}

// StartWithTarget captures the start values from target. Targets that are not
// Tweenable are accepted; the tween then only keeps time.
func (tw *Tween) StartWithTarget(target Target) {
	tw.IntervalAction.StartWithTarget(target)
	tw.stale = false
	tw.fields = [4]*float64{}

	t, ok := target.(Tweenable)
	if !ok {
		return
	}
	tw.fields = tw.pick(t.TweenProps())
	for i := 0; i < tw.count; i++ {
		tw.tweens[i] = gween.New(float32(*tw.fields[i]), float32(tw.to[i]), float32(tw.duration), tw.ease)
	}
}

// IsDone reports whether the tween has run its full duration or its target
// was disposed.
func (tw *Tween) IsDone() bool {
	return tw.stale || tw.IntervalAction.IsDone()
}

func (tw *Tween) apply(t float64) {
	if tw.stale || tw.fields[0] == nil {
		return
	}
	if d, ok := tw.target.(disposable); ok && d.IsDisposed() {
		tw.stale = true
		return
	}

	for i := 0; i < tw.count; i++ {
		v := tw.to[i]
		if t < 1 {
			cur, _ := tw.tweens[i].Set(float32(t * tw.duration))
			v = float64(cur)
		}
		*tw.fields[i] = v
	}
}

// TweenPosition creates a Tween that moves the target's X and Y to the given
// coordinates over the specified duration using the easing function.
func TweenPosition(toX, toY float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(duration, fn, []float64{toX, toY}, func(p *Props) [4]*float64 {
		return [4]*float64{&p.X, &p.Y}
	})
}

// TweenScale creates a Tween that animates ScaleX and ScaleY to the given
// values over the specified duration using the easing function.
func TweenScale(toSX, toSY float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(duration, fn, []float64{toSX, toSY}, func(p *Props) [4]*float64 {
		return [4]*float64{&p.ScaleX, &p.ScaleY}
	})
}

// TweenColor creates a Tween that animates all four components of Color
// (R, G, B, A) to the target color over the specified duration.
func TweenColor(to Color, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(duration, fn, []float64{to.R, to.G, to.B, to.A}, func(p *Props) [4]*float64 {
		return [4]*float64{&p.Color.R, &p.Color.G, &p.Color.B, &p.Color.A}
	})
}

// TweenAlpha creates a Tween that animates Alpha to the target value.
func TweenAlpha(to float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(duration, fn, []float64{to}, func(p *Props) [4]*float64 {
		return [4]*float64{&p.Alpha}
	})
}

// TweenRotation creates a Tween that animates Rotation (radians) to the target value.
func TweenRotation(to float64, duration float64, fn ease.TweenFunc) *Tween {
	return newTween(duration, fn, []float64{to}, func(p *Props) [4]*float64 {
		return [4]*float64{&p.Rotation}
	})
}
