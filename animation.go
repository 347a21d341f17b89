package dragkit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve describes how a behavior's visual values move toward their
// targets: an easing function applied over a duration in seconds.
// The zero value means "use the default spring" when passed in Options.
type Curve struct {
	Duration float32
	Ease     ease.TweenFunc
}

// DefaultCurve is the curve used when Options.Curve is the zero value:
// a spring with response 0.3 and damping 0.8.
func DefaultCurve() Curve {
	return Spring(0.3, 0.8)
}

// Spring builds a damped-spring Curve. Response is the oscillation
// period in seconds (smaller = stiffer); damping is the damping ratio in
// (0, 1] where 1 is critically damped and lower values overshoot more.
// The transition settles over roughly two response periods.
func Spring(response, damping float64) Curve {
	if response <= 0 {
		response = 0.3
	}
	if damping <= 0 || damping > 1 {
		damping = 0.8
	}

	omega := 2 * math.Pi / response
	settle := 2 * response

	fn := func(t, b, c, d float32) float32 {
		s := float64(t) / float64(d)
		if s >= 1 {
			return b + c
		}
		if s <= 0 {
			return b
		}
		tau := s * settle

		var p float64
		if damping < 1 {
			// Under-damped closed form.
			wd := omega * math.Sqrt(1-damping*damping)
			decay := math.Exp(-damping * omega * tau)
			p = 1 - decay*(math.Cos(wd*tau)+(damping*omega/wd)*math.Sin(wd*tau))
		} else {
			// Critically damped.
			p = 1 - math.Exp(-omega*tau)*(1+omega*tau)
		}
		return b + c*float32(p)
	}

	return Curve{Duration: float32(settle), Ease: fn}
}

// immediate reports whether the curve cannot animate and values should
// be applied in one step.
func (c Curve) immediate() bool {
	return c.Duration <= 0 || c.Ease == nil
}

// transition animates up to 4 float64 fields on a Behavior toward new
// targets. A fresh transition is created every time the behavior's
// targets change, starting from the currently applied values, so an
// interrupted settle retargets smoothly. Advanced by Behavior.Update.
type transition struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	done   bool
}

// add registers a field to animate from its current value to target.
func (tr *transition) add(field *float64, target float64, c Curve) {
	tr.tweens[tr.count] = gween.New(float32(*field), float32(target), c.Duration, c.Ease)
	tr.fields[tr.count] = field
	tr.count++
}

// update advances all tweens by dt seconds and writes values back to the
// registered fields.
func (tr *transition) update(dt float32) {
	if tr.done {
		return
	}
	allDone := true
	for i := 0; i < tr.count; i++ {
		val, finished := tr.tweens[i].Update(dt)
		*tr.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	tr.done = allDone
}
