package system

import "math"

// approach moves current toward target by the fraction 1-exp(-rate*dt)
// Frame-rate independent: two steps of dt equal one step of 2*dt
func approach(current, target, rate, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-rate*dt)
}
