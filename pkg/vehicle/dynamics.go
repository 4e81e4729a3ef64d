package vehicle

import (
	"math"

	"github.com/golangdaddy/chasedrive/pkg/input"
)

// Speeds below these magnitudes snap to zero so the car comes to rest.
const (
	brakeStopThreshold = 0.1
	coastStopThreshold = 0.01
)

// NextSpeed applies one tick of throttle, brake or rolling friction.
// The first matching intent wins: accelerate, reverse, brake, coast.
func NextSpeed(p Physics, speed float64, in input.State) float64 {
	switch {
	case in.IsAccelerating():
		return math.Min(speed+p.Acceleration, p.MaxSpeed)
	case in.IsReversing():
		return math.Max(speed-p.ReverseAcceleration, -p.MaxReverseSpeed)
	case in.IsBraking():
		return decay(speed, p.BrakingForce, brakeStopThreshold)
	default:
		return decay(speed, p.Friction, coastStopThreshold)
	}
}

func decay(speed, factor, threshold float64) float64 {
	v := speed * factor
	if math.Abs(v) < threshold {
		return 0
	}
	return v
}

// TurnFactor scales steering authority with speed. It is zero below
// MinSpeedForTurn, then rises linearly from 0.2 to 1 at MaxSpeed.
func TurnFactor(p Physics, speed float64) float64 {
	abs := math.Abs(speed)
	if abs < p.MinSpeedForTurn {
		return 0
	}
	return math.Min(abs/p.MaxSpeed, 1)*0.8 + 0.2
}

// TurnDelta is the yaw change for one tick. Steering flips when rolling
// backwards; a stationary car counts as moving forward.
func TurnDelta(p Physics, speed, direction float64) float64 {
	sign := 1.0
	if speed < 0 {
		sign = -1
	}
	return p.TurnSpeed * TurnFactor(p, speed) * direction * sign
}
