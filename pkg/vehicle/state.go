package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/chasedrive/pkg/input"
)

// State is the simulated car on the ground plane. Yaw is in radians and
// is never wrapped. A yaw of zero faces -Z.
type State struct {
	X, Z  float64
	Yaw   float64
	Speed float64
}

// Step advances the car by one tick. Turning uses the speed from the
// start of the tick; position uses the updated speed and yaw. A
// non-positive dt is treated as one frame.
func (s *State) Step(p Physics, in input.State, dt float64) {
	if dt <= 0 {
		dt = 1
	}
	turn := TurnDelta(p, s.Speed, in.TurnDirection())
	s.Speed = NextSpeed(p, s.Speed, in)
	s.Yaw += turn

	s.X += -math.Sin(s.Yaw) * s.Speed * dt
	s.Z += -math.Cos(s.Yaw) * s.Speed * dt
}

// Reset puts the car back at the origin, stopped and facing -Z.
func (s *State) Reset() {
	*s = State{}
}

// Pose exposes the car to followers. The vertical coordinate is always 0.
func (s *State) Pose() (position mgl64.Vec3, yaw, speed float64) {
	return mgl64.Vec3{s.X, 0, s.Z}, s.Yaw, s.Speed
}

// Forward is the unit heading on the ground plane.
func (s *State) Forward() mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(s.Yaw), 0, -math.Cos(s.Yaw)}
}

// SpeedKmh is the HUD reading for a speed.
func SpeedKmh(speed float64) int {
	return int(math.Round(math.Abs(speed) * 10))
}
