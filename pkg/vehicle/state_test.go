package vehicle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/chasedrive/pkg/input"
	"github.com/stretchr/testify/assert"
)

func TestStep_CoastOneTick(t *testing.T) {
	p := DefaultPhysics()
	s := State{Speed: 12}

	s.Step(p, coast, 1)

	assert.InDelta(t, 11.4, s.Speed, 1e-9)
	assert.InDelta(t, -11.4, s.Z, 1e-9)
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 0.0, s.Yaw)
}

func TestStep_ScalesByDt(t *testing.T) {
	p := DefaultPhysics()
	s := State{Speed: 12}

	s.Step(p, coast, 0.5)

	assert.InDelta(t, -11.4*0.5, s.Z, 1e-9)
}

func TestStep_NonPositiveDtIsOneFrame(t *testing.T) {
	p := DefaultPhysics()
	a := State{Speed: 12}
	b := State{Speed: 12}

	a.Step(p, coast, 0)
	b.Step(p, coast, 1)

	assert.Equal(t, b, a)
}

func TestStep_TurnUsesSpeedFromStartOfTick(t *testing.T) {
	p := DefaultPhysics()
	in := input.State{Accelerate: true, TurnLeft: true}
	s := State{}

	s.Step(p, in, 1)
	assert.Equal(t, 0.0, s.Yaw, "no steering while stationary at tick start")
	assert.InDelta(t, p.Acceleration, s.Speed, 1e-12)

	s.Step(p, in, 1)
	assert.InDelta(t, TurnDelta(p, p.Acceleration, -1), s.Yaw, 1e-12)
}

func TestStep_PositionUsesUpdatedYaw(t *testing.T) {
	p := DefaultPhysics()
	s := State{Speed: p.MaxSpeed}

	s.Step(p, input.State{Accelerate: true, TurnRight: true}, 1)

	yaw := p.TurnSpeed
	assert.InDelta(t, yaw, s.Yaw, 1e-12)
	assert.InDelta(t, -math.Sin(yaw)*p.MaxSpeed, s.X, 1e-12)
	assert.InDelta(t, -math.Cos(yaw)*p.MaxSpeed, s.Z, 1e-12)
}

func TestStep_YawIsNotWrapped(t *testing.T) {
	p := DefaultPhysics()
	s := State{Speed: p.MaxSpeed}
	in := input.State{Accelerate: true, TurnRight: true}

	for i := 0; i < 500; i++ {
		s.Step(p, in, 1)
	}
	assert.InDelta(t, 500*p.TurnSpeed, s.Yaw, 1e-9)
	assert.Greater(t, s.Yaw, 2*math.Pi)
}

func TestStep_SpeedStaysInBounds(t *testing.T) {
	p := DefaultPhysics()
	s := State{}
	seq := []input.State{gas, gas, reverse, brake, coast, {Accelerate: true, Reverse: true}}
	for i := 0; i < 600; i++ {
		s.Step(p, seq[(i/37)%len(seq)], 1)
		assert.LessOrEqual(t, s.Speed, p.MaxSpeed)
		assert.GreaterOrEqual(t, s.Speed, -p.MaxReverseSpeed)
	}
}

func TestReset(t *testing.T) {
	s := State{X: 3, Z: -40, Yaw: 7.5, Speed: -2}
	s.Reset()
	assert.Equal(t, State{}, s)
}

func TestPoseAndForward(t *testing.T) {
	s := State{X: 2, Z: 3, Yaw: math.Pi / 2, Speed: 4}

	pos, yaw, speed := s.Pose()
	assert.Equal(t, mgl64.Vec3{2, 0, 3}, pos)
	assert.Equal(t, math.Pi/2, yaw)
	assert.Equal(t, 4.0, speed)

	fwd := s.Forward()
	assert.InDelta(t, -1, fwd.X(), 1e-12)
	assert.InDelta(t, 0, fwd.Z(), 1e-12)
}

func TestSpeedKmh(t *testing.T) {
	assert.Equal(t, 0, SpeedKmh(0))
	assert.Equal(t, 120, SpeedKmh(12))
	assert.Equal(t, 114, SpeedKmh(11.399999999999999))
	assert.Equal(t, 33, SpeedKmh(-3.26))
}
