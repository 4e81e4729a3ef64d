package sim

import (
	"github.com/golangdaddy/chasedrive/pkg/camera"
	"github.com/golangdaddy/chasedrive/pkg/input"
	"github.com/golangdaddy/chasedrive/pkg/vehicle"
	"github.com/rs/zerolog"
)

// Sim runs the per-frame tick: poll input, advance the car, then move the
// camera. It is not safe for concurrent use; the frame loop owns it.
type Sim struct {
	physics vehicle.Physics
	input   input.Source
	log     zerolog.Logger

	vehicle *vehicle.State
	camera  *camera.Chase

	ticks  uint64
	last   input.State
	paused bool
}

// New builds a simulation with the car at the origin and the camera
// snapped behind it. A nil source means no input at all.
func New(physics vehicle.Physics, cam camera.Config, src input.Source, log zerolog.Logger) *Sim {
	v := &vehicle.State{}
	return &Sim{
		physics: physics,
		input:   src,
		log:     log.With().Str("component", "sim").Logger(),
		vehicle: v,
		camera:  camera.NewChase(cam, v),
	}
}

// Tick advances one frame. dt is the frame delta handed to position
// integration; non-positive values mean one frame. Paused sims do not
// poll input or move.
func (s *Sim) Tick(dt float64) {
	if s.vehicle == nil || s.paused {
		return
	}
	var in input.State
	if s.input != nil {
		in = s.input.Poll()
	}
	s.last = in
	s.vehicle.Step(s.physics, in, dt)
	s.camera.Update()
	s.ticks++
}

// Restart puts the car back at the start and snaps the camera to it.
func (s *Sim) Restart() {
	if s.vehicle == nil {
		return
	}
	s.log.Info().Uint64("ticks", s.ticks).Float64("yaw", s.vehicle.Yaw).Msg("restarting")
	s.vehicle.Reset()
	s.camera.Reset()
	s.ticks = 0
	s.last = input.State{}
}

// Pause stops ticking until Resume.
func (s *Sim) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.last = input.State{}
	s.log.Info().Uint64("ticks", s.ticks).Msg("paused")
}

// Resume restarts ticking with every control released. A source that
// implements input.Resetter is reset, so anything held through the pause
// has to be pressed again.
func (s *Sim) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	if r, ok := s.input.(input.Resetter); ok {
		r.Reset()
	}
	s.log.Info().Uint64("ticks", s.ticks).Msg("resumed")
}

// Paused reports whether ticking is stopped.
func (s *Sim) Paused() bool {
	return s.paused
}

// SetPhysics swaps the tuning, e.g. after picking another car.
func (s *Sim) SetPhysics(p vehicle.Physics) {
	s.physics = p
}

// Physics returns the active tuning.
func (s *Sim) Physics() vehicle.Physics {
	return s.physics
}

// Vehicle is the simulated car. Callers should treat it as read-only.
func (s *Sim) Vehicle() *vehicle.State {
	return s.vehicle
}

// Camera is the chase camera following the car.
func (s *Sim) Camera() *camera.Chase {
	return s.camera
}

// LastInput is the snapshot consumed by the most recent tick.
func (s *Sim) LastInput() input.State {
	return s.last
}

// Ticks counts frames since start or the last restart.
func (s *Sim) Ticks() uint64 {
	return s.ticks
}

// SpeedKmh is the speedometer reading.
func (s *Sim) SpeedKmh() int {
	if s.vehicle == nil {
		return 0
	}
	return vehicle.SpeedKmh(s.vehicle.Speed)
}
