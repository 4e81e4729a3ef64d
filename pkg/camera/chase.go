package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Speed at which the camera reaches its furthest pull-back.
const fullPullbackSpeed = 10.0

// Pull-back added at full speed, in the car's local frame.
const (
	speedLift    = 1.5
	speedPullOut = 2.0
)

// Height of the look-at point above the car origin.
const lookAtHeight = 0.5

// Up is the world vertical axis.
var Up = mgl64.Vec3{0, 1, 0}

// Target is a read-only view of whatever the camera follows.
type Target interface {
	Pose() (position mgl64.Vec3, yaw, speed float64)
}

// Config holds the runtime-adjustable camera tuning. Offset is in the
// target's local frame: +Y up, +Z behind at yaw 0.
//
// By default the offset is rotated as (x cos - z sin, x sin + z cos), which
// turns it the opposite way to the car's heading, so the camera swings in
// front of the car at a quarter turn. FollowHeading rotates it with the
// heading instead and keeps the camera behind the car at every yaw.
type Config struct {
	Offset        mgl64.Vec3 `mapstructure:"offset" json:"offset"`
	LookAhead     float64    `mapstructure:"lookAhead" json:"lookAhead"`
	PositionLerp  float64    `mapstructure:"positionLerp" json:"positionLerp"`
	RotationLerp  float64    `mapstructure:"rotationLerp" json:"rotationLerp"`
	FollowHeading bool       `mapstructure:"followHeading" json:"followHeading"`
}

// DefaultConfig sits the camera 4 up and 8 behind, looking 3 ahead.
func DefaultConfig() Config {
	return Config{
		Offset:       mgl64.Vec3{0, 4, 8},
		LookAhead:    3,
		PositionLerp: 0.1,
		RotationLerp: 0.08,
	}
}

// Chase is a third-person follow camera. It lags behind an ideal pose
// recomputed every tick and converges towards it geometrically.
type Chase struct {
	cfg    Config
	target Target

	position mgl64.Vec3
	lookAt   mgl64.Vec3
}

// NewChase creates a camera following target. Target may be nil and bound
// later with Follow.
func NewChase(cfg Config, target Target) *Chase {
	c := &Chase{cfg: cfg, target: target}
	c.Reset()
	return c
}

// Follow binds a new target and snaps to it.
func (c *Chase) Follow(target Target) {
	c.target = target
	c.Reset()
}

// Config returns the current tuning.
func (c *Chase) Config() Config {
	return c.cfg
}

// SetConfig changes the tuning. Smoothing continues from the current pose.
func (c *Chase) SetConfig(cfg Config) {
	c.cfg = cfg
}

// Ideal computes the unsmoothed camera position and look-at point for a
// pose.
func (c *Chase) Ideal(pos mgl64.Vec3, yaw, speed float64) (position, lookAt mgl64.Vec3) {
	sf := math.Min(math.Abs(speed)/fullPullbackSpeed, 1)
	off := c.cfg.Offset
	ox := off.X()
	oy := off.Y() + sf*speedLift
	oz := off.Z() + sf*speedPullOut

	sin, cos := math.Sincos(yaw)
	position = mgl64.Vec3{
		pos.X() + ox*cos - oz*sin,
		pos.Y() + oy,
		pos.Z() + ox*sin + oz*cos,
	}
	if c.cfg.FollowHeading {
		position[0] = pos.X() + ox*cos + oz*sin
		position[2] = pos.Z() - ox*sin + oz*cos
	}
	lookAt = mgl64.Vec3{
		pos.X() - c.cfg.LookAhead*sin,
		pos.Y() + lookAtHeight,
		pos.Z() - c.cfg.LookAhead*cos,
	}
	return position, lookAt
}

// Update moves the camera one tick towards the ideal pose. Without a
// target it keeps its last transform.
func (c *Chase) Update() {
	if c.target == nil {
		return
	}
	pos, yaw, speed := c.target.Pose()
	idealPos, idealLook := c.Ideal(pos, yaw, speed)

	c.position = lerp(c.position, idealPos, c.cfg.PositionLerp)
	c.lookAt = lerp(c.lookAt, idealLook, c.cfg.RotationLerp)
}

// Reset snaps to the ideal pose for a stationary target, skipping the
// smoothing.
func (c *Chase) Reset() {
	if c.target == nil {
		return
	}
	pos, yaw, _ := c.target.Pose()
	c.position, c.lookAt = c.Ideal(pos, yaw, 0)
}

// Position is the smoothed camera position.
func (c *Chase) Position() mgl64.Vec3 {
	return c.position
}

// LookAt is the smoothed point the camera aims at.
func (c *Chase) LookAt() mgl64.Vec3 {
	return c.lookAt
}

// View returns the world-to-camera matrix.
func (c *Chase) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.position, c.lookAt, Up)
}

func lerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		from[0] + (to[0]-from[0])*t,
		from[1] + (to[1]-from[1])*t,
		from[2] + (to[2]-from[2])*t,
	}
}
