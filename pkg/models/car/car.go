package car

import (
	"math"

	"github.com/golangdaddy/chasedrive/pkg/vehicle"
)

// Brakes represents the braking system of a car
type Brakes struct {
	Type          string  `json:"type"`
	StoppingPower float64 `json:"stopping_power"` // 0.0 to 1.0
}

// Car is a selectable car and the handling it gives the driving model
type Car struct {
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Weight     float64 `json:"weight"` // in kg
	Horsepower float64 `json:"horsepower"`
	TopSpeed   float64 `json:"top_speed"` // in km/h
	Handling   float64 `json:"handling"`  // 0.0 to 1.0
	Brakes     Brakes  `json:"brakes"`
}

// reference car the base physics is tuned for
const (
	referenceTopSpeed      = 120.0
	referencePowerToWeight = 150.0 / 1400
	referenceHandling      = 0.5
	referenceStopping      = 0.6
)

// NewCar creates a new car with standard brakes
func NewCar(make, model string, year int, weight, horsepower, topSpeed, handling float64) *Car {
	return &Car{
		Make:       make,
		Model:      model,
		Year:       year,
		Weight:     weight,
		Horsepower: horsepower,
		TopSpeed:   topSpeed,
		Handling:   handling,
		Brakes: Brakes{
			Type:          "Standard",
			StoppingPower: referenceStopping,
		},
	}
}

// Physics derives this car's tuning from the base tuning, relative to the
// reference car: top speed scales the speed cap, power-to-weight scales
// acceleration, handling scales steering and stopping power tightens the
// brakes. The reference car gets base back unchanged.
func (c *Car) Physics(base vehicle.Physics) vehicle.Physics {
	p := base
	if c.TopSpeed > 0 {
		p.MaxSpeed = base.MaxSpeed * c.TopSpeed / referenceTopSpeed
	}
	if c.Weight > 0 && c.Horsepower > 0 {
		p.Acceleration = base.Acceleration * (c.Horsepower / c.Weight) / referencePowerToWeight
	}
	if c.Handling > 0 {
		p.TurnSpeed = base.TurnSpeed * (0.5 + c.Handling) / (0.5 + referenceHandling)
	}
	// braking force is a per-tick decay, so more stopping power means a
	// smaller multiplier; keep it below friction so braking always wins
	stopping := c.Brakes.StoppingPower - referenceStopping
	p.BrakingForce = math.Max(0.5, math.Min(base.BrakingForce-stopping*0.2, base.Friction-0.01))
	return p
}

// Name is the display name used by the garage
func (c *Car) Name() string {
	return c.Make + " " + c.Model
}
