package vehicle

import "fmt"

// Physics holds the tunables of the arcade driving model. Speeds are in
// world units per tick; Friction and BrakingForce are per-tick multipliers.
type Physics struct {
	Acceleration        float64 `mapstructure:"acceleration" json:"acceleration"`
	ReverseAcceleration float64 `mapstructure:"reverseAcceleration" json:"reverseAcceleration"`
	Friction            float64 `mapstructure:"friction" json:"friction"`
	BrakingForce        float64 `mapstructure:"brakingForce" json:"brakingForce"`
	MaxSpeed            float64 `mapstructure:"maxSpeed" json:"maxSpeed"`
	MaxReverseSpeed     float64 `mapstructure:"maxReverseSpeed" json:"maxReverseSpeed"`
	TurnSpeed           float64 `mapstructure:"turnSpeed" json:"turnSpeed"`
	MinSpeedForTurn     float64 `mapstructure:"minSpeedForTurn" json:"minSpeedForTurn"`
}

// DefaultPhysics returns the stock tuning.
func DefaultPhysics() Physics {
	return Physics{
		Acceleration:        0.8,
		ReverseAcceleration: 0.4,
		Friction:            0.95,
		BrakingForce:        0.88,
		MaxSpeed:            12,
		MaxReverseSpeed:     4,
		TurnSpeed:           0.05,
		MinSpeedForTurn:     0.5,
	}
}

// Validate reports tunables outside the ranges the model assumes. The
// dynamics never call it; it is meant for values read from config files.
func (p Physics) Validate() error {
	switch {
	case p.Acceleration <= 0:
		return fmt.Errorf("acceleration must be positive, got %v", p.Acceleration)
	case p.ReverseAcceleration <= 0:
		return fmt.Errorf("reverseAcceleration must be positive, got %v", p.ReverseAcceleration)
	case p.Friction <= 0 || p.Friction >= 1:
		return fmt.Errorf("friction must be in (0,1), got %v", p.Friction)
	case p.BrakingForce <= 0 || p.BrakingForce >= 1:
		return fmt.Errorf("brakingForce must be in (0,1), got %v", p.BrakingForce)
	case p.MaxSpeed <= 0:
		return fmt.Errorf("maxSpeed must be positive, got %v", p.MaxSpeed)
	case p.MaxReverseSpeed <= 0:
		return fmt.Errorf("maxReverseSpeed must be positive, got %v", p.MaxReverseSpeed)
	case p.TurnSpeed < 0:
		return fmt.Errorf("turnSpeed must not be negative, got %v", p.TurnSpeed)
	case p.MinSpeedForTurn < 0:
		return fmt.Errorf("minSpeedForTurn must not be negative, got %v", p.MinSpeedForTurn)
	}
	return nil
}
