package device

import (
	"github.com/golangdaddy/chasedrive/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// GamepadLayout picks how gamepad controls map onto driving intents.
type GamepadLayout string

const (
	// LayoutStick drives with the left stick alone: push up to accelerate,
	// pull back to reverse, tilt to steer. A brakes.
	LayoutStick GamepadLayout = "stick"
	// LayoutTriggers uses the right trigger or A to accelerate, the left
	// trigger or X to reverse and B to brake. Stick or d-pad steers.
	LayoutTriggers GamepadLayout = "triggers"
)

// Stick deflection needed to register, per layout.
const (
	StickDeadZone         = 0.15
	TriggersStickDeadZone = 0.35
)

// gamepadReader is the part of ebiten's gamepad API the source relies on.
type gamepadReader interface {
	IDs() []ebiten.GamepadID
	Pressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	Axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64
}

type ebitenGamepads struct{}

func (ebitenGamepads) IDs() []ebiten.GamepadID {
	ids := ebiten.AppendGamepadIDs(nil)
	out := ids[:0]
	for _, id := range ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			out = append(out, id)
		}
	}
	return out
}

func (ebitenGamepads) Pressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (ebitenGamepads) Axis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}

// Gamepad reads every connected standard-layout gamepad and ORs them.
// Start and Back are reserved for pause and restart in every layout.
type Gamepad struct {
	reader gamepadReader
	layout GamepadLayout
}

// NewGamepad returns a gamepad source backed by ebiten. Unknown layouts
// fall back to LayoutStick.
func NewGamepad(layout GamepadLayout) *Gamepad {
	return &Gamepad{reader: ebitenGamepads{}, layout: layout}
}

// Layout is the active control mapping.
func (g *Gamepad) Layout() GamepadLayout {
	if g.layout == LayoutTriggers {
		return LayoutTriggers
	}
	return LayoutStick
}

// Poll reads all gamepads.
func (g *Gamepad) Poll() input.State {
	var states []input.State
	for _, id := range g.reader.IDs() {
		states = append(states, g.poll(id))
	}
	return input.Merge(states...)
}

func (g *Gamepad) poll(id ebiten.GamepadID) input.State {
	r := g.reader
	x := r.Axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal)

	if g.Layout() == LayoutTriggers {
		return input.State{
			Accelerate: r.Pressed(id, ebiten.StandardGamepadButtonFrontBottomRight) ||
				r.Pressed(id, ebiten.StandardGamepadButtonRightBottom),
			Reverse: r.Pressed(id, ebiten.StandardGamepadButtonFrontBottomLeft) ||
				r.Pressed(id, ebiten.StandardGamepadButtonRightLeft),
			Brake:     r.Pressed(id, ebiten.StandardGamepadButtonRightRight),
			TurnLeft:  x < -TriggersStickDeadZone || r.Pressed(id, ebiten.StandardGamepadButtonLeftLeft),
			TurnRight: x > TriggersStickDeadZone || r.Pressed(id, ebiten.StandardGamepadButtonLeftRight),
		}
	}

	// stick Y is negative when pushed up
	y := r.Axis(id, ebiten.StandardGamepadAxisLeftStickVertical)
	return input.State{
		Accelerate: y < -StickDeadZone,
		Reverse:    y > StickDeadZone,
		Brake:      r.Pressed(id, ebiten.StandardGamepadButtonRightBottom),
		TurnLeft:   x < -StickDeadZone,
		TurnRight:  x > StickDeadZone,
	}
}

func (g *Gamepad) anyPressed(b ebiten.StandardGamepadButton) bool {
	for _, id := range g.reader.IDs() {
		if g.reader.Pressed(id, b) {
			return true
		}
	}
	return false
}

// PausePressed reports whether Start is held on any gamepad.
func (g *Gamepad) PausePressed() bool {
	return g.anyPressed(ebiten.StandardGamepadButtonCenterRight)
}

// RestartPressed reports whether Back is held on any gamepad.
func (g *Gamepad) RestartPressed() bool {
	return g.anyPressed(ebiten.StandardGamepadButtonCenterLeft)
}
