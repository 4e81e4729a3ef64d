package device

import (
	"github.com/golangdaddy/chasedrive/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard maps held keys to driving intents. Arrow keys and WASD both
// work; space is the handbrake.
type Keyboard struct {
	Accelerate []ebiten.Key
	Reverse    []ebiten.Key
	Brake      []ebiten.Key
	TurnLeft   []ebiten.Key
	TurnRight  []ebiten.Key

	// pressed defaults to ebiten.IsKeyPressed
	pressed func(ebiten.Key) bool
}

// NewKeyboard returns a keyboard source with the default bindings.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Accelerate: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Reverse:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Brake:      []ebiten.Key{ebiten.KeySpace},
		TurnLeft:   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		TurnRight:  []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		pressed:    ebiten.IsKeyPressed,
	}
}

// Poll reads the current key state.
func (k *Keyboard) Poll() input.State {
	return input.State{
		Accelerate: k.any(k.Accelerate),
		Reverse:    k.any(k.Reverse),
		Brake:      k.any(k.Brake),
		TurnLeft:   k.any(k.TurnLeft),
		TurnRight:  k.any(k.TurnRight),
	}
}

func (k *Keyboard) any(keys []ebiten.Key) bool {
	pressed := k.pressed
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	for _, key := range keys {
		if pressed(key) {
			return true
		}
	}
	return false
}
