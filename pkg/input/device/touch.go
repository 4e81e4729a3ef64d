package device

import (
	"image"

	"github.com/golangdaddy/chasedrive/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Touch splits the screen into control zones:
//
//	+-------+--------+-------+
//	|       |  gas   |       |
//	| left  +--------+ right |
//	|       | brake  |       |
//	|       +--------+       |
//	|       |reverse |       |
//	+-------+--------+-------+
//
// Side columns steer. Every active touch contributes and the results are ORed.
type Touch struct {
	Width, Height int

	// points defaults to the active ebiten touches
	points func() []image.Point
}

// NewTouch returns a touch source for a screen of the given logical size.
func NewTouch(width, height int) *Touch {
	return &Touch{Width: width, Height: height, points: ebitenTouches}
}

func ebitenTouches() []image.Point {
	ids := ebiten.AppendTouchIDs(nil)
	pts := make([]image.Point, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

// Poll maps every active touch to a zone.
func (t *Touch) Poll() input.State {
	if t.Width <= 0 || t.Height <= 0 || t.points == nil {
		return input.State{}
	}
	var s input.State
	for _, p := range t.points() {
		s = input.Merge(s, t.zone(p))
	}
	return s
}

func (t *Touch) zone(p image.Point) input.State {
	third := t.Width / 3
	switch {
	case p.X < third:
		return input.State{TurnLeft: true}
	case p.X >= t.Width-third:
		return input.State{TurnRight: true}
	case p.Y < t.Height/2:
		return input.State{Accelerate: true}
	case p.Y < t.Height*3/4:
		return input.State{Brake: true}
	default:
		return input.State{Reverse: true}
	}
}
