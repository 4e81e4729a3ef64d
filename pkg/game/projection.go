package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	fieldOfView = 60.0
	nearPlane   = 0.1
	farPlane    = 400.0
)

// projector maps world points onto the screen through the chase camera.
type projector struct {
	viewProj      mgl64.Mat4
	width, height float64
}

func newProjector(view mgl64.Mat4, width, height int) projector {
	aspect := float64(width) / float64(height)
	proj := mgl64.Perspective(mgl64.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
	return projector{
		viewProj: proj.Mul4(view),
		width:    float64(width),
		height:   float64(height),
	}
}

// clip transforms p into clip space.
func (pr projector) clip(p mgl64.Vec3) mgl64.Vec4 {
	return pr.viewProj.Mul4x1(p.Vec4(1))
}

// toScreen converts a clip-space point in front of the camera to pixels.
func (pr projector) toScreen(c mgl64.Vec4) (x, y float64) {
	ndcX := c.X() / c.W()
	ndcY := c.Y() / c.W()
	return (ndcX + 1) / 2 * pr.width, (1 - ndcY) / 2 * pr.height
}

// Project returns the screen position of p, or false when p is behind the
// near plane.
func (pr projector) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	c := pr.clip(p)
	if c.W() < nearPlane {
		return 0, 0, false
	}
	x, y = pr.toScreen(c)
	return x, y, true
}

// Segment projects a world-space line, clipping it against the near plane.
func (pr projector) Segment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	ca, cb := pr.clip(a), pr.clip(b)
	if ca.W() < nearPlane && cb.W() < nearPlane {
		return 0, 0, 0, 0, false
	}
	if ca.W() < nearPlane || cb.W() < nearPlane {
		t := (nearPlane - ca.W()) / (cb.W() - ca.W())
		cut := ca.Add(cb.Sub(ca).Mul(t))
		if ca.W() < nearPlane {
			ca = cut
		} else {
			cb = cut
		}
	}
	x0, y0 = pr.toScreen(ca)
	x1, y1 = pr.toScreen(cb)
	if math.IsNaN(x0+y0+x1+y1) || math.IsInf(x0+y0+x1+y1, 0) {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1, y1, true
}
