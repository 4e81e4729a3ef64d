package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/chasedrive/pkg/config"
	"github.com/golangdaddy/chasedrive/pkg/input"
	"github.com/golangdaddy/chasedrive/pkg/input/device"
	"github.com/golangdaddy/chasedrive/pkg/models/car"
	"github.com/golangdaddy/chasedrive/pkg/sim"
	"github.com/golangdaddy/chasedrive/pkg/ui"
	"github.com/golangdaddy/chasedrive/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"
)

// Ground grid drawn around the car, in world units.
const (
	gridSpacing = 4.0
	gridRadius  = 80.0
)

// Car footprint, half width and half length.
const (
	carHalfWidth  = 1.0
	carHalfLength = 2.0
)

// GameplayScreen is the driving view: the car seen through the chase camera
type GameplayScreen struct {
	sim        *sim.Sim
	selected   *car.Car
	gamepad    *device.Gamepad
	frameDelta float64

	pauseButton   buttonEdge
	restartButton buttonEdge

	screenWidth  int
	screenHeight int

	log       zerolog.Logger
	onGameEnd func() // Callback when the player leaves
}

// NewGameplayScreen creates a new gameplay screen driving selectedCar
func NewGameplayScreen(cfg *config.Config, selectedCar *car.Car, log zerolog.Logger, onGameEnd func()) *GameplayScreen {
	physics := cfg.Physics
	if selectedCar != nil {
		physics = selectedCar.Physics(cfg.Physics)
	}

	gamepad := device.NewGamepad(device.GamepadLayout(cfg.Input.GamepadLayout))
	src := input.NewLatch(input.Multi{
		device.NewKeyboard(),
		gamepad,
		device.NewTouch(cfg.Window.Width, cfg.Window.Height),
	})

	gs := &GameplayScreen{
		sim:          sim.New(physics, cfg.Camera, src, log),
		selected:     selectedCar,
		gamepad:      gamepad,
		frameDelta:   cfg.FrameDelta,
		screenWidth:  cfg.Window.Width,
		screenHeight: cfg.Window.Height,
		log:          log,
		onGameEnd:    onGameEnd,
	}
	gs.log.Info().
		Float64("maxSpeed", physics.MaxSpeed).
		Float64("acceleration", physics.Acceleration).
		Float64("turnSpeed", physics.TurnSpeed).
		Str("gamepadLayout", string(gamepad.Layout())).
		Msg("gameplay started")
	return gs
}

// Sim exposes the running simulation
func (gs *GameplayScreen) Sim() *sim.Sim {
	return gs.sim
}

// Update runs one simulation tick unless paused
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if gs.onGameEnd != nil {
			gs.onGameEnd()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || gs.pauseButton.pressed(gs.gamepad.PausePressed()) {
		gs.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || gs.restartButton.pressed(gs.gamepad.RestartPressed()) {
		gs.sim.Restart()
	}
	gs.sim.Tick(gs.frameDelta)
	return nil
}

// togglePause stops or resumes the simulation. Controls held when it
// resumes must be pressed again.
func (gs *GameplayScreen) togglePause() {
	if gs.sim.Paused() {
		gs.sim.Resume()
		return
	}
	gs.sim.Pause()
}

// buttonEdge turns a held gamepad button into a single press, like
// inpututil.IsKeyJustPressed does for keys
type buttonEdge struct {
	held bool
}

func (b *buttonEdge) pressed(held bool) bool {
	just := held && !b.held
	b.held = held
	return just
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{135, 206, 235, 255}) // Sky blue

	pr := newProjector(gs.sim.Camera().View(), gs.screenWidth, gs.screenHeight)
	gs.drawGround(screen, pr)
	gs.drawCar(screen, pr)
	gs.drawUI(screen)

	if gs.sim.Paused() {
		w, h := float64(gs.screenWidth), float64(gs.screenHeight)
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 120}, false)
		ui.DrawText(screen, "PAUSED", w/2, h/2, 48, color.White)
		ui.DrawText(screen, "[P] / Start to resume", w/2, h/2+50, 16, color.RGBA{200, 200, 200, 255})
	}
}

// drawGround fills the ground below the horizon and draws a world-fixed
// grid around the car so motion is visible
func (gs *GameplayScreen) drawGround(screen *ebiten.Image, pr projector) {
	cam := gs.sim.Camera()
	look := cam.LookAt().Sub(cam.Position())
	look[1] = 0
	if look.Len() > 0 {
		far := cam.Position().Add(look.Normalize().Mul(farPlane * 0.9))
		far[1] = 0
		if _, hy, ok := pr.Project(far); ok && hy < float64(gs.screenHeight) {
			hy = math.Max(hy, 0)
			vector.DrawFilledRect(screen, 0, float32(hy), float32(gs.screenWidth), float32(float64(gs.screenHeight)-hy),
				color.RGBA{34, 139, 34, 255}, false)
		}
	}

	v := gs.sim.Vehicle()
	minX := math.Floor((v.X-gridRadius)/gridSpacing) * gridSpacing
	minZ := math.Floor((v.Z-gridRadius)/gridSpacing) * gridSpacing
	maxX := v.X + gridRadius
	maxZ := v.Z + gridRadius

	lineColor := color.RGBA{50, 160, 50, 255}
	for x := minX; x <= maxX; x += gridSpacing {
		strokeWorld(screen, pr, mgl64.Vec3{x, 0, minZ}, mgl64.Vec3{x, 0, maxZ}, 1, lineColor)
	}
	for z := minZ; z <= maxZ; z += gridSpacing {
		strokeWorld(screen, pr, mgl64.Vec3{minX, 0, z}, mgl64.Vec3{maxX, 0, z}, 1, lineColor)
	}
}

// drawCar draws the car footprint, a roof outline and the nose
func (gs *GameplayScreen) drawCar(screen *ebiten.Image, pr projector) {
	corners := carCorners(gs.sim.Vehicle(), 0)
	roof := carCorners(gs.sim.Vehicle(), 1.2)

	body := color.RGBA{220, 20, 20, 255}
	for i := range corners {
		j := (i + 1) % len(corners)
		strokeWorld(screen, pr, corners[i], corners[j], 3, body)
		strokeWorld(screen, pr, roof[i], roof[j], 2, color.RGBA{180, 15, 15, 255})
		strokeWorld(screen, pr, corners[i], roof[i], 2, body)
	}

	// headlights on the front edge
	strokeWorld(screen, pr, corners[0], corners[1], 4, color.RGBA{255, 255, 100, 255})
}

// carCorners returns the footprint corners at the given height, front
// left first, going clockwise seen from above
func carCorners(v *vehicle.State, height float64) [4]mgl64.Vec3 {
	pos, yaw, _ := v.Pose()
	pos[1] = height
	forward := v.Forward()
	right := mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}

	at := func(side, along float64) mgl64.Vec3 {
		return pos.Add(right.Mul(side * carHalfWidth)).Add(forward.Mul(along * carHalfLength))
	}
	return [4]mgl64.Vec3{at(-1, 1), at(1, 1), at(1, -1), at(-1, -1)}
}

func strokeWorld(screen *ebiten.Image, pr projector, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0, x1, y1, ok := pr.Segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// drawUI renders the speedometer and a debug line
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	gs.drawSpeedometer(screen)

	v := gs.sim.Vehicle()
	cam := gs.sim.Camera().Position()
	name := "stock"
	if gs.selected != nil {
		name = gs.selected.Name()
	}
	debug := fmt.Sprintf("%s  yaw %.2f  pos %.1f,%.1f  cam %.1f,%.1f,%.1f  [P] pause [R] restart [Esc] garage",
		name, v.Yaw, v.X, v.Z, cam.X(), cam.Y(), cam.Z())
	ebitenutil.DebugPrintAt(screen, debug, 10, gs.screenHeight-20)
}

// drawSpeedometer draws a speedometer displaying current speed in km/h
func (gs *GameplayScreen) drawSpeedometer(screen *ebiten.Image) {
	kmh := gs.sim.SpeedKmh()
	maxKmh := float64(vehicle.SpeedKmh(gs.sim.Physics().MaxSpeed))

	x, y := 20.0, 20.0
	width, height := 180.0, 120.0
	ui.DrawPanel(screen, x, y, width, height, color.RGBA{20, 20, 30, 200}, color.RGBA{100, 100, 120, 255})

	ratio := 0.0
	if maxKmh > 0 {
		ratio = math.Min(float64(kmh)/maxKmh, 1)
	}
	ui.DrawText(screen, fmt.Sprintf("%d", kmh), x+width/2, y+45, 48, speedColor(ratio))
	ui.DrawText(screen, "KM/H", x+width/2, y+80, 24, color.RGBA{200, 200, 200, 255})

	gear := "D"
	switch {
	case gs.sim.Vehicle().Speed < 0:
		gear = "R"
	case gs.sim.Vehicle().Speed == 0:
		gear = "N"
	}
	ui.DrawTextAt(screen, gear, x+12, y+20, 16, color.RGBA{200, 200, 200, 255})

	drawSpeedGauge(screen, x+10, y+height-25, width-20, 15, ratio)
}

// speedColor is green below half speed, yellow below 80%, red above
func speedColor(ratio float64) color.RGBA {
	switch {
	case ratio < 0.5:
		return color.RGBA{100, 255, 100, 255}
	case ratio < 0.8:
		return color.RGBA{255, 255, 100, 255}
	default:
		return color.RGBA{255, 100, 100, 255}
	}
}

// gaugeColor blends green to yellow to red across the gauge
func gaugeColor(ratio float64) color.RGBA {
	if ratio < 0.5 {
		r := ratio / 0.5
		return color.RGBA{uint8(100 + r*155), 255, 100, 255}
	}
	r := (ratio - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - r*155), uint8(100 - r*100), 255}
}

// drawSpeedGauge draws a horizontal bar filled to ratio
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height, ratio float64) {
	ui.DrawPanel(screen, x, y, width, height, color.RGBA{40, 40, 40, 255}, color.RGBA{150, 150, 150, 255})
	if filled := width * ratio; filled > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), gaugeColor(ratio), false)
	}
}
