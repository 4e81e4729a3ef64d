package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if startJustPressed() && ts.onStartPressed != nil {
		ts.onStartPressed()
	}
	return nil
}

// startJustPressed is Enter, Space, a click, a tap or A/Start on any gamepad
func startJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing title, 1.0 to 1.1 scale
	pulse := 1.0 + 0.1*math.Sin(elapsed*2)
	brightness := math.Min(1.0+0.2*math.Sin(elapsed*1.5), 1.0)
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawText(screen, "CHASE DRIVE", centerX, centerY, 96*pulse, titleColor)
	DrawText(screen, "Arcade Driving", centerX, centerY+90, 32, color.RGBA{180, 180, 200, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		DrawText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 24, color.RGBA{150, 200, 255, 255})
	}

	drawRoadLines(screen, width, height, elapsed)
}

// drawRoadLines scrolls dashed lane markings across the bottom band
func drawRoadLines(screen *ebiten.Image, width, height int, elapsed float64) {
	lineColor := color.RGBA{50, 60, 80, 100}
	top := float32(height) / 6
	bottom := float32(height) * 5 / 6
	vector.StrokeLine(screen, 0, top, float32(width), top, 2, lineColor, false)
	vector.StrokeLine(screen, 0, bottom, float32(width), bottom, 2, lineColor, false)

	const dash, gap = 40, 30
	offset := float32(math.Mod(elapsed*120, dash+gap))
	y := bottom + 20
	for x := -offset; x < float32(width); x += dash + gap {
		vector.StrokeLine(screen, x, y, x+dash, y, 3, color.RGBA{90, 90, 110, 160}, false)
	}
}
