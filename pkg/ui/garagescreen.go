package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/chasedrive/pkg/models"
	"github.com/golangdaddy/chasedrive/pkg/models/car"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GarageScreen represents the car selection screen
type GarageScreen struct {
	selectedCarIndex int
	onCarSelected    func(*car.Car) // Callback when car is selected
}

// NewGarageScreen creates a new garage selection screen
func NewGarageScreen(onCarSelected func(*car.Car)) *GarageScreen {
	return &GarageScreen{
		selectedCarIndex: 0,
		onCarSelected:    onCarSelected,
	}
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		gs.move(-1, len(cars))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gs.move(1, len(cars))
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			gs.move(-1, len(cars))
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			gs.move(1, len(cars))
		}
	}

	if startJustPressed() && gs.onCarSelected != nil {
		gs.onCarSelected(cars[gs.selectedCarIndex])
	}
	return nil
}

// move steps the selection, wrapping at both ends
func (gs *GarageScreen) move(step, count int) {
	gs.selectedCarIndex = (gs.selectedCarIndex + step + count) % count
}

// Selected is the currently highlighted index
func (gs *GarageScreen) Selected() int {
	return gs.selectedCarIndex
}

// Draw renders the garage screen
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	DrawText(screen, "SELECT CAR", centerX, 60, 64, color.RGBA{255, 200, 50, 255})

	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		DrawText(screen, "No cars available", centerX, float64(height)/2, 24, color.White)
		return
	}

	startY := 130.0
	carSpacing := 80.0
	buttonWidth := 700.0
	buttonHeight := 60.0
	buttonX := centerX - buttonWidth/2

	for i, c := range cars {
		bgColor := color.RGBA{40, 40, 60, 255}
		var textColor color.Color = color.White
		if i == gs.selectedCarIndex {
			bgColor = color.RGBA{60, 100, 140, 255}
			textColor = color.RGBA{200, 240, 255, 255}
		}
		drawButton(screen, formatCarInfo(c), buttonX, startY+float64(i)*carSpacing, buttonWidth, buttonHeight, bgColor, textColor)
	}

	DrawText(screen, "Arrow Keys: Navigate | Enter: Select", centerX, float64(height)-50, 20, color.RGBA{150, 150, 150, 255})
}

// formatCarInfo formats car information for display
func formatCarInfo(c *car.Car) string {
	return fmt.Sprintf("%s (%d) - %.0f km/h | %.0f hp | %.0f kg | %s brakes",
		c.Name(), c.Year, c.TopSpeed, c.Horsepower, c.Weight, c.Brakes.Type)
}
