package fighter

import "image/color"

// Renderer draws filled rectangles. Coordinates are world units.
type Renderer interface {
	FillRect(x, y, w, h int, c color.Color)
}

// Vertical draw offsets relative to the fighter's Y. Y is where the feet
// rest, so everything is drawn above it.
const (
	BodyOffsetY      = 100
	HealthBarOffsetY = 120
	HealthBarHeight  = 10
	SwordOffsetY     = 80
)

var (
	PlayerOneColor      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	PlayerTwoColor      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	HealthBarBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	HealthBarForeground = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	SwordColor          = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Render draws the body, the health bar and, while attacking, the sword.
// Dead fighters are not drawn.
func (f *Fighter) Render(r Renderer) {
	if f.dead {
		return
	}

	body := PlayerOneColor
	if !f.playerOne {
		body = PlayerTwoColor
	}
	r.FillRect(f.x, f.y-BodyOffsetY, f.width, f.height, body)

	r.FillRect(f.x, f.y-HealthBarOffsetY, f.width, HealthBarHeight, HealthBarBackground)
	filled := f.width * f.health / f.stats.MaxHealth
	r.FillRect(f.x, f.y-HealthBarOffsetY, filled, HealthBarHeight, HealthBarForeground)

	if f.attacking {
		x := f.x + f.width
		if f.facing == FacingLeft {
			x = f.x - f.stats.SwordLength
		}
		r.FillRect(x, f.y-SwordOffsetY, f.stats.SwordLength, f.stats.SwordWidth, SwordColor)
	}
}
