package fighter

import "image"

// Body returns the fighter's hurtbox in world coordinates. It starts at
// (X, Y) and extends Width to the right and Height down.
func (f *Fighter) Body() image.Rectangle {
	return image.Rect(f.x, f.y, f.x+f.width, f.y+f.height)
}

// SwordBox returns the area the sword covers on the facing side, a third of
// the way down the body.
func (f *Fighter) SwordBox() image.Rectangle {
	x := f.x + f.width
	if f.facing == FacingLeft {
		x = f.x - f.stats.SwordLength
	}
	y := f.y + f.height/3
	return image.Rect(x, y, x+f.stats.SwordLength, y+f.stats.SwordWidth)
}

// InReach reports whether a swing right now would touch opponent's body,
// ignoring blocking.
func (f *Fighter) InReach(opponent *Fighter) bool {
	if opponent == nil {
		return false
	}
	return f.SwordBox().Overlaps(opponent.Body())
}
