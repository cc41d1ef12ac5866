package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
)
