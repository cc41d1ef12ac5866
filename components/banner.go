package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the "K.O." announcement shown when a fighter goes down.
type BannerData struct {
	Text       string
	Tween      *gween.Tween // Slides the banner in, value is the X offset
	Offset     float32
	TimeToLive int
}

var Banner = donburi.NewComponentType[BannerData]()
