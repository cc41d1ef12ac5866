package arena

import (
	"github.com/automoto/swordduel/tags"
	"github.com/solarlune/resolv"
)

// Platform is the ground fighters stand on. Its top edge is the standing
// height.
type Platform struct {
	*resolv.Object
}

// NewPlatform creates the ground collision object for r.
func NewPlatform(r Rect) *Platform {
	return &Platform{Object: resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)}
}

// SurfaceY implements fighter.Ground.
func (p *Platform) SurfaceY() int {
	return int(p.Y)
}
