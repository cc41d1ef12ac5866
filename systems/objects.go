package systems

import (
	"github.com/automoto/swordduel/components"
	"github.com/automoto/swordduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each fighter's collision object onto its body so the
// space matches the duel state.
func UpdateObjects(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Fighter.Get(e).Fighter.Body()
		obj := components.Object.Get(e)
		obj.X = float64(body.Min.X)
		obj.Y = float64(body.Min.Y)
		obj.Update()
	})
}
