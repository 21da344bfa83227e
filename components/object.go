package components

import (
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space every Object is registered in.
var Space = donburi.NewComponentType[resolv.Space]()

// SpacePosition converts the world-space center of a w x h box into the top-left corner used by
// the collision space, whose origin is its top-left with Y pointing down.
func SpacePosition(center dmath.Vec2, w, h float64) (x, y float64) {
	x = center.X + float64(cfg.Physics.SpaceWidth)/2 - w/2
	y = float64(cfg.Physics.SpaceHeight)/2 - center.Y - h/2
	return x, y
}
