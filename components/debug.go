package components

import "github.com/yohamta/donburi"

// DebugData stores debug overlay toggles
type DebugData struct {
	ShowColliders bool
}

var Debug = donburi.NewComponentType[DebugData]()
