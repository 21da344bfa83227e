package systems

import (
	"fmt"

	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const controlsHint = "Up/Down: speed   Left click: fire   F1: colliders   Esc: pause"

// DrawHUD renders fire speed, entity counts and the controls in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	x := cfg.UI.Margin
	y := cfg.UI.Margin + cfg.UI.LineGap

	for _, line := range HUDLines(ecs) {
		text.Draw(screen, line, face, x, y, cfg.UI.TextColor)
		y += cfg.UI.LineGap
	}
	text.Draw(screen, fmt.Sprintf("FPS: %0.0f", ebiten.ActualFPS()), face, x, y, cfg.UI.TextColor)
}

// HUDLines returns the game-state lines shown by the HUD.
func HUDLines(ecs *ecs.ECS) []string {
	speed := 0.0
	if conf, ok := getProjectileConfig(ecs); ok {
		speed = conf.Speed
	}
	return []string{
		fmt.Sprintf("Speed: %0.0f", speed),
		fmt.Sprintf("Projectiles: %d   Trails: %d   Particles: %d", CountProjectiles(ecs), CountTrails(ecs), CountParticles(ecs)),
		controlsHint,
	}
}
