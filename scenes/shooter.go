package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/ribbonshot/assets"
	"github.com/automoto/ribbonshot/components"
	cfg "github.com/automoto/ribbonshot/config"
	"github.com/automoto/ribbonshot/fonts"
	"github.com/automoto/ribbonshot/systems"
	"github.com/automoto/ribbonshot/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ShooterScene is the whole demo: one shooter, its projectiles and their trails.
type ShooterScene struct {
	ecs       *ecs.ECS
	offscreen *ebiten.Image
	once      sync.Once
}

func NewShooterScene() *ShooterScene {
	return &ShooterScene{}
}

func (ss *ShooterScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()
}

func (ss *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if ss.offscreen == nil || ss.offscreen.Bounds().Dx() != w || ss.offscreen.Bounds().Dy() != h {
		ss.offscreen = ebiten.NewImage(w, h)
	}
	ss.offscreen.Fill(color.Black)

	var bloom components.BloomData
	if cameraEntry, ok := components.Camera.First(ss.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.ScreenWidth, camera.ScreenHeight = float64(w), float64(h)
		bloom = camera.Bloom
	}

	ss.ecs.DrawLayer(cfg.Default, ss.offscreen)
	systems.ApplyBloom(screen, ss.offscreen, bloom)
	ss.ecs.DrawLayer(cfg.LayerUI, screen)
}

func (ss *ShooterScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}
	if err := fonts.LoadDefaultFonts(cfg.UI.FontSize); err != nil {
		panic("failed to load fonts: " + err.Error())
	}

	ss.ecs = NewShooterECS()
	log.Printf("scene ready: fixed step %.4fs, fire speed %.0f", cfg.Time.FixedTimestep, cfg.Shooter.InitialSpeed)
}

// NewShooterECS builds the world, registers systems in frame order and runs startup.
func NewShooterECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateTime)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	e.AddSystem(systems.WithPauseCheck(systems.UpdateAim))

	// Fixed timestep phase
	e.AddSystem(systems.WithPauseCheck(systems.WithFixedTimestep(systems.UpdateProjectileMotion)))

	// Frame phase, in order: speed keys, fire, trail follow
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFireSpeed))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateFire))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateTrails))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateParticleEffects))
	e.AddSystem(systems.UpdateObjects)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawParticleEffects)
	e.AddRenderer(cfg.Default, systems.DrawMeshes)
	e.AddRenderer(cfg.LayerUI, systems.DrawDebug)
	e.AddRenderer(cfg.LayerUI, systems.DrawHUD)
	e.AddRenderer(cfg.LayerUI, systems.DrawPause)

	Setup(e)
	return e
}

// Setup creates the startup entities: collision space, camera, shooter and the shared
// projectile configuration with the trail effect registered.
func Setup(e *ecs.ECS) {
	factory.CreateSpace(e,
		cfg.Physics.SpaceWidth,
		cfg.Physics.SpaceHeight,
		cfg.Physics.CellWidth,
		cfg.Physics.CellHeight,
	)
	factory.CreateCamera(e)
	factory.CreateShooter(e, dmath.Vec2{})

	effects := factory.CreateEffects(e)
	handle := effects.Add(assets.BulletRibbon(cfg.Trail.Width, cfg.Trail.Lifetime))
	factory.CreateProjectileConfig(e, cfg.Shooter.InitialSpeed, handle)
}
