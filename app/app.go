package app

import (
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/hexfolio/diag"
	"github.com/milk9111/hexfolio/ecs"
	"github.com/milk9111/hexfolio/ecs/system"
	"github.com/milk9111/hexfolio/prefabs"
	"github.com/milk9111/hexfolio/theme"
	"github.com/milk9111/hexfolio/ui"
)

var skyColor = color.RGBA{R: 0x9f, G: 0xd3, B: 0xf0, A: 0xff}

// App is the Core plus everything that draws or reads input.
type App struct {
	*Core

	hud     *ui.HUD
	render  *system.RenderSystem
	systems *ecs.Scheduler
	watcher *prefabs.Watcher
	probed  bool
}

func New(opts Options) (*App, error) {
	core, err := LoadCore(opts)
	if err != nil {
		return nil, err
	}
	a := &App{
		Core:    core,
		render:  system.NewRenderSystem(core.Registry.HexSize()),
		systems: ecs.NewScheduler(),
	}

	style := ui.DefaultStyle()
	entries := make([]ui.SidebarEntry, 0, len(core.Sidebar))
	for _, s := range core.Sidebar {
		entries = append(entries, ui.SidebarEntry{Label: s.Label, Zone: s.Zone, Theme: theme.Theme(s.Theme)})
	}
	sidebar := ui.NewSidebar(style, entries, core.Unread, core.Pipeline.NavigateToZone)
	panels := ui.NewPresenter(style, func(id string) { core.Modals.Close(id) })
	core.Modals.SetPresenter(panels)
	loading := ui.NewLoadingOverlay(style, readiness{core}, core.Loader.BytesLoaded, core.Pipeline.DismissLoadingOverlay)
	a.hud = ui.NewHUD(sidebar, panels, loading, ui.NewNoticesPanel(style, core.Notices))

	// the pointer belongs to the HUD while it is over a widget
	input := system.NewInputSystem(core.Pipeline, core.Camera)
	a.systems.AddWhen(input, func() bool { return !a.hud.Captured() })

	if core.SkipsIntro() {
		if core.Ready() {
			loading.Hide()
		} else {
			core.Loader.Tracker().OnAllLoaded(loading.Hide)
		}
	}

	if opts.Debug {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("app: prefab watcher: %v", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

// readiness adapts the tracker for the overlay, treating an empty island
// as loaded.
type readiness struct{ c *Core }

func (r readiness) Progress() (loaded, total int) { return r.c.Loader.Tracker().Progress() }

func (r readiness) Done() bool { return r.c.Ready() }

func (a *App) Update(dt float32) error {
	if !a.probed {
		// the graphics library is only known once the loop runs
		a.probed = true
		if n, ok := diag.Probe(); ok {
			a.Notices.Post(n)
		}
	}
	a.pollWatcher()
	if a.Opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.ResetProgress()
		log.Printf("app: progress reset")
	}

	a.Core.Step(dt)
	a.hud.Update()
	a.systems.Update(a.Registry.World())
	return nil
}

func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			if filepath.Base(name) != "camera.yaml" {
				continue
			}
			if err := a.ReloadCamera(); err != nil {
				log.Printf("app: reload %s: %v", name, err)
				continue
			}
			log.Printf("app: reloaded %s", name)
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Printf("app: prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	a.render.Draw(a.Registry.World(), screen, a.Pipeline.View(), a.Pipeline.Label())
	a.hud.Draw(screen)
}

func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
