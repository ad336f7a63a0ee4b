// Package app wires the island together: data, scene, camera, interaction,
// state and overlays.
package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/hexfolio/assets"
	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/common"
	"github.com/milk9111/hexfolio/content"
	"github.com/milk9111/hexfolio/diag"
	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/interact"
	"github.com/milk9111/hexfolio/levels"
	"github.com/milk9111/hexfolio/modal"
	"github.com/milk9111/hexfolio/notify"
	"github.com/milk9111/hexfolio/prefabs"
	"github.com/milk9111/hexfolio/scene"
	"github.com/milk9111/hexfolio/storage"
	"github.com/milk9111/hexfolio/theme"
	"github.com/milk9111/hexfolio/tween"
)

// Options come from the command line.
type Options struct {
	Debug      bool
	ContentURL string
	StatePath  string
	Reset      bool
	SkipIntro  bool
	Level      string

	// Store overrides the state file, for tests.
	Store storage.Store
	// Headless skips GPU image conversion.
	Headless bool
}

// Core is every non-graphical component, built and connected.
type Core struct {
	Opts     Options
	Notices  *diag.Notices
	Reporter *diag.Reporter

	Camera   *camera.Choreographer
	Tweens   *tween.Engine
	Themes   *theme.Table
	Registry *scene.Registry
	Unread   *notify.Store
	Modals   *modal.Controller
	Labels   *content.Cache
	Pipeline *interact.Pipeline
	Loader   *assets.Loader
	Store    storage.Store

	Sidebar []prefabs.SidebarSpec
	objects []scene.ObjectDef
	placed  int
}

// LoadCore reads the prefabs and the island, then starts the asset loads.
// Missing data is posted as a critical notice rather than returned, so the
// visitor still gets a (possibly empty) island. Only programming errors
// return an error.
func LoadCore(opts Options) (*Core, error) {
	c := &Core{
		Opts:     opts,
		Notices:  &diag.Notices{},
		Reporter: diag.NewReporter(3),
		Tweens:   tween.NewEngine(),
	}

	c.Store = opts.Store
	if c.Store == nil {
		c.Store = openStore(opts.StatePath)
	}

	camCfg := camera.DefaultConfig()
	if spec, err := prefabs.LoadCameraSpec(); err != nil {
		log.Printf("app: camera prefab: %v (using defaults)", err)
	} else if cfg, err := spec.Config(); err != nil {
		log.Printf("app: camera prefab: %v (using defaults)", err)
	} else {
		camCfg = cfg
	}
	c.Camera = camera.New(camCfg, c.Tweens)

	themes, err := prefabs.LoadThemesSpec()
	if err != nil {
		c.Notices.Post(diag.MissingData("themes.yaml", err))
		themes = &prefabs.ThemesSpec{Base: string(theme.Base)}
	}
	c.Themes = themes.Table()
	c.Sidebar = themes.Sidebar

	objects, err := prefabs.LoadObjectsSpec()
	if err == nil {
		c.objects, err = objects.Defs()
	}
	if err != nil {
		c.Notices.Post(diag.MissingData("objects.yaml", err))
		objects = &prefabs.ObjectsSpec{}
		c.objects = nil
	}

	level := opts.Level
	if level == "" {
		level = levels.DefaultIsland
	}
	var tiles []scene.TileDef
	isl, err := levels.LoadIsland(level)
	if err == nil {
		tiles, err = isl.Defs()
	}
	size := float32(2)
	if isl != nil {
		size = isl.HexSize
	}
	if err == nil {
		c.Registry, err = scene.BuildIsland(tiles, size)
	}
	if err != nil {
		c.Notices.Post(diag.MissingData(level, err))
		c.Registry = scene.NewRegistry(size)
		tiles = nil
	}

	var ids []string
	for _, def := range c.objects {
		ids = append(ids, def.IDs()...)
	}
	c.Unread = notify.NewStore(c.Themes, ids, c.Store)

	c.Labels = content.NewCache(content.WithRemote(opts.ContentURL), 5*time.Second)
	c.Labels.Prefetch(ids...)

	c.Modals = modal.NewController(nil)

	cfg := interact.DefaultConfig()
	if len(objects.HoverExempt) > 0 {
		cfg.HoverExempt = objects.HoverExempt
	}
	if objects.LiftDuration > 0 {
		cfg.LiftDuration = objects.LiftDuration
	}
	cfg.Modals = objects.ModalContents()

	c.Pipeline = interact.New(interact.Deps{
		Registry: c.Registry,
		Themes:   theme.NewGate(c.Themes),
		Camera:   c.Camera,
		Tweens:   c.Tweens,
		Unread:   c.Unread,
		Modals:   c.Modals,
		Labels:   c.Labels,
		Storage:  c.Store,
	}, cfg)
	c.Pipeline.SetViewport(common.BaseWidth, common.BaseHeight)
	if opts.Reset {
		c.ResetProgress()
	}

	c.Loader = assets.NewLoader(assets.FS(), assets.NewTracker(), 4)
	if opts.Headless {
		c.Loader.SetConvert(nil)
	}
	c.requestAssets(tiles)
	c.startEntrance()
	return c, nil
}

func openStore(path string) storage.Store {
	if path == "" {
		p, err := storage.DefaultPath()
		if err != nil {
			log.Printf("app: %v (state is not persisted)", err)
			return storage.NewMemStore()
		}
		path = p
	}
	st, err := storage.OpenFile(path)
	if err != nil {
		log.Printf("app: %v (state is not persisted)", err)
		return storage.NewMemStore()
	}
	return st
}

// requestAssets loads one image per distinct tile sprite, and one per prop.
// A prop joins the scene when its image (or its placeholder) arrives.
func (c *Core) requestAssets(tiles []scene.TileDef) {
	seen := make(map[string]struct{})
	for _, t := range tiles {
		if t.Sprite == "" {
			continue
		}
		if _, ok := seen[t.Sprite]; ok {
			continue
		}
		seen[t.Sprite] = struct{}{}
		c.Loader.Request(t.Sprite, t.Sprite, c.tileLoaded)
	}
	for _, def := range c.objects {
		def := def
		c.Loader.Request(def.ID, def.Sprite, func(res assets.Result) {
			c.objectLoaded(def, res)
		})
	}
}

func (c *Core) assetFailed(res assets.Result) {
	if !res.Fallback {
		return
	}
	c.Notices.Post(diag.Notice{
		ID:       diag.NoticeAssetFailed,
		Severity: diag.SeverityWarning,
		Text:     "Some images could not be loaded; placeholders are shown.",
	})
}

func (c *Core) tileLoaded(res assets.Result) {
	c.assetFailed(res)
	if res.Image == nil {
		return
	}
	img := res.Image
	c.Registry.SetImage(res.Key, func(s *component.Sprite) { s.Image = img })
}

func (c *Core) objectLoaded(def scene.ObjectDef, res assets.Result) {
	c.assetFailed(res)
	objs, err := scene.PlaceObject(c.Registry, def)
	if err != nil {
		// an unknown anchor is a data error; the prop stays out of the scene
		c.Reporter.Report("place "+def.ID, err)
		return
	}
	c.placed += len(objs)
	if res.Image == nil {
		return
	}
	for _, obj := range objs {
		if s, ok := c.Registry.Sprite(obj.Entity); ok {
			s.Image = res.Image
		}
	}
}

// ResetProgress makes every prop unread again, forgets the intro, closes
// every panel and drops sticky props back to rest.
func (c *Core) ResetProgress() {
	c.Unread.Reset()
	if err := c.Store.Remove(storage.KeyIntroSeen); err != nil {
		log.Printf("app: reset intro: %v", err)
	}
	c.Modals.CloseAll()
	c.Modals.ResetAll()
	c.Pipeline.ResetLifts()
}

// Placed is the number of props in the scene so far.
func (c *Core) Placed() int { return c.placed }

// startEntrance locks interaction behind the loading overlay. Returning
// visitors skip the overlay and the cinematic once everything is loaded.
func (c *Core) startEntrance() {
	c.Pipeline.BeginEntrance()
	if !c.Opts.SkipIntro && !c.Store.Bool(storage.KeyIntroSeen) {
		return
	}
	if c.Ready() {
		c.Pipeline.SkipEntrance()
		return
	}
	c.Loader.Tracker().OnAllLoaded(func() {
		c.Pipeline.SkipEntrance()
	})
}

// Ready reports whether every requested asset has reported. An island with
// nothing to load is ready at once.
func (c *Core) Ready() bool {
	t := c.Loader.Tracker()
	_, total := t.Progress()
	return total == 0 || t.Done()
}

// SkipsIntro reports whether the overlay closes by itself.
func (c *Core) SkipsIntro() bool {
	return c.Opts.SkipIntro || c.Store.Bool(storage.KeyIntroSeen)
}

// Step advances everything that runs without graphics by dt seconds.
func (c *Core) Step(dt float32) {
	c.Loader.Poll()
	c.Tweens.Update(dt)
}

// ReloadCamera re-reads camera.yaml and applies it.
func (c *Core) ReloadCamera() error {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return err
	}
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	c.Camera.SetTuning(cfg)
	return nil
}

var errNoTiles = errors.New("app: island has no tiles")

// Check reports data problems a visitor would notice: an empty island or
// critical notices posted while loading.
func (c *Core) Check() error {
	if len(c.Registry.Tiles()) == 0 {
		return errNoTiles
	}
	for _, n := range c.Notices.List() {
		if n.Severity == diag.SeverityCritical {
			return fmt.Errorf("app: %s", n.Text)
		}
	}
	return nil
}
