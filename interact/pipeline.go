// Package interact turns pointer input into hover effects, zone focus,
// camera moves and panels, under a global interaction lockout.
package interact

import (
	"errors"
	"fmt"
	"log"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/content"
	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/modal"
	"github.com/milk9111/hexfolio/notify"
	"github.com/milk9111/hexfolio/scene"
	"github.com/milk9111/hexfolio/storage"
	"github.com/milk9111/hexfolio/theme"
	"github.com/milk9111/hexfolio/tween"
)

var ErrUnknownZone = errors.New("interact: unknown zone")

// Config tunes hover and label behaviour.
type Config struct {
	// HoverExempt lists objects that hovering never marks read.
	HoverExempt  []string
	LiftDuration float32
	LabelOffsetX float32
	LabelOffsetY float32
	// Modals maps modal ids to their panel content.
	Modals map[string]modal.Content
}

func DefaultConfig() Config {
	return Config{
		HoverExempt:  []string{"forge", "steering"},
		LiftDuration: 0.25,
		LabelOffsetX: 16,
		LabelOffsetY: 16,
	}
}

// Deps are the collaborators the pipeline drives.
type Deps struct {
	Registry *scene.Registry
	Themes   *theme.Gate
	Camera   *camera.Choreographer
	Tweens   *tween.Engine
	Unread   *notify.Store
	Modals   *modal.Controller
	Labels   *content.Cache
	Storage  storage.Store
}

// Pipeline owns the hover/click state machine.
type Pipeline struct {
	cfg    Config
	deps   Deps
	caster *scene.BoxCaster
	gate   Gate
	exempt map[string]struct{}

	width  float32
	height float32

	focus   string // focused tile type, empty in the overview
	hovered string
	label   LabelState

	// panels opened after a camera flight; closing one returns the camera
	flown            map[string]struct{}
	cinematicPending bool
}

func New(deps Deps, cfg Config) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		deps:   deps,
		caster: scene.NewBoxCaster(deps.Registry),
		exempt: make(map[string]struct{}, len(cfg.HoverExempt)),
		flown:  make(map[string]struct{}),
		width:  1280,
		height: 720,
	}
	for _, id := range cfg.HoverExempt {
		p.exempt[id] = struct{}{}
	}
	if deps.Modals != nil {
		deps.Modals.OnClose(p.modalClosed)
	}
	return p
}

func (p *Pipeline) Gate() *Gate { return &p.gate }

// Focus is the focused tile type, empty in the overview.
func (p *Pipeline) Focus() string { return p.focus }

func (p *Pipeline) Hovered() string { return p.hovered }

func (p *Pipeline) Label() LabelState { return p.label }

// CinematicPending reports an entrance waiting for a panel to close.
func (p *Pipeline) CinematicPending() bool { return p.cinematicPending }

// SetViewport records the logical screen size used for picking and labels.
func (p *Pipeline) SetViewport(w, h float32) {
	if w > 0 && h > 0 {
		p.width, p.height = w, h
	}
}

// View is the perspective the pointer is interpreted in.
func (p *Pipeline) View() camera.View {
	st := p.deps.Camera.State()
	return camera.NewView(st.Position, st.LookAt, p.width, p.height, p.deps.Camera.Config().FOV)
}

func (p *Pipeline) pick(x, y float32) []scene.Hit {
	return p.caster.CastRay(p.View().Ray(x, y), nil)
}

// Hover updates lift animations and the label for a pointer position.
func (p *Pipeline) Hover(x, y float32) {
	if p.gate.Locked() {
		return
	}
	hits := p.pick(x, y)
	var obj *scene.Object
	if len(hits) > 0 {
		obj, _ = p.deps.Registry.ObjectAt(hits[0].Entity)
	}
	if obj == nil || !p.deps.Themes.IsReachable(obj.ID, p.focus) {
		p.clearHover()
		return
	}

	if obj.ID != p.hovered {
		p.lower(p.hovered)
		p.raise(obj)
		p.hovered = obj.ID
	}
	p.showLabel(obj.ID, x, y)

	if _, skip := p.exempt[obj.ID]; !skip {
		p.deps.Unread.MarkRead(obj.ID)
	}
}

func (p *Pipeline) clearHover() {
	p.lower(p.hovered)
	p.hovered = ""
	p.label = LabelState{}
}

func (p *Pipeline) showLabel(id string, x, y float32) {
	text := content.LoadingText
	if p.deps.Labels != nil {
		l, _ := p.deps.Labels.Lookup(id)
		text = l.Text
	}
	w, h := MeasureLabel(text)
	lx, ly := placeLabel(x, y, p.cfg.LabelOffsetX, p.cfg.LabelOffsetY, w, h, p.width, p.height)
	p.label = LabelState{Visible: true, ObjectID: id, Text: text, X: lx, Y: ly, W: w, H: h}
}

func liftKey(id string) string { return "lift:" + id }

// raise animates a prop to its lifted offset.
func (p *Pipeline) raise(obj *scene.Object) {
	if obj.Lift == component.LiftNone {
		return
	}
	if obj.Lift == component.LiftFlower {
		obj.StayUp = true
	}
	p.animateOffset(obj, obj.LiftVector)
}

// lower animates a prop back to rest unless it is sticky.
func (p *Pipeline) lower(id string) {
	if id == "" {
		return
	}
	obj, ok := p.deps.Registry.Object(id)
	if !ok || obj.Lift == component.LiftNone || obj.StayUp {
		return
	}
	p.animateOffset(obj, math32.Vector3{})
}

func (p *Pipeline) animateOffset(obj *scene.Object, to math32.Vector3) {
	in := obj.Interactive
	from := in.Offset
	p.deps.Tweens.Start(liftKey(in.ID), p.cfg.LiftDuration, tween.SoftLand,
		func(t float32) { in.Offset = tween.Vec3(from, to, t) }, nil)
}

// ResetLifts drops every prop back to rest, sticky ones included.
func (p *Pipeline) ResetLifts() {
	for _, obj := range p.deps.Registry.AllInteractiveObjects() {
		obj.StayUp = false
		if obj.Offset != (math32.Vector3{}) {
			p.animateOffset(obj, math32.Vector3{})
		}
	}
}

// Click handles a completed tap or click that did not become a drag.
func (p *Pipeline) Click(x, y float32) {
	if p.gate.Locked() {
		return
	}
	for _, hit := range p.pick(x, y) {
		if obj, ok := p.deps.Registry.ObjectAt(hit.Entity); ok {
			if !obj.Clickable {
				continue
			}
			if !p.deps.Themes.IsReachable(obj.ID, p.focus) {
				// the prop belongs to another zone and swallows the click
				return
			}
			p.clickObject(obj)
			return
		}
		if tile, ok := p.deps.Registry.TileAt(hit.Entity); ok {
			p.focusTile(tile)
			return
		}
	}
}

func (p *Pipeline) clickObject(obj *scene.Object) {
	p.deps.Unread.MarkRead(obj.ID)

	if obj.Action == component.ActionNavigate {
		if err := p.NavigateToZone(obj.Target); err != nil {
			log.Printf("interact: %s: %v", obj.ID, err)
		}
		return
	}

	if rec := p.deps.Modals.Record(obj.Modal); rec.Open || rec.IsClosed {
		return
	}
	pose, ok := obj.FocusPose()
	if !ok {
		p.openModal(obj.Modal)
		return
	}
	id := obj.Modal
	err := p.deps.Camera.NavigateTo(pose, func() {
		if p.openModal(id) {
			p.flown[id] = struct{}{}
		}
	})
	if err != nil {
		log.Printf("interact: focus %s: %v", obj.ID, err)
	}
}

func (p *Pipeline) openModal(id string) bool {
	c, ok := p.cfg.Modals[id]
	if !ok {
		c = modal.Content{Title: id, Body: content.UnavailableText}
	}
	return p.deps.Modals.Open(id, c)
}

// focusTile makes a tile the active zone and flies to it.
func (p *Pipeline) focusTile(tile scene.Tile) {
	p.focus = tile.Type
	p.deps.Modals.ResetAll()
	p.clearHover()

	pose := p.deps.Camera.FocusPose(tile.Position)
	if tile.Arrival != nil {
		pose = *tile.Arrival
	}
	if err := p.deps.Camera.NavigateTo(pose, nil); err != nil {
		log.Printf("interact: focus tile %s: %v", tile.Type, err)
	}
}

// NavigateToZone focuses the tile of the given type, or returns to the
// overview for an empty type.
func (p *Pipeline) NavigateToZone(tileType string) error {
	if p.gate.Locked() {
		return nil
	}
	if tileType == "" {
		p.ReturnToOverview()
		return nil
	}
	tile, ok := p.deps.Registry.FindTileByType(tileType)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownZone, tileType)
	}
	p.focusTile(tile)
	return nil
}

// Scroll handles a wheel step. Scrolling down returns to the overview.
func (p *Pipeline) Scroll(dy float32) {
	if p.gate.Locked() || dy <= 0 {
		return
	}
	p.ReturnToOverview()
}

// ReturnToOverview clears focus and orbits again at the held angle.
func (p *Pipeline) ReturnToOverview() {
	if p.gate.Locked() || p.deps.Camera.Mode() == camera.ModeCinematic {
		return
	}
	p.focus = ""
	p.deps.Modals.ResetAll()
	p.clearHover()
	if err := p.deps.Camera.ReturnToOrbital(nil); err != nil {
		log.Printf("interact: overview: %v", err)
	}
}

// BeginEntrance shows the loading overlay lock.
func (p *Pipeline) BeginEntrance() {
	p.gate.Lock(ReasonLoadingOverlay)
}

// DismissLoadingOverlay releases the overlay and starts the entrance
// cinematic, or defers it while a panel is open.
func (p *Pipeline) DismissLoadingOverlay() {
	if !p.gate.Holds(ReasonLoadingOverlay) {
		return
	}
	p.gate.Unlock(ReasonLoadingOverlay)
	if p.deps.Storage != nil {
		if err := p.deps.Storage.SetBool(storage.KeyIntroSeen, true); err != nil {
			log.Printf("interact: persist intro: %v", err)
		}
	}
	if p.deps.Modals.AnyOpen() {
		p.cinematicPending = true
		return
	}
	p.playCinematic()
}

// SkipEntrance goes straight to orbiting, for returning visitors.
func (p *Pipeline) SkipEntrance() {
	p.gate.Unlock(ReasonLoadingOverlay)
	p.cinematicPending = false
	p.deps.Camera.SnapOrbital()
}

func (p *Pipeline) playCinematic() {
	p.cinematicPending = false
	p.clearHover()
	p.gate.Lock(ReasonCinematic)
	if err := p.deps.Camera.PlayCinematic(func() { p.gate.Unlock(ReasonCinematic) }); err != nil {
		p.gate.Unlock(ReasonCinematic)
		log.Printf("interact: cinematic: %v", err)
	}
}

// modalClosed runs before the panel is disposed.
func (p *Pipeline) modalClosed(id string) {
	_, flown := p.flown[id]
	delete(p.flown, id)

	if p.cinematicPending && !p.deps.Modals.AnyOpen() {
		p.focus = ""
		p.deps.Modals.ResetAll()
		p.playCinematic()
		return
	}
	if !flown {
		return
	}
	p.focus = ""
	p.deps.Modals.ResetAll()
	if err := p.deps.Camera.ReturnToOrbital(nil); err != nil {
		log.Printf("interact: return from %s: %v", id, err)
	}
}
