package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/remeh/sizedwaitgroup"
)

// Result is one finished request. Fallback is set when the image could not
// be read; Image is nil then and the caller draws its placeholder.
type Result struct {
	Key      string
	Path     string
	Image    *ebiten.Image
	Fallback bool
	Err      error
}

type pending struct {
	key  string
	path string
	img  image.Image
	err  error
	fn   func(Result)
}

// Loader reads and decodes images on worker goroutines and hands them back
// on the game loop through Poll.
type Loader struct {
	fsys    fs.FS
	tracker *Tracker
	swg     sizedwaitgroup.SizedWaitGroup
	convert func(image.Image) *ebiten.Image

	inflight sync.WaitGroup
	mu       sync.Mutex
	ready    []pending
	bytes    atomic.Int64
}

// NewLoader reads from fsys with at most parallel concurrent decodes.
func NewLoader(fsys fs.FS, tracker *Tracker, parallel int) *Loader {
	if parallel <= 0 {
		parallel = 4
	}
	if tracker == nil {
		tracker = NewTracker()
	}
	return &Loader{
		fsys:    fsys,
		tracker: tracker,
		swg:     sizedwaitgroup.New(parallel),
		convert: ebiten.NewImageFromImage,
	}
}

func (l *Loader) Tracker() *Tracker { return l.tracker }

// SetConvert replaces the decoded-image conversion. A nil fn leaves
// Result.Image nil, for tools that only need the load outcome.
func (l *Loader) SetConvert(fn func(image.Image) *ebiten.Image) {
	l.convert = fn
}

// BytesLoaded is the total size of files read so far.
func (l *Loader) BytesLoaded() int64 {
	return l.bytes.Load()
}

// Request registers an expected load and starts it. fn runs on the game
// loop from Poll, success or not.
func (l *Loader) Request(key, path string, fn func(Result)) {
	l.tracker.RegisterExpected()
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		l.swg.Add()
		defer l.swg.Done()

		p := pending{key: key, path: path, fn: fn}
		p.img, p.err = l.decode(path)

		l.mu.Lock()
		l.ready = append(l.ready, p)
		l.mu.Unlock()
	}()
}

func (l *Loader) decode(path string) (image.Image, error) {
	data, err := fs.ReadFile(l.fsys, cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	l.bytes.Add(int64(len(data)))
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Poll delivers finished requests and returns how many it delivered.
func (l *Loader) Poll() int {
	l.mu.Lock()
	batch := l.ready
	l.ready = nil
	l.mu.Unlock()

	for _, p := range batch {
		res := Result{Key: p.key, Path: p.path, Err: p.err}
		if p.err != nil {
			log.Printf("assets: load %s: %v (using placeholder)", p.key, p.err)
			res.Fallback = true
		} else if l.convert != nil {
			res.Image = l.convert(p.img)
		}
		if p.fn != nil {
			p.fn(res)
		}
		l.tracker.MarkLoaded()
	}
	return len(batch)
}

// Wait blocks until every started decode has queued its result.
func (l *Loader) Wait() {
	l.inflight.Wait()
}
