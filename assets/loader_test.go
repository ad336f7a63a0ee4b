package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestTrackerFiresOnceAfterLastLoad(t *testing.T) {
	tr := NewTracker()
	fired := 0
	tr.OnAllLoaded(func() { fired++ })

	for i := 0; i < 3; i++ {
		tr.RegisterExpected()
	}
	tr.MarkLoaded()
	tr.MarkLoaded()
	if fired != 0 || tr.Done() {
		t.Fatalf("fired before the last load")
	}
	tr.MarkLoaded()
	tr.MarkLoaded() // late extra report
	if fired != 1 || !tr.Done() {
		t.Fatalf("expected exactly one signal, got %d", fired)
	}
	if loaded, total := tr.Progress(); loaded != 3 || total != 3 {
		t.Fatalf("expected 3/3, got %d/%d", loaded, total)
	}

	late := false
	tr.OnAllLoaded(func() { late = true })
	if !late {
		t.Fatalf("expected late subscriber to run immediately")
	}
}

func TestTrackerNeverFiresEmpty(t *testing.T) {
	tr := NewTracker()
	fired := false
	tr.OnAllLoaded(func() { fired = true })
	tr.MarkLoaded()
	if fired || tr.Done() {
		t.Fatalf("expected no signal without registered loads")
	}
}

func TestLoaderCompletesUnderMixedFailures(t *testing.T) {
	good := pngBytes(t)
	fsys := fstest.MapFS{
		"tiles/home.png":  {Data: good},
		"tiles/cv.png":    {Data: good},
		"tiles/bad.png":   {Data: []byte("not a png")},
		"props/forge.png": {Data: good},
	}
	cases := []struct {
		name  string
		paths []string
		fails int
	}{
		{"all good", []string{"tiles/home.png", "tiles/cv.png", "props/forge.png"}, 0},
		{"one missing", []string{"tiles/home.png", "tiles/missing.png"}, 1},
		{"all failing", []string{"tiles/bad.png", "tiles/missing.png", "assets/tiles/nope.png"}, 3},
		{"mixed", []string{"tiles/home.png", "tiles/bad.png", "props/forge.png", "tiles/missing.png", "assets/tiles/cv.png"}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTracker()
			l := NewLoader(fsys, tr, 2)
			l.convert = func(image.Image) *ebiten.Image { return nil }

			fired := 0
			tr.OnAllLoaded(func() { fired++ })

			fallbacks := 0
			for _, p := range tc.paths {
				l.Request(p, p, func(r Result) {
					if r.Fallback {
						fallbacks++
					}
				})
			}
			l.Wait()
			if n := l.Poll(); n != len(tc.paths) {
				t.Fatalf("expected %d results, got %d", len(tc.paths), n)
			}
			if fired != 1 {
				t.Fatalf("expected one completion, got %d", fired)
			}
			if fallbacks != tc.fails {
				t.Fatalf("expected %d fallbacks, got %d", tc.fails, fallbacks)
			}
			if l.Poll() != 0 {
				t.Fatalf("expected an empty queue after draining")
			}
		})
	}
}

// gatedFS holds reads of one file until released.
type gatedFS struct {
	fstest.MapFS
	slow    string
	release chan struct{}
}

func (g gatedFS) Open(name string) (fs.File, error) {
	if name == g.slow {
		<-g.release
	}
	return g.MapFS.Open(name)
}

func (g gatedFS) ReadFile(name string) ([]byte, error) {
	if name == g.slow {
		<-g.release
	}
	return g.MapFS.ReadFile(name)
}

// Three tile loads are registered; the third is slow and then fails. The
// loading overlay may only be dismissed after it reports.
func TestLoaderSlowThirdLoad(t *testing.T) {
	good := pngBytes(t)
	fsys := gatedFS{
		MapFS:   fstest.MapFS{"a.png": {Data: good}, "b.png": {Data: good}},
		slow:    "c.png",
		release: make(chan struct{}),
	}
	tr := NewTracker()
	l := NewLoader(fsys, tr, 3)
	l.convert = func(image.Image) *ebiten.Image { return nil }

	fallback := false
	l.Request("a", "a.png", nil)
	l.Request("b", "b.png", nil)
	l.Request("c", "c.png", func(r Result) { fallback = r.Fallback })

	for delivered := 0; delivered < 2; {
		delivered += l.Poll()
		runtime.Gosched()
	}
	if tr.Done() {
		t.Fatalf("expected loading to wait for the third asset")
	}
	if loaded, total := tr.Progress(); loaded != 2 || total != 3 {
		t.Fatalf("expected 2/3, got %d/%d", loaded, total)
	}

	close(fsys.release)
	l.Wait()
	l.Poll()
	if !tr.Done() || !fallback {
		t.Fatalf("expected completion with a placeholder, done=%v fallback=%v", tr.Done(), fallback)
	}
	if l.BytesLoaded() != int64(2*len(good)) {
		t.Fatalf("expected %d bytes, got %d", 2*len(good), l.BytesLoaded())
	}
}

func TestEmbeddedAssetsPresent(t *testing.T) {
	for _, p := range []string{"tiles/home.png", "assets/props/forge.png"} {
		if !Exists(p) {
			t.Fatalf("missing embedded asset %s", p)
		}
	}
}
