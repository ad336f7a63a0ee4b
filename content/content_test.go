package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"
)

func TestPlainText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"tags", "<h3>Title</h3><p>Body &amp; more</p>", "Title\nBody & more"},
		{"whitespace", "<p>  a \n   b  </p>", "a\nb"},
		{"empty", "<p> </p>", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PlainText(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestChainFallsThrough(t *testing.T) {
	fsys := fstest.MapFS{"labels/forge.html": {Data: []byte("<p>forge</p>")}}
	src := Chain{FSSource{FS: fsys, Dir: "labels"}, Canned{"skillFlower1": "Go"}}

	if got, err := src.Fetch(context.Background(), "forge"); err != nil || got != "<p>forge</p>" {
		t.Fatalf("expected embedded fragment, got %q err=%v", got, err)
	}
	if got, err := src.Fetch(context.Background(), "skillFlower1"); err != nil || got != "Go" {
		t.Fatalf("expected canned text, got %q err=%v", got, err)
	}
	if _, err := src.Fetch(context.Background(), "nothing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/labels/virtual.html":
			_, _ = w.Write([]byte("<p>twin</p>"))
		case "/labels/broken.html":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := HTTPSource{BaseURL: srv.URL + "/labels"}
	if got, err := src.Fetch(context.Background(), "virtual"); err != nil || got != "<p>twin</p>" {
		t.Fatalf("expected fragment, got %q err=%v", got, err)
	}
	if _, err := src.Fetch(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := src.Fetch(context.Background(), "broken"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected a server error, got %v", err)
	}
}

type blockingSource struct {
	release chan struct{}
}

func (b blockingSource) Fetch(ctx context.Context, id string) (string, error) {
	<-b.release
	if id == "bad" {
		return "", errors.New("offline")
	}
	return "<b>" + id + "</b>", nil
}

func TestCacheDegradesGracefully(t *testing.T) {
	src := blockingSource{release: make(chan struct{})}
	c := NewCache(src, time.Second)

	l, ready := c.Lookup("forge")
	if ready || l.Text != LoadingText {
		t.Fatalf("expected loading label, got %+v ready=%v", l, ready)
	}
	c.Prefetch("bad")
	close(src.release)
	c.Wait()

	if l, ready := c.Lookup("forge"); !ready || l.Text != "forge" || l.Status != StatusReady {
		t.Fatalf("expected ready label, got %+v", l)
	}
	if l, ready := c.Lookup("bad"); !ready || l.Text != UnavailableText || l.Status != StatusFailed {
		t.Fatalf("expected unavailable label, got %+v", l)
	}
}

func TestDefaultsCoverEmbeddedLabels(t *testing.T) {
	src := Defaults()
	for _, id := range []string{"drawer1", "forge", "mail-box", "skillFlower9"} {
		if _, err := src.Fetch(context.Background(), id); err != nil {
			t.Fatalf("%s: %v", id, err)
		}
	}
}
