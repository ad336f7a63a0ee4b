package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherCollapsesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := newWatcher(30*time.Millisecond, dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "camera.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("fov: 50\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != "camera.yaml" {
			t.Fatalf("expected camera.yaml, got %q", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for the changed prefab")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("expected a single event, also got %q", name)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := newWatcher(defaultQuiet, t.TempDir())
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
	_ = w.Close()
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "camera.yaml"), []byte("radius: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := DiskDir
	DiskDir = dir
	defer func() { DiskDir = old }()

	data, err := Load("prefabs/camera.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "radius: 3\n" {
		t.Fatalf("expected the disk copy, got %q", data)
	}

	DiskDir = ""
	data, err = Load("camera.yaml")
	if err != nil || string(data) == "radius: 3\n" {
		t.Fatalf("expected the embedded copy, got %q (%v)", data, err)
	}
}
