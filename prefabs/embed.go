package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var embedded embed.FS

// DiskDir is checked before the embedded copies so edited prefabs apply
// without a rebuild. Empty disables the override.
var DiskDir = "prefabs"

// Load returns a prefab by file name, from DiskDir when present.
func Load(name string) ([]byte, error) {
	name = cleanPrefabPath(name)
	if DiskDir != "" {
		if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(name))); err == nil {
			return data, nil
		}
	}
	return embedded.ReadFile(name)
}

func cleanPrefabPath(p string) string {
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
