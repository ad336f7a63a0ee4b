package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed tiles/*.png props/*.png
var assetsFS embed.FS

// FS exposes the embedded images to the loader.
func FS() fs.FS {
	return assetsFS
}

// Exists reports whether an embedded asset is present.
func Exists(path string) bool {
	_, err := fs.Stat(assetsFS, cleanAssetPath(path))
	return err == nil
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	return s
}
