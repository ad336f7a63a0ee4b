package diag

import "github.com/hajimehoshi/ebiten/v2"

const (
	NoticeUnsupported = "unsupported-environment"
	NoticeMissingData = "missing-data"
	NoticeAssetFailed = "asset-fallback"
)

// Probe inspects the running graphics backend. It only gives a meaningful
// answer once the game loop has started.
func Probe() (Notice, bool) {
	var d ebiten.DebugInfo
	ebiten.ReadDebugInfo(&d)
	return ProbeLibrary(d.GraphicsLibrary)
}

// ProbeLibrary maps a graphics library to an unsupported-environment notice.
func ProbeLibrary(lib ebiten.GraphicsLibrary) (Notice, bool) {
	if lib != ebiten.GraphicsLibraryUnknown {
		return Notice{}, false
	}
	return Notice{
		ID:       NoticeUnsupported,
		Severity: SeverityWarning,
		Text:     "3D rendering is not available here; showing a simplified island.",
	}, true
}

// MissingData is the critical notice for absent required data.
func MissingData(what string, err error) Notice {
	return Notice{
		ID:       NoticeMissingData,
		Severity: SeverityCritical,
		Text:     "Required data " + what + " could not be loaded (" + err.Error() + "). Please reload the page.",
	}
}
