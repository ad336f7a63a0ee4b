package interact

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/hexfolio/common"
)

// LabelState is the hover label as the renderer should draw it.
type LabelState struct {
	Visible  bool
	ObjectID string
	Text     string
	X        float32
	Y        float32
	W        float32
	H        float32
}

// LabelPadding is the inset between the label box and its text.
const LabelPadding = 6

// MeasureLabel sizes text drawn with the 7x13 debug face plus padding.
func MeasureLabel(text string) (w, h float32) {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if adv := font.MeasureString(basicfont.Face7x13, line).Ceil(); adv > widest {
			widest = adv
		}
	}
	lineH := basicfont.Face7x13.Metrics().Height.Ceil()
	return float32(widest + 2*LabelPadding), float32(len(lines)*lineH + 2*LabelPadding)
}

// placeLabel puts a w x h box at the pointer plus offset, kept inside the
// viewport.
func placeLabel(px, py, offX, offY, w, h, vw, vh float32) (x, y float32) {
	x, y = px+offX, py+offY
	if x+w > vw {
		// flip to the left of the pointer before clamping
		x = px - offX - w
	}
	x = common.Clamp(x, 0, max(vw-w, 0))
	y = common.Clamp(y, 0, max(vh-h, 0))
	return x, y
}
