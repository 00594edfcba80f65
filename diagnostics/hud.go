package diagnostics

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a small always-on-screen status badge — game detection
// state and the loaded pack's marker/trail counts — without pulling in
// the out-of-scope full GUI shell (spec section "Diagnostics & debug
// server").
type HUD struct {
	face    font.Face
	visible bool

	GameDetected bool
	PackName     string
	MarkerCount  int
	TrailCount   int
	Warnings     int
}

// NewHUD returns a HUD ready to draw, visible by default.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13, visible: true}
}

func (h *HUD) Toggle() { h.visible = !h.visible }

func (h *HUD) SetVisible(v bool) { h.visible = v }

// Draw paints the badge in the top-left corner of dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	if !h.visible {
		return
	}

	statusColor := color.RGBA{90, 220, 90, 255}
	statusText := "game detected"
	if !h.GameDetected {
		statusColor = color.RGBA{220, 90, 90, 255}
		statusText = "game not detected"
	}

	lines := []struct {
		text string
		col  color.Color
	}{
		{"jokolay", color.RGBA{230, 230, 230, 255}},
		{statusText, statusColor},
		{fmt.Sprintf("pack: %s", h.packLabel()), color.RGBA{200, 200, 200, 255}},
		{fmt.Sprintf("markers: %d  trails: %d", h.MarkerCount, h.TrailCount), color.RGBA{200, 200, 200, 255}},
	}
	if h.Warnings > 0 {
		lines = append(lines, struct {
			text string
			col  color.Color
		}{fmt.Sprintf("%d load warning(s)", h.Warnings), color.RGBA{230, 200, 80, 255}})
	}

	x, y := 8, 16
	for _, l := range lines {
		text.Draw(dst, l.text, h.face, x, y, l.col)
		y += 14
	}
}

func (h *HUD) packLabel() string {
	if h.PackName == "" {
		return "(none loaded)"
	}
	return h.PackName
}
