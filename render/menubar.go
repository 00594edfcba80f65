package render

import "jokolay/mlink"

// uiSizeRatio is the {Small, Normal, Large, Larger} scale table from
// spec section 4.5's "Menu-bar sizing".
var uiSizeRatio = map[mlink.UISize]float32{
	mlink.UISizeSmall:  1.0,
	mlink.UISizeNormal: 319.0 / 288.0,
	mlink.UISizeLarge:  355.0 / 288.0,
	mlink.UISizeLarger: 391.0 / 288.0,
}

// MenuBarScale computes the overlay's top menu icon scale (spec section
// 4.5 "Menu-bar sizing"). The engine owns this formula even though the
// menu bar UI itself is out of scope, since it is driven by the same
// MumbleLink DPI/UI-size fields the billboard projector consumes.
//
// Open Question (c): the original source uses its own computed scale
// both as a UI multiplier and as the divisor inside the aspect-ratio
// term, which reads as unintentional coupling; this formula divides the
// aspect-ratio terms by 1024*dpiScale and 768*dpiScale (the dpiScale
// input), never by its own computed scale.
func MenuBarScale(uiSize mlink.UISize, dpiScale float32, gameWidth, gameHeight int, eguiPixelsPerPoint float32) float32 {
	ratio, ok := uiSizeRatio[uiSize]
	if !ok {
		ratio = 1.0
	}

	widthRatio := minFloat(float32(gameWidth), 1024*dpiScale) / (1024 * dpiScale)
	heightRatio := minFloat(float32(gameHeight), 768*dpiScale) / (768 * dpiScale)
	aspectScale := minFloat(widthRatio, heightRatio)

	if eguiPixelsPerPoint == 0 {
		eguiPixelsPerPoint = 1
	}
	return dpiScale * ratio * aspectScale / eguiPixelsPerPoint
}

func minFloat(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
