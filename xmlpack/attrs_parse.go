package xmlpack

import (
	"strconv"
	"strings"
)

// applyAttr parses one XML attribute (already lowercased key) into attrs,
// marking the corresponding bit active. Unrecognized keys are ignored
// (forward-compatible with newer pack authoring tools, spec section 4.2).
// Malformed scalar values (numbers, "0"/"1" booleans, colors, vectors,
// behavior, cull) are reported through warn and leave the field unset
// rather than silently defaulting to zero (Open Question (b) in DESIGN.md).
// Set-valued attributes (festival, maptype, mount, profession, race) and
// specialization keep the items they recognize and drop the rest without
// a warning; "hide" is set to true whatever its value.
func applyAttr(attrs *CommonAttributes, key, value string, warn func(string)) {
	switch key {
	case "achievementid":
		if n, ok := parseInt(value); ok {
			attrs.AchievementID, attrs.Active = n, attrs.Active|AttrAchievementID
		} else {
			warn("achievementId: not an integer: " + value)
		}
	case "achievementbit":
		if n, ok := parseInt(value); ok {
			attrs.AchievementBit, attrs.Active = n, attrs.Active|AttrAchievementBit
		} else {
			warn("achievementBit: not an integer: " + value)
		}
	case "alpha":
		if f, ok := parseFloat(value); ok {
			attrs.Alpha, attrs.Active = f, attrs.Active|AttrAlpha
		} else {
			warn("alpha: not a float: " + value)
		}
	case "animspeed":
		if f, ok := parseFloat(value); ok {
			attrs.AnimSpeed, attrs.Active = f, attrs.Active|AttrAnimSpeed
		} else {
			warn("animSpeed: not a float: " + value)
		}
	case "autotrigger":
		if b, ok := parseStrictBool(value); ok {
			attrs.AutoTrigger, attrs.Active = b, attrs.Active|AttrAutoTrigger
		} else {
			warn("autotrigger: expected 0 or 1, got " + value)
		}
	case "behavior":
		if b, ok := parseBehavior(value); ok {
			attrs.Behavior, attrs.Active = b, attrs.Active|AttrBehavior
		} else {
			warn("behavior: unrecognized value: " + value)
		}
	case "bounce":
		if b, ok := parseStrictBool(value); ok {
			attrs.Bounce, attrs.Active = b, attrs.Active|AttrBounce
		} else {
			warn("bounce: expected 0 or 1, got " + value)
		}
	case "bouncedelay":
		if f, ok := parseFloat(value); ok {
			attrs.BounceDelay, attrs.Active = f, attrs.Active|AttrBounceDelay
		} else {
			warn("bouncedelay: not a float: " + value)
		}
	case "bounceduration":
		if f, ok := parseFloat(value); ok {
			attrs.BounceDuration, attrs.Active = f, attrs.Active|AttrBounceDuration
		} else {
			warn("bounceduration: not a float: " + value)
		}
	case "bounceheight":
		if f, ok := parseFloat(value); ok {
			attrs.BounceHeight, attrs.Active = f, attrs.Active|AttrBounceHeight
		} else {
			warn("bounceheight: not a float: " + value)
		}
	case "canfade":
		if b, ok := parseStrictBool(value); ok {
			attrs.CanFade, attrs.Active = b, attrs.Active|AttrCanFade
		} else {
			warn("canfade: expected 0 or 1, got " + value)
		}
	case "color":
		if c, ok := parseColor(value); ok {
			attrs.Color, attrs.Active = c, attrs.Active|AttrColor
		} else {
			warn("color: expected hex RRGGBB[AA], got " + value)
		}
	case "copy":
		attrs.Copy, attrs.Active = value, attrs.Active|AttrCopy
	case "copymessage":
		attrs.CopyMessage, attrs.Active = value, attrs.Active|AttrCopyMessage
	case "cull":
		if c, ok := parseCull(value); ok {
			attrs.Cull, attrs.Active = c, attrs.Active|AttrCull
		} else {
			warn("cull: unrecognized value: " + value)
		}
	case "fadefar":
		if f, ok := parseFloat(value); ok {
			attrs.FadeFar, attrs.Active = f, attrs.Active|AttrFadeFar
		} else {
			warn("fadefar: not a float: " + value)
		}
	case "fadenear":
		if f, ok := parseFloat(value); ok {
			attrs.FadeNear, attrs.Active = f, attrs.Active|AttrFadeNear
		} else {
			warn("fadenear: not a float: " + value)
		}
	case "festival":
		attrs.Festival, attrs.Active = parseSet(value, festivalNames), attrs.Active|AttrFestival
	case "hascountdown":
		if b, ok := parseStrictBool(value); ok {
			attrs.HasCountdown, attrs.Active = b, attrs.Active|AttrHasCountdown
		} else {
			warn("hascountdown: expected 0 or 1, got " + value)
		}
	case "heightoffset":
		if f, ok := parseFloat(value); ok {
			attrs.HeightOffset, attrs.Active = f, attrs.Active|AttrHeightOffset
		} else {
			warn("heightoffset: not a float: " + value)
		}
	case "hide":
		attrs.Hide, attrs.Active = true, attrs.Active|AttrHide
	case "iconfile":
		attrs.IconFile, attrs.Active = value, attrs.Active|AttrIconFile
	case "iconsize":
		if f, ok := parseFloat(value); ok {
			attrs.IconSize, attrs.Active = f, attrs.Active|AttrIconSize
		} else {
			warn("iconsize: not a float: " + value)
		}
	case "ingamevisibility":
		if b, ok := parseStrictBool(value); ok {
			attrs.InGameVisibility, attrs.Active = b, attrs.Active|AttrInGameVisibility
		} else {
			warn("ingamevisibility: expected 0 or 1, got " + value)
		}
	case "info":
		attrs.Info, attrs.Active = value, attrs.Active|AttrInfo
	case "inforange":
		if f, ok := parseFloat(value); ok {
			attrs.InfoRange, attrs.Active = f, attrs.Active|AttrInfoRange
		} else {
			warn("inforange: not a float: " + value)
		}
	case "invertbehavior":
		if b, ok := parseStrictBool(value); ok {
			attrs.InvertBehavior, attrs.Active = b, attrs.Active|AttrInvertBehavior
		} else {
			warn("invertbehavior: expected 0 or 1, got " + value)
		}
	case "iswall":
		if b, ok := parseStrictBool(value); ok {
			attrs.IsWall, attrs.Active = b, attrs.Active|AttrIsWall
		} else {
			warn("iswall: expected 0 or 1, got " + value)
		}
	case "keeponmapedge":
		if b, ok := parseStrictBool(value); ok {
			attrs.KeepOnMapEdge, attrs.Active = b, attrs.Active|AttrKeepOnMapEdge
		} else {
			warn("keeponmapedge: expected 0 or 1, got " + value)
		}
	case "mapdisplaysize":
		if f, ok := parseFloat(value); ok {
			attrs.MapDisplaySize, attrs.Active = f, attrs.Active|AttrMapDisplaySize
		} else {
			warn("mapdisplaysize: not a float: " + value)
		}
	case "maptype":
		attrs.MapType, attrs.Active = parseSet(value, mapTypeNames), attrs.Active|AttrMapType
	case "mapvisibility":
		if b, ok := parseStrictBool(value); ok {
			attrs.MapVisibility, attrs.Active = b, attrs.Active|AttrMapVisibility
		} else {
			warn("mapvisibility: expected 0 or 1, got " + value)
		}
	case "maxsize":
		if f, ok := parseFloat(value); ok {
			attrs.MaxSize, attrs.Active = f, attrs.Active|AttrMaxSize
		} else {
			warn("maxsize: not a float: " + value)
		}
	case "minsize":
		if f, ok := parseFloat(value); ok {
			attrs.MinSize, attrs.Active = f, attrs.Active|AttrMinSize
		} else {
			warn("minsize: not a float: " + value)
		}
	case "minimapvisibility":
		if b, ok := parseStrictBool(value); ok {
			attrs.MiniMapVisibility, attrs.Active = b, attrs.Active|AttrMiniMapVisibility
		} else {
			warn("minimapvisibility: expected 0 or 1, got " + value)
		}
	case "mount":
		attrs.Mount, attrs.Active = parseSet(value, mountNames), attrs.Active|AttrMount
	case "profession":
		attrs.Profession, attrs.Active = parseSet(value, professionNames), attrs.Active|AttrProfession
	case "race":
		attrs.Race, attrs.Active = parseSet(value, raceNames), attrs.Active|AttrRace
	case "resetlength":
		if f, ok := parseFloat(value); ok {
			attrs.ResetLength, attrs.Active = f, attrs.Active|AttrResetLength
		} else {
			warn("resetlength: not a float: " + value)
		}
	case "resetoffset":
		if f, ok := parseFloat(value); ok {
			attrs.ResetOffset, attrs.Active = f, attrs.Active|AttrResetOffset
		} else {
			warn("resetoffset: not a float: " + value)
		}
	case "rotate":
		if v, ok := parseVec3(value); ok {
			attrs.Rotate, attrs.Active = v, attrs.Active|AttrRotate
		} else {
			warn("rotate: expected \"x,y,z\", got " + value)
		}
	case "scaleonmapwithzoom":
		if b, ok := parseStrictBool(value); ok {
			attrs.ScaleOnMapWithZoom, attrs.Active = b, attrs.Active|AttrScaleOnMapWithZoom
		} else {
			warn("scaleonmapwithzoom: expected 0 or 1, got " + value)
		}
	case "show":
		attrs.Show, attrs.Active = value, attrs.Active|AttrShow
	case "specialization":
		attrs.Specialization, attrs.Active = parseIntList(value), attrs.Active|AttrSpecialization
	case "text":
		attrs.Text, attrs.Active = value, attrs.Active|AttrText
	case "texture":
		attrs.Texture, attrs.Active = value, attrs.Active|AttrTexture
	case "tip":
		attrs.TipName, attrs.Active = value, attrs.Active|AttrTipName
	case "tipdescription":
		attrs.TipDescription, attrs.Active = value, attrs.Active|AttrTipDescription
	case "title":
		attrs.Title, attrs.Active = value, attrs.Active|AttrTitle
	case "titlecolor":
		if c, ok := parseColor(value); ok {
			attrs.TitleColor, attrs.Active = c, attrs.Active|AttrTitleColor
		} else {
			warn("titlecolor: expected hex RRGGBB[AA], got " + value)
		}
	case "togglecategory":
		attrs.ToggleCategory, attrs.Active = value, attrs.Active|AttrToggleCategory
	case "traildata":
		attrs.TrailData, attrs.Active = value, attrs.Active|AttrTrailData
	case "trailscale":
		if f, ok := parseFloat(value); ok {
			attrs.TrailScale, attrs.Active = f, attrs.Active|AttrTrailScale
		} else {
			warn("trailscale: not a float: " + value)
		}
	case "triggerrange":
		if f, ok := parseFloat(value); ok {
			attrs.TriggerRange, attrs.Active = f, attrs.Active|AttrTriggerRange
		} else {
			warn("triggerrange: not a float: " + value)
		}
	}
}

func parseFloat(s string) (float32, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseStrictBool only accepts "0" and "1" (spec section 9(b)'s Open
// Question resolution). Any other value, including "true"/"false", is
// rejected so the caller can warn and leave the field unset.
func parseStrictBool(s string) (bool, bool) {
	switch strings.TrimSpace(s) {
	case "0":
		return false, true
	case "1":
		return true, true
	default:
		return false, false
	}
}

func parseColor(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(s) == 6 {
		return Color{R: byte(v >> 16), G: byte(v >> 8), B: byte(v), A: 0xff}, true
	}
	return Color{R: byte(v >> 24), G: byte(v >> 16), B: byte(v >> 8), A: byte(v)}, true
}

func parseVec3(s string) (Vec3, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec3{}, false
	}
	x, ok1 := parseFloat(parts[0])
	y, ok2 := parseFloat(parts[1])
	z, ok3 := parseFloat(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return Vec3{}, false
	}
	return Vec3{x, y, z}, true
}

func parseIntList(s string) []int {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if n, ok := parseInt(p); ok {
			out = append(out, n)
		}
	}
	return out
}

func parseSet[T ~uint8 | ~uint16 | ~uint32](s string, names map[string]T) T {
	var set T
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if bit, ok := names[p]; ok {
			set |= bit
		}
	}
	return set
}
