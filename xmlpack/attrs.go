package xmlpack

// AttrFlag marks which fields of a CommonAttributes value were explicitly
// set by a pack author, as opposed to left at their zero value. This is
// the "active" bitset from spec section 3/9: inheritance must distinguish
// "attribute absent" from "attribute explicitly set to zero/false".
type AttrFlag uint64

const (
	AttrAchievementID AttrFlag = 1 << iota
	AttrAchievementBit
	AttrAlpha
	AttrAnimSpeed
	AttrAutoTrigger
	AttrBehavior
	AttrBounce
	AttrBounceDelay
	AttrBounceDuration
	AttrBounceHeight
	AttrCanFade
	AttrColor
	AttrCopy
	AttrCopyMessage
	AttrCull
	AttrFadeFar
	AttrFadeNear
	AttrFestival
	AttrHasCountdown
	AttrHeightOffset
	AttrHide
	AttrIconFile
	AttrIconSize
	AttrInGameVisibility
	AttrInfo
	AttrInfoRange
	AttrInvertBehavior
	AttrIsWall
	AttrKeepOnMapEdge
	AttrMapDisplaySize
	AttrMapType
	AttrMapVisibility
	AttrMaxSize
	AttrMinSize
	AttrMiniMapVisibility
	AttrMount
	AttrProfession
	AttrRace
	AttrResetLength
	AttrResetOffset
	AttrRotate
	AttrScaleOnMapWithZoom
	AttrShow
	AttrSpecialization
	AttrText
	AttrTexture
	AttrTipName
	AttrTipDescription
	AttrTitle
	AttrTitleColor
	AttrToggleCategory
	AttrTrailData
	AttrTrailScale
	AttrTriggerRange
)

// CommonAttributes is the attribute bag shared by categories, POIs and
// trails (spec section 3). Every field is paired with a bit in active;
// a zero-value field with its bit unset means "inherit from parent",
// while a zero-value field with its bit set means "explicitly zeroed".
type CommonAttributes struct {
	Active AttrFlag

	AchievementID      int
	AchievementBit     int
	Alpha              float32
	AnimSpeed          float32
	AutoTrigger        bool
	Behavior           Behavior
	Bounce             bool
	BounceDelay        float32
	BounceDuration     float32
	BounceHeight       float32
	CanFade            bool
	Color              Color
	Copy               string
	CopyMessage        string
	Cull               Cull
	FadeFar            float32
	FadeNear           float32
	Festival           FestivalSet
	HasCountdown       bool
	HeightOffset       float32
	Hide               bool
	IconFile           string
	IconSize           float32
	InGameVisibility   bool
	Info               string
	InfoRange          float32
	InvertBehavior     bool
	IsWall             bool
	KeepOnMapEdge      bool
	MapDisplaySize     float32
	MapType            MapTypeSet
	MapVisibility      bool
	MaxSize            float32
	MinSize            float32
	MiniMapVisibility  bool
	Mount              MountSet
	Profession         ProfessionSet
	Race               RaceSet
	ResetLength        float32
	ResetOffset        float32
	Rotate             Vec3
	ScaleOnMapWithZoom bool
	Show               string
	Specialization     []int
	Text               string
	Texture            string
	TipName            string
	TipDescription     string
	Title              string
	TitleColor         Color
	ToggleCategory     string
	TrailData          string
	TrailScale         float32
	TriggerRange       float32
}

// IsSet reports whether flag was explicitly assigned on a, rather than
// inherited or defaulted.
func (a *CommonAttributes) IsSet(flag AttrFlag) bool {
	return a.Active&flag != 0
}

// InheritFrom fills every attribute of a that is unset with parent's
// value, per spec section 3's "unset fields are copied from the nearest
// ancestor that has them set" merge rule. Fields already set on a are
// left untouched. Sets bits for copied fields so further inheritance up
// the chain (e.g. grandparent) still only fills genuinely-unset fields.
func (a *CommonAttributes) InheritFrom(parent CommonAttributes) {
	if !a.IsSet(AttrAchievementID) && parent.IsSet(AttrAchievementID) {
		a.AchievementID, a.Active = parent.AchievementID, a.Active|AttrAchievementID
	}
	if !a.IsSet(AttrAchievementBit) && parent.IsSet(AttrAchievementBit) {
		a.AchievementBit, a.Active = parent.AchievementBit, a.Active|AttrAchievementBit
	}
	if !a.IsSet(AttrAlpha) && parent.IsSet(AttrAlpha) {
		a.Alpha, a.Active = parent.Alpha, a.Active|AttrAlpha
	}
	if !a.IsSet(AttrAnimSpeed) && parent.IsSet(AttrAnimSpeed) {
		a.AnimSpeed, a.Active = parent.AnimSpeed, a.Active|AttrAnimSpeed
	}
	if !a.IsSet(AttrAutoTrigger) && parent.IsSet(AttrAutoTrigger) {
		a.AutoTrigger, a.Active = parent.AutoTrigger, a.Active|AttrAutoTrigger
	}
	if !a.IsSet(AttrBehavior) && parent.IsSet(AttrBehavior) {
		a.Behavior, a.Active = parent.Behavior, a.Active|AttrBehavior
	}
	if !a.IsSet(AttrBounce) && parent.IsSet(AttrBounce) {
		a.Bounce, a.Active = parent.Bounce, a.Active|AttrBounce
	}
	if !a.IsSet(AttrBounceDelay) && parent.IsSet(AttrBounceDelay) {
		a.BounceDelay, a.Active = parent.BounceDelay, a.Active|AttrBounceDelay
	}
	if !a.IsSet(AttrBounceDuration) && parent.IsSet(AttrBounceDuration) {
		a.BounceDuration, a.Active = parent.BounceDuration, a.Active|AttrBounceDuration
	}
	if !a.IsSet(AttrBounceHeight) && parent.IsSet(AttrBounceHeight) {
		a.BounceHeight, a.Active = parent.BounceHeight, a.Active|AttrBounceHeight
	}
	if !a.IsSet(AttrCanFade) && parent.IsSet(AttrCanFade) {
		a.CanFade, a.Active = parent.CanFade, a.Active|AttrCanFade
	}
	if !a.IsSet(AttrColor) && parent.IsSet(AttrColor) {
		a.Color, a.Active = parent.Color, a.Active|AttrColor
	}
	if !a.IsSet(AttrCopy) && parent.IsSet(AttrCopy) {
		a.Copy, a.Active = parent.Copy, a.Active|AttrCopy
	}
	if !a.IsSet(AttrCopyMessage) && parent.IsSet(AttrCopyMessage) {
		a.CopyMessage, a.Active = parent.CopyMessage, a.Active|AttrCopyMessage
	}
	if !a.IsSet(AttrCull) && parent.IsSet(AttrCull) {
		a.Cull, a.Active = parent.Cull, a.Active|AttrCull
	}
	if !a.IsSet(AttrFadeFar) && parent.IsSet(AttrFadeFar) {
		a.FadeFar, a.Active = parent.FadeFar, a.Active|AttrFadeFar
	}
	if !a.IsSet(AttrFadeNear) && parent.IsSet(AttrFadeNear) {
		a.FadeNear, a.Active = parent.FadeNear, a.Active|AttrFadeNear
	}
	if !a.IsSet(AttrFestival) && parent.IsSet(AttrFestival) {
		a.Festival, a.Active = parent.Festival, a.Active|AttrFestival
	}
	if !a.IsSet(AttrHasCountdown) && parent.IsSet(AttrHasCountdown) {
		a.HasCountdown, a.Active = parent.HasCountdown, a.Active|AttrHasCountdown
	}
	if !a.IsSet(AttrHeightOffset) && parent.IsSet(AttrHeightOffset) {
		a.HeightOffset, a.Active = parent.HeightOffset, a.Active|AttrHeightOffset
	}
	if !a.IsSet(AttrHide) && parent.IsSet(AttrHide) {
		a.Hide, a.Active = parent.Hide, a.Active|AttrHide
	}
	if !a.IsSet(AttrIconFile) && parent.IsSet(AttrIconFile) {
		a.IconFile, a.Active = parent.IconFile, a.Active|AttrIconFile
	}
	if !a.IsSet(AttrIconSize) && parent.IsSet(AttrIconSize) {
		a.IconSize, a.Active = parent.IconSize, a.Active|AttrIconSize
	}
	if !a.IsSet(AttrInGameVisibility) && parent.IsSet(AttrInGameVisibility) {
		a.InGameVisibility, a.Active = parent.InGameVisibility, a.Active|AttrInGameVisibility
	}
	if !a.IsSet(AttrInfo) && parent.IsSet(AttrInfo) {
		a.Info, a.Active = parent.Info, a.Active|AttrInfo
	}
	if !a.IsSet(AttrInfoRange) && parent.IsSet(AttrInfoRange) {
		a.InfoRange, a.Active = parent.InfoRange, a.Active|AttrInfoRange
	}
	if !a.IsSet(AttrInvertBehavior) && parent.IsSet(AttrInvertBehavior) {
		a.InvertBehavior, a.Active = parent.InvertBehavior, a.Active|AttrInvertBehavior
	}
	if !a.IsSet(AttrIsWall) && parent.IsSet(AttrIsWall) {
		a.IsWall, a.Active = parent.IsWall, a.Active|AttrIsWall
	}
	if !a.IsSet(AttrKeepOnMapEdge) && parent.IsSet(AttrKeepOnMapEdge) {
		a.KeepOnMapEdge, a.Active = parent.KeepOnMapEdge, a.Active|AttrKeepOnMapEdge
	}
	if !a.IsSet(AttrMapDisplaySize) && parent.IsSet(AttrMapDisplaySize) {
		a.MapDisplaySize, a.Active = parent.MapDisplaySize, a.Active|AttrMapDisplaySize
	}
	if !a.IsSet(AttrMapType) && parent.IsSet(AttrMapType) {
		a.MapType, a.Active = parent.MapType, a.Active|AttrMapType
	}
	if !a.IsSet(AttrMapVisibility) && parent.IsSet(AttrMapVisibility) {
		a.MapVisibility, a.Active = parent.MapVisibility, a.Active|AttrMapVisibility
	}
	if !a.IsSet(AttrMaxSize) && parent.IsSet(AttrMaxSize) {
		a.MaxSize, a.Active = parent.MaxSize, a.Active|AttrMaxSize
	}
	if !a.IsSet(AttrMinSize) && parent.IsSet(AttrMinSize) {
		a.MinSize, a.Active = parent.MinSize, a.Active|AttrMinSize
	}
	if !a.IsSet(AttrMiniMapVisibility) && parent.IsSet(AttrMiniMapVisibility) {
		a.MiniMapVisibility, a.Active = parent.MiniMapVisibility, a.Active|AttrMiniMapVisibility
	}
	if !a.IsSet(AttrMount) && parent.IsSet(AttrMount) {
		a.Mount, a.Active = parent.Mount, a.Active|AttrMount
	}
	if !a.IsSet(AttrProfession) && parent.IsSet(AttrProfession) {
		a.Profession, a.Active = parent.Profession, a.Active|AttrProfession
	}
	if !a.IsSet(AttrRace) && parent.IsSet(AttrRace) {
		a.Race, a.Active = parent.Race, a.Active|AttrRace
	}
	if !a.IsSet(AttrResetLength) && parent.IsSet(AttrResetLength) {
		a.ResetLength, a.Active = parent.ResetLength, a.Active|AttrResetLength
	}
	if !a.IsSet(AttrResetOffset) && parent.IsSet(AttrResetOffset) {
		a.ResetOffset, a.Active = parent.ResetOffset, a.Active|AttrResetOffset
	}
	if !a.IsSet(AttrRotate) && parent.IsSet(AttrRotate) {
		a.Rotate, a.Active = parent.Rotate, a.Active|AttrRotate
	}
	if !a.IsSet(AttrScaleOnMapWithZoom) && parent.IsSet(AttrScaleOnMapWithZoom) {
		a.ScaleOnMapWithZoom, a.Active = parent.ScaleOnMapWithZoom, a.Active|AttrScaleOnMapWithZoom
	}
	if !a.IsSet(AttrShow) && parent.IsSet(AttrShow) {
		a.Show, a.Active = parent.Show, a.Active|AttrShow
	}
	if !a.IsSet(AttrSpecialization) && parent.IsSet(AttrSpecialization) {
		a.Specialization, a.Active = parent.Specialization, a.Active|AttrSpecialization
	}
	if !a.IsSet(AttrText) && parent.IsSet(AttrText) {
		a.Text, a.Active = parent.Text, a.Active|AttrText
	}
	if !a.IsSet(AttrTexture) && parent.IsSet(AttrTexture) {
		a.Texture, a.Active = parent.Texture, a.Active|AttrTexture
	}
	if !a.IsSet(AttrTipName) && parent.IsSet(AttrTipName) {
		a.TipName, a.Active = parent.TipName, a.Active|AttrTipName
	}
	if !a.IsSet(AttrTipDescription) && parent.IsSet(AttrTipDescription) {
		a.TipDescription, a.Active = parent.TipDescription, a.Active|AttrTipDescription
	}
	if !a.IsSet(AttrTitle) && parent.IsSet(AttrTitle) {
		a.Title, a.Active = parent.Title, a.Active|AttrTitle
	}
	if !a.IsSet(AttrTitleColor) && parent.IsSet(AttrTitleColor) {
		a.TitleColor, a.Active = parent.TitleColor, a.Active|AttrTitleColor
	}
	if !a.IsSet(AttrToggleCategory) && parent.IsSet(AttrToggleCategory) {
		a.ToggleCategory, a.Active = parent.ToggleCategory, a.Active|AttrToggleCategory
	}
	if !a.IsSet(AttrTrailData) && parent.IsSet(AttrTrailData) {
		a.TrailData, a.Active = parent.TrailData, a.Active|AttrTrailData
	}
	if !a.IsSet(AttrTrailScale) && parent.IsSet(AttrTrailScale) {
		a.TrailScale, a.Active = parent.TrailScale, a.Active|AttrTrailScale
	}
	if !a.IsSet(AttrTriggerRange) && parent.IsSet(AttrTriggerRange) {
		a.TriggerRange, a.Active = parent.TriggerRange, a.Active|AttrTriggerRange
	}
}
