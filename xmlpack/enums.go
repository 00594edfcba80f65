package xmlpack

// Color is an RGBA8 color as written in a pack's hex attributes
// (spec section 4.2 "Colors: hex (RRGGBBAA...)").
type Color struct {
	R, G, B, A uint8
}

// Vec3 is a plain 3-component float vector, independent of mlink.Vec3 so
// xmlpack has no dependency on the Link Bridge package.
type Vec3 struct {
	X, Y, Z float32
}

// Behavior controls when a marker reappears after being dismissed (spec
// section 4.4's suppression table). WeeklyReset is the supplemented
// variant from original_source's Behavior enum (see SPEC_FULL.md).
type Behavior int

const (
	BehaviorAlwaysVisible Behavior = iota
	BehaviorReappearOnMapChange
	BehaviorReappearOnDailyReset
	BehaviorOnlyVisibleBeforeActivation
	BehaviorReappearAfterTimer
	BehaviorReappearOnMapReset
	BehaviorOncePerInstance
	BehaviorDailyPerChar
	BehaviorOncePerInstancePerChar
	BehaviorWvWObjective
	BehaviorWeeklyReset Behavior = 101
)

func parseBehavior(s string) (Behavior, bool) {
	switch s {
	case "0":
		return BehaviorAlwaysVisible, true
	case "1":
		return BehaviorReappearOnMapChange, true
	case "2":
		return BehaviorReappearOnDailyReset, true
	case "3":
		return BehaviorOnlyVisibleBeforeActivation, true
	case "4":
		return BehaviorReappearAfterTimer, true
	case "5":
		return BehaviorReappearOnMapReset, true
	case "6":
		return BehaviorOncePerInstance, true
	case "7":
		return BehaviorDailyPerChar, true
	case "8":
		return BehaviorOncePerInstancePerChar, true
	case "9":
		return BehaviorWvWObjective, true
	case "101":
		return BehaviorWeeklyReset, true
	default:
		return 0, false
	}
}

// Cull selects which winding order to skip when drawing a marker's quad.
type Cull int

const (
	CullNone Cull = iota
	CullClockwise
	CullCounterClockwise
)

func parseCull(s string) (Cull, bool) {
	switch s {
	case "None":
		return CullNone, true
	case "Clockwise":
		return CullClockwise, true
	case "CounterClockwise":
		return CullCounterClockwise, true
	default:
		return 0, false
	}
}

// MountSet is a bitset of GW2 mounts a marker's "mount" filter attribute
// restricts visibility to.
type MountSet uint32

const (
	MountJackal MountSet = 1 << iota
	MountGriffon
	MountSpringer
	MountSkimmer
	MountRaptor
	MountRollerBeetle
	MountWarclaw
	MountSkyscale
	MountSiegeTurtle
)

var mountNames = map[string]MountSet{
	"jackal":      MountJackal,
	"griffon":     MountGriffon,
	"springer":    MountSpringer,
	"skimmer":     MountSkimmer,
	"raptor":      MountRaptor,
	"rollerbeetle": MountRollerBeetle,
	"warclaw":     MountWarclaw,
	"skyscale":    MountSkyscale,
	"siegeturtle": MountSiegeTurtle,
}

// ProfessionSet is a bitset of GW2 professions.
type ProfessionSet uint16

const (
	ProfessionElementalist ProfessionSet = 1 << iota
	ProfessionEngineer
	ProfessionGuardian
	ProfessionMesmer
	ProfessionNecromancer
	ProfessionRanger
	ProfessionRevenant
	ProfessionThief
	ProfessionWarrior
)

var professionNames = map[string]ProfessionSet{
	"elementalist": ProfessionElementalist,
	"engineer":     ProfessionEngineer,
	"guardian":     ProfessionGuardian,
	"mesmer":       ProfessionMesmer,
	"necromancer":  ProfessionNecromancer,
	"ranger":       ProfessionRanger,
	"revenant":     ProfessionRevenant,
	"thief":        ProfessionThief,
	"warrior":      ProfessionWarrior,
}

// RaceSet is a bitset of GW2 player races.
type RaceSet uint8

const (
	RaceAsura RaceSet = 1 << iota
	RaceCharr
	RaceHuman
	RaceNorn
	RaceSylvari
)

var raceNames = map[string]RaceSet{
	"asura":   RaceAsura,
	"charr":   RaceCharr,
	"human":   RaceHuman,
	"norn":    RaceNorn,
	"sylvari": RaceSylvari,
}

// FestivalSet is a bitset of GW2's recurring festival events.
type FestivalSet uint8

const (
	FestivalDragonBash FestivalSet = 1 << iota
	FestivalFourWinds
	FestivalHalloween
	FestivalLunarNewYear
	FestivalSuperAdventureBox
	FestivalWintersday
)

var festivalNames = map[string]FestivalSet{
	"dragonbash":             FestivalDragonBash,
	"festivalofthefourwinds": FestivalFourWinds,
	"halloween":              FestivalHalloween,
	"lunarnewyear":           FestivalLunarNewYear,
	"superadventurefestival": FestivalSuperAdventureBox,
	"wintersday":             FestivalWintersday,
}

// MapTypeSet is a bitset of GW2 map-type classifications.
type MapTypeSet uint32

const (
	MapTypeUnknown MapTypeSet = 1 << iota
	MapTypeRedirect
	MapTypeCharacterCreate
	MapTypePvP
	MapTypeGvG
	MapTypeInstance
	MapTypePublic
	MapTypeTournament
	MapTypeTutorial
	MapTypeUserTournament
	MapTypeEternalBattlegrounds
	MapTypeBlueBorderlands
	MapTypeGreenBorderlands
	MapTypeRedBorderlands
	MapTypeFortunesVale
	MapTypeObsidianSanctum
	MapTypeEdgeOfTheMists
	MapTypePublicMini
	MapTypeWvWLounge
)

var mapTypeNames = map[string]MapTypeSet{
	"unknown":              MapTypeUnknown,
	"redirect":             MapTypeRedirect,
	"charactercreate":      MapTypeCharacterCreate,
	"pvp":                  MapTypePvP,
	"gvg":                  MapTypeGvG,
	"instance":             MapTypeInstance,
	"public":               MapTypePublic,
	"tournament":           MapTypeTournament,
	"tutorial":             MapTypeTutorial,
	"usertournament":       MapTypeUserTournament,
	"eternalbattlegrounds": MapTypeEternalBattlegrounds,
	"blueborderlands":      MapTypeBlueBorderlands,
	"greenborderlands":     MapTypeGreenBorderlands,
	"redborderlands":       MapTypeRedBorderlands,
	"fortunesvale":         MapTypeFortunesVale,
	"obsidiansanctum":      MapTypeObsidianSanctum,
	"edgeofthemists":       MapTypeEdgeOfTheMists,
	"publicmini":           MapTypePublicMini,
	"wvwlounge":            MapTypeWvWLounge,
}
