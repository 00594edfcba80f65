package packstore

import (
	"encoding/json"
	"time"

	"jokolay/xmlpack"
)

// dailyResetHour is GW2's daily reset time, 00:00 UTC.
const dailyResetHour = 0

// weeklyResetWeekday and weeklyResetHour are GW2's weekly reset,
// Monday 07:30 UTC.
const (
	weeklyResetWeekday = time.Monday
	weeklyResetHour    = 7
	weeklyResetMinute  = 30
)

// activationRecord is the bookkeeping kept per activated marker/trail,
// enough to re-derive suppression under any of the Behavior variants
// without storing a different record shape per variant.
type activationRecord struct {
	ActivatedAt   time.Time
	MapID         uint32
	ServerAddress string
}

// ActivationTracker holds activation history for markers/trails whose
// Behavior suppresses them after interaction (spec section 4.4). Global
// behaviors share one map across characters; per-character behaviors
// (DailyPerChar, OncePerInstancePerChar) are keyed additionally by
// character name.
type ActivationTracker struct {
	global  map[xmlpack.GUID]activationRecord
	perChar map[string]map[xmlpack.GUID]activationRecord

	dirtyGUIDs map[xmlpack.GUID]bool
}

func NewActivationTracker() *ActivationTracker {
	return &ActivationTracker{
		global:     make(map[xmlpack.GUID]activationRecord),
		perChar:    make(map[string]map[xmlpack.GUID]activationRecord),
		dirtyGUIDs: make(map[xmlpack.GUID]bool),
	}
}

func isPerCharacter(b xmlpack.Behavior) bool {
	return b == xmlpack.BehaviorDailyPerChar || b == xmlpack.BehaviorOncePerInstancePerChar
}

// Activate records that guid was just interacted with, for later
// suppression checks via IsSuppressed.
func (t *ActivationTracker) Activate(guid xmlpack.GUID, behavior xmlpack.Behavior, now time.Time, mapID uint32, serverAddress string, charName string) {
	rec := activationRecord{ActivatedAt: now, MapID: mapID, ServerAddress: serverAddress}
	if isPerCharacter(behavior) {
		m, ok := t.perChar[charName]
		if !ok {
			m = make(map[xmlpack.GUID]activationRecord)
			t.perChar[charName] = m
		}
		m[guid] = rec
	} else {
		t.global[guid] = rec
	}
	t.dirtyGUIDs[guid] = true
}

// IsSuppressed reports whether guid should currently stay hidden given
// its category's resolved Behavior (spec section 4.4's suppression
// table, plus the supplemented WeeklyReset variant).
func (t *ActivationTracker) IsSuppressed(guid xmlpack.GUID, behavior xmlpack.Behavior, now time.Time, mapID uint32, serverAddress string, charName string, resetLength time.Duration) bool {
	var rec activationRecord
	var ok bool
	if isPerCharacter(behavior) {
		if m, found := t.perChar[charName]; found {
			rec, ok = m[guid]
		}
	} else {
		rec, ok = t.global[guid]
	}
	if !ok {
		return false
	}

	switch behavior {
	case xmlpack.BehaviorAlwaysVisible:
		return false
	case xmlpack.BehaviorOnlyVisibleBeforeActivation:
		return true // once activated, never reappears
	case xmlpack.BehaviorReappearOnMapChange:
		return rec.MapID == mapID
	case xmlpack.BehaviorReappearOnMapReset, xmlpack.BehaviorOncePerInstance, xmlpack.BehaviorOncePerInstancePerChar, xmlpack.BehaviorWvWObjective:
		return rec.ServerAddress == serverAddress
	case xmlpack.BehaviorReappearAfterTimer:
		return now.Before(rec.ActivatedAt.Add(resetLength))
	case xmlpack.BehaviorReappearOnDailyReset, xmlpack.BehaviorDailyPerChar:
		return sameDailyResetPeriod(rec.ActivatedAt, now)
	case xmlpack.BehaviorWeeklyReset:
		return sameWeeklyResetPeriod(rec.ActivatedAt, now)
	default:
		return false
	}
}

func lastDailyReset(t time.Time) time.Time {
	u := t.UTC()
	reset := time.Date(u.Year(), u.Month(), u.Day(), dailyResetHour, 0, 0, 0, time.UTC)
	if u.Before(reset) {
		reset = reset.AddDate(0, 0, -1)
	}
	return reset
}

func sameDailyResetPeriod(a, b time.Time) bool {
	return lastDailyReset(a).Equal(lastDailyReset(b))
}

func lastWeeklyReset(t time.Time) time.Time {
	u := t.UTC()
	reset := time.Date(u.Year(), u.Month(), u.Day(), weeklyResetHour, weeklyResetMinute, 0, 0, time.UTC)
	for reset.Weekday() != weeklyResetWeekday {
		reset = reset.AddDate(0, 0, -1)
	}
	if u.Before(reset) {
		reset = reset.AddDate(0, 0, -7)
	}
	return reset
}

func sameWeeklyResetPeriod(a, b time.Time) bool {
	return lastWeeklyReset(a).Equal(lastWeeklyReset(b))
}

func (t *ActivationTracker) clearDirty() {
	t.dirtyGUIDs = make(map[xmlpack.GUID]bool)
}

type activationFile struct {
	Global  map[string]activationRecord            `json:"global"`
	PerChar map[string]map[string]activationRecord `json:"per_char"`
}

func (t *ActivationTracker) MarshalJSON() ([]byte, error) {
	f := activationFile{
		Global:  make(map[string]activationRecord, len(t.global)),
		PerChar: make(map[string]map[string]activationRecord, len(t.perChar)),
	}
	for g, rec := range t.global {
		f.Global[g.String()] = rec
	}
	for char, recs := range t.perChar {
		m := make(map[string]activationRecord, len(recs))
		for g, rec := range recs {
			m[g.String()] = rec
		}
		f.PerChar[char] = m
	}
	return json.Marshal(f)
}

func (t *ActivationTracker) UnmarshalJSON(data []byte) error {
	var f activationFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	t.global = make(map[xmlpack.GUID]activationRecord, len(f.Global))
	for s, rec := range f.Global {
		if g, ok := xmlpack.ParseGUID(s); ok {
			t.global[g] = rec
		}
	}
	t.perChar = make(map[string]map[xmlpack.GUID]activationRecord, len(f.PerChar))
	for char, recs := range f.PerChar {
		m := make(map[xmlpack.GUID]activationRecord, len(recs))
		for s, rec := range recs {
			if g, ok := xmlpack.ParseGUID(s); ok {
				m[g] = rec
			}
		}
		t.perChar[char] = m
	}
	return nil
}
