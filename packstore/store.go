// Package packstore tracks what has changed since a marker pack was
// loaded or last saved, and persists the user-editable parts of a pack
// (category selection, activation state) and a fast-reload cache
// separately from the pack's own XML (spec section 5 "Pack Store").
package packstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jokolay/storage"
	"jokolay/xmlpack"
)

// Dirty tracks which parts of a Store have changed since the last Save,
// mirroring spec section 5's dirty-tracking bag: a coarse "cats" and
// "cats_selection" flag plus fine-grained per-map/texture/tbin sets, and
// an "all" escape hatch that forces a full re-save regardless of the
// finer-grained bits.
type Dirty struct {
	all           bool
	cats          bool
	catsSelection bool
	maps          map[uint32]bool
	textures      map[string]bool
	tbins         map[string]bool
}

func newDirty() Dirty {
	return Dirty{
		maps:     make(map[uint32]bool),
		textures: make(map[string]bool),
		tbins:    make(map[string]bool),
	}
}

func (d *Dirty) MarkAll()            { d.all = true }
func (d *Dirty) MarkCats()           { d.cats = true }
func (d *Dirty) MarkCatsSelection()  { d.catsSelection = true }
func (d *Dirty) MarkMap(id uint32)   { d.maps[id] = true }
func (d *Dirty) MarkTexture(p string) { d.textures[p] = true }
func (d *Dirty) MarkTbin(p string)   { d.tbins[p] = true }

// Any reports whether anything needs saving.
func (d *Dirty) Any() bool {
	return d.all || d.cats || d.catsSelection || len(d.maps) > 0 || len(d.textures) > 0 || len(d.tbins) > 0
}

func (d *Dirty) clear() {
	d.all, d.cats, d.catsSelection = false, false, false
	d.maps = make(map[uint32]bool)
	d.textures = make(map[string]bool)
	d.tbins = make(map[string]bool)
}

// Store wraps a loaded pack with the engine's editable state: which
// categories are selected, per-marker activation history, and the
// dirty-tracking needed to avoid rewriting unchanged state on every
// save (spec section 5).
type Store struct {
	Pack       *xmlpack.Pack
	Selection  *SelectionTree
	Activation *ActivationTracker
	Dirty      Dirty

	name string // pack identifier, used as the on-disk subdirectory name
}

// Open loads a pack from packPath and wraps it in a Store, restoring any
// previously saved selection/activation state for a pack of this name if
// present in the data directory.
func Open(packPath, name string) (*Store, error) {
	pack, err := xmlpack.Load(packPath)
	if err != nil {
		return nil, err
	}
	st := &Store{
		Pack:       pack,
		Selection:  NewSelectionTree(pack),
		Activation: NewActivationTracker(),
		Dirty:      newDirty(),
		name:       name,
	}
	if err := st.loadSelection(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading saved selection for %s: %w", name, err)
	}
	if err := st.loadActivation(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading saved activation for %s: %w", name, err)
	}
	return st, nil
}

// NewStore wraps an already-loaded pack with fresh, empty selection and
// activation state, without touching disk. Open is the disk-backed entry
// point for normal use; NewStore is for callers that already have a Pack
// in hand.
func NewStore(pack *xmlpack.Pack, name string) *Store {
	return &Store{
		Pack:       pack,
		Selection:  NewSelectionTree(pack),
		Activation: NewActivationTracker(),
		Dirty:      newDirty(),
		name:       name,
	}
}

func (s *Store) stateDir() string {
	return filepath.Join(storage.DataDir(), "state", s.name)
}

func (s *Store) selectionPath() string  { return filepath.Join(s.stateDir(), "selection.json") }
func (s *Store) activationPath() string { return filepath.Join(s.stateDir(), "activation.json") }

func (s *Store) loadSelection() error {
	data, err := os.ReadFile(s.selectionPath())
	if err != nil {
		return err
	}
	var saved map[string]bool // category path -> enabled
	if err := json.Unmarshal(data, &saved); err != nil {
		return err
	}
	s.Selection.ApplySaved(saved)
	return nil
}

func (s *Store) loadActivation() error {
	data, err := os.ReadFile(s.activationPath())
	if err != nil {
		return err
	}
	return s.Activation.UnmarshalJSON(data)
}

// Save persists only what Dirty says changed, then clears it. SaveAll
// forces a full write regardless of Dirty's state.
func (s *Store) Save() error {
	if !s.Dirty.Any() {
		return nil
	}
	if err := os.MkdirAll(s.stateDir(), 0o755); err != nil {
		return err
	}
	if s.Dirty.all || s.Dirty.catsSelection {
		if err := s.saveSelection(); err != nil {
			return err
		}
	}
	if s.Dirty.all || len(s.Activation.dirtyGUIDs) > 0 {
		if err := s.saveActivation(); err != nil {
			return err
		}
	}
	s.Dirty.clear()
	s.Activation.clearDirty()
	return nil
}

func (s *Store) SaveAll() error {
	s.Dirty.MarkAll()
	return s.Save()
}

func (s *Store) saveSelection() error {
	saved := s.Selection.Snapshot()
	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	return os.WriteFile(s.selectionPath(), data, 0o644)
}

func (s *Store) saveActivation() error {
	data, err := s.Activation.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(s.activationPath(), data, 0o644)
}
