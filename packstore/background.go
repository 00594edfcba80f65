package packstore

import (
	"encoding/json"
	"os"

	"jokolay/internal/jobqueue"
)

// backgroundQueue drains selection/activation disk writes on its own
// goroutine so a frame that dirties the store never blocks on file I/O,
// modeled on the teacher's api.API.run() hub goroutine (register/
// unregister/broadcast there, submit/done here).
var backgroundQueue = jobqueue.New(8)

// ScheduleSave marshals whatever Dirty says changed on the calling
// goroutine (cheap, in-memory) and hands the actual file write to the
// background queue, so a render-thread caller never stalls on disk I/O.
// A save already in flight when another dirty state appears just means
// the next ScheduleSave call marshals and writes again; the cost of a
// redundant write is far cheaper than losing a save to a dropped job.
func (s *Store) ScheduleSave() {
	if !s.Dirty.Any() {
		return
	}

	writeSelection := s.Dirty.all || s.Dirty.catsSelection
	writeActivation := s.Dirty.all || len(s.Activation.dirtyGUIDs) > 0
	s.Dirty.clear()
	s.Activation.clearDirty()

	if !writeSelection && !writeActivation {
		return
	}

	dir := s.stateDir()
	var selectionData, activationData []byte
	if writeSelection {
		if data, err := json.Marshal(s.Selection.Snapshot()); err == nil {
			selectionData = data
		}
	}
	if writeActivation {
		if data, err := s.Activation.MarshalJSON(); err == nil {
			activationData = data
		}
	}

	selectionPath, activationPath := s.selectionPath(), s.activationPath()
	backgroundQueue.Submit(func() error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if selectionData != nil {
			if err := os.WriteFile(selectionPath, selectionData, 0o644); err != nil {
				return err
			}
		}
		if activationData != nil {
			if err := os.WriteFile(activationPath, activationData, 0o644); err != nil {
				return err
			}
		}
		return nil
	})
}
