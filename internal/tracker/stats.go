package tracker

import (
	"taskplane/internal/model"
	"taskplane/internal/store"
)

// RecordLeafCompletion counts a completed leaf into the statistics block
// at most once per task id, then persists the settings document. Branch
// completions and already-counted ids are no-ops; the id set makes the
// counters idempotent across repeated toggles and process restarts.
func (t *Tracker) RecordLeafCompletion(task model.Task) error {
	if !task.IsLeaf() {
		return nil
	}
	st := &t.Settings.Stats
	for _, id := range st.CompletedLeafIDs {
		if id == task.ID {
			return nil
		}
	}

	prev := *st
	st.CompletedLeafIDs = append(st.CompletedLeafIDs, task.ID)
	st.CompletedLeafCount++
	st.CompletedLeafMinutes += task.Time
	if err := t.st.SaveSettings(t.Settings); err != nil {
		*st = prev
		return PersistenceError{Err: err}
	}
	return nil
}

// Statistics returns the completed-leaf count and cumulative minutes.
func (t *Tracker) Statistics() (count, minutes int) {
	return t.Settings.Stats.CompletedLeafCount, t.Settings.Stats.CompletedLeafMinutes
}

// ResetStatistics zeroes the counters and clears the id set,
// unconditionally, and persists.
func (t *Tracker) ResetStatistics() error {
	prev := t.Settings.Stats
	t.Settings.Stats = store.Stats{CompletedLeafIDs: []string{}}
	if err := t.st.SaveSettings(t.Settings); err != nil {
		t.Settings.Stats = prev
		return PersistenceError{Err: err}
	}
	return nil
}
