package tracker

import (
	"errors"

	"taskplane/internal/model"
	"taskplane/internal/mutate"
	"taskplane/internal/store"
)

// Tracker owns the canonical in-memory task forest, the settings
// document, and the single-slot undo snapshot. It is the sole writer of
// both on-disk documents; external callers route every mutation through
// it and re-read state afterwards. Execution is single-threaded and
// single-process, so there is no internal locking.
//
// Every mutation follows the same shape: apply to the in-memory tree,
// re-run the invariant passes, persist. If the persist fails the
// in-memory state is rolled back to its pre-mutation snapshot, so memory
// and disk never drift apart.
type Tracker struct {
	st store.Store

	Forest   []model.Task
	Settings store.Settings

	undo *mutate.Snapshot
}

// PersistenceError reports a failed save. The in-memory state has been
// rolled back and the on-disk documents are unchanged.
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string { return "persist: " + e.Err.Error() }

func (e PersistenceError) Unwrap() error { return e.Err }

// LoadResult reports degraded loads. A corrupt document is replaced by
// defaults in memory only; the file on disk is left alone until the next
// successful save.
type LoadResult struct {
	TasksErr    error
	SettingsErr error
	// Migrated reports that loaded tasks needed normalization and the
	// canonical form was written back.
	Migrated bool
}

// Open loads both documents, normalizes the forest, and writes the
// canonical form back once if anything had to be inferred or coerced.
func Open(st store.Store) (*Tracker, LoadResult, error) {
	t := &Tracker{st: st}
	var res LoadResult

	raw, err := st.LoadTasks()
	var corrupt store.CorruptDocumentError
	switch {
	case err == nil:
		forest, changed := store.NormalizeForest(raw)
		model.RebindParents(forest)
		t.Forest = forest
		if changed {
			// Write-back is best-effort: the normalized tree is already
			// canonical in memory and will be persisted by the next
			// mutation anyway.
			if werr := st.SaveTasks(t.Forest); werr == nil {
				res.Migrated = true
			}
		}
	case errors.As(err, &corrupt):
		t.Forest = []model.Task{}
		res.TasksErr = err
	default:
		return nil, res, err
	}

	cfg, err := st.LoadSettings()
	t.Settings = cfg
	if err != nil {
		if !errors.As(err, &corrupt) {
			return nil, res, err
		}
		res.SettingsErr = err
	}

	return t, res, nil
}

// CreateTask appends a new leaf under parentID (nil for a root task) and
// persists. The returned task is a detached copy.
func (t *Tracker) CreateTask(parentID *string, title string, minutes int, x, y float64, tags string) (model.Task, error) {
	prev := model.CloneForest(t.Forest)
	id := store.NewTaskID(t.Forest)

	created, err := mutate.Create(&t.Forest, id, mutate.CreateParams{
		ParentID: parentID,
		Title:    title,
		Minutes:  minutes,
		X:        x,
		Y:        y,
		Tags:     tags,
	})
	if err != nil {
		t.Forest = prev
		return model.Task{}, err
	}
	if err := t.st.SaveTasks(t.Forest); err != nil {
		t.Forest = prev
		return model.Task{}, PersistenceError{Err: err}
	}
	return model.Clone(*created), nil
}

// ToggleCompletion applies the two-step transition to the task: active
// tasks become completed; completed tasks are deleted together with their
// subtree, and the deleted subtree replaces whatever was in the undo
// slot. A leaf completion is recorded in the statistics.
func (t *Tracker) ToggleCompletion(id string) (mutate.ToggleResult, error) {
	prev := model.CloneForest(t.Forest)

	res, err := mutate.Toggle(&t.Forest, id)
	if err != nil {
		return mutate.ToggleResult{}, err
	}
	if err := t.st.SaveTasks(t.Forest); err != nil {
		t.Forest = prev
		return mutate.ToggleResult{}, PersistenceError{Err: err}
	}

	switch res.Outcome {
	case mutate.OutcomeCompleted:
		if res.WasLeaf {
			if err := t.RecordLeafCompletion(res.Task); err != nil {
				// The completion itself is already persisted; only the
				// statistics write failed (and was rolled back).
				return res, err
			}
		}
	case mutate.OutcomeDeleted:
		t.undo = res.Snapshot
	}
	return res, nil
}

// UndoLastDelete reinserts the most recently deleted subtree and clears
// the slot. It is a no-op returning ok=false if the slot is empty.
func (t *Tracker) UndoLastDelete() (model.Task, bool, error) {
	if t.undo == nil {
		return model.Task{}, false, nil
	}
	prev := model.CloneForest(t.Forest)

	restored := mutate.Undo(&t.Forest, *t.undo)
	if err := t.st.SaveTasks(t.Forest); err != nil {
		t.Forest = prev
		return model.Task{}, false, PersistenceError{Err: err}
	}
	t.undo = nil
	return restored, true, nil
}

// HasUndo reports whether the undo slot currently holds a snapshot.
func (t *Tracker) HasUndo() bool {
	return t.undo != nil
}

// FindTask returns a detached copy of the task with the given id.
func (t *Tracker) FindTask(id string) (model.Task, bool) {
	ref, ok := model.Locate(&t.Forest, id)
	if !ok {
		return model.Task{}, false
	}
	return model.Clone(*ref.Task), true
}

// SetFontSize validates and persists the font size preference.
func (t *Tracker) SetFontSize(v store.FontSize) error {
	if !store.ValidFontSize(v) {
		return errors.New("invalid font size: " + string(v))
	}
	prev := t.Settings.FontSize
	t.Settings.FontSize = v
	if err := t.st.SaveSettings(t.Settings); err != nil {
		t.Settings.FontSize = prev
		return PersistenceError{Err: err}
	}
	return nil
}

// SetStartupEnabled persists the startup preference flag. Managing the
// OS-level startup entry itself is the caller's concern.
func (t *Tracker) SetStartupEnabled(enabled bool) error {
	prev := t.Settings.StartupEnabled
	t.Settings.StartupEnabled = enabled
	if err := t.st.SaveSettings(t.Settings); err != nil {
		t.Settings.StartupEnabled = prev
		return PersistenceError{Err: err}
	}
	return nil
}
