package mutate

import (
	"taskplane/internal/model"
)

// Undo reinserts a previously captured snapshot at its original parent
// and index, clamped to current bounds if the tree has since shrunk. If
// the former parent no longer exists the subtree is reinserted at the
// root level rather than lost. Callers are responsible for saving and
// for clearing the slot afterwards.
func Undo(forest *[]model.Task, snap Snapshot) model.Task {
	task := model.Clone(snap.Task)

	target := forest
	if snap.ParentID != nil {
		if ref, ok := model.Locate(forest, *snap.ParentID); ok {
			target = &ref.Task.Children
		}
	}

	at := snap.Index
	if at < 0 {
		at = 0
	}
	if at > len(*target) {
		at = len(*target)
	}
	rest := append([]model.Task{task}, (*target)[at:]...)
	*target = append((*target)[:at], rest...)

	model.RebindParents(*forest)
	model.RecomputeTimes(*forest)

	restored, _ := model.Locate(forest, task.ID)
	return model.Clone(*restored.Task)
}
