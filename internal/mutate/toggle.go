package mutate

import (
	"taskplane/internal/model"
)

// Snapshot is the single-slot undo payload: a deep copy of a deleted
// subtree plus its former position. A nil *Snapshot is the empty slot.
type Snapshot struct {
	ParentID *string
	Index    int
	Task     model.Task
}

type ToggleOutcome int

const (
	// OutcomeCompleted: the task was active and is now marked complete.
	OutcomeCompleted ToggleOutcome = iota
	// OutcomeDeleted: the task was already complete; the second toggle
	// removed it and its whole subtree.
	OutcomeDeleted
)

type ToggleResult struct {
	Outcome ToggleOutcome
	// Task is a deep copy of the node after the transition (for
	// OutcomeDeleted, the removed subtree).
	Task model.Task
	// WasLeaf reports that a completion happened on a leaf, which is what
	// counts toward statistics.
	WasLeaf bool
	// Snapshot is set for OutcomeDeleted; it belongs in the undo slot.
	Snapshot *Snapshot
}

// Toggle dispatches on the task's current completion state: an active
// task is marked complete, an already-completed one is removed together
// with its subtree. The two-step click-to-complete, click-again-to-delete
// flow is deliberate; this is not a completion reversal. Callers are
// responsible for saving and for recording leaf completions.
func Toggle(forest *[]model.Task, id string) (ToggleResult, error) {
	ref, ok := model.Locate(forest, id)
	if !ok {
		return ToggleResult{}, NotFoundError{Kind: "task", ID: id}
	}

	if !ref.Task.Completed {
		ref.Task.Completed = true
		return ToggleResult{
			Outcome: OutcomeCompleted,
			Task:    model.Clone(*ref.Task),
			WasLeaf: ref.Task.IsLeaf(),
		}, nil
	}

	snap := &Snapshot{
		ParentID: ref.ParentID,
		Index:    ref.Index,
		Task:     model.Clone(*ref.Task),
	}
	sibs := *ref.Siblings
	*ref.Siblings = append(sibs[:ref.Index], sibs[ref.Index+1:]...)

	model.RebindParents(*forest)
	model.RecomputeTimes(*forest)

	return ToggleResult{
		Outcome:  OutcomeDeleted,
		Task:     model.Clone(snap.Task),
		Snapshot: snap,
	}, nil
}
