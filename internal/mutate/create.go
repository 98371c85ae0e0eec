package mutate

import (
	"strings"

	"taskplane/internal/model"
)

type CreateParams struct {
	ParentID *string
	Title    string
	Minutes  int
	X        float64
	Y        float64
	Tags     string
}

// Create appends a new leaf task to the root forest (ParentID nil) or to
// the named parent's children, then re-runs the invariant passes. Plane
// coordinates are clamped into [-1, 1] before the node is built, so an
// out-of-range value is never stored. Callers are responsible for saving.
func Create(forest *[]model.Task, id string, p CreateParams) (*model.Task, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if p.Minutes < 0 {
		return nil, ErrNegativeMinutes
	}

	task := model.Task{
		ID:         id,
		Title:      title,
		Children:   []model.Task{},
		Time:       p.Minutes,
		X:          model.ClampCoord(p.X),
		Y:          model.ClampCoord(p.Y),
		CustomTags: model.NormalizeTags(p.Tags),
	}

	if p.ParentID == nil {
		*forest = append(*forest, task)
	} else {
		ref, ok := model.Locate(forest, *p.ParentID)
		if !ok {
			return nil, NotFoundError{Kind: "parent task", ID: *p.ParentID}
		}
		ref.Task.Children = append(ref.Task.Children, task)
	}

	model.RebindParents(*forest)
	model.RecomputeTimes(*forest)

	// Appends above may have reallocated sibling slices; re-locate for a
	// pointer that is valid in the post-mutation tree.
	ref, _ := model.Locate(forest, id)
	return ref.Task, nil
}
