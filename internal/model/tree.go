package model

// Tree invariant passes. Both are idempotent and must run together after
// every structural change, so that parent linkage and aggregate times are
// consistent before the forest is persisted.

// RecomputeTimes recomputes aggregate time bottom-up (post-order): a
// branch's time becomes the sum of its children's recomputed times, a
// leaf's time is left as stored.
func RecomputeTimes(forest []Task) {
	for i := range forest {
		recomputeTime(&forest[i])
	}
}

func recomputeTime(t *Task) int {
	if len(t.Children) == 0 {
		return t.Time
	}
	sum := 0
	for i := range t.Children {
		sum += recomputeTime(&t.Children[i])
	}
	t.Time = sum
	return sum
}

// RebindParents overwrites every node's ParentID with the id of its
// actual structural parent (nil at roots). Tree position is truth; any
// stale stored value loses.
func RebindParents(forest []Task) {
	type frame struct {
		node     *Task
		parentID *string
	}
	var stack []frame
	for i := range forest {
		stack = append(stack, frame{node: &forest[i]})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.node.ParentID = f.parentID
		id := f.node.ID
		for i := range f.node.Children {
			stack = append(stack, frame{node: &f.node.Children[i], parentID: &id})
		}
	}
}

// Ref points at a task's position in the forest: the sibling slice that
// holds it, its index there, the node itself, and the owning parent id
// (nil at a root). Pointers are valid until the next structural change.
type Ref struct {
	Siblings *[]Task
	Index    int
	Task     *Task
	ParentID *string
}

// Locate finds a task by id. The walk uses an explicit stack of sibling
// slices instead of recursing, so arbitrarily deep trees cannot blow the
// call stack during mutations.
func Locate(forest *[]Task, id string) (Ref, bool) {
	type frame struct {
		siblings *[]Task
		parentID *string
	}
	stack := []frame{{siblings: forest}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sibs := *f.siblings
		for i := range sibs {
			if sibs[i].ID == id {
				return Ref{Siblings: f.siblings, Index: i, Task: &sibs[i], ParentID: f.parentID}, true
			}
			pid := sibs[i].ID
			stack = append(stack, frame{siblings: &sibs[i].Children, parentID: &pid})
		}
	}
	return Ref{}, false
}

// Clone returns a deep copy of a task and its whole subtree.
func Clone(t Task) Task {
	out := t
	if t.ParentID != nil {
		pid := *t.ParentID
		out.ParentID = &pid
	}
	if t.Children != nil {
		out.Children = make([]Task, len(t.Children))
		for i := range t.Children {
			out.Children[i] = Clone(t.Children[i])
		}
	}
	return out
}

// CloneForest deep-copies the whole forest. Mutations take one of these
// as the rollback snapshot before persisting.
func CloneForest(forest []Task) []Task {
	if forest == nil {
		return nil
	}
	out := make([]Task, len(forest))
	for i := range forest {
		out[i] = Clone(forest[i])
	}
	return out
}
