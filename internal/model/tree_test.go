package model

import (
	"testing"
)

func sampleForest() []Task {
	return []Task{
		{ID: "task-root1", Time: 999, Children: []Task{
			{ID: "task-child1", Time: 10},
			{ID: "task-child2", Time: 0, Children: []Task{
				{ID: "task-grand1", Time: 5},
				{ID: "task-grand2", Time: 7},
			}},
		}},
		{ID: "task-root2", Time: 30},
	}
}

func TestRecomputeTimes(t *testing.T) {
	t.Parallel()

	forest := sampleForest()
	RecomputeTimes(forest)

	if got := forest[0].Children[1].Time; got != 12 {
		t.Fatalf("inner branch time: got %d, want 12", got)
	}
	if got := forest[0].Time; got != 22 {
		t.Fatalf("root branch time: got %d, want 22", got)
	}
	// Leaves keep their stored time.
	if got := forest[1].Time; got != 30 {
		t.Fatalf("leaf time: got %d, want 30", got)
	}
}

func TestRebindParents(t *testing.T) {
	t.Parallel()

	stale := "task-somewhere-else"
	forest := sampleForest()
	forest[0].Children[0].ParentID = &stale
	forest[1].ParentID = &stale

	RebindParents(forest)

	if forest[0].ParentID != nil {
		t.Fatalf("root parent: got %q, want nil", *forest[0].ParentID)
	}
	if forest[1].ParentID != nil {
		t.Fatalf("root parent: got %q, want nil", *forest[1].ParentID)
	}
	if got := forest[0].Children[0].ParentID; got == nil || *got != "task-root1" {
		t.Fatalf("child parent: got %v, want task-root1", got)
	}
	if got := forest[0].Children[1].Children[0].ParentID; got == nil || *got != "task-child2" {
		t.Fatalf("grandchild parent: got %v, want task-child2", got)
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	forest := sampleForest()
	RebindParents(forest)

	ref, ok := Locate(&forest, "task-grand2")
	if !ok {
		t.Fatal("expected to find task-grand2")
	}
	if ref.Task.ID != "task-grand2" {
		t.Fatalf("located wrong node: %q", ref.Task.ID)
	}
	if ref.Index != 1 {
		t.Fatalf("index: got %d, want 1", ref.Index)
	}
	if ref.ParentID == nil || *ref.ParentID != "task-child2" {
		t.Fatalf("parent id: got %v, want task-child2", ref.ParentID)
	}

	// Mutating through the ref must hit the real tree.
	ref.Task.Completed = true
	if !forest[0].Children[1].Children[1].Completed {
		t.Fatal("mutation through ref did not reach the forest")
	}

	if _, ok := Locate(&forest, "task-nope"); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestCloneForestIndependence(t *testing.T) {
	t.Parallel()

	forest := sampleForest()
	RebindParents(forest)

	cp := CloneForest(forest)
	cp[0].Children[0].Title = "changed"
	cp[0].Children[0].Completed = true
	*cp[0].Children[0].ParentID = "task-elsewhere"

	if forest[0].Children[0].Title == "changed" || forest[0].Children[0].Completed {
		t.Fatal("clone shares node storage with the original")
	}
	if got := *forest[0].Children[0].ParentID; got != "task-root1" {
		t.Fatalf("clone shares parent-id storage: original now %q", got)
	}
}

func TestCloneForestNil(t *testing.T) {
	t.Parallel()

	if CloneForest(nil) != nil {
		t.Fatal("nil forest should clone to nil")
	}
}
