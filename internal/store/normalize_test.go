package store

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeRaw(t *testing.T, src string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(src), &m); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return m
}

func canonicalRaw() map[string]any {
	return map[string]any{
		"id":          "task-abc123de",
		"title":       "Canonical",
		"parent_id":   nil,
		"children":    []any{},
		"time":        float64(30),
		"completed":   false,
		"x":           0.5,
		"y":           -0.5,
		"custom_tags": "",
	}
}

func TestNormalizeTaskCanonicalUnchanged(t *testing.T) {
	t.Parallel()

	task, changed := NormalizeTask(canonicalRaw(), nil)
	if changed {
		t.Fatal("canonical record should not be flagged as changed")
	}
	if task.ID != "task-abc123de" || task.Title != "Canonical" || task.Time != 30 {
		t.Fatalf("canonical fields mangled: %+v", task)
	}
	if task.X != 0.5 || task.Y != -0.5 || task.Completed {
		t.Fatalf("canonical fields mangled: %+v", task)
	}
}

func TestNormalizeTaskLegacyRecord(t *testing.T) {
	t.Parallel()

	raw := decodeRaw(t, `{
		"text": "Legacy",
		"estimated_minutes": 15,
		"coord": {"x": 0.1, "y": -0.2}
	}`)

	task, changed := NormalizeTask(raw, nil)
	if !changed {
		t.Fatal("legacy record must be flagged for write-back")
	}
	if task.Title != "Legacy" {
		t.Fatalf("title: got %q, want Legacy", task.Title)
	}
	if task.Time != 15 {
		t.Fatalf("time: got %d, want 15", task.Time)
	}
	if task.X != 0.1 || task.Y != -0.2 {
		t.Fatalf("coords: got (%v, %v), want (0.1, -0.2)", task.X, task.Y)
	}
	if task.Completed {
		t.Fatal("legacy record without completed state must stay active")
	}
	if !strings.HasPrefix(task.ID, "task-") {
		t.Fatalf("generated id: got %q", task.ID)
	}
	if task.Children == nil || len(task.Children) != 0 {
		t.Fatalf("children: got %#v, want empty slice", task.Children)
	}
}

func TestNormalizeTaskLegacyCompletedState(t *testing.T) {
	t.Parallel()

	raw := decodeRaw(t, `{"title": "Done before", "completed_state": 1}`)
	task, changed := NormalizeTask(raw, nil)
	if !changed {
		t.Fatal("expected changed")
	}
	if !task.Completed {
		t.Fatal("completed_state=1 must map to completed")
	}

	raw = decodeRaw(t, `{"title": "Not done", "completed_state": 0}`)
	task, _ = NormalizeTask(raw, nil)
	if task.Completed {
		t.Fatal("completed_state=0 must map to active")
	}
}

func TestNormalizeTaskMissingTitle(t *testing.T) {
	t.Parallel()

	task, changed := NormalizeTask(map[string]any{}, nil)
	if !changed {
		t.Fatal("expected changed")
	}
	if task.Title != "Untitled task" {
		t.Fatalf("title: got %q, want the default", task.Title)
	}
}

func TestNormalizeTaskNegativeMinutes(t *testing.T) {
	t.Parallel()

	raw := canonicalRaw()
	raw["time"] = float64(-5)
	task, changed := NormalizeTask(raw, nil)
	if !changed {
		t.Fatal("negative minutes must flag a write-back")
	}
	if task.Time != 0 {
		t.Fatalf("time: got %d, want 0", task.Time)
	}
}

func TestNormalizeTaskCoordClamped(t *testing.T) {
	t.Parallel()

	raw := canonicalRaw()
	raw["x"] = 2.5
	raw["y"] = -7.0
	task, changed := NormalizeTask(raw, nil)
	if !changed {
		t.Fatal("out-of-range coords must flag a write-back")
	}
	if task.X != 1 || task.Y != -1 {
		t.Fatalf("coords: got (%v, %v), want (1, -1)", task.X, task.Y)
	}
}

func TestNormalizeTaskStaleParentID(t *testing.T) {
	t.Parallel()

	raw := canonicalRaw()
	raw["parent_id"] = "task-elsewhere"
	task, changed := NormalizeTask(raw, nil)
	if !changed {
		t.Fatal("stale parent_id must flag a write-back")
	}
	if task.ParentID != nil {
		t.Fatalf("parent id: got %q, want nil (position is truth)", *task.ParentID)
	}
}

func TestNormalizeTaskChildrenGetParentID(t *testing.T) {
	t.Parallel()

	raw := decodeRaw(t, `{
		"id": "task-parent00",
		"title": "Parent",
		"children": [
			{"title": "Child A", "time": 10},
			"not an object",
			{"title": "Child B", "time": 5}
		]
	}`)

	task, changed := NormalizeTask(raw, nil)
	if !changed {
		t.Fatal("expected changed")
	}
	if len(task.Children) != 2 {
		t.Fatalf("children: got %d, want 2 (non-objects dropped)", len(task.Children))
	}
	for _, c := range task.Children {
		if c.ParentID == nil || *c.ParentID != "task-parent00" {
			t.Fatalf("child parent id: got %v, want task-parent00", c.ParentID)
		}
	}
}

func TestNormalizeForest(t *testing.T) {
	t.Parallel()

	raw := []any{
		decodeRaw(t, `{
			"id": "task-branch00",
			"title": "Branch",
			"time": 999,
			"children": [
				{"id": "task-leaf0001", "title": "L1", "time": 10, "completed": false, "x": 0, "y": 0, "custom_tags": "", "children": []},
				{"id": "task-leaf0002", "title": "L2", "time": 5, "completed": false, "x": 0, "y": 0, "custom_tags": "", "children": []}
			]
		}`),
		"garbage entry",
	}

	forest, changed := NormalizeForest(raw)
	if !changed {
		t.Fatal("dropping a non-object root must flag a write-back")
	}
	if len(forest) != 1 {
		t.Fatalf("forest size: got %d, want 1", len(forest))
	}
	// Aggregate time wins over the stored branch value.
	if got := forest[0].Time; got != 15 {
		t.Fatalf("branch time: got %d, want 15", got)
	}
}

func TestNormalizeForestEmpty(t *testing.T) {
	t.Parallel()

	forest, changed := NormalizeForest(nil)
	if changed {
		t.Fatal("empty input should not be flagged")
	}
	if forest == nil || len(forest) != 0 {
		t.Fatalf("forest: got %#v, want empty slice", forest)
	}
}
