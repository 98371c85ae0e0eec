package store

import (
	"strconv"

	"taskplane/internal/model"
)

// The Normalizer converts raw, possibly legacy-shaped records into the
// canonical task schema. It is deliberately permissive: it never fails on
// malformed input, it only drops children that are not objects and
// defaults everything else. The returned flag means "a write-back is
// worthwhile", nothing stronger.

// NormalizeForest normalizes every root entry of a raw tasks document.
// Entries that are not JSON objects are dropped (and flagged). Aggregate
// times are recomputed before the forest is returned.
func NormalizeForest(raw []any) ([]model.Task, bool) {
	forest := []model.Task{}
	changed := false
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			changed = true
			continue
		}
		task, taskChanged := NormalizeTask(m, nil)
		forest = append(forest, task)
		changed = changed || taskChanged
	}
	model.RecomputeTimes(forest)
	return forest, changed
}

// NormalizeTask maps one raw record onto the canonical schema, recursing
// into children with this node's id as their parent. parentID always wins
// over whatever the record claims: tree position is truth, so parent_id
// is never trusted from storage.
func NormalizeTask(raw map[string]any, parentID *string) (model.Task, bool) {
	changed := false

	id, ok := asString(raw["id"])
	if !ok || id == "" {
		id = NewTaskID(nil)
		changed = true
	} else if _, isStr := raw["id"].(string); !isStr {
		// Present but coerced (e.g. a numeric id from a hand-edited file).
		changed = true
	}

	title, _ := asString(raw["title"])
	if title == "" {
		title, _ = asString(raw["text"])
	}
	if title == "" {
		title = model.DefaultTitle
	}
	if tv, ok := raw["title"]; !ok {
		changed = true
	} else if s, isStr := tv.(string); !isStr || s != title {
		changed = true
	}

	completed := false
	if v, ok := raw["completed"]; ok {
		completed = truthy(v)
	} else {
		// Legacy numeric state: 1 meant completed.
		if n, ok := asInt(raw["completed_state"]); ok && n == 1 {
			completed = true
		}
		changed = true
	}

	minutes := 0
	if v, ok := raw["time"]; ok {
		if n, ok := asInt(v); ok {
			minutes = n
		} else {
			changed = true
		}
	} else {
		if n, ok := asInt(raw["estimated_minutes"]); ok {
			minutes = n
		}
		changed = true
	}
	if minutes < 0 {
		minutes = 0
		changed = true
	}

	x := normalizeCoord(raw, "x", &changed)
	y := normalizeCoord(raw, "y", &changed)

	tags, _ := asString(raw["custom_tags"])
	if _, ok := raw["custom_tags"]; !ok {
		changed = true
	}

	childrenRaw, ok := raw["children"].([]any)
	if !ok {
		childrenRaw = nil
		changed = true
	}
	children := []model.Task{}
	for _, c := range childrenRaw {
		cm, ok := c.(map[string]any)
		if !ok {
			changed = true
			continue
		}
		child, childChanged := NormalizeTask(cm, &id)
		children = append(children, child)
		changed = changed || childChanged
	}

	task := model.Task{
		ID:         id,
		Title:      title,
		ParentID:   parentID,
		Children:   children,
		Time:       minutes,
		Completed:  completed,
		X:          x,
		Y:          y,
		CustomTags: tags,
	}

	// A stale stored parent_id that disagrees with the node's actual
	// position still warrants a write-back even when every field above
	// was clean.
	if !changed {
		changed = !rawParentMatches(raw["parent_id"], parentID)
	}
	return task, changed
}

func normalizeCoord(raw map[string]any, key string, changed *bool) float64 {
	var v float64
	if f, ok := asFloat(raw[key]); ok {
		v = f
	} else {
		// Legacy nested {"coord": {"x": ..., "y": ...}} shape.
		if coord, ok := raw["coord"].(map[string]any); ok {
			if f, ok := asFloat(coord[key]); ok {
				v = f
			}
		}
		*changed = true
	}
	if clamped := model.ClampCoord(v); clamped != v {
		v = clamped
		*changed = true
	}
	return v
}

func rawParentMatches(raw any, parentID *string) bool {
	s, ok := raw.(string)
	if !ok {
		return parentID == nil
	}
	return parentID != nil && s == *parentID
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, false
		}
		return n, true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return false
	}
}
