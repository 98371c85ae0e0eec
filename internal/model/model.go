package model

import (
	"fmt"
	"strings"
)

// DefaultTitle is the display title for records that carry none.
const DefaultTitle = "Untitled task"

// Task is a node in the task forest.
//
// A node with children is a branch: its Time is always the sum of its
// children's times and is recomputed after every mutation, never stored
// independently. A node without children is a leaf and its Time is
// caller-supplied. Only leaf completions count toward statistics.
type Task struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ParentID   *string `json:"parent_id"`
	Children   []Task  `json:"children"`
	Time       int     `json:"time"`
	Completed  bool    `json:"completed"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	CustomTags string  `json:"custom_tags"`
}

func (t Task) IsLeaf() bool {
	return len(t.Children) == 0
}

// DisplayText is the one-line rendering used by list rows and tooltips:
// "<title>  #<minutes>min [tags]".
func (t Task) DisplayText() string {
	suffix := ""
	if tags := strings.TrimSpace(t.CustomTags); tags != "" {
		suffix = " " + tags
	}
	return fmt.Sprintf("%s  #%dmin%s", t.Title, t.Time, suffix)
}

// NormalizeTags splits free-form tag input on commas/whitespace and
// prefixes each token with '#' unless it already has one.
func NormalizeTags(raw string) string {
	parts := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	if len(parts) == 0 {
		return ""
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if !strings.HasPrefix(p, "#") {
			p = "#" + p
		}
		out = append(out, p)
	}
	return strings.Join(out, " ")
}

// ClampCoord clamps a plane coordinate into [-1, 1].
func ClampCoord(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// PlanePoint is the flattened per-node view consumed by the
// urgency/importance plane renderers.
type PlanePoint struct {
	ID        string
	Title     string
	ParentID  *string
	Time      int
	Completed bool
	X         float64
	Y         float64
	Tags      string
}

// Flatten walks the forest depth-first and returns one PlanePoint per
// node, in display order.
func Flatten(forest []Task) []PlanePoint {
	var points []PlanePoint
	var walk func(nodes []Task)
	walk = func(nodes []Task) {
		for _, n := range nodes {
			points = append(points, PlanePoint{
				ID:        n.ID,
				Title:     n.Title,
				ParentID:  n.ParentID,
				Time:      n.Time,
				Completed: n.Completed,
				X:         n.X,
				Y:         n.Y,
				Tags:      n.CustomTags,
			})
			walk(n.Children)
		}
	}
	walk(forest)
	return points
}
