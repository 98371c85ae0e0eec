package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"taskplane/internal/model"
)

// newRandomID returns task-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space, plenty for
// a single person's task forest.
func newRandomID() (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return "task-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// NewTaskID generates an id that does not collide with any node already
// in the forest. Ids are opaque and stable for the task's lifetime.
func NewTaskID(forest []model.Task) string {
	for i := 0; i < 10; i++ {
		id, err := newRandomID()
		if err != nil {
			break
		}
		if !idExists(forest, id) {
			return id
		}
	}
	// crypto/rand failure or repeated collisions; both are effectively
	// unreachable, but never return an empty or duplicate id.
	return fmt.Sprintf("task-%d", time.Now().UnixNano())
}

func idExists(forest []model.Task, id string) bool {
	stack := make([][]model.Task, 0, len(forest))
	stack = append(stack, forest)
	for len(stack) > 0 {
		nodes := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := range nodes {
			if nodes[i].ID == id {
				return true
			}
			if len(nodes[i].Children) > 0 {
				stack = append(stack, nodes[i].Children)
			}
		}
	}
	return false
}
