package mutate

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrNegativeMinutes = errors.New("task minutes must be >= 0")
)
