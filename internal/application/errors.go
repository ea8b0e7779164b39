package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrIndexMissing = errors.New("index missing")
	ErrIndexCorrupt = errors.New("index corrupt")
	ErrNotFound     = errors.New("not found")
	ErrCategoryFull = errors.New("category full")
	ErrSlotTaken    = errors.New("slot taken")
)

// CorruptError reports an unusable index document. The index is never
// silently repaired; the caller must trigger a rebuild.
type CorruptError struct {
	Path   string
	Reason string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("index corrupt at %s: %s", e.Path, e.Reason)
}

func (e *CorruptError) Is(target error) bool {
	return target == ErrIndexCorrupt
}

// NotFoundError reports a code absent from the index
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such item: %s", e.Code)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SlotTakenError reports a proposed slot that collided with the index
// at confirmation time. The caller should retry against a fresh index.
type SlotTakenError struct {
	Code string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot already taken: %s", e.Code)
}

func (e *SlotTakenError) Is(target error) bool {
	return target == ErrSlotTaken
}

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
