package services

import "fmt"

// NotFoundError is returned when a lookup by primary key matches no row
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// InUseError is returned when a delete is blocked because dependent rows
// still reference the entity. Dependents carries the blocking row count.
type InUseError struct {
	Entity     string
	ID         uint
	Dependents int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s with id %d is referenced by %d dependent record(s) and cannot be deleted", e.Entity, e.ID, e.Dependents)
}

// DuplicateError is returned when a create or update violates a natural-key
// uniqueness constraint (agreement name, country code, user email, ...).
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}
