package services

import (
	"errors"
	"fmt"

	"github.com/diewo77/parts-inventory/internal/store"
)

// ErrNotFound reports that the addressed record does not exist.
var ErrNotFound = errors.New("not found")

// NotFoundError names the missing record. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// translate turns a store miss into a NotFoundError and passes other errors through.
func translate(err error, entity string, id any) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(entity, id)
	}
	return err
}

// mustExist returns a NotFoundError when exists reports false.
func mustExist(exists bool, err error, entity string, id any) error {
	if err != nil {
		return err
	}
	if !exists {
		return notFound(entity, id)
	}
	return nil
}
