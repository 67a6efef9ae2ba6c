package store

import "errors"

var (
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")
)
