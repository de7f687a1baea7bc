package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEntityKind     = errors.New("unknown entity kind")
	ErrUnsupportedEntityKind = errors.New("unsupported entity kind")
)

// UnknownKindError reports a name outside the Kind enumeration.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("invalid entity: %s. Must be one of: %s", e.Name, strings.Join(KindNames(), ", "))
}

func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownEntityKind
}

// UnsupportedKindError reports a valid Kind that an operation has no handler for.
type UnsupportedKindError struct {
	Kind Kind
	Op   string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("no %s handler for entity: %s", e.Op, e.Kind)
}

func (e *UnsupportedKindError) Unwrap() error {
	return ErrUnsupportedEntityKind
}
