package scheme

import (
	"errors"
	"fmt"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

var (
	ErrExhaustedAllocation = errors.New("seat allocation exhausted")
	ErrMissingReference    = errors.New("missing reference")
)

// ExhaustedAllocationError is returned once every seat of a flight is taken.
type ExhaustedAllocationError struct {
	FlightID string
	Capacity int
}

func (e *ExhaustedAllocationError) Error() string {
	return fmt.Sprintf("flight %s is fully booked: all %d seats assigned", e.FlightID, e.Capacity)
}

func (e *ExhaustedAllocationError) Unwrap() error {
	return ErrExhaustedAllocation
}

// MissingReferenceError means a step asked for a record of a kind no
// earlier step produced.
type MissingReferenceError struct {
	From entity.Kind
	To   entity.Kind
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s step references %s but no %s records were built", e.From, e.To, e.To)
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}

// StepError ties a build failure to the step that caused it.
type StepError struct {
	Index int
	Kind  entity.Kind
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Kind, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// RunError reports where a scheme run stopped. Steps before Completed were
// delivered and are not rolled back.
type RunError struct {
	Completed int
	Kind      entity.Kind
	Err       error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("scheme stopped after %d completed step(s) at %s: %v", e.Completed, e.Kind, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
