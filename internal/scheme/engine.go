package scheme

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

type State int

const (
	Pending State = iota
	Building
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Building:
		return "building"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// BuildFunc produces the records of one step. It may read the output of
// earlier steps through the engine.
type BuildFunc func(ctx context.Context, e *Engine) ([]entity.Record, error)

// Step describes one entry of a scheme.
type Step struct {
	Kind  entity.Kind
	Size  int
	Build BuildFunc
	// Requires lists the kinds whose records Build references.
	Requires []entity.Kind
}

// Batch is the output of one step.
type Batch struct {
	Index   int
	Kind    entity.Kind
	Records []entity.Record
}

// Engine builds the steps of a scheme one at a time, in order. It keeps every
// step's output in memory so later steps can reference earlier records.
type Engine struct {
	steps   []Step
	next    int
	state   State
	err     error
	outputs map[entity.Kind][]entity.Record
	rand    *rand.Rand
	seats   *SeatAllocator
}

func NewEngine(seed int64, seats *SeatAllocator, steps ...Step) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if seats == nil {
		seats = NewSeatAllocator(0)
	}
	return &Engine{
		steps:   steps,
		outputs: make(map[entity.Kind][]entity.Record),
		rand:    rand.New(rand.NewSource(seed)),
		seats:   seats,
	}
}

func (e *Engine) State() State {
	return e.state
}

// Steps returns the plan without building anything.
func (e *Engine) Steps() []Step {
	out := make([]Step, len(e.steps))
	copy(out, e.steps)
	return out
}

// Progress returns how many steps have been built and how many there are.
func (e *Engine) Progress() (int, int) {
	return e.next, len(e.steps)
}

func (e *Engine) Err() error {
	return e.err
}

// Next builds the next step. It returns false once every step was built,
// and keeps returning the same error after a failure.
func (e *Engine) Next(ctx context.Context) (Batch, bool, error) {
	switch e.state {
	case Done:
		return Batch{}, false, nil
	case Failed:
		return Batch{}, false, e.err
	}

	if e.next >= len(e.steps) {
		e.state = Done
		return Batch{}, false, nil
	}

	if err := ctx.Err(); err != nil {
		return Batch{}, false, e.fail(err)
	}

	index := e.next
	step := e.steps[index]
	e.state = Building

	records, err := step.Build(ctx, e)
	if err != nil {
		return Batch{}, false, e.fail(&StepError{Index: index, Kind: step.Kind, Err: err})
	}

	e.outputs[step.Kind] = append(e.outputs[step.Kind], records...)
	e.next++
	if e.next == len(e.steps) {
		e.state = Done
	}

	return Batch{Index: index, Kind: step.Kind, Records: records}, true, nil
}

func (e *Engine) fail(err error) error {
	e.state = Failed
	e.err = err
	return err
}

// Output returns every record built so far for kind.
func (e *Engine) Output(kind entity.Kind) []entity.Record {
	return e.outputs[kind]
}

// Pick samples one earlier record of kind uniformly, with replacement.
func (e *Engine) Pick(from, kind entity.Kind) (entity.Record, error) {
	records := e.outputs[kind]
	if len(records) == 0 {
		return nil, &MissingReferenceError{From: from, To: kind}
	}
	return records[e.rand.Intn(len(records))], nil
}

func (e *Engine) Seats() *SeatAllocator {
	return e.seats
}
