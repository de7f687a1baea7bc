package scheme

import (
	"context"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/Lumos-Labs-HQ/airgen/internal/sink"
)

// Hooks let the caller observe a run. Any nil hook is skipped.
type Hooks struct {
	// BeforeSubmit may veto a batch, which stops the run.
	BeforeSubmit func(b Batch) error
	AfterSubmit  func(b Batch)
}

// StepResult records one delivered batch.
type StepResult struct {
	Index int
	Kind  entity.Kind
	Count int
}

type Report struct {
	Steps []StepResult
}

func (r Report) Total() int {
	total := 0
	for _, s := range r.Steps {
		total += s.Count
	}
	return total
}

// Run pulls steps from the engine one at a time and delivers each batch
// before the next one is built. The first error ends the run; batches
// already delivered stay delivered.
func Run(ctx context.Context, e *Engine, s sink.Sink, hooks Hooks) (Report, error) {
	var report Report

	for {
		batch, ok, err := e.Next(ctx)
		if err != nil {
			completed, _ := e.Progress()
			kind := e.steps[min(completed, len(e.steps)-1)].Kind
			return report, &RunError{Completed: len(report.Steps), Kind: kind, Err: err}
		}
		if !ok {
			return report, nil
		}

		if hooks.BeforeSubmit != nil {
			if err := hooks.BeforeSubmit(batch); err != nil {
				return report, &RunError{Completed: len(report.Steps), Kind: batch.Kind, Err: err}
			}
		}

		if err := s.Submit(ctx, batch.Kind, batch.Records); err != nil {
			return report, &RunError{Completed: len(report.Steps), Kind: batch.Kind, Err: err}
		}

		report.Steps = append(report.Steps, StepResult{Index: batch.Index, Kind: batch.Kind, Count: len(batch.Records)})
		if hooks.AfterSubmit != nil {
			hooks.AfterSubmit(batch)
		}
	}
}
