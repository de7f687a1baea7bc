package scheme

import (
	"context"
	"errors"
	"testing"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/Lumos-Labs-HQ/airgen/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportTotal(t *testing.T) {
	r := Report{Steps: []StepResult{
		{Index: 0, Kind: entity.User, Count: 3},
		{Index: 1, Kind: entity.CreditCard, Count: 3},
		{Index: 2, Kind: entity.Plane, Count: 0},
	}}
	assert.Equal(t, 6, r.Total())
	assert.Zero(t, Report{}.Total())
}

func TestRunDeliversInStepOrder(t *testing.T) {
	e := NewEngine(1, nil,
		fixed(entity.User, entity.Record{"name": "a"}),
		fixed(entity.Plane),
		fixed(entity.Flight, entity.Record{"flight_number": "TK1"}, entity.Record{"flight_number": "TK2"}),
	)

	var seen []int
	rec := sink.NewRecorder()
	report, err := Run(context.Background(), e, rec, Hooks{
		AfterSubmit: func(b Batch) { seen = append(seen, b.Index) },
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, 3, report.Total())
	require.Len(t, rec.Deliveries(), 3)
	assert.Empty(t, rec.Deliveries()[1].Batch)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	e := NewEngine(1, nil, fixed(entity.User, entity.Record{"name": "a"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, e, sink.NewRecorder(), Hooks{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, report.Steps)

	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, entity.User, runErr.Kind)
	assert.Zero(t, runErr.Completed)
}
