package scheme

import (
	"testing"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(steps []Step) []entity.Kind {
	kinds := make([]entity.Kind, len(steps))
	for i, s := range steps {
		kinds[i] = s.Kind
	}
	return kinds
}

func TestOrderMovesDependenciesFirst(t *testing.T) {
	steps := []Step{
		{Kind: entity.Passenger, Requires: []entity.Kind{entity.Flight, entity.CreditCard}},
		{Kind: entity.Flight, Requires: []entity.Kind{entity.Plane}},
		{Kind: entity.User},
		{Kind: entity.CreditCard, Requires: []entity.Kind{entity.User}},
		{Kind: entity.Plane},
	}

	ordered, err := Order(steps)
	require.NoError(t, err)
	assert.Equal(t, []entity.Kind{entity.Plane, entity.Flight, entity.User, entity.CreditCard, entity.Passenger}, kindsOf(ordered))
}

func TestOrderKeepsDeclaredOrder(t *testing.T) {
	steps := []Step{
		{Kind: entity.User},
		{Kind: entity.Employee},
		{Kind: entity.Plane},
	}

	ordered, err := Order(steps)
	require.NoError(t, err)
	assert.Equal(t, kindsOf(steps), kindsOf(ordered))
}

func TestOrderIgnoresUnproducedKinds(t *testing.T) {
	ordered, err := Order([]Step{{Kind: entity.Passenger, Requires: []entity.Kind{entity.Flight}}})
	require.NoError(t, err)
	assert.Len(t, ordered, 1)
}

func TestOrderDetectsCycles(t *testing.T) {
	_, err := Order([]Step{
		{Kind: entity.Flight, Requires: []entity.Kind{entity.Passenger}},
		{Kind: entity.Passenger, Requires: []entity.Kind{entity.Flight}},
	})
	assert.ErrorContains(t, err, "circular dependency")
}
