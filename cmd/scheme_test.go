package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/airgen/internal/config"
	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/Lumos-Labs-HQ/airgen/internal/scheme"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemeCountsPreferFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "scheme"}
	cmd.Flags().IntVar(&schemeUsers, "users", 0, "")
	cmd.Flags().IntVar(&schemeEmployees, "employees", 0, "")
	cmd.Flags().IntVar(&schemePlanes, "planes", 0, "")
	cmd.Flags().IntVar(&schemeFlights, "flights", 0, "")
	cmd.Flags().IntVar(&schemePassengers, "passengers", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--users", "7", "--employees", "0"}))

	got := schemeCounts(cmd, config.Scheme{Users: 3, Employees: 2, Planes: 2, Flights: 4, Passengers: 10})
	assert.Equal(t, scheme.Counts{Users: 7, Employees: 0, Planes: 2, Flights: 4, Passengers: 10}, got)
}

func TestRecordCount(t *testing.T) {
	assert.Equal(t, 14, recordCount(scheme.Counts{Users: 3, Planes: 2, Flights: 2, Passengers: 4}))
	assert.Equal(t, 19, recordCount(scheme.Counts{Users: 3, Employees: 5, Planes: 2, Flights: 2, Passengers: 4}))
}

func TestRenderSummaryMarksFailedStep(t *testing.T) {
	steps := []scheme.Step{
		{Kind: entity.User, Size: 2},
		{Kind: entity.CreditCard, Size: 2},
		{Kind: entity.Plane, Size: 1},
		{Kind: entity.Flight, Size: 3},
	}
	report := scheme.Report{Steps: []scheme.StepResult{
		{Index: 0, Kind: entity.User, Count: 2},
		{Index: 1, Kind: entity.CreditCard, Count: 2},
	}}

	var buf bytes.Buffer
	renderSummary(&buf, steps, report, errors.New("boom"), false)

	lines := strings.Split(buf.String(), "\n")
	row := func(kind string) string {
		for _, l := range lines {
			if strings.Contains(l, " "+kind+" ") {
				return l
			}
		}
		t.Fatalf("no row for %s in\n%s", kind, buf.String())
		return ""
	}

	assert.Contains(t, row("user"), "sent")
	assert.Contains(t, row("creditcard"), "/creditcards")
	assert.Contains(t, row("plane"), "failed")
	assert.Contains(t, row("flight"), "skipped")
}

func TestRenderEntitiesListsEveryKind(t *testing.T) {
	var buf bytes.Buffer
	renderEntities(&buf)

	out := buf.String()
	for _, name := range entity.KindNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "/passengers")
	assert.Contains(t, out, "dry run only")
}
