package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Lumos-Labs-HQ/airgen/internal/config"
	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/Lumos-Labs-HQ/airgen/internal/faker"
	"github.com/Lumos-Labs-HQ/airgen/internal/schema"
	"github.com/Lumos-Labs-HQ/airgen/internal/scheme"
	"github.com/Lumos-Labs-HQ/airgen/internal/sink"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	schemeDryRun     bool
	schemeYes        bool
	schemeUsers      int
	schemeEmployees  int
	schemePlanes     int
	schemeFlights    int
	schemePassengers int
	schemeSeed       int64
	schemeFormat     string
	schemeValidate   bool
)

var errAborted = errors.New("scheme run aborted")

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Build a complete, referentially consistent dataset",
	Long: `
Build users, their credit cards, employees, planes, flights and passengers
in dependency order and deliver each step as one batch.

Every flight flies one of the generated planes, every passenger is booked
on a generated flight in a seat nobody else holds, and pays with a card
issued to a generated user. A failed step stops the run; earlier steps
stay delivered.

Sizes default to the scheme section of the config file:

  airgen scheme --dry-run --seed 42
  airgen scheme --users 50 --flights 10 --passengers 400 --yes`,
	RunE: runScheme,
}

func init() {
	schemeCmd.Flags().BoolVar(&schemeDryRun, "dry-run", false, "print every batch instead of sending it")
	schemeCmd.Flags().BoolVarP(&schemeYes, "yes", "y", false, "skip the confirmation prompt")
	schemeCmd.Flags().IntVar(&schemeUsers, "users", 0, "number of users (one credit card each)")
	schemeCmd.Flags().IntVar(&schemeEmployees, "employees", 0, "number of employees")
	schemeCmd.Flags().IntVar(&schemePlanes, "planes", 0, "number of planes")
	schemeCmd.Flags().IntVar(&schemeFlights, "flights", 0, "number of flights")
	schemeCmd.Flags().IntVar(&schemePassengers, "passengers", 0, "number of passengers")
	schemeCmd.Flags().Int64Var(&schemeSeed, "seed", 0, "seed for a reproducible dataset; 0 means use the config seed, or a random one (printed) if that is 0 too")
	schemeCmd.Flags().StringVar(&schemeFormat, "format", "yaml", "dry-run output format (yaml or json)")
	schemeCmd.Flags().BoolVar(&schemeValidate, "validate", false, "check every batch against its JSON schema before delivery")

	rootCmd.AddCommand(schemeCmd)
}

// schemeCounts starts from the configured sizes and applies any size flag
// given on the command line.
func schemeCounts(cmd *cobra.Command, cfg config.Scheme) scheme.Counts {
	counts := scheme.Counts{
		Users:      cfg.Users,
		Employees:  cfg.Employees,
		Planes:     cfg.Planes,
		Flights:    cfg.Flights,
		Passengers: cfg.Passengers,
	}

	flags := cmd.Flags()
	if flags.Changed("users") {
		counts.Users = schemeUsers
	}
	if flags.Changed("employees") {
		counts.Employees = schemeEmployees
	}
	if flags.Changed("planes") {
		counts.Planes = schemePlanes
	}
	if flags.Changed("flights") {
		counts.Flights = schemeFlights
	}
	if flags.Changed("passengers") {
		counts.Passengers = schemePassengers
	}
	return counts
}

func runScheme(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	counts := schemeCounts(cmd, cfg.Scheme)
	if err := counts.Validate(); err != nil {
		return err
	}

	seed := schemeSeed
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Batches go to stdout in a dry run, so progress moves to stderr.
	out := cmd.OutOrStdout()
	var s sink.Sink
	if schemeDryRun {
		format, err := sink.ParseFormat(schemeFormat)
		if err != nil {
			return err
		}
		out = cmd.ErrOrStderr()
		s = sink.NewPrintSink(cmd.OutOrStdout(), format)
	} else {
		if !schemeYes {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("Send %d records to %s?", recordCount(counts), cfg.BaseURL),
				Default: false,
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil {
				return fmt.Errorf("confirmation failed: %w", err)
			}
			if !confirmed {
				color.Yellow("⚠️  Nothing was sent")
				return errAborted
			}
		}
		s = sink.NewHTTPSink(cfg.BaseURL, cfg.HTTPTimeout, sink.WithLogger(logrus.StandardLogger()))
	}

	factory := entity.NewFactory(faker.New(seed))
	engine, err := scheme.Standard(factory, counts, scheme.Options{Seed: seed, SeatCapacity: cfg.SeatCapacity})
	if err != nil {
		return err
	}

	color.New(color.FgCyan).Fprintf(out, "🛫 Running scheme with seed %d\n", seed)

	_, stepCount := engine.Progress()
	hooks := scheme.Hooks{
		AfterSubmit: func(b scheme.Batch) {
			color.New(color.FgGreen).Fprintf(out, "  ✅ [%d/%d] %d %s record(s)\n", b.Index+1, stepCount, len(b.Records), b.Kind)
		},
	}
	if schemeValidate {
		hooks.BeforeSubmit = func(b scheme.Batch) error {
			return schema.ValidateBatch(b.Kind, b.Records)
		}
	}

	report, runErr := scheme.Run(cmd.Context(), engine, s, hooks)

	fmt.Fprintln(out)
	renderSummary(out, engine.Steps(), report, runErr, schemeDryRun)

	if runErr != nil {
		return runErr
	}

	color.New(color.FgGreen, color.Bold).Fprintf(out, "🎉 Delivered %d records in %d steps\n", report.Total(), len(report.Steps))
	return nil
}

func recordCount(c scheme.Counts) int {
	// Users count twice: every user gets a credit card.
	return 2*c.Users + c.Employees + c.Planes + c.Flights + c.Passengers
}

func renderSummary(w io.Writer, steps []scheme.Step, report scheme.Report, runErr error, dryRun bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "Kind", "Count", "Endpoint", "Status"})

	delivered := "sent"
	if dryRun {
		delivered = "printed"
	}

	for i, step := range steps {
		endpoint, err := sink.Endpoint(step.Kind)
		if err != nil {
			endpoint = "-"
		}

		status := "skipped"
		count := step.Size
		switch {
		case i < len(report.Steps):
			status = delivered
			count = report.Steps[i].Count
		case i == len(report.Steps) && runErr != nil:
			status = "failed"
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			step.Kind.String(),
			strconv.Itoa(count),
			endpoint,
			status,
		})
	}

	table.Render()
}
