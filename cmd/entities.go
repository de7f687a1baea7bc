package cmd

import (
	"io"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
	"github.com/Lumos-Labs-HQ/airgen/internal/faker"
	"github.com/Lumos-Labs-HQ/airgen/internal/sink"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities",
	Short: "List entity kinds and where they can be sent",
	Run: func(cmd *cobra.Command, args []string) {
		renderEntities(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
}

func renderEntities(w io.Writer) {
	factory := entity.NewFactory(faker.New(1))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Generate", "Endpoint"})

	for _, kind := range entity.AllKinds() {
		generate := "no"
		if factory.Supports(kind) {
			generate = "yes"
		}
		endpoint, err := sink.Endpoint(kind)
		if err != nil {
			endpoint = "dry run only"
			if !factory.Supports(kind) {
				endpoint = "-"
			}
		}
		table.Append([]string{kind.String(), generate, endpoint})
	}

	table.Render()
}
