package cmd

import (
	"gproassist/lib/telemetry"

	"github.com/spf13/cobra"
)

var historyDb string

func init() {
	historyCmd.Flags().StringVar(&historyDb, "db", "", "archive the records into this sqlite file")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Walks your entire career into the archive.",
	Run: func(cmd *cobra.Command, args []string) {
		// career walks are long enough to be worth watching
		telemetry.InstrumentPerfStats(cmd.Context())

		client, err := newClient(cmd.Context())
		if err != nil {
			fail(err)
		}

		results, err := client.History(cmd.Context())
		if err != nil {
			fail(err)
		}

		renderResults(results)

		if historyDb != "" {
			err = archive(cmd.Context(), historyDb, results)
			if err != nil {
				fail(err)
			}
		}
	},
}
