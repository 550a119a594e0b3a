package cmd

import (
	"gproassist/lib/recordfile"

	"github.com/spf13/cobra"
)

var fetchSeason int
var fetchRace int
var fetchOut string

func init() {
	fetchCmd.Flags().IntVar(&fetchSeason, "season", 0, "season of the report; 0 with --race 0 means the latest")
	fetchCmd.Flags().IntVar(&fetchRace, "race", 0, "race of the report")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "write the full record to this JSON file")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches one race analysis report, the latest by default.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd.Context())
		if err != nil {
			fail(err)
		}

		data, err := client.Analysis(cmd.Context(), fetchSeason, fetchRace)
		if err != nil {
			fail(err)
		}

		renderSummary(data)

		if fetchOut != "" {
			err = recordfile.Write(data, fetchOut)
			if err != nil {
				fail(err)
			}
			cmd.Printf("wrote %s\n", fetchOut)
		}
	},
}
