package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var seasonDb string

func init() {
	seasonCmd.Flags().StringVar(&seasonDb, "db", "", "archive the records into this sqlite file")
	rootCmd.AddCommand(seasonCmd)
}

var seasonCmd = &cobra.Command{
	Use:   "season <number>",
	Short: "Fetches every race you participated in during one season.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			fail(fmt.Errorf("season number: %w", err))
		}

		client, err := newClient(cmd.Context())
		if err != nil {
			fail(err)
		}

		results, err := client.Season(cmd.Context(), number)
		if err != nil {
			fail(err)
		}

		renderResults(results)

		if seasonDb != "" {
			err = archive(cmd.Context(), seasonDb, results)
			if err != nil {
				fail(err)
			}
		}
	},
}
