package cmd

import (
	"fmt"
	"os"
	"sort"

	"gproassist/lib/scrapers/gpro"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func formatOptional(value *int) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprint(*value)
}

func renderSummary(data *gpro.RaceAnalysis) {
	t := newTable()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Track", data.TrackName})
	t.AppendRow(table.Row{"Season", data.Season})
	t.AppendRow(table.Row{"Race", data.Race})
	t.AppendRow(table.Row{"Group", data.Group})
	t.AppendRow(table.Row{"Start", formatOptional(data.PositionStart)})
	t.AppendRow(table.Row{"Finish", formatOptional(data.PositionFinish)})
	t.AppendRow(table.Row{"Q1 time", data.Qualifying1.LapTime})
	t.AppendRow(table.Row{"Q2 time", data.Qualifying2.LapTime})
	t.AppendRow(table.Row{"Pit stops", len(data.PitStops)})
	t.AppendRow(table.Row{"Problems", len(data.Problems)})
	t.Render()
}

func renderResults(results map[gpro.Coordinate]*gpro.RaceAnalysis) {
	coordinates := make([]gpro.Coordinate, 0, len(results))
	for coordinate := range results {
		coordinates = append(coordinates, coordinate)
	}
	sort.Slice(coordinates, func(i, j int) bool {
		if coordinates[i].Season != coordinates[j].Season {
			return coordinates[i].Season < coordinates[j].Season
		}
		return coordinates[i].Race < coordinates[j].Race
	})

	t := newTable()
	t.AppendHeader(table.Row{"Season", "Race", "Track", "Start", "Finish"})
	for _, coordinate := range coordinates {
		record := results[coordinate]
		t.AppendRow(table.Row{
			coordinate.Season,
			coordinate.Race,
			record.TrackName,
			formatOptional(record.PositionStart),
			formatOptional(record.PositionFinish),
		})
	}
	t.Render()
}
