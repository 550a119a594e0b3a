package gpro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeason(t *testing.T) {
	fs := newFixtureServer(t, Coordinate{Season: 5, Race: 9}, map[Coordinate]bool{
		{Season: 3, Race: 1}: true,
		{Season: 3, Race: 3}: true,
		{Season: 3, Race: 5}: true,
	})
	client := newTestClient(t, fs.server.URL)

	results, err := client.Season(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, results, 3)
	require.Contains(t, results, Coordinate{Season: 3, Race: 1})
	require.Contains(t, results, Coordinate{Season: 3, Race: 3})
	require.Contains(t, results, Coordinate{Season: 3, Race: 5})

	// every coordinate of the season was probed exactly once
	require.Equal(t, RacesPerSeason, fs.fetches)
}

func TestHistory(t *testing.T) {
	latest := Coordinate{Season: 2, Race: 3}
	fs := newFixtureServer(t, latest, map[Coordinate]bool{
		{Season: 1, Race: 2}: true,
		{Season: 2, Race: 1}: true,
		{Season: 2, Race: 3}: true,
	})
	client := newTestClient(t, fs.server.URL)

	results, err := client.History(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, results, 3)
	require.Contains(t, results, Coordinate{Season: 1, Race: 2})
	require.Contains(t, results, Coordinate{Season: 2, Race: 1})
	require.Contains(t, results, Coordinate{Season: 2, Race: 3})

	// one fetch for the latest report plus a full probe of both seasons
	require.Equal(t, 1+2*RacesPerSeason, fs.fetches)
}
