package recordstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"gproassist/lib/recordstore/db"
	"gproassist/lib/scrapers/gpro"
	"gproassist/lib/telemetry"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestStore(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:recordstore")
	defer cleanup()

	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	_, err = sqlite.Exec(db.Schema)
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(sqlite)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	{
		_, err := store.Get(ctx, gpro.Coordinate{Season: 54, Race: 14})
		require.ErrorIs(t, err, ErrNotFound)
	}
	{
		err := store.Put(ctx, &gpro.RaceAnalysis{
			TrackName: "Suzuka",
			TrackID:   "7",
			Season:    54,
			Race:      14,
			Group:     "Amateur - 83",
		})
		if err != nil {
			t.Fatal(err)
		}
		err = store.Put(ctx, &gpro.RaceAnalysis{
			TrackName: "Interlagos",
			TrackID:   "11",
			Season:    54,
			Race:      13,
		})
		if err != nil {
			t.Fatal(err)
		}

		record, err := store.Get(ctx, gpro.Coordinate{Season: 54, Race: 14})
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, "Suzuka", record.TrackName)
		require.Equal(t, "Amateur - 83", record.Group)
	}
	{
		// a second put for the same coordinate overwrites the record
		err := store.Put(ctx, &gpro.RaceAnalysis{
			TrackName: "Suzuka",
			TrackID:   "7",
			Season:    54,
			Race:      14,
			Group:     "Amateur - 85",
		})
		if err != nil {
			t.Fatal(err)
		}

		record, err := store.Get(ctx, gpro.Coordinate{Season: 54, Race: 14})
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(t, "Amateur - 85", record.Group)

		entries, err := store.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		require.Len(t, entries, 2)
		require.Equal(t, gpro.Coordinate{Season: 54, Race: 13}, entries[0].Coordinate)
		require.Equal(t, gpro.Coordinate{Season: 54, Race: 14}, entries[1].Coordinate)
	}
}

func TestPutAll(t *testing.T) {
	sqlite, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	_, err = sqlite.Exec(db.Schema)
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(sqlite)

	ctx := context.Background()
	err = store.PutAll(ctx, []*gpro.RaceAnalysis{
		{TrackName: "Suzuka", Season: 54, Race: 14},
		{TrackName: "Interlagos", Season: 54, Race: 13},
		{TrackName: "Monza", Season: 53, Race: 16},
	})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, entries, 3)
	require.Equal(t, gpro.Coordinate{Season: 53, Race: 16}, entries[0].Coordinate)

	// the batch upserts like Put does
	err = store.PutAll(ctx, []*gpro.RaceAnalysis{
		{TrackName: "Suzuka", Season: 54, Race: 14, Group: "Amateur - 83"},
	})
	if err != nil {
		t.Fatal(err)
	}
	record, err := store.Get(ctx, gpro.Coordinate{Season: 54, Race: 14})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Amateur - 83", record.Group)
}

func TestOpen(t *testing.T) {
	path := t.TempDir() + "/archive.db"
	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	err = store.Put(ctx, &gpro.RaceAnalysis{TrackName: "Monza", Season: 1, Race: 2})
	if err != nil {
		t.Fatal(err)
	}
	err = store.Close()
	if err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	record, err := reopened.Get(ctx, gpro.Coordinate{Season: 1, Race: 2})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "Monza", record.TrackName)
}
