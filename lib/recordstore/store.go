// Package recordstore archives race analysis records in a sqlite
// database keyed by coordinate.
package recordstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gproassist/lib/recordstore/db"
	"gproassist/lib/scrapers/gpro"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("no archived record for coordinate")

type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

// Open opens (or creates) the archive at path and applies the schema.
func Open(path string) (Store, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		database.Close()
		return Store{}, fmt.Errorf("apply schema: %w", err)
	}
	return NewStore(database), nil
}

func (s Store) Close() error {
	return s.db.Close()
}

func upsertParams(record *gpro.RaceAnalysis, fetchedAt int64) (db.UpsertAnalysisParams, error) {
	encoded, err := json.Marshal(record)
	if err != nil {
		return db.UpsertAnalysisParams{}, err
	}
	return db.UpsertAnalysisParams{
		Season:    int64(record.Season),
		Race:      int64(record.Race),
		TrackName: record.TrackName,
		FetchedAt: fetchedAt,
		Record:    string(encoded),
	}, nil
}

// Put archives the record, overwriting any previous record for the same
// coordinate.
func (s Store) Put(ctx context.Context, record *gpro.RaceAnalysis) error {
	params, err := upsertParams(record, time.Now().Unix())
	if err != nil {
		return err
	}
	return s.qry.UpsertAnalysis(ctx, params)
}

// PutAll archives every record in one transaction, so an aborted walk
// archive leaves no partial batch behind.
func (s Store) PutAll(ctx context.Context, records []*gpro.RaceAnalysis) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	fetchedAt := time.Now().Unix()
	for _, record := range records {
		params, err := upsertParams(record, fetchedAt)
		if err != nil {
			return err
		}
		err = txqry.UpsertAnalysis(ctx, params)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Store) Get(ctx context.Context, coordinate gpro.Coordinate) (*gpro.RaceAnalysis, error) {
	encoded, err := s.qry.GetAnalysis(ctx, db.GetAnalysisParams{
		Season: int64(coordinate.Season),
		Race:   int64(coordinate.Race),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	record := &gpro.RaceAnalysis{}
	err = json.Unmarshal([]byte(encoded), record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

type Entry struct {
	Coordinate gpro.Coordinate
	TrackName  string
	FetchedAt  time.Time
}

// List returns the archive's entries ordered by season then race.
func (s Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.qry.ListAnalyses(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{
			Coordinate: gpro.Coordinate{
				Season: int(r.Season),
				Race:   int(r.Race),
			},
			TrackName: r.TrackName,
			FetchedAt: time.Unix(r.FetchedAt, 0),
		}
	}
	return entries, nil
}
