package db

import (
	"context"
)

const upsertAnalysis = `-- name: UpsertAnalysis :exec
INSERT INTO race_analysis (season, race, track_name, fetched_at, record)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (season, race) DO UPDATE SET
    track_name = excluded.track_name,
    fetched_at = excluded.fetched_at,
    record = excluded.record
`

type UpsertAnalysisParams struct {
	Season    int64
	Race      int64
	TrackName string
	FetchedAt int64
	Record    string
}

func (q *Queries) UpsertAnalysis(ctx context.Context, arg UpsertAnalysisParams) error {
	_, err := q.db.ExecContext(ctx, upsertAnalysis,
		arg.Season,
		arg.Race,
		arg.TrackName,
		arg.FetchedAt,
		arg.Record,
	)
	return err
}

const getAnalysis = `-- name: GetAnalysis :one
SELECT record FROM race_analysis WHERE season = ? AND race = ?
`

type GetAnalysisParams struct {
	Season int64
	Race   int64
}

func (q *Queries) GetAnalysis(ctx context.Context, arg GetAnalysisParams) (string, error) {
	row := q.db.QueryRowContext(ctx, getAnalysis, arg.Season, arg.Race)
	var record string
	err := row.Scan(&record)
	return record, err
}

const listAnalyses = `-- name: ListAnalyses :many
SELECT season, race, track_name, fetched_at FROM race_analysis
ORDER BY season, race
`

type ListAnalysesRow struct {
	Season    int64
	Race      int64
	TrackName string
	FetchedAt int64
}

func (q *Queries) ListAnalyses(ctx context.Context) ([]ListAnalysesRow, error) {
	rows, err := q.db.QueryContext(ctx, listAnalyses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListAnalysesRow
	for rows.Next() {
		var i ListAnalysesRow
		if err := rows.Scan(&i.Season, &i.Race, &i.TrackName, &i.FetchedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
