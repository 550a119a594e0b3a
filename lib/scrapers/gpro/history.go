package gpro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RacesPerSeason is the most races any season has held. The report never
// states the season length, so the walker probes this many coordinates.
const RacesPerSeason = 16

// Season extracts every race of one season the account participated in.
// Coordinates the account sat out are skipped; any other failure aborts
// the walk.
func (c *Client) Season(ctx context.Context, season int) (map[Coordinate]*RaceAnalysis, error) {
	ctx, span := tracer.Start(ctx, "client:Season")
	defer span.End()
	span.SetAttributes(attribute.Int("season", season))

	results := map[Coordinate]*RaceAnalysis{}
	for race := 1; race <= RacesPerSeason; race++ {
		data, err := c.Analysis(ctx, season, race)

		var notRaced *NotRacedError
		if errors.As(err, &notRaced) {
			slog.DebugContext(ctx, "not raced, skipping", "season", season, "race", race)
			continue
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "season walk aborted")
			return nil, fmt.Errorf("season %d race %d: %w", season, race, err)
		}

		results[Coordinate{Season: data.Season, Race: data.Race}] = data
		slog.DebugContext(ctx, "scraped race", "season", season, "race", race)
	}
	return results, nil
}

// History extracts the account's entire career: the most recent report
// determines the current season, then every season up to it is walked.
// Fetches are strictly sequential; the site's rate tolerance is unknown.
func (c *Client) History(ctx context.Context) (map[Coordinate]*RaceAnalysis, error) {
	ctx, span := tracer.Start(ctx, "client:History")
	defer span.End()

	latest, err := c.Analysis(ctx, 0, 0)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch most recent report")
		return nil, err
	}

	results := map[Coordinate]*RaceAnalysis{
		{Season: latest.Season, Race: latest.Race}: latest,
	}
	for season := 1; season <= latest.Season; season++ {
		seasonResults, err := c.Season(ctx, season)
		if err != nil {
			return nil, err
		}
		for coordinate, data := range seasonResults {
			results[coordinate] = data
		}
	}

	slog.DebugContext(ctx, "history walk complete", "races", len(results))
	return results, nil
}
