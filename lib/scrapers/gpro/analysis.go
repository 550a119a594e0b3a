package gpro

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gproassist/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const sentinelPrefix = "You did not participate in Season"

var sentinelRegex = regexp.MustCompile(`You did not participate in Season (\d+), Race (\d+)`)

// Analysis downloads and extracts one race analysis report. Passing both
// season and race as zero fetches the most recent report; passing exactly
// one is an InvalidCoordinateError before any network call. A report the
// account did not race returns a NotRacedError and caches nothing.
func (c *Client) Analysis(ctx context.Context, season, race int) (*RaceAnalysis, error) {
	ctx, span := tracer.Start(ctx, "client:Analysis")
	defer span.End()
	span.SetAttributes(attribute.Int("season", season), attribute.Int("race", race))

	if (season == 0) != (race == 0) || season < 0 || race < 0 {
		err := &InvalidCoordinateError{Season: season, Race: race}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	req := c.Http.R().SetContext(ctx)
	if season != 0 {
		req.SetQueryParam("SR", fmt.Sprintf("%d,%d", season, race))
	}
	res, err := req.Get("/RaceAnalysis.asp")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch report")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse report html")
		return nil, err
	}

	data, err := extractAnalysis(doc, season, race)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract report")
		return nil, err
	}

	// key by the coordinate the document declares about itself, which
	// only differs from the requested one when the latest report was
	// asked for
	c.cache[Coordinate{Season: data.Season, Race: data.Race}] = data
	return data, nil
}

// Cached returns the cached record for a coordinate, fetching it on a
// miss. This is the only cache read path; there is no invalidation.
func (c *Client) Cached(ctx context.Context, season, race int) (*RaceAnalysis, error) {
	if data, ok := c.cache[Coordinate{Season: season, Race: race}]; ok {
		return data, nil
	}
	return c.Analysis(ctx, season, race)
}

// checkParticipation detects the sentinel message the site renders in
// place of a report when the account sat the race out.
func checkParticipation(doc *goquery.Document, season, race int) error {
	text := textutil.CleanCell(doc.Find(".center").First().Text())
	if !strings.HasPrefix(text, sentinelPrefix) {
		return nil
	}

	coordinate := Coordinate{Season: season, Race: race}
	if groups := sentinelRegex.FindStringSubmatch(text); groups != nil {
		coordinate.Season, _ = strconv.Atoi(groups[1])
		coordinate.Race, _ = strconv.Atoi(groups[2])
	}
	return &NotRacedError{Coordinate: coordinate}
}

func extractAnalysis(doc *goquery.Document, season, race int) (*RaceAnalysis, error) {
	if err := checkParticipation(doc, season, race); err != nil {
		return nil, err
	}

	data := &RaceAnalysis{}
	if err := extractIdentity(doc, data); err != nil {
		return nil, err
	}

	var err error
	data.Qualifying1.Setup, data.Qualifying2.Setup, data.SetupRace, err = extractSetups(doc)
	if err != nil {
		return nil, err
	}

	data.DriverStats, data.DriverChange, err = extractDriver(doc)
	if err != nil {
		return nil, err
	}

	data.CarPartLevels, data.CarPartWearStart, data.CarPartWearFinish, err = extractCarParts(doc)
	if err != nil {
		return nil, err
	}

	sessions, forecasts, err := extractWeather(doc)
	if err != nil {
		return nil, err
	}
	data.Weather = forecasts
	data.Qualifying1.Weather = sessions[0].condition
	data.Qualifying1.Temperature = sessions[0].temperature
	data.Qualifying1.Humidity = sessions[0].humidity
	data.Qualifying2.Weather = sessions[1].condition
	data.Qualifying2.Temperature = sessions[1].temperature
	data.Qualifying2.Humidity = sessions[1].humidity

	data.Qualifying1.LapTime, data.Qualifying1.Fuel, data.Qualifying1.Risk, err = extractQualifyingDetail(doc, headerQualify1)
	if err != nil {
		return nil, err
	}
	data.Qualifying2.LapTime, data.Qualifying2.Fuel, data.Qualifying2.Risk, err = extractQualifyingDetail(doc, headerQualify2)
	if err != nil {
		return nil, err
	}

	if data.RiskRace, err = extractRisks(doc); err != nil {
		return nil, err
	}
	if data.Energy, err = extractEnergy(doc); err != nil {
		return nil, err
	}
	if data.CCP, err = extractCCP(doc); err != nil {
		return nil, err
	}
	if data.TyreSupplier, err = extractTyreSupplier(doc); err != nil {
		return nil, err
	}
	if err = extractSummary(doc, data); err != nil {
		return nil, err
	}
	if data.PitStops, err = extractPitStops(doc); err != nil {
		return nil, err
	}
	if data.Problems, err = extractProblems(doc); err != nil {
		return nil, err
	}
	if data.Overtaking, err = extractOvertaking(doc); err != nil {
		return nil, err
	}
	if data.Finances, err = extractFinances(doc); err != nil {
		return nil, err
	}
	if data.LapChart, err = extractLapChart(doc); err != nil {
		return nil, err
	}
	if data.Practice, err = extractPractice(doc); err != nil {
		return nil, err
	}

	return data, nil
}
