package gpro

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"gproassist/lib/coerce"
	"gproassist/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Structural landmarks of the race analysis report. The layout is pure
// convention, so every header label and row index lives here: a layout
// change on the site means editing this block, not the extractors.
const (
	markerIdentity = "block"

	headerSetups       = "Setups used"
	headerDriver       = "Driver statistics"
	headerCarParts     = "Car parts level & wear"
	headerWeather      = "Sessions weather"
	headerQualify1     = "Qualify 1"
	headerQualify2     = "Qualify 2"
	headerPractice     = "Practice laps"
	headerRisks        = "Risks used"
	headerEnergy       = "Driver energy"
	headerCCP          = "Car character points"
	headerTyreSupplier = "Tyre supplier"
	headerSummary      = "Race summary"
	headerPitStops     = "Pit stops"
	headerProblems     = "Technical problems"
	headerOvertaking   = "Overtaking"
	headerFinances     = "Finances"
	headerLapChart     = "Lap by lap"

	// data starts on the third row of a section: the first row is the
	// section header, the second the column labels
	firstDataRow = 3
)

var (
	trackIdRegex  = regexp.MustCompile(`id=(\d+)`)
	identityRegex = regexp.MustCompile(`Season (\d+) - Race (\d+) \((.+?)\)`)
)

func extractIdentity(doc *goquery.Document, data *RaceAnalysis) error {
	block, err := sectionByMarker(doc, markerIdentity, 0)
	if err != nil {
		return err
	}

	anchor := block.Find("a[href*='TrackDetails.asp']").First()
	if anchor.Length() == 0 {
		return &SectionNotFoundError{Label: "track link"}
	}
	data.TrackName = textutil.CleanCell(anchor.Text())

	href := anchor.AttrOr("href", "")
	groups := trackIdRegex.FindStringSubmatch(href)
	if groups == nil {
		return &coerce.CoercionError{Text: href, Kind: "track id"}
	}
	data.TrackID = groups[1]

	heading := identityRegex.FindStringSubmatch(textutil.CleanCell(block.Text()))
	if heading == nil {
		return &SectionNotFoundError{Label: "season/race heading"}
	}
	if data.Season, err = coerce.Int(heading[1]); err != nil {
		return err
	}
	if data.Race, err = coerce.Int(heading[2]); err != nil {
		return err
	}
	data.Group = heading[3]
	return nil
}

// extractSetups reads the three session setups: qualifying 1, qualifying 2
// and the race, in that row order.
func extractSetups(doc *goquery.Document) (q1, q2, race *Setup, err error) {
	section, err := sectionByHeader(doc, headerSetups)
	if err != nil {
		return nil, nil, nil, err
	}

	var setups [3]*Setup
	for i := range setups {
		cells, err := rowCells(section, headerSetups, firstDataRow+i)
		if err != nil {
			return nil, nil, nil, err
		}
		setups[i], err = setupFromCells(cells)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return setups[0], setups[1], setups[2], nil
}

// setupFromCells expects a session label, the six component levels and
// the tyre compound, in that cell order.
func setupFromCells(cells []string) (*Setup, error) {
	if len(cells) != 8 {
		return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "setup row"}
	}
	setup := &Setup{Tyre: cells[7]}
	targets := []*int{
		&setup.FrontWing,
		&setup.RearWing,
		&setup.Engine,
		&setup.Brakes,
		&setup.Gearbox,
		&setup.Suspension,
	}
	for i, target := range targets {
		value, err := coerce.Int(cells[i+1])
		if err != nil {
			return nil, err
		}
		*target = value
	}
	return setup, nil
}

// extractDriver reads the driver's absolute attributes and, when the
// report carries one, the change row since the previous race. A missing
// change row is the one structural miss treated as "optional field
// absent" rather than schema drift.
func extractDriver(doc *goquery.Document) (stats, change *Driver, err error) {
	section, err := sectionByHeader(doc, headerDriver)
	if err != nil {
		return nil, nil, err
	}

	cells, err := rowCells(section, headerDriver, firstDataRow)
	if err != nil {
		return nil, nil, err
	}
	stats, err = driverFromCells(cells)
	if err != nil {
		return nil, nil, err
	}

	changeCells, err := rowCells(section, headerDriver, firstDataRow+1)
	if err != nil {
		var rnf *RowNotFoundError
		if errors.As(err, &rnf) {
			return stats, nil, nil
		}
		return nil, nil, err
	}
	change, err = driverFromCells(changeCells)
	if err != nil {
		return nil, nil, err
	}
	return stats, change, nil
}

func driverFromCells(cells []string) (*Driver, error) {
	if len(cells) != 12 {
		return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "driver row"}
	}
	driver := &Driver{Name: cells[0]}
	targets := []*int{
		&driver.OA,
		&driver.Concentration,
		&driver.Talent,
		&driver.Aggressiveness,
		&driver.Experience,
		&driver.TechInsight,
		&driver.Stamina,
		&driver.Charisma,
		&driver.Motivation,
		&driver.Reputation,
		&driver.Weight,
	}
	for i, target := range targets {
		value, err := coerce.Int(cells[i+1])
		if err != nil {
			return nil, err
		}
		*target = value
	}
	return driver, nil
}

// extractCarParts reads the component level row and the wear rows at race
// start and finish. Wear cells carry a percent sign.
func extractCarParts(doc *goquery.Document) (levels, wearStart, wearFinish *CarParts, err error) {
	section, err := sectionByHeader(doc, headerCarParts)
	if err != nil {
		return nil, nil, nil, err
	}

	var parts [3]*CarParts
	for i := range parts {
		cells, err := rowCells(section, headerCarParts, firstDataRow+i)
		if err != nil {
			return nil, nil, nil, err
		}
		parts[i], err = carPartsFromCells(cells)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return parts[0], parts[1], parts[2], nil
}

func carPartsFromCells(cells []string) (*CarParts, error) {
	if len(cells) != 12 {
		return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "car parts row"}
	}
	parts := &CarParts{}
	targets := []*int{
		&parts.Chassis,
		&parts.Engine,
		&parts.FrontWing,
		&parts.RearWing,
		&parts.Underbody,
		&parts.Sidepods,
		&parts.Cooling,
		&parts.Gearbox,
		&parts.Brakes,
		&parts.Suspension,
		&parts.Electronics,
	}
	// the first cell is the row label
	for i, target := range targets {
		value, err := coerce.Int(cells[i+1])
		if err != nil {
			return nil, err
		}
		*target = value
	}
	return parts, nil
}

var (
	sessionTempRegex      = regexp.MustCompile(`Temp: (-?\d+)`)
	sessionHumidityRegex  = regexp.MustCompile(`Humidity: (\d+)%`)
	forecastTempRegex     = regexp.MustCompile(`Temp: (-?\d+)°(?: - (-?\d+)°)?`)
	forecastHumidityRegex = regexp.MustCompile(`Humidity: (\d+)%(?: - (\d+)%)?`)
	forecastRainRegex     = regexp.MustCompile(`Rain probability: (\d+)%(?: - (\d+)%)?`)
)

type sessionWeather struct {
	condition   string
	temperature int
	humidity    int
}

// extractWeather reads the observed conditions of both qualifying
// sessions and the four race forecast windows, two per forecast row.
func extractWeather(doc *goquery.Document) ([2]sessionWeather, [4]WeatherForecast, error) {
	var sessions [2]sessionWeather
	var forecasts [4]WeatherForecast

	section, err := sectionByHeader(doc, headerWeather)
	if err != nil {
		return sessions, forecasts, err
	}

	sessionRow, err := row(section, headerWeather, 2)
	if err != nil {
		return sessions, forecasts, err
	}
	sessionCells := sessionRow.Find("td")
	if sessionCells.Length() < 2 {
		return sessions, forecasts, &RowNotFoundError{Label: headerWeather, Row: 2}
	}
	for i := 0; i < 2; i++ {
		cell := sessionCells.Eq(i)
		text := textutil.CleanCell(cell.Text())

		// the human-readable condition only exists as the icon title
		condition := cell.Find("img").AttrOr("title", "")

		temperature, _, err := coerce.Range(text, sessionTempRegex)
		if err != nil {
			return sessions, forecasts, err
		}
		humidity, _, err := coerce.Range(text, sessionHumidityRegex)
		if err != nil {
			return sessions, forecasts, err
		}
		sessions[i] = sessionWeather{
			condition:   condition,
			temperature: temperature,
			humidity:    humidity,
		}
	}

	for i := 0; i < 4; i++ {
		forecastRow, err := row(section, headerWeather, 3+i/2)
		if err != nil {
			return sessions, forecasts, err
		}
		cells := forecastRow.Find("td")
		if cells.Length() < 2 {
			return sessions, forecasts, &RowNotFoundError{Label: headerWeather, Row: 3 + i/2}
		}
		text := textutil.CleanCell(cells.Eq(i % 2).Text())

		forecast := WeatherForecast{}
		if forecast.TempMin, forecast.TempMax, err = coerce.Range(text, forecastTempRegex); err != nil {
			return sessions, forecasts, err
		}
		if forecast.HumidityMin, forecast.HumidityMax, err = coerce.Range(text, forecastHumidityRegex); err != nil {
			return sessions, forecasts, err
		}
		if forecast.RainMin, forecast.RainMax, err = coerce.Range(text, forecastRainRegex); err != nil {
			return sessions, forecasts, err
		}
		forecasts[i] = forecast
	}

	return sessions, forecasts, nil
}

// extractQualifyingDetail reads the lap time, fuel load and risk setting
// of one qualifying session.
func extractQualifyingDetail(doc *goquery.Document, label string) (lapTime time.Duration, fuel int, risk string, err error) {
	section, err := sectionByHeader(doc, label)
	if err != nil {
		return 0, 0, "", err
	}
	cells, err := rowCells(section, label, firstDataRow)
	if err != nil {
		return 0, 0, "", err
	}
	if len(cells) != 3 {
		return 0, 0, "", &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "qualifying row"}
	}
	if lapTime, err = coerce.Duration(cells[0]); err != nil {
		return 0, 0, "", err
	}
	if fuel, err = coerce.Int(cells[1]); err != nil {
		return 0, 0, "", err
	}
	return lapTime, fuel, cells[2], nil
}
