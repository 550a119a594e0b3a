package gpro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractIdentity(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	data := &RaceAnalysis{}
	err := extractIdentity(doc, data)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "Suzuka", data.TrackName)
	require.Equal(t, "7", data.TrackID)
	require.Equal(t, 54, data.Season)
	require.Equal(t, 14, data.Race)
	require.Equal(t, "Amateur - 83", data.Group)
}

func TestExtractSetups(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	q1, q2, race, err := extractSetups(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, &Setup{
		Tyre:       "Soft",
		FrontWing:  41,
		RearWing:   37,
		Engine:     700,
		Brakes:     422,
		Gearbox:    380,
		Suspension: 512,
	}, q1)
	require.Equal(t, "Medium", q2.Tyre)
	require.Equal(t, 43, q2.FrontWing)
	require.Equal(t, "Medium", race.Tyre)
	require.Equal(t, 516, race.Suspension)
}

func TestExtractDriverWithoutChangeRow(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	stats, change, err := extractDriver(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, &Driver{
		Name:           "Jo Ramirez",
		OA:             112,
		Concentration:  160,
		Talent:         74,
		Aggressiveness: 15,
		Experience:     89,
		TechInsight:    120,
		Stamina:        77,
		Charisma:       52,
		Motivation:     95,
		Reputation:     61,
		Weight:         58,
	}, stats)
	require.Nil(t, change)
}

func TestExtractDriverWithChangeRow(t *testing.T) {
	doc := loadDoc(t, "driver_change.html")

	stats, change, err := extractDriver(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "Jo Ramirez", stats.Name)
	require.NotNil(t, change)
	require.Equal(t, 2, change.OA)
	require.Equal(t, -1, change.Aggressiveness)
	require.Equal(t, 1, change.Experience)
	require.Equal(t, -3, change.Motivation)
	require.Equal(t, 0, change.Weight)
}

func TestExtractCarParts(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	levels, wearStart, wearFinish, err := extractCarParts(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, &CarParts{
		Chassis:     7,
		Engine:      6,
		FrontWing:   8,
		RearWing:    8,
		Underbody:   7,
		Sidepods:    5,
		Cooling:     6,
		Gearbox:     7,
		Brakes:      6,
		Suspension:  8,
		Electronics: 6,
	}, levels)
	require.Equal(t, 13, wearStart.Chassis)
	require.Equal(t, 6, wearStart.Electronics)
	require.Equal(t, 29, wearFinish.Chassis)
	require.Equal(t, 15, wearFinish.Electronics)
}

func TestExtractWeather(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	sessions, forecasts, err := extractWeather(doc)
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, sessionWeather{condition: "Sunny", temperature: 19, humidity: 2}, sessions[0])
	require.Equal(t, sessionWeather{condition: "Rainy", temperature: 16, humidity: 63}, sessions[1])

	require.Equal(t, WeatherForecast{
		TempMin: 15, TempMax: 18,
		HumidityMin: 10, HumidityMax: 20,
		RainMin: 0, RainMax: 5,
	}, forecasts[0])
	require.Equal(t, WeatherForecast{
		TempMin: 16, TempMax: 19,
		HumidityMin: 12, HumidityMax: 24,
		RainMin: 5, RainMax: 10,
	}, forecasts[1])

	// open-ended ranges close to their lower bound
	require.Equal(t, 14, forecasts[2].HumidityMin)
	require.Equal(t, 14, forecasts[2].HumidityMax)
	require.Equal(t, WeatherForecast{
		TempMin: 21, TempMax: 21,
		HumidityMin: 15, HumidityMax: 30,
		RainMin: 25, RainMax: 25,
	}, forecasts[3])
}

func TestExtractQualifyingDetail(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	lapTime, fuel, risk, err := extractQualifyingDetail(doc, headerQualify1)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, time.Minute+21*time.Second+406*time.Millisecond, lapTime)
	require.Equal(t, 11, fuel)
	require.Equal(t, "Low", risk)

	lapTime, fuel, risk, err = extractQualifyingDetail(doc, headerQualify2)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, time.Minute+22*time.Second+129*time.Millisecond, lapTime)
	require.Equal(t, 13, fuel)
	require.Equal(t, "Medium", risk)
}

func TestExtractOptionalSections(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	risk, err := extractRisks(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &RaceRisk{Overtake: 40, Defend: 20, Clear: 0, Malfunct: 15}, risk)

	energy, err := extractEnergy(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &Energy{
		Q1Pre: 98, Q1Post: 95,
		Q2Pre: 93, Q2Post: 90,
		RacePre: 88, RacePost: 41,
	}, energy)

	ccp, err := extractCCP(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &CCP{Power: 55, Handling: 61, Acceleration: 48}, ccp)

	supplier, err := extractTyreSupplier(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &TyreSupplier{
		Name:            "Pipirelli",
		PeakTemperature: 18,
		Dry:             8,
		Wet:             2,
		Durability:      3,
		Warmup:          6,
	}, supplier)

	overtaking, err := extractOvertaking(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &Overtaking{
		InitiatedBlocked:    3,
		InitiatedSuccessful: 5,
		OnYouBlocked:        2,
		OnYouSuccessful:     4,
	}, overtaking)

	finances, err := extractFinances(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, &Finances{
		TotalIncome:        1431880,
		RacePosition:       450000,
		QualifyingPosition: 75000,
		Sponsor:            906880,
		DriverSalary:       -180420,
		StaffSalary:        -95000,
		FacilityCost:       -61000,
		TyreCost:           -35000,
	}, finances)
}

func TestExtractOptionalSectionsAbsent(t *testing.T) {
	// a report carrying only the driver table yields absent sub-records,
	// not errors
	doc := loadDoc(t, "driver_change.html")

	risk, err := extractRisks(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Nil(t, risk)

	stops, err := extractPitStops(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, stops)

	laps, err := extractLapChart(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Empty(t, laps)
}

func TestExtractRaceCollections(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	stops, err := extractPitStops(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []PitStop{
		{
			Lap:             22,
			Reason:          "Tyres worn out",
			TyreCondition:   34,
			FuelLeftPercent: 12,
			FuelRefilled:    45,
			Time:            24*time.Second + 705*time.Millisecond,
		},
		{
			Lap:             41,
			Reason:          "Planned stop",
			TyreCondition:   41,
			FuelLeftPercent: 18,
			FuelRefilled:    38,
			Time:            22*time.Second + 101*time.Millisecond,
		},
	}, stops)

	problems, err := extractProblems(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []TechProblem{{Lap: 17, Details: "Water leak, lost 8 seconds"}}, problems)

	laps, err := extractLapChart(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, laps, 3)
	require.Equal(t, Lap{
		Lap:         1,
		Time:        time.Minute + 31*time.Second + 406*time.Millisecond,
		Position:    12,
		Tyres:       "Medium",
		Weather:     "Sunny",
		Temperature: 19,
		Humidity:    2,
		Events:      "",
	}, laps[0])
	require.Equal(t, "Good overtake", laps[1].Events)

	practice, err := extractPractice(doc)
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, practice, 2)
	require.Equal(t, time.Minute+22*time.Second+170*time.Millisecond, practice[0].LapTime)
	require.Equal(t, 170*time.Millisecond, practice[0].DriverMistake)
	require.Equal(t, time.Minute+22*time.Second, practice[0].NetTime)
	require.Equal(t, "Car handles well", practice[0].Comments)
	require.Equal(t, &Setup{
		Tyre:       "Soft",
		FrontWing:  40,
		RearWing:   36,
		Engine:     700,
		Brakes:     420,
		Gearbox:    378,
		Suspension: 510,
	}, practice[0].Setup)
}

func TestExtractSummary(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	data := &RaceAnalysis{}
	err := extractSummary(doc, data)
	if err != nil {
		t.Fatal(err)
	}

	require.NotNil(t, data.PositionStart)
	require.Equal(t, 12, *data.PositionStart)
	require.Equal(t, 9, *data.PositionFinish)
	require.Equal(t, 64, *data.FuelStart)
	require.Equal(t, 23, *data.FuelLeftFinish)
	require.Equal(t, 45, *data.TyreConditionFinish)
}
