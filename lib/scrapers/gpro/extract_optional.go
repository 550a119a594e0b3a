package gpro

import (
	"errors"
	"strings"

	"gproassist/lib/coerce"

	"github.com/PuerkitoBio/goquery"
)

// The sections below only appear on some reports (older seasons and lower
// groups omit several of them), so a missing landmark yields an absent
// sub-record instead of an error. A section that is present but malformed
// still aborts the whole extraction.

// optionalSection resolves a header landmark, mapping a missing section
// to (nil, nil).
func optionalSection(doc *goquery.Document, label string) (*goquery.Selection, error) {
	section, err := sectionByHeader(doc, label)
	if err != nil {
		var nf *SectionNotFoundError
		if errors.As(err, &nf) {
			return nil, nil
		}
		return nil, err
	}
	return section, nil
}

// intoInts coerces cells into the declared targets, one per cell.
func intoInts(cells []string, kind string, targets ...*int) error {
	if len(cells) != len(targets) {
		return &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: kind}
	}
	for i, target := range targets {
		value, err := coerce.Int(cells[i])
		if err != nil {
			return err
		}
		*target = value
	}
	return nil
}

func extractRisks(doc *goquery.Document) (*RaceRisk, error) {
	section, err := optionalSection(doc, headerRisks)
	if section == nil {
		return nil, err
	}
	cells, err := rowCells(section, headerRisks, firstDataRow)
	if err != nil {
		return nil, err
	}
	risk := &RaceRisk{}
	err = intoInts(cells, "risk row", &risk.Overtake, &risk.Defend, &risk.Clear, &risk.Malfunct)
	if err != nil {
		return nil, err
	}
	return risk, nil
}

// extractEnergy reads the driver energy before and after each session:
// one row per snapshot, one column per session.
func extractEnergy(doc *goquery.Document) (*Energy, error) {
	section, err := optionalSection(doc, headerEnergy)
	if section == nil {
		return nil, err
	}

	before, err := rowCells(section, headerEnergy, firstDataRow)
	if err != nil {
		return nil, err
	}
	after, err := rowCells(section, headerEnergy, firstDataRow+1)
	if err != nil {
		return nil, err
	}

	if len(before) == 0 || len(after) == 0 {
		return nil, &coerce.CoercionError{Text: headerEnergy, Kind: "energy row"}
	}

	energy := &Energy{}
	// each row leads with its snapshot label
	err = intoInts(before[1:], "energy row", &energy.Q1Pre, &energy.Q2Pre, &energy.RacePre)
	if err != nil {
		return nil, err
	}
	err = intoInts(after[1:], "energy row", &energy.Q1Post, &energy.Q2Post, &energy.RacePost)
	if err != nil {
		return nil, err
	}
	return energy, nil
}

func extractCCP(doc *goquery.Document) (*CCP, error) {
	section, err := optionalSection(doc, headerCCP)
	if section == nil {
		return nil, err
	}
	cells, err := rowCells(section, headerCCP, firstDataRow)
	if err != nil {
		return nil, err
	}
	ccp := &CCP{}
	err = intoInts(cells, "ccp row", &ccp.Power, &ccp.Handling, &ccp.Acceleration)
	if err != nil {
		return nil, err
	}
	return ccp, nil
}

func extractTyreSupplier(doc *goquery.Document) (*TyreSupplier, error) {
	section, err := optionalSection(doc, headerTyreSupplier)
	if section == nil {
		return nil, err
	}
	cells, err := rowCells(section, headerTyreSupplier, firstDataRow)
	if err != nil {
		return nil, err
	}
	if len(cells) != 6 {
		return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "tyre supplier row"}
	}
	supplier := &TyreSupplier{Name: cells[0]}
	err = intoInts(cells[1:], "tyre supplier row",
		&supplier.PeakTemperature, &supplier.Dry, &supplier.Wet, &supplier.Durability, &supplier.Warmup)
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

// extractSummary reads the race summary numbers into the root record:
// start and finish positions, fuel figures and the tyre condition at the
// finish line.
func extractSummary(doc *goquery.Document, data *RaceAnalysis) error {
	section, err := optionalSection(doc, headerSummary)
	if section == nil {
		return err
	}
	cells, err := rowCells(section, headerSummary, firstDataRow)
	if err != nil {
		return err
	}

	var positionStart, positionFinish, fuelStart, fuelLeft, tyreCondition int
	err = intoInts(cells, "race summary row",
		&positionStart, &positionFinish, &fuelStart, &fuelLeft, &tyreCondition)
	if err != nil {
		return err
	}
	data.PositionStart = &positionStart
	data.PositionFinish = &positionFinish
	data.FuelStart = &fuelStart
	data.FuelLeftFinish = &fuelLeft
	data.TyreConditionFinish = &tyreCondition
	return nil
}

func extractPitStops(doc *goquery.Document) ([]PitStop, error) {
	section, err := optionalSection(doc, headerPitStops)
	if section == nil {
		return nil, err
	}

	var stops []PitStop
	for rowIndex := firstDataRow; ; rowIndex++ {
		cells, err := rowCells(section, headerPitStops, rowIndex)
		var rnf *RowNotFoundError
		if errors.As(err, &rnf) {
			return stops, nil
		}
		if err != nil {
			return nil, err
		}
		if len(cells) != 7 {
			return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "pit stop row"}
		}

		// the first cell numbers the stop, which the row order already
		// carries
		stop := PitStop{Reason: cells[2]}
		if stop.Lap, err = coerce.Int(cells[1]); err != nil {
			return nil, err
		}
		if stop.TyreCondition, err = coerce.Int(cells[3]); err != nil {
			return nil, err
		}
		if stop.FuelLeftPercent, err = coerce.Int(cells[4]); err != nil {
			return nil, err
		}
		if stop.FuelRefilled, err = coerce.Int(cells[5]); err != nil {
			return nil, err
		}
		if stop.Time, err = coerce.Duration(cells[6]); err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
}

func extractProblems(doc *goquery.Document) ([]TechProblem, error) {
	section, err := optionalSection(doc, headerProblems)
	if section == nil {
		return nil, err
	}

	var problems []TechProblem
	for rowIndex := firstDataRow; ; rowIndex++ {
		cells, err := rowCells(section, headerProblems, rowIndex)
		var rnf *RowNotFoundError
		if errors.As(err, &rnf) {
			return problems, nil
		}
		if err != nil {
			return nil, err
		}
		if len(cells) != 2 {
			return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "tech problem row"}
		}

		problem := TechProblem{Details: cells[1]}
		if problem.Lap, err = coerce.Int(cells[0]); err != nil {
			return nil, err
		}
		problems = append(problems, problem)
	}
}

// extractOvertaking reads the two overtaking rows: attempts initiated by
// the driver and attempts made on them.
func extractOvertaking(doc *goquery.Document) (*Overtaking, error) {
	section, err := optionalSection(doc, headerOvertaking)
	if section == nil {
		return nil, err
	}

	initiated, err := rowCells(section, headerOvertaking, firstDataRow)
	if err != nil {
		return nil, err
	}
	onYou, err := rowCells(section, headerOvertaking, firstDataRow+1)
	if err != nil {
		return nil, err
	}

	if len(initiated) == 0 || len(onYou) == 0 {
		return nil, &coerce.CoercionError{Text: headerOvertaking, Kind: "overtaking row"}
	}

	overtaking := &Overtaking{}
	err = intoInts(initiated[1:], "overtaking row",
		&overtaking.InitiatedBlocked, &overtaking.InitiatedSuccessful)
	if err != nil {
		return nil, err
	}
	err = intoInts(onYou[1:], "overtaking row",
		&overtaking.OnYouBlocked, &overtaking.OnYouSuccessful)
	if err != nil {
		return nil, err
	}
	return overtaking, nil
}

// extractFinances reads the money summary: label/value rows in a fixed
// declared order, costs negative.
func extractFinances(doc *goquery.Document) (*Finances, error) {
	section, err := optionalSection(doc, headerFinances)
	if section == nil {
		return nil, err
	}

	finances := &Finances{}
	targets := []*int{
		&finances.TotalIncome,
		&finances.RacePosition,
		&finances.QualifyingPosition,
		&finances.Sponsor,
		&finances.DriverSalary,
		&finances.StaffSalary,
		&finances.FacilityCost,
		&finances.TyreCost,
	}
	for i, target := range targets {
		cells, err := rowCells(section, headerFinances, firstDataRow+i)
		if err != nil {
			return nil, err
		}
		if len(cells) != 2 {
			return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "finances row"}
		}
		if *target, err = coerce.Int(cells[1]); err != nil {
			return nil, err
		}
	}
	return finances, nil
}

func extractLapChart(doc *goquery.Document) ([]Lap, error) {
	section, err := optionalSection(doc, headerLapChart)
	if section == nil {
		return nil, err
	}

	var laps []Lap
	for rowIndex := firstDataRow; ; rowIndex++ {
		cells, err := rowCells(section, headerLapChart, rowIndex)
		var rnf *RowNotFoundError
		if errors.As(err, &rnf) {
			return laps, nil
		}
		if err != nil {
			return nil, err
		}
		if len(cells) != 8 {
			return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "lap row"}
		}

		lap := Lap{Tyres: cells[3], Weather: cells[4], Events: cells[7]}
		if lap.Lap, err = coerce.Int(cells[0]); err != nil {
			return nil, err
		}
		if lap.Time, err = coerce.Duration(cells[1]); err != nil {
			return nil, err
		}
		if lap.Position, err = coerce.Int(cells[2]); err != nil {
			return nil, err
		}
		if lap.Temperature, err = coerce.Int(cells[5]); err != nil {
			return nil, err
		}
		if lap.Humidity, err = coerce.Int(cells[6]); err != nil {
			return nil, err
		}
		laps = append(laps, lap)
	}
}

// extractPractice reads the practice laps: timing columns, the six setup
// levels, the tyre compound and the driver's comments per lap.
func extractPractice(doc *goquery.Document) ([]PracticeLap, error) {
	section, err := optionalSection(doc, headerPractice)
	if section == nil {
		return nil, err
	}

	var laps []PracticeLap
	for rowIndex := firstDataRow; ; rowIndex++ {
		cells, err := rowCells(section, headerPractice, rowIndex)
		var rnf *RowNotFoundError
		if errors.As(err, &rnf) {
			return laps, nil
		}
		if err != nil {
			return nil, err
		}
		if len(cells) != 12 {
			return nil, &coerce.CoercionError{Text: strings.Join(cells, " | "), Kind: "practice row"}
		}

		lap := PracticeLap{Comments: cells[11]}
		if lap.LapTime, err = coerce.Duration(cells[1]); err != nil {
			return nil, err
		}
		if lap.DriverMistake, err = coerce.Duration(cells[2]); err != nil {
			return nil, err
		}
		if lap.NetTime, err = coerce.Duration(cells[3]); err != nil {
			return nil, err
		}

		// cells 4..9 are the setup levels, cell 10 the tyre: the same
		// arrangement setupFromCells expects once relabeled
		setupCells := append([]string{cells[0]}, cells[4:11]...)
		if lap.Setup, err = setupFromCells(setupCells); err != nil {
			return nil, err
		}
		laps = append(laps, lap)
	}
}
