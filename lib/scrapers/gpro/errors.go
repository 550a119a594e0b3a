package gpro

import "fmt"

// ErrAuthentication reports that login did not yield an authenticated
// session. It is fatal for the whole session lifetime.
var ErrAuthentication = fmt.Errorf("login did not yield an authenticated session")

// InvalidCoordinateError reports a partially specified coordinate: exactly
// one of (season, race) was given. It is raised before any network call.
type InvalidCoordinateError struct {
	Season int
	Race   int
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf(
		"season and race must either both be provided or neither, got season=%d race=%d",
		e.Season, e.Race,
	)
}

// SectionNotFoundError reports a missing structural landmark. This signals
// schema drift or an unsupported report variant, not a missing race.
type SectionNotFoundError struct {
	Label string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("report section %q not found", e.Label)
}

// RowNotFoundError reports a section that exists but lacks an expected row.
type RowNotFoundError struct {
	Label string
	Row   int
}

func (e *RowNotFoundError) Error() string {
	return fmt.Sprintf("row %d of report section %q not found", e.Row, e.Label)
}

// NotRacedError reports that the account did not participate in the
// addressed race. This is the single expected, recoverable condition: the
// history walker treats it as "skip".
type NotRacedError struct {
	Coordinate Coordinate
}

func (e *NotRacedError) Error() string {
	return fmt.Sprintf(
		"did not participate in season %d, race %d",
		e.Coordinate.Season, e.Coordinate.Race,
	)
}
