package gpro

import "time"

// Coordinate addresses one race analysis report.
type Coordinate struct {
	Season int `json:"season"`
	Race   int `json:"race"`
}

// RaceAnalysis is the full telemetry extracted from one race analysis
// report. Optional sub-records are nil when their section is absent from
// the report; collection fields keep document order, which is
// chronological. A record is immutable once returned.
type RaceAnalysis struct {
	TrackName string `json:"track_name"`
	TrackID   string `json:"track_id"`
	Season    int    `json:"season"`
	Race      int    `json:"race"`
	Group     string `json:"group"`

	Practice    []PracticeLap `json:"practice,omitempty"`
	Qualifying1 Qualifying    `json:"qualifying1"`
	Qualifying2 Qualifying    `json:"qualifying2"`
	SetupRace   *Setup        `json:"setup_race,omitempty"`

	RiskRace     *RaceRisk     `json:"risk_race,omitempty"`
	DriverStats  *Driver       `json:"driver_stats,omitempty"`
	DriverChange *Driver       `json:"driver_change,omitempty"`
	Energy       *Energy       `json:"energy,omitempty"`
	CCP          *CCP          `json:"ccp,omitempty"`
	TyreSupplier *TyreSupplier `json:"tyre_supplier,omitempty"`

	PositionStart       *int `json:"position_start,omitempty"`
	PositionFinish      *int `json:"position_finish,omitempty"`
	FuelStart           *int `json:"fuel_start,omitempty"`
	FuelLeftFinish      *int `json:"fuel_left_finish,omitempty"`
	TyreConditionFinish *int `json:"tyre_condition_finish,omitempty"`

	Weather  [4]WeatherForecast `json:"weather"`
	PitStops []PitStop          `json:"pitstops,omitempty"`
	Problems []TechProblem      `json:"problems,omitempty"`

	Overtaking *Overtaking `json:"overtaking,omitempty"`
	Finances   *Finances   `json:"finances,omitempty"`

	CarPartLevels     *CarParts `json:"car_part_levels,omitempty"`
	CarPartWearStart  *CarParts `json:"car_part_wear_start,omitempty"`
	CarPartWearFinish *CarParts `json:"car_part_wear_finish,omitempty"`

	LapChart []Lap `json:"lap_chart,omitempty"`
}

// Setup is one session's car setup: six component levels plus the tyre
// compound mounted.
type Setup struct {
	Tyre       string `json:"tyre"`
	FrontWing  int    `json:"front_wing"`
	RearWing   int    `json:"rear_wing"`
	Engine     int    `json:"engine"`
	Brakes     int    `json:"brakes"`
	Gearbox    int    `json:"gearbox"`
	Suspension int    `json:"suspension"`
}

// Driver holds the eleven driver attributes, either as absolute values or
// as the signed change since the previous race.
type Driver struct {
	Name           string `json:"name"`
	OA             int    `json:"oa"`
	Concentration  int    `json:"concentration"`
	Talent         int    `json:"talent"`
	Aggressiveness int    `json:"aggressiveness"`
	Experience     int    `json:"experience"`
	TechInsight    int    `json:"technical_insight"`
	Stamina        int    `json:"stamina"`
	Charisma       int    `json:"charisma"`
	Motivation     int    `json:"motivation"`
	Reputation     int    `json:"reputation"`
	Weight         int    `json:"weight"`
}

// CarParts holds one value per car component; used for the part level and
// for wear percentages at race start and finish.
type CarParts struct {
	Chassis     int `json:"chassis"`
	Engine      int `json:"engine"`
	FrontWing   int `json:"front_wing"`
	RearWing    int `json:"rear_wing"`
	Underbody   int `json:"underbody"`
	Sidepods    int `json:"sidepods"`
	Cooling     int `json:"cooling"`
	Gearbox     int `json:"gearbox"`
	Brakes      int `json:"brakes"`
	Suspension  int `json:"suspension"`
	Electronics int `json:"electronics"`
}

// WeatherForecast is one forecast window of the race weather outlook.
// When the report omits an upper bound the range is closed to the lower
// bound.
type WeatherForecast struct {
	TempMin     int `json:"temperature_min"`
	TempMax     int `json:"temperature_max"`
	HumidityMin int `json:"humidity_min"`
	HumidityMax int `json:"humidity_max"`
	RainMin     int `json:"rain_probability_min"`
	RainMax     int `json:"rain_probability_max"`
}

type Qualifying struct {
	Setup       *Setup        `json:"setup,omitempty"`
	Fuel        int           `json:"fuel"`
	Risk        string        `json:"risk"`
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Weather     string        `json:"weather"`
	LapTime     time.Duration `json:"lap_time"`
}

type RaceRisk struct {
	Overtake int `json:"overtake"`
	Defend   int `json:"defend"`
	Clear    int `json:"clear"`
	Malfunct int `json:"malfunct"`
}

// Energy is the driver's energy before and after each session.
type Energy struct {
	Q1Pre    int `json:"q1_pre"`
	Q1Post   int `json:"q1_post"`
	Q2Pre    int `json:"q2_pre"`
	Q2Post   int `json:"q2_post"`
	RacePre  int `json:"race_pre"`
	RacePost int `json:"race_post"`
}

// CCP is the car's character points.
type CCP struct {
	Power        int `json:"power"`
	Handling     int `json:"handling"`
	Acceleration int `json:"acceleration"`
}

type TyreSupplier struct {
	Name            string `json:"name"`
	PeakTemperature int    `json:"peak_temperature"`
	Dry             int    `json:"dry"`
	Wet             int    `json:"wet"`
	Durability      int    `json:"durability"`
	Warmup          int    `json:"warmup"`
}

type PracticeLap struct {
	Setup         *Setup        `json:"setup,omitempty"`
	LapTime       time.Duration `json:"lap_time"`
	NetTime       time.Duration `json:"net_time"`
	DriverMistake time.Duration `json:"driver_mistake"`
	Comments      string        `json:"comments"`
}

type PitStop struct {
	Lap             int           `json:"lap"`
	Reason          string        `json:"reason"`
	TyreCondition   int           `json:"tyre_condition"`
	FuelLeftPercent int           `json:"fuel_left_percent"`
	FuelRefilled    int           `json:"fuel_refilled"`
	Time            time.Duration `json:"time"`
}

type TechProblem struct {
	Lap     int    `json:"lap"`
	Details string `json:"details"`
}

type Overtaking struct {
	InitiatedBlocked    int `json:"initiated_blocked"`
	InitiatedSuccessful int `json:"initiated_successful"`
	OnYouBlocked        int `json:"on_you_blocked"`
	OnYouSuccessful     int `json:"on_you_successful"`
}

// Finances is the race's money summary; costs are negative.
type Finances struct {
	TotalIncome        int `json:"total_income"`
	RacePosition       int `json:"race_position"`
	QualifyingPosition int `json:"qualifying_position"`
	Sponsor            int `json:"sponsor"`
	DriverSalary       int `json:"driver_salary"`
	StaffSalary        int `json:"staff_salary"`
	FacilityCost       int `json:"facility_cost"`
	TyreCost           int `json:"tyre_cost"`
}

// Lap is one row of the lap by lap chart.
type Lap struct {
	Lap         int           `json:"lap"`
	Time        time.Duration `json:"time"`
	Position    int           `json:"position"`
	Tyres       string        `json:"tyres"`
	Weather     string        `json:"weather"`
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Events      string        `json:"events"`
}
