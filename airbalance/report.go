package airbalance

import "gonum.org/v1/gonum/floats"

// StationReading is one raw measurement set at a station.
type StationReading struct {
	DryBulb          float64 // dry bulb temperature, degree C
	RelativeHumidity float64 // relative humidity, %
	CO2              float64 // CO2 concentration, ppm
}

/*
ComparisonReport is the complete result of one balance computation.
StateChanges holds outlet minus inlet for every entry of StateFields.
*/
type ComparisonReport struct {
	Pressure       float64 // atmospheric pressure at the site, Pa
	InletReading   StationReading
	OutletReading  StationReading
	Inlet          MoistAirState
	Outlet         MoistAirState
	Geometry       DerivedGeometry
	Balance        Balance
	StateChanges   []float64 // outlet - inlet, ordered as StateFields
	CO2LevelChange float64   // outlet - inlet, ppm
}

// StateChange returns the outlet-inlet change of the named StateFields
// entry, or 0 if the name is unknown.
func (r *ComparisonReport) StateChange(name string) float64 {
	for i, f := range StateFields {
		if f.Name == name {
			return r.StateChanges[i]
		}
	}
	return 0.0
}

/*
Build one comparison report from two station readings and the process
geometry.

    Args:
        inlet:  raw readings at the inlet station
        outlet: raw readings at the outlet station
        g:      site and bed geometry

    Returns:
        ComparisonReport

    Notes:
        The pressure is computed once from the site altitude and shared by
        both stations. The first failing step aborts the whole report; a
        partially filled report is never returned.
*/
func BuildReport(inlet StationReading, outlet StationReading, g ProcessGeometry) (*ComparisonReport, error) {
	p, err := PressureFromAltitude(g.Altitude)
	if err != nil {
		return nil, err
	}

	geom, err := DeriveGeometry(g)
	if err != nil {
		return nil, err
	}

	inlet_state, err := state_for_station("inlet", inlet, p)
	if err != nil {
		return nil, err
	}
	outlet_state, err := state_for_station("outlet", outlet, p)
	if err != nil {
		return nil, err
	}

	balance := CalcBalance(inlet_state, outlet_state, inlet.CO2, outlet.CO2, g.Airflow)

	changes := make([]float64, len(StateFields))
	floats.SubTo(changes, outlet_state.Vector(), inlet_state.Vector())

	return &ComparisonReport{
		Pressure:       p,
		InletReading:   inlet,
		OutletReading:  outlet,
		Inlet:          inlet_state,
		Outlet:         outlet_state,
		Geometry:       geom,
		Balance:        balance,
		StateChanges:   changes,
		CO2LevelChange: outlet.CO2 - inlet.CO2,
	}, nil
}

// Full moist air state of one station at the shared site pressure.
func state_for_station(station string, r StationReading, p float64) (MoistAirState, error) {
	theta_wb, err := WetBulb(r.DryBulb, r.RelativeHumidity, p)
	if err != nil {
		return MoistAirState{}, prefix_station(err, station)
	}

	state, err := PropertiesFromWetBulb(r.DryBulb, theta_wb, p)
	if err != nil {
		return MoistAirState{}, prefix_station(err, station)
	}
	return state, nil
}

// Prepend the station name to the failing field so the caller can tell
// the two readings apart.
func prefix_station(err error, station string) error {
	if ce, ok := err.(*CalcError); ok {
		return &CalcError{Kind: ce.Kind, Field: station + " " + ce.Field, Msg: ce.Msg}
	}
	return err
}
