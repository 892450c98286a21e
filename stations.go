package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"air_balance_calc/airbalance"
)

// StationRow is one line of the station readings CSV. The measurement
// columns are read as strings so a blank or non-numeric cell becomes an
// explicit error instead of a silent zero.
type StationRow struct {
	Station          string `csv:"station"`
	DryBulb          string `csv:"dry_bulb_c"`
	RelativeHumidity string `csv:"relative_humidity_pct"`
	CO2              string `csv:"co2_ppm"`
}

/*
Read the inlet and outlet station readings from a CSV file.

The file carries a header line and exactly one line per station:

	station,dry_bulb_c,relative_humidity_pct,co2_ppm
	inlet,25.0,50.0,420
	outlet,22.1,63.5,285
*/
func read_stations(path string) (inlet airbalance.StationReading, outlet airbalance.StationReading, err error) {
	file, err := os.Open(path)
	if err != nil {
		return inlet, outlet, err
	}
	defer file.Close()

	var rows []*StationRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return inlet, outlet, fmt.Errorf("%s: %w", path, err)
	}

	found := map[string]bool{}
	for _, row := range rows {
		r, err := parse_station_row(row)
		if err != nil {
			return inlet, outlet, err
		}
		switch row.Station {
		case "inlet":
			inlet = r
		case "outlet":
			outlet = r
		default:
			return inlet, outlet, fmt.Errorf("%s: unknown station %q (want inlet or outlet)", path, row.Station)
		}
		found[row.Station] = true
	}
	if !found["inlet"] || !found["outlet"] {
		return inlet, outlet, fmt.Errorf("%s: needs one inlet row and one outlet row", path)
	}

	return inlet, outlet, nil
}

func parse_station_row(row *StationRow) (airbalance.StationReading, error) {
	var r airbalance.StationReading
	var err error

	if r.DryBulb, err = parse_cell(row.Station, "dry_bulb_c", row.DryBulb); err != nil {
		return r, err
	}
	if r.RelativeHumidity, err = parse_cell(row.Station, "relative_humidity_pct", row.RelativeHumidity); err != nil {
		return r, err
	}
	if r.CO2, err = parse_cell(row.Station, "co2_ppm", row.CO2); err != nil {
		return r, err
	}

	return r, nil
}

func parse_cell(station string, column string, cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, &airbalance.CalcError{
			Kind:  airbalance.InvalidInput,
			Field: station + " " + column,
			Msg:   fmt.Sprintf("cell %q is not numeric", cell),
		}
	}
	return v, nil
}
