package main

import (
	"fmt"

	"gopkg.in/ini.v1"

	"air_balance_calc/airbalance"
)

/*
Load the site and bed geometry from an INI file:

	[site]
	altitude = 57.0   ; m
	air_flow = 100.0  ; L/s

	[resin]
	diameter = 1.0    ; mm
	mass     = 12.5   ; kg
	density  = 1070.0 ; kg/m3

	[chamber]
	diameter = 200.0  ; mm

Every key is required; a missing or non-numeric value is an error.
*/
func load_geometry(path string) (airbalance.ProcessGeometry, error) {
	file, err := ini.Load(path)
	if err != nil {
		return airbalance.ProcessGeometry{}, fmt.Errorf("geometry config: %w", err)
	}

	var g airbalance.ProcessGeometry
	for _, key := range []struct {
		section string
		name    string
		dst     *float64
	}{
		{"site", "altitude", &g.Altitude},
		{"site", "air_flow", &g.Airflow},
		{"resin", "diameter", &g.ResinDiameter},
		{"resin", "mass", &g.ResinMass},
		{"resin", "density", &g.ResinDensity},
		{"chamber", "diameter", &g.ChamberDiameter},
	} {
		sec := file.Section(key.section)
		if !sec.HasKey(key.name) {
			return airbalance.ProcessGeometry{}, fmt.Errorf("geometry config: missing [%s] %s", key.section, key.name)
		}
		v, err := sec.Key(key.name).Float64()
		if err != nil {
			return airbalance.ProcessGeometry{}, fmt.Errorf("geometry config: [%s] %s: %w", key.section, key.name, err)
		}
		*key.dst = v
	}

	return g, nil
}
