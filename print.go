package main

import (
	"fmt"
	"strings"

	"air_balance_calc/airbalance"
)

// Render the comparison report as the plain text block the tool prints.
func format_report(r *airbalance.ComparisonReport, g airbalance.ProcessGeometry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Altitude: %g m\n", g.Altitude)
	fmt.Fprintf(&b, "Atmospheric Pressure: %.1f Pa\n", r.Pressure)
	fmt.Fprintf(&b, "Air Flow: %g L/s\n", g.Airflow)
	fmt.Fprintf(&b, "Air Flow: %g m³/s\n", g.Airflow/1000.0)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Chamber Diameter: %g mm\n", g.ChamberDiameter)
	fmt.Fprintf(&b, "Chamber Area: %g m²\n", r.Geometry.ChamberArea)
	fmt.Fprintf(&b, "Gas Speed in Chamber: %g m/s\n", r.Geometry.GasVelocity)
	fmt.Fprintf(&b, "Gas Speed in Chamber: %g cm/s\n", r.Geometry.GasVelocity*100.0)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Resin Diameter: %g mm\n", g.ResinDiameter)
	fmt.Fprintf(&b, "Resin Mass: %g kg\n", g.ResinMass)
	fmt.Fprintf(&b, "Resin Density: %g kg/m³\n", g.ResinDensity)
	fmt.Fprintf(&b, "Single Sphere Surface Area: %g m²\n", r.Geometry.BeadSurfaceArea)
	fmt.Fprintf(&b, "Single Sphere Volume: %g m³\n", r.Geometry.BeadVolume)
	fmt.Fprintf(&b, "Total Resin Volume: %g m³\n", r.Geometry.TotalResinVolume)
	fmt.Fprintf(&b, "Rough Number of Spheres: %g\n", r.Geometry.BeadCount)
	fmt.Fprintf(&b, "Total Surface Area: %g m²\n", r.Geometry.TotalSurfaceArea)
	fmt.Fprintf(&b, "Mass Flow: %g kg/s\n", r.Balance.MassFlow)
	fmt.Fprintln(&b)

	write_station(&b, "Inlet", r.InletReading, r.Inlet, r.Balance.CO2FlowInlet, r.Balance.EnergyFluxInlet)
	write_station(&b, "Outlet", r.OutletReading, r.Outlet, r.Balance.CO2FlowOutlet, r.Balance.EnergyFluxOutlet)

	fmt.Fprintf(&b, "Changes:\n")
	// measured readings first, then the derived state quantities
	fmt.Fprintf(&b, "Relative Humidity Change: %g %%\n",
		r.OutletReading.RelativeHumidity-r.InletReading.RelativeHumidity)
	fmt.Fprintf(&b, "CO2 Level Change: %g ppm\n", r.CO2LevelChange)
	for i, f := range airbalance.StateFields {
		fmt.Fprintf(&b, "%s Change: %g %s\n", f.Name, r.StateChanges[i], f.Unit)
	}
	fmt.Fprintf(&b, "%s: %g mg/s\n", r.Balance.CO2Label, r.Balance.CO2Change)

	return b.String()
}

func write_station(b *strings.Builder, station string, reading airbalance.StationReading, s airbalance.MoistAirState, co2_flow float64, energy_flux float64) {
	fmt.Fprintf(b, "%s Data Set:\n", station)
	fmt.Fprintf(b, "Dry Bulb Temperature: %g °C\n", s.DryBulb)
	fmt.Fprintf(b, "Relative Humidity: %g %%\n", reading.RelativeHumidity)
	fmt.Fprintf(b, "CO2 Level: %g ppm\n", reading.CO2)
	fmt.Fprintf(b, "Wet Bulb Temperature: %g °C\n", s.WetBulb)
	fmt.Fprintf(b, "Humidity Ratio: %g kg/kg\n", s.HumidityRatio)
	fmt.Fprintf(b, "Dew Point Temperature: %g °C\n", s.DewPoint)
	fmt.Fprintf(b, "Relative Humidity (Calculated): %g %%\n", s.RelativeHumidity)
	fmt.Fprintf(b, "Partial Pressure: %g Pa\n", s.VaporPressure)
	fmt.Fprintf(b, "Moist Air Enthalpy: %g J/kg\n", s.MoistAirEnthalpy)
	fmt.Fprintf(b, "Specific Volume: %g m³/kg\n", s.SpecificVolume)
	fmt.Fprintf(b, "Degree of Saturation: %g\n", s.DegreeOfSaturation)
	fmt.Fprintf(b, "Dry Air Enthalpy: %g J/kg\n", s.DryAirEnthalpy)
	fmt.Fprintf(b, "Air Density: %g kg/m³\n", s.AirDensity)
	fmt.Fprintf(b, "CO2 Flow (%s): %g mg/s\n", station, co2_flow)
	fmt.Fprintf(b, "Energy Flux: %g J/s\n", energy_flux)
	fmt.Fprintln(b)
}
