package airbalance

// Direction of the CO2 change across the bed.
type CO2ChangeLabel string

const (
	CO2Release  CO2ChangeLabel = "CO2 Release"
	CO2Capture  CO2ChangeLabel = "CO2 Capture"
	CO2NoChange CO2ChangeLabel = "No Change in CO2"
)

// Balance is the mass, energy and CO2 budget between the two stations.
type Balance struct {
	MassFlow         float64        // kg/s
	EnergyFluxInlet  float64        // J/s
	EnergyFluxOutlet float64        // J/s
	CO2FlowInlet     float64        // mg/s
	CO2FlowOutlet    float64        // mg/s
	CO2Change        float64        // outlet - inlet, mg/s
	CO2Label         CO2ChangeLabel //
}

/*
Calculate the mass/energy/CO2 balance between the inlet and outlet states.

    Args:
        inlet:      moist air state at the inlet
        outlet:     moist air state at the outlet
        co2_inlet:  CO2 concentration at the inlet, ppm
        co2_outlet: CO2 concentration at the outlet, ppm
        air_flow:   volumetric air flow, L/s

    Returns:
        Balance

    Notes:
        The mass flow uses the outlet air density. The CO2 flow is the
        plain product ppm x L/s reported in mg/s: a proportional index of
        the CO2 transport, not a molar-mass-corrected mass balance.
*/
func CalcBalance(inlet MoistAirState, outlet MoistAirState, co2_inlet float64, co2_outlet float64, air_flow float64) Balance {
	// air flow, m3/s
	air_m3_s := air_flow / 1000.0

	// mass flow of moist air, kg/s
	mass_flow := outlet.AirDensity * air_m3_s

	co2_flow_inlet := get_co2_flow(co2_inlet, air_flow)
	co2_flow_outlet := get_co2_flow(co2_outlet, air_flow)
	co2_change := co2_flow_outlet - co2_flow_inlet

	return Balance{
		MassFlow:         mass_flow,
		EnergyFluxInlet:  inlet.MoistAirEnthalpy * mass_flow,
		EnergyFluxOutlet: outlet.MoistAirEnthalpy * mass_flow,
		CO2FlowInlet:     co2_flow_inlet,
		CO2FlowOutlet:    co2_flow_outlet,
		CO2Change:        co2_change,
		CO2Label:         get_co2_change_label(co2_change),
	}
}

// CO2 flow, mg/s (proportional index, see CalcBalance).
func get_co2_flow(co2_level float64, air_flow float64) float64 {
	return co2_level * air_flow
}

// Classify the sign of the CO2 change.
func get_co2_change_label(co2_change float64) CO2ChangeLabel {
	if co2_change > 0.0 {
		return CO2Release
	} else if co2_change < 0.0 {
		return CO2Capture
	}
	return CO2NoChange
}
