package airbalance

import "math"

/*
MoistAirState is the full thermodynamic state of moist air at one
measurement station. It is created once by PropertiesFromWetBulb and
never mutated.
*/
type MoistAirState struct {
	DryBulb            float64 // dry bulb temperature, degree C
	Pressure           float64 // atmospheric pressure, Pa
	HumidityRatio      float64 // kg/kg(DA)
	WetBulb            float64 // wet bulb temperature, degree C
	DewPoint           float64 // dew point temperature, degree C
	RelativeHumidity   float64 // %
	VaporPressure      float64 // partial pressure of water vapour, Pa
	MoistAirEnthalpy   float64 // J/kg(DA)
	DryAirEnthalpy     float64 // J/kg(DA)
	SpecificVolume     float64 // m3/kg(DA)
	AirDensity         float64 // kg/m3
	DegreeOfSaturation float64 // -
}

// StateField names one entry of Vector and of the report's change block.
type StateField struct {
	Name string
	Unit string
}

var StateFields = []StateField{
	{"Dry Bulb Temperature", "°C"},
	{"Wet Bulb Temperature", "°C"},
	{"Dew Point Temperature", "°C"},
	{"Relative Humidity (Calculated)", "%"},
	{"Humidity Ratio", "kg/kg"},
	{"Partial Pressure", "Pa"},
	{"Moist Air Enthalpy", "J/kg"},
	{"Dry Air Enthalpy", "J/kg"},
	{"Specific Volume", "m³/kg"},
	{"Degree of Saturation", "-"},
	{"Air Density", "kg/m³"},
}

// Vector returns the station-dependent quantities ordered as StateFields.
// Pressure is excluded: it is shared by both stations of a report.
func (s MoistAirState) Vector() []float64 {
	return []float64{
		s.DryBulb,
		s.WetBulb,
		s.DewPoint,
		s.RelativeHumidity,
		s.HumidityRatio,
		s.VaporPressure,
		s.MoistAirEnthalpy,
		s.DryAirEnthalpy,
		s.SpecificVolume,
		s.DegreeOfSaturation,
		s.AirDensity,
	}
}

/*
Calculate the full moist air state from dry bulb temperature, wet bulb
temperature and pressure.

    Args:
        theta_db: dry bulb temperature, degree C
        theta_wb: wet bulb temperature, degree C
        p:        atmospheric pressure, Pa

    Returns:
        MoistAirState

    Notes:
        The humidity ratio is recovered from the wet bulb enthalpy balance
        (the same relation WetBulb inverts), then every other quantity is
        derived from it, so the state is self-consistent: recomputing any
        derived quantity from the others reproduces it to solver tolerance.
*/
func PropertiesFromWetBulb(theta_db float64, theta_wb float64, p float64) (MoistAirState, error) {
	if p <= 0.0 {
		return MoistAirState{}, new_calc_error(InvalidInput, "pressure",
			"must be positive, got %f Pa", p)
	}

	// saturation vapour pressure at the dry bulb temperature, Pa
	p_vs, err := SaturationVaporPressure(theta_db)
	if err != nil {
		return MoistAirState{}, err
	}
	if theta_wb < t_min || theta_wb > t_max {
		return MoistAirState{}, new_calc_error(TemperatureOutOfRange, "wet bulb temperature",
			"%f degree C is outside [%f, %f]", theta_wb, t_min, t_max)
	}
	if theta_wb > theta_db {
		return MoistAirState{}, new_calc_error(InvalidInput, "wet bulb temperature",
			"%f degree C exceeds the dry bulb temperature %f degree C", theta_wb, theta_db)
	}

	// humidity ratio, kg/kg(DA), floored so the vapour pressure and dew
	// point stay defined for completely dry air
	x := math.Max(get_x_wb(theta_db, theta_wb, p), min_hum_ratio)

	// partial pressure of water vapour, Pa
	p_v := get_p_v(x, p)

	theta_dp, err := DewPoint(p_v)
	if err != nil {
		return MoistAirState{}, err
	}

	// humidity ratio of saturated air at the dry bulb temperature, kg/kg(DA)
	x_s := get_x(p_vs, p)

	v := get_specific_volume(theta_db, x, p)

	return MoistAirState{
		DryBulb:            theta_db,
		Pressure:           p,
		HumidityRatio:      x,
		WetBulb:            theta_wb,
		DewPoint:           theta_dp,
		RelativeHumidity:   get_h(p_v, p_vs),
		VaporPressure:      p_v,
		MoistAirEnthalpy:   get_moist_air_enthalpy(theta_db, x),
		DryAirEnthalpy:     get_dry_air_enthalpy(theta_db),
		SpecificVolume:     v,
		AirDensity:         get_density(x, v),
		DegreeOfSaturation: x / x_s,
	}, nil
}

/*
Calculate the moist air enthalpy.

    Args:
        theta: dry bulb temperature, degree C
        x:     humidity ratio, kg/kg(DA)

    Returns:
        moist air enthalpy, J/kg(DA)

    Notes:
        ASHRAE Handbook - Fundamentals, chapter 1, equation (30):
        h = 1.006 t + x (2501 + 1.86 t), kJ/kg(DA)
*/
func get_moist_air_enthalpy(theta float64, x float64) float64 {
	return (1.006*theta + x*(2501.0+1.86*theta)) * 1000.0
}

// Enthalpy of the dry air fraction alone, J/kg(DA).
func get_dry_air_enthalpy(theta float64) float64 {
	return 1.006 * theta * 1000.0
}

/*
Calculate the specific volume of moist air.

    Args:
        theta: dry bulb temperature, degree C
        x:     humidity ratio, kg/kg(DA)
        p:     atmospheric pressure, Pa

    Returns:
        specific volume, m3/kg(DA)

    Notes:
        ASHRAE Handbook - Fundamentals, chapter 1, equation (26):
        v = R_da T (1 + 1.607858 x) / p
*/
func get_specific_volume(theta float64, x float64, p float64) float64 {
	return r_da * (theta + 273.15) * (1.0 + 1.607858*x) / p
}

// Moist air density, kg/m3. The specific volume is per kg of dry air,
// so the moist mass (1 + x) rides on top of it.
func get_density(x float64, v float64) float64 {
	return (1.0 + x) / v
}
