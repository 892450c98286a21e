package airbalance

import "math"

// Standard atmospheric pressure at sea level, Pa
const p_atm_standard = 101325.0

// Valid altitude range of the standard atmosphere relation, m
const (
	altitude_min = -5000.0
	altitude_max = 11000.0
)

/*
Calculate the standard atmospheric pressure at a given altitude.

    Args:
        altitude: geopotential altitude above sea level, m

    Returns:
        atmospheric pressure, Pa

    Notes:
        ICAO standard atmosphere (troposphere), as given in
        ASHRAE Handbook - Fundamentals, chapter 1, equation (3):
        p = 101325 * (1 - 2.25577e-5 * Z)^5.2559
*/
func PressureFromAltitude(altitude float64) (float64, error) {
	if altitude < altitude_min || altitude > altitude_max {
		return 0.0, new_calc_error(AltitudeOutOfRange, "altitude",
			"%f m is outside [%f, %f]", altitude, altitude_min, altitude_max)
	}

	return p_atm_standard * math.Pow(1.0-2.25577e-05*altitude, 5.2559), nil
}
