package airbalance

import (
	"math"
)

// Ratio of the molecular mass of water vapour to that of dry air.
const mass_ratio_h2o_air = 0.621945

// Gas constant of dry air, J/(kg K)
const r_da = 287.042

// Smallest humidity ratio handled by the solvers, kg/kg(DA).
// Keeps the vapour pressure positive so that the dew point stays defined
// even for bone-dry input air.
const min_hum_ratio = 1e-7

// Valid dry bulb temperature range of the saturation correlation, degree C.
const (
	t_min = -100.0
	t_max = 200.0
)

/*
Calculate the saturation vapour pressure of water.

    Args:
        theta: air temperature, degree C

    Returns:
        saturation vapour pressure, Pa

    Notes:
        ASHRAE Handbook - Fundamentals, chapter 1 "Psychrometrics",
        equations (5) (over ice, below 0 degree C) and (6) (over liquid
        water, 0 degree C and above).
*/
func SaturationVaporPressure(theta float64) (float64, error) {
	if theta < t_min || theta > t_max {
		return 0.0, new_calc_error(TemperatureOutOfRange, "dry bulb temperature",
			"%f degree C is outside [%f, %f]", theta, t_min, t_max)
	}
	return get_p_vs(theta), nil
}

// Saturation vapour pressure without the domain check, Pa.
func get_p_vs(theta float64) float64 {
	// absolute temperature, K
	t := theta + 273.15

	const a1 = -5.6745359e+03
	const a2 = 6.3925247
	const a3 = -9.677843e-03
	const a4 = 6.2215701e-07
	const a5 = 2.0747825e-09
	const a6 = -9.484024e-13
	const a7 = 4.1635019
	const b1 = -5.8002206e+03
	const b2 = 1.3914993
	const b3 = -4.8640239e-02
	const b4 = 4.1764768e-05
	const b5 = -1.4452093e-08
	const b6 = 6.5459673

	var p_vs float64
	if theta >= 0.0 {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*t*t*t + b6*math.Log(t))
	} else {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*t*t*t + a6*t*t*t*t + a7*math.Log(t))
	}

	return p_vs
}

/*
Calculate the humidity ratio from the partial vapour pressure.

    Args:
        p_v: partial pressure of water vapour, Pa
        p:   atmospheric pressure, Pa

    Returns:
        humidity ratio, kg/kg(DA)
*/
func get_x(p_v float64, p float64) float64 {
	return mass_ratio_h2o_air * p_v / (p - p_v)
}

/*
Calculate the partial vapour pressure from the humidity ratio.

    Args:
        x: humidity ratio, kg/kg(DA)
        p: atmospheric pressure, Pa

    Returns:
        partial pressure of water vapour, Pa
*/
func get_p_v(x float64, p float64) float64 {
	return p * x / (mass_ratio_h2o_air + x)
}

/*
Calculate the relative humidity.

    Args:
        p_v:  partial pressure of water vapour, Pa
        p_vs: saturation vapour pressure, Pa

    Returns:
        relative humidity, %
*/
func get_h(p_v, p_vs float64) float64 {
	return p_v / p_vs * 100.0
}
