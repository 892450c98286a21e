package airbalance

import "math"

/*
Calculate the humidity ratio of air in adiabatic-saturation equilibrium
with liquid water (or ice) at the wet bulb temperature.

    Args:
        theta_db: dry bulb temperature, degree C
        theta_wb: wet bulb temperature, degree C
        p:        atmospheric pressure, Pa

    Returns:
        humidity ratio, kg/kg(DA)

    Notes:
        ASHRAE Handbook - Fundamentals, chapter 1, equations (35) (water)
        and (37) (ice): enthalpy balance between dry air, the evaporating
        liquid/solid water, and saturated air at theta_wb. The raw balance
        is returned, negative values included: below the true
        adiabatic-saturation temperature the balance goes negative, and
        the wet bulb solver needs that sign change. Callers that feed the
        result into downstream relations floor it at min_hum_ratio.
*/
func get_x_wb(theta_db float64, theta_wb float64, p float64) float64 {
	// humidity ratio of saturated air at the wet bulb temperature, kg/kg(DA)
	x_s_wb := get_x(get_p_vs(theta_wb), p)

	if theta_wb >= 0.0 {
		return ((2501.0-2.326*theta_wb)*x_s_wb - 1.006*(theta_db-theta_wb)) /
			(2501.0 + 1.86*theta_db - 4.186*theta_wb)
	}
	return ((2830.0-0.24*theta_wb)*x_s_wb - 1.006*(theta_db-theta_wb)) /
		(2830.0 + 1.86*theta_db - 2.1*theta_wb)
}

/*
Calculate the wet bulb temperature from dry bulb temperature, relative
humidity and pressure.

    Args:
        theta_db: dry bulb temperature, degree C
        h:        relative humidity, %
        p:        atmospheric pressure, Pa

    Returns:
        wet bulb temperature, degree C

    Notes:
        The wet bulb temperature is the theta_wb <= theta_db at which the
        adiabatic-saturation humidity ratio equals the humidity ratio of
        the given air. Solved by bisection between the dew point and the
        dry bulb temperature; the bracket shrinks monotonically because
        the adiabatic-saturation humidity ratio is increasing in theta_wb.
        At h = 100 the air is already saturated and theta_wb = theta_db.
*/
func WetBulb(theta_db float64, h float64, p float64) (float64, error) {
	if h < 0.0 || h > 100.0 {
		return 0.0, new_calc_error(InvalidInput, "relative humidity",
			"must be within [0, 100] %%, got %f %%", h)
	}
	if p <= 0.0 {
		return 0.0, new_calc_error(InvalidInput, "pressure",
			"must be positive, got %f Pa", p)
	}

	p_vs, err := SaturationVaporPressure(theta_db)
	if err != nil {
		return 0.0, err
	}

	// saturated air needs no iteration
	if h == 100.0 {
		return theta_db, nil
	}

	// humidity ratio of the given air, kg/kg(DA); the bisection target
	// stays unfloored so the residual keeps its sign change even for
	// completely dry air
	p_v := h / 100.0 * p_vs
	x := get_x(p_v, p)

	// the dew point bounds the wet bulb temperature from below; the
	// floor keeps its vapour pressure positive
	theta_dp, err := DewPoint(get_p_v(math.Max(x, min_hum_ratio), p))
	if err != nil {
		return 0.0, err
	}
	if theta_dp >= theta_db {
		return theta_db, nil
	}

	inf, sup := theta_dp, theta_db
	theta_wb := (inf + sup) / 2.0

	for i := 1; sup-inf > solver_tol_t; i++ {
		if i > solver_max_iter {
			return 0.0, new_calc_error(ConvergenceFailure, "wet bulb temperature",
				"failed to converge within %d iterations", solver_max_iter)
		}

		// humidity ratio at the current wet bulb estimate, kg/kg(DA)
		x_star := get_x_wb(theta_db, theta_wb, p)

		if math.Abs(x_star-x) < solver_tol_x {
			break
		}

		if x_star > x {
			sup = theta_wb
		} else {
			inf = theta_wb
		}
		theta_wb = (inf + sup) / 2.0
	}

	return theta_wb, nil
}
