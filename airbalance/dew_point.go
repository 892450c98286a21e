package airbalance

/*
Calculate the dew point temperature from the partial vapour pressure.

    Args:
        p_v: partial pressure of water vapour, Pa

    Returns:
        dew point temperature, degree C

    Notes:
        Inverts the saturation vapour pressure correlation: the dew point
        is the temperature at which p_vs(theta) equals the given p_v.
        The correlation is strictly increasing over its whole domain, so
        the bracket [-100, 200] degree C is always valid for any vapour
        pressure the correlation itself can produce.
*/
func DewPoint(p_v float64) (float64, error) {
	if p_v <= 0.0 {
		return 0.0, new_calc_error(InvalidInput, "vapour pressure",
			"must be positive, got %f Pa", p_v)
	}

	f := func(theta float64) float64 {
		return get_p_vs(theta) - p_v
	}

	return find_root(f, t_min, t_max, solver_tol_t, solver_max_iter, "dew point temperature")
}
