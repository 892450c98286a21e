package airbalance

// Convergence policy shared by the iterative solvers.
const (
	solver_tol_t    = 1e-4 // on temperature, degree C
	solver_tol_x    = 1e-6 // on humidity ratio, kg/kg(DA)
	solver_max_iter = 100
)

/*
Find a root of f within [a, b] by the bisection method.

    Args:
        f:       continuous function changing sign over [a, b]
        a:       lower bound of the bracket
        b:       upper bound of the bracket
        tol:     half-width of the bracket at which to stop
        maxIter: iteration cap
        field:   quantity being solved for, used in error reporting

    Returns:
        the root
*/
func find_root(f func(float64) float64, a float64, b float64, tol float64, maxIter int, field string) (float64, error) {
	if f(a)*f(b) >= 0 {
		return 0, new_calc_error(ConvergenceFailure, field,
			"no root found in the interval [%f, %f]", a, b)
	}

	var c float64
	for i := 0; i < maxIter; i++ {
		c = (a + b) / 2

		if f(c) == 0 || (b-a)/2 < tol {
			return c, nil
		}

		if f(c)*f(a) < 0 {
			b = c
		} else {
			a = c
		}
	}
	return 0, new_calc_error(ConvergenceFailure, field,
		"failed to find root within %d iterations", maxIter)
}
