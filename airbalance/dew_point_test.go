package airbalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DewPoint_inverts_saturation_curve(t *testing.T) {
	for _, theta := range []float64{-40.0, -20.0, -5.0, 0.5, 10.0, 25.0, 60.0, 150.0} {
		p_v := get_p_vs(theta)
		theta_dp, err := DewPoint(p_v)
		assert.NoError(t, err)
		assert.InDelta(t, theta, theta_dp, 1e-3, "theta = %f", theta)
	}
}

func Test_DewPoint_invalid_input(t *testing.T) {
	for _, p_v := range []float64{0.0, -100.0} {
		_, err := DewPoint(p_v)
		assert.Error(t, err)
		assert.Equal(t, InvalidInput, Kind(err))
	}
}

func Test_DewPoint_unbracketable(t *testing.T) {
	// beyond the saturation pressure at the domain's upper edge
	_, err := DewPoint(1e8)
	assert.Error(t, err)
	assert.Equal(t, ConvergenceFailure, Kind(err))
}
