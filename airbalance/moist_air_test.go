package airbalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Canonical end to end fixture: 25 degree C, 50 %, sea level.
func Test_PropertiesFromWetBulb_reference_state(t *testing.T) {
	p := 101325.0
	theta_wb, err := WetBulb(25.0, 50.0, p)
	assert.NoError(t, err)

	s, err := PropertiesFromWetBulb(25.0, theta_wb, p)
	assert.NoError(t, err)

	assert.InDelta(t, 0.00988, s.HumidityRatio, 1e-4)
	assert.InDelta(t, 50.0, s.RelativeHumidity, 0.05)
	assert.InDelta(t, 1584.6, s.VaporPressure, 20.0)
	assert.InDelta(t, 13.86, s.DewPoint, 0.1)
	assert.InDelta(t, 50300.0, s.MoistAirEnthalpy, 300.0)
	assert.InDelta(t, 25150.0, s.DryAirEnthalpy, 1.0)
	assert.InDelta(t, 0.858, s.SpecificVolume, 0.003)
	assert.InDelta(t, 1.177, s.AirDensity, 0.005)
	assert.InDelta(t, 0.492, s.DegreeOfSaturation, 0.005)
}

func Test_PropertiesFromWetBulb_joint_consistency(t *testing.T) {
	p := 95000.0
	for _, theta_db := range []float64{2.0, 18.0, 33.0} {
		for _, h := range []float64{15.0, 55.0, 90.0} {
			theta_wb, err := WetBulb(theta_db, h, p)
			assert.NoError(t, err)

			s, err := PropertiesFromWetBulb(theta_db, theta_wb, p)
			assert.NoError(t, err)

			// humidity ratio against its defining relation on p_v
			assert.InDelta(t, s.HumidityRatio, get_x(s.VaporPressure, p), 1e-7)

			// enthalpy from its correlation
			assert.InDelta(t, s.MoistAirEnthalpy,
				get_moist_air_enthalpy(theta_db, s.HumidityRatio), 1e-6)

			// density consistent with specific volume and moist mass
			assert.InDelta(t, 1.0+s.HumidityRatio,
				s.AirDensity*s.SpecificVolume, 1e-9)

			// dew point lies back on the saturation curve
			assert.InEpsilon(t, s.VaporPressure, get_p_vs(s.DewPoint), 1e-3)

			// wet bulb energy balance reproduces the humidity ratio
			assert.InDelta(t, s.HumidityRatio, get_x_wb(theta_db, theta_wb, p), 1e-12)

			// temperature ordering: dew point <= wet bulb <= dry bulb
			assert.LessOrEqual(t, s.DewPoint, s.WetBulb+solver_tol_t)
			assert.LessOrEqual(t, s.WetBulb, s.DryBulb)
		}
	}
}

func Test_PropertiesFromWetBulb_invalid_input(t *testing.T) {
	_, err := PropertiesFromWetBulb(25.0, 17.9, 0.0)
	assert.Equal(t, InvalidInput, Kind(err))

	// wet bulb above dry bulb is physically impossible
	_, err = PropertiesFromWetBulb(25.0, 26.0, 101325.0)
	assert.Equal(t, InvalidInput, Kind(err))

	_, err = PropertiesFromWetBulb(250.0, 20.0, 101325.0)
	assert.Equal(t, TemperatureOutOfRange, Kind(err))

	_, err = PropertiesFromWetBulb(25.0, -150.0, 101325.0)
	assert.Equal(t, TemperatureOutOfRange, Kind(err))
}

func Test_MoistAirState_vector_matches_fields(t *testing.T) {
	theta_wb, _ := WetBulb(25.0, 50.0, 101325.0)
	s, err := PropertiesFromWetBulb(25.0, theta_wb, 101325.0)
	assert.NoError(t, err)

	v := s.Vector()
	assert.Equal(t, len(StateFields), len(v))
	assert.Equal(t, s.DryBulb, v[0])
	assert.Equal(t, s.AirDensity, v[len(v)-1])
}
