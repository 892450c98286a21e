package airbalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PressureFromAltitude(t *testing.T) {
	// sea level
	p, err := PressureFromAltitude(0.0)
	assert.NoError(t, err)
	assert.InDelta(t, 101325.0, p, 1.0)

	// ICAO standard atmosphere reference points
	p, err = PressureFromAltitude(1000.0)
	assert.NoError(t, err)
	assert.InDelta(t, 89875.0, p, 2.0)

	p, err = PressureFromAltitude(-500.0)
	assert.NoError(t, err)
	assert.InDelta(t, 107478.0, p, 2.0)

	// pressure falls monotonically with altitude
	p_low, _ := PressureFromAltitude(100.0)
	p_high, _ := PressureFromAltitude(3000.0)
	assert.Greater(t, p_low, p_high)
}

func Test_PressureFromAltitude_out_of_range(t *testing.T) {
	for _, altitude := range []float64{-5001.0, 11001.0, -1e6, 1e6} {
		_, err := PressureFromAltitude(altitude)
		assert.Error(t, err)
		assert.Equal(t, AltitudeOutOfRange, Kind(err))
	}

	// the domain edges themselves are valid
	_, err := PressureFromAltitude(-5000.0)
	assert.NoError(t, err)
	_, err = PressureFromAltitude(11000.0)
	assert.NoError(t, err)
}
