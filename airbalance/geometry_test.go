package airbalance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DeriveGeometry(t *testing.T) {
	g := ProcessGeometry{
		Altitude:        0.0,
		Airflow:         100.0,
		ResinDiameter:   1.0,
		ResinMass:       1.0,
		ResinDensity:    1000.0,
		ChamberDiameter: 200.0,
	}

	d, err := DeriveGeometry(g)
	assert.NoError(t, err)

	// chamber: 200 mm diameter -> 0.1 m radius
	assert.InDelta(t, math.Pi*0.01, d.ChamberArea, 1e-12)
	assert.InDelta(t, 0.1/(math.Pi*0.01), d.GasVelocity, 1e-12)
	assert.InDelta(t, 3.1831, d.GasVelocity, 1e-4)

	// 1 kg of resin at 1000 kg/m3 occupies one litre
	assert.InDelta(t, 0.001, d.TotalResinVolume, 1e-15)

	// uniform 1 mm spheres
	bead_volume := 4.0 / 3.0 * math.Pi * math.Pow(0.0005, 3)
	assert.InEpsilon(t, bead_volume, d.BeadVolume, 1e-12)
	assert.InEpsilon(t, 0.001/bead_volume, d.BeadCount, 1e-12)
	assert.InEpsilon(t, math.Pi*1e-6, d.BeadSurfaceArea, 1e-12)

	// specific surface of a sphere bed: 6 V / d
	assert.InDelta(t, 6.0, d.TotalSurfaceArea, 1e-9)
}

func Test_DeriveGeometry_invalid_input(t *testing.T) {
	base := ProcessGeometry{
		Altitude:        0.0,
		Airflow:         100.0,
		ResinDiameter:   1.0,
		ResinMass:       1.0,
		ResinDensity:    1000.0,
		ChamberDiameter: 200.0,
	}

	cases := []func(g *ProcessGeometry){
		func(g *ProcessGeometry) { g.Airflow = 0.0 },
		func(g *ProcessGeometry) { g.ResinDiameter = -1.0 },
		func(g *ProcessGeometry) { g.ResinMass = 0.0 },
		func(g *ProcessGeometry) { g.ResinDensity = -5.0 },
		func(g *ProcessGeometry) { g.ChamberDiameter = 0.0 },
	}

	for i, mutate := range cases {
		g := base
		mutate(&g)
		_, err := DeriveGeometry(g)
		assert.Error(t, err, "case %d", i)
		assert.Equal(t, InvalidInput, Kind(err), "case %d", i)
	}
}
