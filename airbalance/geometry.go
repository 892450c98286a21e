package airbalance

import "math"

/*
ProcessGeometry is the fixed-bed and site description of one run. All
values except the altitude must be positive.
*/
type ProcessGeometry struct {
	Altitude        float64 // site altitude, m
	Airflow         float64 // volumetric air flow, L/s
	ResinDiameter   float64 // resin bead diameter, mm
	ResinMass       float64 // resin mass, kg
	ResinDensity    float64 // resin density, kg/m3
	ChamberDiameter float64 // chamber inner diameter, mm
}

// DerivedGeometry holds the quantities computed from ProcessGeometry.
type DerivedGeometry struct {
	ChamberArea      float64 // chamber cross section, m2
	GasVelocity      float64 // superficial gas velocity in the chamber, m/s
	BeadSurfaceArea  float64 // surface area of a single bead, m2
	BeadVolume       float64 // volume of a single bead, m3
	TotalResinVolume float64 // m3
	BeadCount        float64 // estimated number of beads, -
	TotalSurfaceArea float64 // estimated total resin surface, m2
}

/*
Derive the chamber and resin bed quantities from the raw geometry.

    Args:
        g: raw process geometry

    Returns:
        DerivedGeometry

    Notes:
        The bead count treats the bed as uniform spheres of the nominal
        diameter; it is an approximation, not a measured count, and so is
        the total surface area built from it.
*/
func DeriveGeometry(g ProcessGeometry) (DerivedGeometry, error) {
	if g.Airflow <= 0.0 {
		return DerivedGeometry{}, new_calc_error(InvalidInput, "air flow",
			"must be positive, got %f L/s", g.Airflow)
	}
	if g.ResinDiameter <= 0.0 {
		return DerivedGeometry{}, new_calc_error(InvalidInput, "resin diameter",
			"must be positive, got %f mm", g.ResinDiameter)
	}
	if g.ResinMass <= 0.0 {
		return DerivedGeometry{}, new_calc_error(InvalidInput, "resin mass",
			"must be positive, got %f kg", g.ResinMass)
	}
	if g.ResinDensity <= 0.0 {
		return DerivedGeometry{}, new_calc_error(InvalidInput, "resin density",
			"must be positive, got %f kg/m3", g.ResinDensity)
	}
	if g.ChamberDiameter <= 0.0 {
		return DerivedGeometry{}, new_calc_error(InvalidInput, "chamber diameter",
			"must be positive, got %f mm", g.ChamberDiameter)
	}

	// chamber cross section, m2
	c_radius := g.ChamberDiameter / 1000.0 / 2.0
	chamber_area := math.Pi * c_radius * c_radius

	// superficial gas velocity, m/s
	gas_velocity := g.Airflow / 1000.0 / chamber_area

	// single bead, m2 and m3
	d := g.ResinDiameter / 1000.0
	r := d / 2.0
	bead_surface_area := math.Pi * d * d
	bead_volume := 4.0 / 3.0 * math.Pi * r * r * r

	// bed totals
	total_resin_volume := g.ResinMass / g.ResinDensity
	bead_count := total_resin_volume / bead_volume

	return DerivedGeometry{
		ChamberArea:      chamber_area,
		GasVelocity:      gas_velocity,
		BeadSurfaceArea:  bead_surface_area,
		BeadVolume:       bead_volume,
		TotalResinVolume: total_resin_volume,
		BeadCount:        bead_count,
		TotalSurfaceArea: bead_count * bead_surface_area,
	}, nil
}
