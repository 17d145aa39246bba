package atmos

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

//--------------------------------------
// Vertical layer helpers
//--------------------------------------
// Variables are assumed to vary linearly with log-pressure between adjacent
// levels.

// LayerInterp interpolates a variable to pressure pmid [Pa] between its
// values varbot at pbot [Pa] and vartop at ptop [Pa].
func LayerInterp(pbot, ptop, pmid, varbot, vartop float64) float64 {
	alpha := math.Log(pmid/pbot) / math.Log(ptop/pbot)
	return alpha*vartop + (1-alpha)*varbot
}

// LayerAverage returns the pressure-weighted average of the profile v over
// the pressure levels pres [Pa]: the trapezoidal integral of v with respect
// to pressure divided by the pressure span. pres must hold at least two
// strictly monotonic levels; the input slices are not modified.
func LayerAverage(pres, v []float64) (float64, error) {
	if len(pres) != len(v) {
		return 0, &DomainError{Op: "LayerAverage", Msg: fmt.Sprintf("both inputs must be the same shape, got %d and %d levels", len(pres), len(v))}
	}
	if len(pres) < 2 {
		return 0, &DomainError{Op: "LayerAverage", Msg: "need at least two pressure levels"}
	}

	// Trapezoidal integration wants increasing abscissae; profiles are
	// usually ordered bottom-up (decreasing pressure).
	p := append([]float64(nil), pres...)
	f := append([]float64(nil), v...)
	if p[0] > p[len(p)-1] {
		floats.Reverse(p)
		floats.Reverse(f)
	}
	for i := 1; i < len(p); i++ {
		if p[i] <= p[i-1] {
			return 0, &DomainError{Op: "LayerAverage", Msg: "pressure levels must be strictly monotonic"}
		}
	}

	return integrate.Trapezoidal(p, f) / (p[len(p)-1] - p[0]), nil
}
