package atmos

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// Surface-layer flux statistics
//--------------------------------------
// Relationships follow Stull, "An Introduction to Boundary Layer
// Meteorology". The statistics skip NaN samples, so observation series with
// gaps can be passed directly. Input slices are never modified.

// Flux returns the kinematic eddy flux of a through the vertical wind w:
// the covariance of the deviations of a and w from their respective means.
// Both series must have the same length.
func Flux(a, w []float64) (float64, error) {
	if len(a) != len(w) {
		return 0, &DomainError{Op: "Flux", Msg: fmt.Sprintf("both inputs must be the same shape, got %d and %d samples", len(a), len(w))}
	}
	abar, err := nanMean("Flux", a)
	if err != nil {
		return 0, err
	}
	wbar, err := nanMean("Flux", w)
	if err != nil {
		return 0, err
	}

	aprime := append([]float64(nil), a...)
	floats.AddConst(-abar, aprime)
	wprime := append([]float64(nil), w...)
	floats.AddConst(-wbar, wprime)
	floats.Mul(aprime, wprime)

	return nanMean("Flux", aprime)
}

// Ustar returns the friction velocity u* [m/s] from series of zonal,
// meridional and vertical wind samples u, v, w [m/s].
func Ustar(u, v, w []float64) (float64, error) {
	uw, err := Flux(u, w)
	if err != nil {
		return 0, err
	}
	vw, err := Flux(v, w)
	if err != nil {
		return 0, err
	}
	return math.Pow(uw*uw+vw*vw, 0.25), nil
}

// Tstar returns the temperature scale t* [K] from temperature samples
// temp [K], vertical wind samples w [m/s], and friction velocity
// ustar [m/s]. Whether temp is dry-bulb, virtual or potential determines
// which temperature scale is produced.
func Tstar(temp, w []float64, ustar float64) (float64, error) {
	tw, err := Flux(temp, w)
	if err != nil {
		return 0, err
	}
	ts := -tw / ustar
	if math.IsInf(ts, 0) || math.IsNaN(ts) {
		return 0, &ArithmeticError{Op: "Tstar", Msg: fmt.Sprintf("temperature scale is not finite for ustar=%g m/s", ustar)}
	}
	return ts, nil
}

// ObukhovL returns the Obukhov length L [m] from temperature samples
// temp [K] (preferably virtual potential temperature), vertical wind samples
// w [m/s], and friction velocity ustar [m/s]. Negative L indicates unstable
// (buoyant) conditions, positive L stable conditions.
func ObukhovL(temp, w []float64, ustar float64) (float64, error) {
	tw, err := Flux(temp, w)
	if err != nil {
		return 0, err
	}
	tbar, err := nanMean("ObukhovL", temp)
	if err != nil {
		return 0, err
	}
	l := -(ustar * ustar * ustar) / (Karman * G * tw / tbar)
	if math.IsInf(l, 0) || math.IsNaN(l) {
		return 0, &ArithmeticError{Op: "ObukhovL", Msg: fmt.Sprintf("Obukhov length is not finite for ustar=%g m/s (vanishing heat flux or mean temperature)", ustar)}
	}
	return l, nil
}

// nanMean returns the mean of the non-NaN values in s, reporting an
// ArithmeticError for op when s holds no valid samples.
func nanMean(op string, s []float64) (float64, error) {
	var sum float64
	var n int
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, &ArithmeticError{Op: op, Msg: "no valid (non-NaN) samples"}
	}
	return sum / float64(n), nil
}
