package atmos

import (
	"fmt"
	"math"
)

//--------------------------------------
// Basic thermodynamic relations
//--------------------------------------

// Hydrostatic returns the thickness [m] of the layer between pressure levels
// p1 (layer bottom) and p2 (layer top) [Pa] given the mean layer virtual
// temperature tbar [K], via the hypsometric equation. The pressure at the
// layer top must not exceed the pressure at the bottom.
func Hydrostatic(p1, p2, tbar float64) (float64, error) {
	if p1 < p2 {
		return 0, &DomainError{Op: "Hydrostatic", Msg: fmt.Sprintf("pressure at layer top (%g Pa) must not exceed pressure at layer bottom (%g Pa)", p2, p1)}
	}
	h := RD * tbar / G * math.Log(p1/p2)
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return 0, &ArithmeticError{Op: "Hydrostatic", Msg: fmt.Sprintf("thickness is not finite for p1=%g Pa, p2=%g Pa, tbar=%g K", p1, p2, tbar)}
	}
	return h, nil
}

// Poisson returns the final temperature [K] of a parcel starting at pressure
// p1 [Pa] and temperature temp [K] after a dry adiabatic ascent or descent
// to pressure p2 [Pa].
func Poisson(p1, p2, temp float64) float64 {
	return temp * math.Pow(p2/p1, RD/CP)
}

// PotTemp returns the potential temperature [K] of a parcel at pressure
// pres [Pa] and temperature temp [K], referenced to PRef.
func PotTemp(pres, temp float64) float64 {
	return Poisson(pres, PRef, temp)
}

// VirtTemp returns the virtual temperature [K] for temperature temp [K] and
// mixing ratio mixr [kg/kg].
func VirtTemp(temp, mixr float64) float64 {
	return (1.0 + (RV/RD-1.0)*(mixr/(1.0+mixr))) * temp
}

// RelHumidity returns the relative humidity as a fraction given dewpoint
// dtemp [K] and temperature temp [K].
func RelHumidity(dtemp, temp float64) float64 {
	return SatVaporPres(dtemp) / SatVaporPres(temp)
}
