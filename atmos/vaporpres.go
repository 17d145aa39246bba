package atmos

import (
	"fmt"
	"math"
)

//--------------------------------------
// Saturation vapor pressure and humidity conversions
//--------------------------------------

// SatVaporPres returns the saturation vapor pressure [Pa] over liquid water
// at temperature temp [K], using Bolton's formula. The formula is accurate
// to 0.1% between -30 C and 35 C; inputs outside that range are accepted
// unchecked.
func SatVaporPres(temp float64) float64 {
	tc := temp - 273.15 // Kelvin -> Celsius
	return 611.2 * math.Exp(17.67*tc/(tc+243.5))
}

// Dewpoint returns the dewpoint temperature [K] for vapor pressure e [Pa],
// obtained by reversing Bolton's formula.
func Dewpoint(e float64) (float64, error) {
	if !(e > 0) {
		return 0, &ArithmeticError{Op: "Dewpoint", Msg: fmt.Sprintf("vapor pressure must be positive, got %g Pa", e)}
	}
	x := math.Log(e / 611.2)
	td := -243.5*x/(x-17.67) + 273.15
	if math.IsInf(td, 0) || math.IsNaN(td) {
		return 0, &ArithmeticError{Op: "Dewpoint", Msg: fmt.Sprintf("dewpoint is not finite for vapor pressure %g Pa", e)}
	}
	return td, nil
}

// EToW converts vapor pressure vpres [Pa] to mixing ratio [kg/kg] at total
// pressure pres [Pa] (Petty eq. 7.22).
func EToW(pres, vpres float64) (float64, error) {
	w := (RD / RV * vpres) / (pres - vpres)
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, &ArithmeticError{Op: "EToW", Msg: fmt.Sprintf("mixing ratio is not finite at pres=%g Pa, vpres=%g Pa", pres, vpres)}
	}
	return w, nil
}

// WToE converts mixing ratio mixr [kg/kg] to vapor pressure [Pa] at total
// pressure pres [Pa]. WToE is the inverse of EToW at fixed pressure.
func WToE(pres, mixr float64) (float64, error) {
	e := mixr * pres / (RD/RV + mixr)
	if math.IsInf(e, 0) || math.IsNaN(e) {
		return 0, &ArithmeticError{Op: "WToE", Msg: fmt.Sprintf("vapor pressure is not finite at pres=%g Pa, mixr=%g kg/kg", pres, mixr)}
	}
	return e, nil
}
