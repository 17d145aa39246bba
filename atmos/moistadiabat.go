package atmos

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// Moist adiabatic ascent
//--------------------------------------

// moistStep is the fixed pressure step [Pa] of the moist-adiabat integration.
const moistStep = 1.0

// Profile holds the result of a moist-adiabat integration. Pres[i] pairs
// with Temp[i]; both slices have the same length, Pres runs from the
// starting pressure down to the final pressure, and Temp[0] is the starting
// temperature.
type Profile struct {
	Pres []float64 // Pa
	Temp []float64 // K
}

// MoistAdiabat lifts a saturated parcel adiabatically from pressure p1 [Pa]
// and temperature t1 [K] to pressure p2 [Pa], numerically integrating the
// moist-adiabatic lapse rate (Petty eq. 7.37) with classical 4th-order
// Runge-Kutta at a fixed 1 Pa step. p1 must be a larger pressure than p2,
// so the parcel ascends from p1 toward p2.
func MoistAdiabat(p1, p2, t1 float64) (*Profile, error) {
	if math.IsNaN(p1) || math.IsInf(p1, 0) || !(p2 > 0) || math.IsInf(p2, 0) || !(t1 > 0) || math.IsInf(t1, 0) {
		return nil, &DomainError{Op: "MoistAdiabat", Msg: fmt.Sprintf("inputs must be finite with p2 > 0 and t1 > 0, got p1=%g Pa, p2=%g Pa, t1=%g K", p1, p2, t1)}
	}
	if p1 <= p2 {
		return nil, &DomainError{Op: "MoistAdiabat", Msg: fmt.Sprintf("p1 must be a larger pressure than p2, got p1=%g Pa, p2=%g Pa", p1, p2)}
	}

	n := int(math.Ceil((p1-p2)/moistStep)) + 1
	prof := &Profile{
		Pres: make([]float64, 0, n),
		Temp: make([]float64, 0, n),
	}
	prof.Pres = append(prof.Pres, p1)
	prof.Temp = append(prof.Temp, t1)

	p, t := p1, t1
	for p > p2 {
		h := -moistStep
		if p+h < p2 {
			h = p2 - p // land the final step exactly on p2
		}
		k1, err := dtdp(p, t)
		if err != nil {
			return nil, err
		}
		k2, err := dtdp(p+0.5*h, t+0.5*h*k1)
		if err != nil {
			return nil, err
		}
		k3, err := dtdp(p+0.5*h, t+0.5*h*k2)
		if err != nil {
			return nil, err
		}
		k4, err := dtdp(p+h, t+h*k3)
		if err != nil {
			return nil, err
		}
		t += h * (k1/6.0 + k2/3.0 + k3/3.0 + k4/6.0)
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, &ArithmeticError{Op: "MoistAdiabat", Msg: fmt.Sprintf("temperature is not finite near p=%g Pa", p)}
		}
		p += h
		prof.Pres = append(prof.Pres, p)
		prof.Temp = append(prof.Temp, t)
	}

	logger := logging.GetLogger("atmos")
	logger.Debugf("moist adiabat: %d levels from %g Pa to %g Pa", len(prof.Pres), p1, p2)

	return prof, nil
}

// dtdp evaluates the moist-adiabatic lapse rate dT/dp [K/Pa] at pressure
// p [Pa] and temperature t [K] (Petty eq. 7.37).
func dtdp(p, t float64) (float64, error) {
	ws, err := EToW(p, SatVaporPres(t))
	if err != nil {
		return 0, err
	}
	d := (1.0 + LV0*ws/(RD*t)) /
		(1.0 + LV0*LV0*ws/(RV*CP*t*t)) *
		t / p * RD / CP
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, &ArithmeticError{Op: "MoistAdiabat", Msg: fmt.Sprintf("lapse rate is not finite at p=%g Pa, t=%g K", p, t)}
	}
	return d, nil
}
