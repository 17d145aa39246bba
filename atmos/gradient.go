package atmos

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// Surface-layer temperature profiles
//--------------------------------------

// Defaults for TempAtHeight.
const (
	defaultProfileStep      = 0.1  // m
	defaultProfileTolerance = 0.05 // m
)

// ProfileOptions tunes the temperature-profile integration. The zero value
// selects the defaults.
type ProfileOptions struct {
	// StepSize is the integration step [m]. Defaults to 0.1.
	StepSize float64
	// Tolerance is the stopping distance from the target height [m].
	// Defaults to 0.05.
	Tolerance float64
	// LegacyGuard reproduces the historical loop condition, which runs the
	// integration only while the running height is already within Tolerance
	// of the target: with start and target further apart than Tolerance, the
	// starting temperature is returned unchanged. New code should leave this
	// false.
	LegacyGuard bool
}

// DTDz returns the Monin-Obukhov temperature gradient dT/dz [K/m] at height
// z [m] in the surface layer, for Obukhov length l [m] and temperature scale
// tstar [K]. l <= 0 selects the unstable (buoyant) similarity branch, l > 0
// the stable branch. Whether tstar is dry-bulb, virtual, etc. determines
// which temperature gradient is produced.
func DTDz(z, l, tstar float64) float64 {
	if l <= 0 { // the buoyant case
		return tstar / (Karman * z) * 0.74 * math.Pow(1.0-9.0*z/l, -0.5)
	}
	return tstar/(Karman*z)*0.74 + 4.7*z/l
}

// TempAtHeight returns the temperature [K] at height z2 [m] given the
// temperature temp1 [K] at height z1 [m], integrating the Monin-Obukhov
// temperature gradient for Obukhov length l [m], temperature scale
// tstar [K], and friction velocity ustar [m/s]. The stability branch is
// chosen from the sign of l at every derivative evaluation.
//
// Each Runge-Kutta step uses three derivative evaluations: the midpoint
// evaluation is reused for both interior stages, trading some accuracy
// against classical RK4 for one fewer evaluation per step.
//
// Both heights must be above the surface. Integration proceeds from z1
// toward z2 in steps of opts.StepSize and stops once the running height is
// within opts.Tolerance of z2, the last step being shortened to land on z2.
func TempAtHeight(z1, temp1, l, tstar, ustar, z2 float64, opts ProfileOptions) (float64, error) {
	step := opts.StepSize
	if step == 0 {
		step = defaultProfileStep
	}
	tol := opts.Tolerance
	if tol == 0 {
		tol = defaultProfileTolerance
	}
	if !(step > 0) || !(tol > 0) {
		return 0, &DomainError{Op: "TempAtHeight", Msg: fmt.Sprintf("step size and tolerance must be positive, got %g m and %g m", step, tol)}
	}
	if !(z1 > 0) || !(z2 > 0) {
		return 0, &DomainError{Op: "TempAtHeight", Msg: fmt.Sprintf("heights must be above the surface, got z1=%g m, z2=%g m", z1, z2)}
	}

	dz := step
	if z2 < z1 {
		dz = -step
	}

	z, temp := z1, temp1
	steps := 0
	for {
		dist := math.Abs(z2 - z)
		if opts.LegacyGuard {
			// Historical guard: integrate only while already within
			// tolerance of the target.
			if dist >= tol {
				break
			}
		} else if dist < tol {
			break
		}

		h := dz
		if !opts.LegacyGuard && dist < math.Abs(h) {
			h = z2 - z // land the final step exactly on z2
		}

		k1 := h * DTDz(z, l, tstar)
		km := h * DTDz(z+0.5*h, l, tstar) // reused for both interior stages
		k4 := h * DTDz(z+h, l, tstar)
		temp += k1/6.0 + km/3.0 + km/3.0 + k4/6.0
		z += h
		steps++
	}

	if math.IsInf(temp, 0) || math.IsNaN(temp) {
		return 0, &ArithmeticError{Op: "TempAtHeight", Msg: fmt.Sprintf("temperature is not finite near z=%g m", z)}
	}

	logger := logging.GetLogger("atmos")
	logger.Debugf("temperature profile: %d steps from z=%g m to z=%g m", steps, z1, z2)

	return temp, nil
}
