// Package atmos provides thermodynamic and Monin-Obukhov similarity
// relationships useful to atmospheric scientists: humidity conversions,
// adiabatic relations, surface-layer flux statistics, and numerical
// integrators for moist-adiabatic ascent and surface-layer temperature
// profiles.
//
// All quantities are SI unless noted otherwise: pressure in Pa, temperature
// in K, height in m, wind in m/s, mixing ratio in kg/kg.
package atmos

// Physical constants.
// Values follow Petty "A First Course in Atmospheric Thermodynamics" (1st ed.)
// and Hartmann "Global Physical Climatology" (1994 ed.).
const (
	// G is gravitational acceleration (m/s2).
	G = 9.80665
	// P0 is standard sea-level pressure (Pa).
	P0 = 101325.0
	// RD is the gas constant for dry air (J/kg/K).
	RD = 287.047
	// RV is the gas constant for water vapor (J/kg/K).
	RV = 461.5
	// CP is the heat capacity of dry air at constant pressure (J/kg/K).
	CP = 1005.0
	// CV is the heat capacity of dry air at constant volume (J/kg/K).
	CV = 718.0
	// CVP is the heat capacity of water vapor at constant pressure (J/kg/K).
	CVP = 1952.0
	// CVV is the heat capacity of water vapor at constant volume (J/kg/K).
	CVV = 1463.0
	// LV0 is the latent heat of vaporization at 0 C (J/kg).
	LV0 = 2.5e6
	// LV100 is the latent heat of vaporization at 100 C (J/kg).
	LV100 = 2.25e6
	// LF is the latent heat of fusion at 0 C (J/kg).
	LF = 3.34e5
	// Karman is the von Karman constant.
	Karman = 0.40
	// PRef is the reference pressure for potential temperature (Pa).
	PRef = 100000.0
)
