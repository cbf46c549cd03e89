package units

// Physical constants and conversion factors, CODATA 2018 recommended values.
// Conversions always multiply or divide by these stored constants; nothing is
// recomputed from a physical formula at runtime.
const (
	// SpeedOfLight is the defined speed of light in vacuum (m/s). The
	// wavenumber and frequency equivalents below and the light-year factor
	// are all consistent with it: au2Hz = au2invcm * c in cm/s, and
	// ly2m = c * year2sec.
	SpeedOfLight = 299792458.0
	// Boltzmann is the Boltzmann constant (J/K).
	Boltzmann = 1.380649e-23

	// Atomic-unit (Hartree) energy equivalents.
	au2eV    = 27.211386245988         // eV per hartree
	au2J     = 4.3597447222071e-18     // J per hartree
	au2Ryd   = 2.0                     // Ry per hartree
	au2invcm = 1 / 4.5563552529120e-6  // cm^-1 per hartree
	au2Hz    = 1 / 1.5198298460570e-16 // Hz per hartree
	au2K     = au2J / Boltzmann        // K per hartree, via E = kT

	// Length factors to meters.
	bohr2ang = 0.529177210903      // Bohr radius in angstrom
	bohr2m   = bohr2ang * 1e-10    // Bohr radius in m
	in2m     = 0.0254              // inch
	ft2m     = 0.3048              // foot
	mi2m     = 1609.344            // mile
	ly2m     = 9460730472580800.0  // light-year

	// Time factors to seconds.
	min2sec    = 60.0
	hour2sec   = 3600.0
	day2sec    = 86400.0
	year2sec   = 365.25 * day2sec // Julian year
	planck2sec = 5.39e-44

	// Mass factors to kilograms.
	lb2kg = 0.4535924

	// Temperature scale shifts.
	celsiusZero    = 273.15 // 0 degC in K
	fahrenheitZero = 459.67 // 0 K is -459.67 degF
)
