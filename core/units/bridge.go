package units

import (
	uniterr "github.com/FocuswithJustin/units/core/errors"
)

// The photon bridge relates a wavelength to the energy of a photon with that
// wavelength. Both directions route through the spectroscopic wavenumber
// (inverse centimeters): meters scale to centimeters, invert to cm^-1, and
// cm^-1 and hartrees exchange through au2invcm. The inversion makes a zero
// input physically meaningless, so both directions reject it up front.

// lengthToEnergy converts a wavelength to the matching photon energy.
func lengthToEnergy(value float64, lengthUnit, energyUnit string) (float64, error) {
	meters, err := ToCanonical(Length, value, lengthUnit)
	if err != nil {
		return 0, err
	}
	if meters == 0 {
		return 0, uniterr.NewZeroQuantity(Length.String())
	}
	wavenumber := 1 / (meters * 100)
	return FromCanonical(Energy, wavenumber/au2invcm, energyUnit)
}

// energyToLength converts a photon energy to the matching wavelength.
func energyToLength(value float64, energyUnit, lengthUnit string) (float64, error) {
	hartree, err := ToCanonical(Energy, value, energyUnit)
	if err != nil {
		return 0, err
	}
	if hartree == 0 {
		return 0, uniterr.NewZeroQuantity(Energy.String())
	}
	wavenumber := hartree * au2invcm
	meters := 1 / wavenumber / 100
	return FromCanonical(Length, meters, lengthUnit)
}
