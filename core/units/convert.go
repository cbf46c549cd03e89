package units

import (
	"math"

	uniterr "github.com/FocuswithJustin/units/core/errors"
)

// ToCanonical converts a value in the given unit to the domain's canonical
// unit. The token must have already classified into d; a token with no table
// entry fails rather than passing the value through.
func ToCanonical(d Domain, value float64, unit string) (float64, error) {
	def, ok := lookup(d, unit)
	if !ok {
		return 0, uniterr.NewUnsupportedUnit(unit, d.String())
	}
	return (value + def.offset) * def.factor, nil
}

// FromCanonical converts a value in the domain's canonical unit to the given
// unit. Inverse of ToCanonical.
func FromCanonical(d Domain, canonical float64, unit string) (float64, error) {
	def, ok := lookup(d, unit)
	if !ok {
		return 0, uniterr.NewUnsupportedUnit(unit, d.String())
	}
	return canonical/def.factor - def.offset, nil
}

// Convert converts value from one unit to another and raises the result to
// the given exponent. Same-domain pairs route through the domain's canonical
// unit; the only legal cross-domain pair is length and energy, which routes
// through the photon bridge. The exponent must be at least 1.
func Convert(value float64, from, to string, exponent int) (float64, error) {
	if exponent < 1 {
		return 0, uniterr.NewExponent(exponent)
	}

	fromDomain, err := Classify(from)
	if err != nil {
		return 0, err
	}
	toDomain, err := Classify(to)
	if err != nil {
		return 0, err
	}

	var result float64
	switch {
	case fromDomain == toDomain:
		canonical, err := ToCanonical(fromDomain, value, from)
		if err != nil {
			return 0, err
		}
		result, err = FromCanonical(toDomain, canonical, to)
		if err != nil {
			return 0, err
		}
	case fromDomain == Length && toDomain == Energy:
		result, err = lengthToEnergy(value, from, to)
		if err != nil {
			return 0, err
		}
	case fromDomain == Energy && toDomain == Length:
		result, err = energyToLength(value, from, to)
		if err != nil {
			return 0, err
		}
	default:
		return 0, uniterr.NewCrossDomain(fromDomain.String(), toDomain.String())
	}

	if exponent > 1 {
		result = math.Pow(result, float64(exponent))
	}
	return result, nil
}
