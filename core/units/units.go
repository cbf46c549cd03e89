// Package units implements the unit-conversion engine: classification of unit
// tokens into physical domains, conversion through each domain's canonical
// unit, and the photon bridge between length and energy.
//
// Canonical units per domain: kilograms (mass), hartrees (energy), meters
// (length), seconds (time). Every conversion routes through the canonical
// unit, so each supported unit needs exactly one table entry.
package units

import (
	"fmt"
	"strings"

	uniterr "github.com/FocuswithJustin/units/core/errors"
)

// Domain is the physical dimension a unit token belongs to.
type Domain int

const (
	Mass Domain = iota
	Energy
	Length
	Time
)

// String returns the lowercase domain name used in error messages.
func (d Domain) String() string {
	switch d {
	case Mass:
		return "mass"
	case Energy:
		return "energy"
	case Length:
		return "length"
	case Time:
		return "time"
	}
	return fmt.Sprintf("domain(%d)", int(d))
}

// Domains lists all domains in declaration order.
func Domains() []Domain {
	return []Domain{Mass, Energy, Length, Time}
}

// unitDef is one unit variant: its accepted tokens and the affine map to the
// domain's canonical unit.
//
//	canonical = (value + offset) * factor
//	value     = canonical/factor - offset
//
// Only the temperature units carry a nonzero offset.
type unitDef struct {
	name    string   // primary token, as shown by List
	aliases []string // additional accepted tokens
	factor  float64
	offset  float64
}

// metricPrefixes covers yocto through kilo, the range the length and time
// tables scale over.
var metricPrefixes = []struct {
	symbol string
	factor float64
}{
	{"y", 1e-24},
	{"z", 1e-21},
	{"a", 1e-18},
	{"f", 1e-15},
	{"p", 1e-12},
	{"n", 1e-9},
	{"μ", 1e-6},
	{"m", 1e-3},
	{"c", 1e-2},
	{"d", 1e-1},
	{"", 1},
	{"da", 1e1},
	{"h", 1e2},
	{"k", 1e3},
}

// metricDefs builds the prefixed variants of a base symbol, e.g. "ym".."km"
// for base "m". The micro prefix also accepts the ASCII spelling "u", the
// deka prefix the variant spelling "dk", and the bare base carries the
// long-form aliases.
func metricDefs(base string, baseAliases ...string) []unitDef {
	defs := make([]unitDef, 0, len(metricPrefixes))
	for _, p := range metricPrefixes {
		def := unitDef{name: p.symbol + base, factor: p.factor}
		switch p.symbol {
		case "μ":
			def.aliases = []string{"u" + base}
		case "da":
			def.aliases = []string{"dk" + base}
		case "":
			def.aliases = baseAliases
		}
		defs = append(defs, def)
	}
	return defs
}

var massTable = []unitDef{
	{name: "kg", aliases: []string{"kilogram", "kilograms"}, factor: 1},
	{name: "lb", aliases: []string{"lbs", "pound", "pounds"}, factor: lb2kg},
}

var energyTable = []unitDef{
	{name: "au", aliases: []string{"hartree"}, factor: 1},
	{name: "ev", aliases: []string{"electronvolt"}, factor: 1 / au2eV},
	{name: "j", aliases: []string{"joule", "joules"}, factor: 1 / au2J},
	{name: "ry", aliases: []string{"ryd", "rydberg"}, factor: 1 / au2Ryd},
	{name: "k", aliases: []string{"kelvin"}, factor: 1 / au2K},
	{name: "c", aliases: []string{"celsius"}, factor: 1 / au2K, offset: celsiusZero},
	{name: "f", aliases: []string{"fahrenheit"}, factor: 5.0 / 9.0 / au2K, offset: fahrenheitZero},
	{name: "cm-1", aliases: []string{"cm^-1", "invcm", "wavenumber", "wavenumbers"}, factor: 1 / au2invcm},
	{name: "hz", aliases: []string{"hertz"}, factor: 1 / au2Hz},
	{name: "mhz", factor: 1e6 / au2Hz},
	{name: "ghz", factor: 1e9 / au2Hz},
}

var lengthTable = append(metricDefs("m", "meter", "meters", "metre", "metres"),
	unitDef{name: "in", aliases: []string{"inch", "inches"}, factor: in2m},
	unitDef{name: "ft", aliases: []string{"foot", "feet"}, factor: ft2m},
	unitDef{name: "mi", aliases: []string{"mile", "miles"}, factor: mi2m},
	unitDef{name: "bohr", aliases: []string{"a0"}, factor: bohr2m},
	unitDef{name: "ly", aliases: []string{"lightyear", "lightyears"}, factor: ly2m},
)

var timeTable = append(metricDefs("s", "sec", "secs", "second", "seconds"),
	unitDef{name: "min", aliases: []string{"minute", "minutes"}, factor: min2sec},
	unitDef{name: "h", aliases: []string{"hr", "hrs", "hour", "hours"}, factor: hour2sec},
	unitDef{name: "d", aliases: []string{"day", "days"}, factor: day2sec},
	unitDef{name: "y", aliases: []string{"yr", "year", "years"}, factor: year2sec},
	unitDef{name: "planck", factor: planck2sec},
)

var domainTables = map[Domain][]unitDef{
	Mass:   massTable,
	Energy: energyTable,
	Length: lengthTable,
	Time:   timeTable,
}

// tokenIndex maps every accepted token to its domain. Built once at startup;
// buildTokenIndex panics on a duplicate token, which enforces the invariant
// that no token belongs to two domains.
var tokenIndex = buildTokenIndex()

func buildTokenIndex() map[string]Domain {
	index := make(map[string]Domain)
	for _, d := range Domains() {
		for _, def := range domainTables[d] {
			for _, token := range append([]string{def.name}, def.aliases...) {
				if prev, ok := index[token]; ok {
					panic(fmt.Sprintf("unit token %q defined in both %s and %s", token, prev, d))
				}
				index[token] = d
			}
		}
	}
	return index
}

// Classify maps a unit token to its domain. Matching is case-insensitive.
func Classify(token string) (Domain, error) {
	d, ok := tokenIndex[strings.ToLower(token)]
	if !ok {
		return 0, uniterr.NewUnknownUnit(token)
	}
	return d, nil
}

// lookup finds the table entry for a token within one domain.
func lookup(d Domain, token string) (unitDef, bool) {
	lower := strings.ToLower(token)
	for _, def := range domainTables[d] {
		if def.name == lower {
			return def, true
		}
		for _, alias := range def.aliases {
			if alias == lower {
				return def, true
			}
		}
	}
	return unitDef{}, false
}

// ParseDomain maps a domain name to its Domain. Matching is case-insensitive.
func ParseDomain(name string) (Domain, error) {
	switch strings.ToLower(name) {
	case "mass":
		return Mass, nil
	case "energy":
		return Energy, nil
	case "length":
		return Length, nil
	case "time":
		return Time, nil
	}
	return 0, fmt.Errorf("unknown domain %q (expected mass, energy, length, or time)", name)
}

// UnitNames lists the primary token of every unit in a domain, in table order.
func UnitNames(d Domain) []string {
	defs := domainTables[d]
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.name
	}
	return names
}
