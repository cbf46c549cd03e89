package units

import (
	"errors"
	"testing"

	uniterr "github.com/FocuswithJustin/units/core/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  Domain
	}{
		{"kg", Mass},
		{"KG", Mass},
		{"lb", Mass},
		{"lbs", Mass},
		{"pounds", Mass},
		{"au", Energy},
		{"hartree", Energy},
		{"eV", Energy},
		{"J", Energy},
		{"Ry", Energy},
		{"kelvin", Energy},
		{"C", Energy},
		{"F", Energy},
		{"cm-1", Energy},
		{"wavenumber", Energy},
		{"Hz", Energy},
		{"MHz", Energy},
		{"GHz", Energy},
		{"m", Length},
		{"nm", Length},
		{"μm", Length},
		{"um", Length},
		{"km", Length},
		{"dam", Length},
		{"dkm", Length},
		{"inch", Length},
		{"ft", Length},
		{"miles", Length},
		{"bohr", Length},
		{"ly", Length},
		{"s", Time},
		{"fs", Time},
		{"ms", Time},
		{"min", Time},
		{"hrs", Time},
		{"hour", Time},
		{"d", Time},
		{"yr", Time},
		{"planck", Time},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Classify(tt.token)
			if err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, token := range []string{"xyz", "", "m/s", "kgs"} {
		t.Run(token, func(t *testing.T) {
			_, err := Classify(token)
			if err == nil {
				t.Fatalf("Classify(%q) succeeded, want error", token)
			}
			if !errors.Is(err, uniterr.ErrUnknownUnit) {
				t.Errorf("Classify(%q) error = %v, want ErrUnknownUnit", token, err)
			}
		})
	}
}

// TestDomainDisjoint walks every alias in every table and verifies no token
// appears in two domains. The token index panics on duplicates at init, but
// this keeps the invariant visible in the test output.
func TestDomainDisjoint(t *testing.T) {
	seen := make(map[string]Domain)
	for _, d := range Domains() {
		for _, def := range domainTables[d] {
			for _, token := range append([]string{def.name}, def.aliases...) {
				if prev, ok := seen[token]; ok {
					t.Errorf("token %q defined in both %s and %s", token, prev, d)
				}
				seen[token] = d
			}
		}
	}
}

// TestEveryUnitClassifies verifies the classifier and the conversion tables
// agree: every table token classifies into its own domain and converts
// without hitting the unsupported-unit path.
func TestEveryUnitClassifies(t *testing.T) {
	for _, d := range Domains() {
		for _, def := range domainTables[d] {
			for _, token := range append([]string{def.name}, def.aliases...) {
				got, err := Classify(token)
				if err != nil {
					t.Errorf("Classify(%q) error: %v", token, err)
					continue
				}
				if got != d {
					t.Errorf("Classify(%q) = %v, want %v", token, got, d)
				}
				if _, err := ToCanonical(d, 1, token); err != nil {
					t.Errorf("ToCanonical(%v, 1, %q) error: %v", d, token, err)
				}
			}
		}
	}
}

func TestDomainString(t *testing.T) {
	tests := []struct {
		d    Domain
		want string
	}{
		{Mass, "mass"},
		{Energy, "energy"},
		{Length, "length"},
		{Time, "time"},
		{Domain(42), "domain(42)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Domain(%d).String() = %q, want %q", int(tt.d), got, tt.want)
		}
	}
}

func TestParseDomain(t *testing.T) {
	for _, d := range Domains() {
		got, err := ParseDomain(d.String())
		if err != nil {
			t.Fatalf("ParseDomain(%q) error: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDomain(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if _, err := ParseDomain("temperature"); err == nil {
		t.Error("ParseDomain(\"temperature\") succeeded, want error")
	}
}

func TestUnitNames(t *testing.T) {
	for _, d := range Domains() {
		names := UnitNames(d)
		if len(names) == 0 {
			t.Errorf("UnitNames(%v) is empty", d)
		}
		for _, name := range names {
			got, err := Classify(name)
			if err != nil || got != d {
				t.Errorf("UnitNames(%v) lists %q, which classifies to (%v, %v)", d, name, got, err)
			}
		}
	}
}
