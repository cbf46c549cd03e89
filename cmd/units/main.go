// Command units converts a scalar physical quantity between units of mass,
// energy, length, and time, including wavelength/energy conversion through
// the photon relation.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/units/core/units"
	"github.com/FocuswithJustin/units/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for units.
var CLI struct {
	Debug bool `help:"Enable debug logging" short:"d"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert a quantity between units"`
	List    ListCmd    `cmd:"" help:"List supported units per domain"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a value between two units, optionally raising the
// result to an integer power.
type ConvertCmd struct {
	Value    float64 `arg:"" help:"Numeric value to convert"`
	From     string  `arg:"" help:"Source unit token"`
	To       string  `arg:"" help:"Destination unit token"`
	Exponent int     `arg:"" optional:"" default:"1" help:"Raise the result to this power (default 1)"`
}

func (c *ConvertCmd) Run() error {
	result, err := units.Convert(c.Value, c.From, c.To, c.Exponent)
	if err != nil {
		return err
	}
	// Convert succeeded, so classification and the canonical step cannot fail.
	fromDomain, _ := units.Classify(c.From)
	toDomain, _ := units.Classify(c.To)
	canonical, _ := units.ToCanonical(fromDomain, c.Value, c.From)
	logging.Debug("converted",
		"value", c.Value, "from", c.From, "to", c.To,
		"from_domain", fromDomain.String(), "to_domain", toDomain.String(),
		"canonical", canonical,
		"exponent", c.Exponent, "result", result)
	fmt.Println(strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}

// ListCmd prints the supported unit tokens, for all domains or one.
type ListCmd struct {
	Domain string `arg:"" optional:"" help:"Restrict to one domain (mass, energy, length, time)"`
}

func (c *ListCmd) Run() error {
	domains := units.Domains()
	if c.Domain != "" {
		d, err := units.ParseDomain(c.Domain)
		if err != nil {
			return err
		}
		domains = []units.Domain{d}
	}
	for _, d := range domains {
		fmt.Printf("%s: %s\n", d, strings.Join(units.UnitNames(d), " "))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("units %s\n", version)
	return nil
}

// prepareArgs drops unknown leading flags from the argument list with a
// warning, so a stray flag does not abort the conversion. A leading token
// that parses as a number is the value argument, not a flag; a flag
// terminator is inserted ahead of it so the parser does not read a negative
// value such as -40 as a flag.
func prepareArgs(args []string) []string {
	known := map[string]bool{
		"-h": true, "--help": true,
		"-d": true, "--debug": true,
	}
	head := []string{}
	for len(args) > 0 {
		tok := args[0]
		if known[tok] {
			head = append(head, tok)
			args = args[1:]
			continue
		}
		if !strings.HasPrefix(tok, "-") {
			break
		}
		if _, err := strconv.ParseFloat(tok, 64); err == nil {
			break
		}
		logging.Warn("ignoring unknown flag", "flag", tok)
		args = args[1:]
	}
	if len(args) > 0 {
		if _, err := strconv.ParseFloat(args[0], 64); err == nil {
			head = append(head, "--")
		}
	}
	return append(head, args...)
}

func newParser() (*kong.Kong, error) {
	return kong.New(&CLI,
		kong.Name("units"),
		kong.Description("Convert a physical quantity between units of mass, energy, length, and time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
}

func main() {
	parser, err := newParser()
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(prepareArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)
	if CLI.Debug {
		logging.InitLogger(logging.LevelDebug, logging.FormatText)
	}
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
