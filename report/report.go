// Package report turns a final state distribution into the program's
// externally visible output: the extinction line, an optional YAML document
// and an optional per-year extinction curve.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metapop/markov"
)

// Format selects the rendering of a Report.
type Format string

const (
	// FormatText renders the single extinction line.
	FormatText Format = "text"
	// FormatYAML renders a YAML document with the full distribution.
	FormatYAML Format = "yaml"
)

// errUnknownFormat is returned for output formats other than text and yaml.
var errUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a case-insensitive name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, errUnknownFormat)
	}
}

// Report is the extinction outcome after a number of years.
type Report struct {
	Years        int
	Extinct      float64
	Distribution markov.Distribution
}

// New extracts the absorbing-state probability from dist.
func New(dist markov.Distribution, years int) Report {
	return Report{
		Years:        years,
		Extinct:      dist.Extinct(),
		Distribution: dist,
	}
}

// Percent returns the extinction probability as a percentage.
func (r Report) Percent() float64 { return r.Extinct * 100 }

// Line renders the extinction probability with 6 decimals and the
// percentage with 4, e.g.
// "Probability species permanently lost by year 50: 0.761328 (76.1328%)".
func (r Report) Line() string {
	return fmt.Sprintf("Probability species permanently lost by year %d: %.6f (%.4f%%)",
		r.Years, r.Extinct, r.Percent())
}

// yamlReport is the YAML wire shape of a Report.
type yamlReport struct {
	Years        int              `yaml:"years"`
	Extinct      float64          `yaml:"extinct"`
	Percent      float64          `yaml:"percent"`
	Distribution yamlDistribution `yaml:"distribution"`
}

type yamlDistribution struct {
	Both      float64 `yaml:"both"`
	SmallOnly float64 `yaml:"small_only"`
	LargeOnly float64 `yaml:"large_only"`
	None      float64 `yaml:"none"`
}

// Write renders r to w in the given format.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText:
		if _, err := fmt.Fprintln(w, r.Line()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		return nil
	case FormatYAML:
		doc := yamlReport{
			Years:   r.Years,
			Extinct: r.Extinct,
			Percent: r.Percent(),
			Distribution: yamlDistribution{
				Both:      r.Distribution.At(markov.Both),
				SmallOnly: r.Distribution.At(markov.SmallOnly),
				LargeOnly: r.Distribution.At(markov.LargeOnly),
				None:      r.Distribution.At(markov.None),
			},
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%q: %w", f, errUnknownFormat)
	}
}

// WriteCurve prints one "year probability" row per entry of curve,
// where curve[k] is P(None) after k years.
func WriteCurve(w io.Writer, curve []float64) error {
	if _, err := fmt.Fprintln(w, "year  extinct"); err != nil {
		return fmt.Errorf("write curve: %w", err)
	}
	for year, p := range curve {
		if _, err := fmt.Fprintf(w, "%4d  %.6f\n", year, p); err != nil {
			return fmt.Errorf("write curve: %w", err)
		}
	}

	return nil
}
