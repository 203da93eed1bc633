// Package report turns an analysis result into its printable forms: the
// text energy-level diagram or a YAML document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/analysis"
	"github.com/katalvlaran/huckel/diagram"
	"github.com/katalvlaran/huckel/spectrum"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a case-insensitive format name.
// Unknown names wrap huckel.ErrInvalidArgument.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("report: unknown format %q (want text | yaml): %w", s, huckel.ErrInvalidArgument)
	}
}

// Level is the serialized form of spectrum.Level.
type Level struct {
	Energy     string `yaml:"energy"`
	Degeneracy int    `yaml:"degeneracy"`
}

// Report is the serialized form of an analysis.Result.
type Report struct {
	Topology string  `yaml:"topology"`
	Sites    int     `yaml:"sites"`
	Bonds    int     `yaml:"bonds"`
	Solver   string  `yaml:"solver"`
	Orbitals int     `yaml:"orbitals"`
	Levels   []Level `yaml:"levels"`
}

// FromResult builds a Report; levels are listed ascending, as classified.
func FromResult(res *analysis.Result) Report {
	r := Report{
		Topology: res.Topology.String(),
		Sites:    res.Sites,
		Bonds:    res.Bonds,
		Solver:   res.Solver,
		Orbitals: res.Orbitals(),
		Levels:   make([]Level, 0, len(res.Levels)),
	}
	for _, l := range res.Levels {
		r.Levels = append(r.Levels, Level{Energy: l.Label(), Degeneracy: l.Degeneracy})
	}
	return r
}

// SpectrumLevels parses the serialized levels back into spectrum.Level
// values. The number of places in each energy string is kept, so a decoded
// report draws the same diagram as the result it came from.
func (r Report) SpectrumLevels() ([]spectrum.Level, error) {
	out := make([]spectrum.Level, 0, len(r.Levels))
	for i, l := range r.Levels {
		e, err := decimal.NewFromString(l.Energy)
		if err != nil {
			return nil, fmt.Errorf("report: level %d: energy %q: %w", i, l.Energy, huckel.ErrInvalidArgument)
		}
		if l.Degeneracy < 1 {
			return nil, fmt.Errorf("report: level %d: degeneracy %d < 1: %w", i, l.Degeneracy, huckel.ErrInvalidArgument)
		}
		out = append(out, spectrum.Level{Energy: e, Degeneracy: l.Degeneracy})
	}
	return out, nil
}

// Write encodes r to w in the given format.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText:
		levels, err := r.SpectrumLevels()
		if err != nil {
			return err
		}
		return diagram.Write(w, levels)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("report: unknown format %q: %w", f, huckel.ErrInvalidArgument)
	}
}
