// SPDX-License-Identifier: MIT
// Package: huckel/diagram
//
// render.go — Render and Write.
//
// Contract:
//   • levels must be non-empty (else ErrInvalidArgument); they are expected
//     in ascending energy order, as produced by spectrum.Classify.
//   • Output is a pure function of the input.

package diagram

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/spectrum"
)

const (
	methodRender = "Render"

	// Orbital is the glyph cell drawn once per degenerate orbital.
	Orbital = "――  "
	// orbitalWidth is the visual width of Orbital (two bars, two spaces).
	orbitalWidth = 4
)

// ErrInvalidArgument is returned for an empty level list; it aliases
// huckel.ErrInvalidArgument.
var ErrInvalidArgument = huckel.ErrInvalidArgument

// Render returns the diagram lines for levels.
//
// Complexity: O(L·maxDegeneracy) for L levels.
func Render(levels []spectrum.Level) ([]string, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%s: no levels: %w", methodRender, ErrInvalidArgument)
	}

	width := orbitalWidth*spectrum.MaxDegeneracy(levels) - 2
	lines := make([]string, 0, 2*len(levels)+1)
	count := 0

	var sb strings.Builder
	for i := len(levels) - 1; i >= 0; i-- {
		l := levels[i]
		count += l.Degeneracy
		pad := strings.Repeat(" ", (width-(orbitalWidth*l.Degeneracy-2))/2)

		sb.Reset()
		sb.WriteString(pad)
		sb.WriteString(strings.Repeat(Orbital, l.Degeneracy))
		sb.WriteString(pad)
		if l.Energy.IsNegative() {
			sb.WriteByte('-')
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(spectrum.Level{Energy: l.Energy.Abs()}.Label())

		lines = append(lines, sb.String(), "")
	}
	lines = append(lines, fmt.Sprintf("%d orbitals.", count))

	return lines, nil
}

// Write renders levels and writes each line followed by a newline.
func Write(w io.Writer, levels []spectrum.Level) error {
	lines, err := Render(levels)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err = io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("diagram: write: %w", err)
		}
	}

	return nil
}
