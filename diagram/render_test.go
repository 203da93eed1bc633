package diagram_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/diagram"
	"github.com/katalvlaran/huckel/spectrum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// benzene is the classified spectrum of cyclic-polyene(6).
func benzene() []spectrum.Level {
	return spectrum.Classify([]float64{-2, -1, -1, 1, 1, 2})
}

func TestRender_Benzene(t *testing.T) {
	lines, err := diagram.Render(benzene())
	require.NoError(t, err)
	require.Equal(t, []string{
		"  ――     2.000",
		"",
		"――  ――   1.000",
		"",
		"――  ――  -1.000",
		"",
		"  ――    -2.000",
		"",
		"6 orbitals.",
	}, lines)
}

// TestRender_Centering checks every rung shares the same label column.
func TestRender_Centering(t *testing.T) {
	levels := spectrum.Classify([]float64{-3, -1, -1, -1, 1, 1, 1, 1, 1})
	lines, err := diagram.Render(levels)
	require.NoError(t, err)

	require.Equal(t, "――  ――  ――  ――  ――   1.000", lines[0])
	require.Equal(t, "    ――  ――  ――      -1.000", lines[2])
	require.Equal(t, "        ――          -3.000", lines[4])
	require.Equal(t, "9 orbitals.", lines[len(lines)-1])

	for _, i := range []int{0, 2, 4} {
		dot := strings.Index(lines[i], ".")
		require.Equal(t, 22, utf8.RuneCountInString(lines[i][:dot]), "line %d", i)
	}
}

func TestRender_ZeroLevel(t *testing.T) {
	lines, err := diagram.Render(spectrum.Classify([]float64{-1e-17}))
	require.NoError(t, err)
	require.Equal(t, []string{"――   0.000", "", "1 orbitals."}, lines)
}

func TestRender_Empty(t *testing.T) {
	_, err := diagram.Render(nil)
	require.ErrorIs(t, err, diagram.ErrInvalidArgument)
	require.ErrorIs(t, err, huckel.ErrInvalidArgument)

	var buf bytes.Buffer
	require.ErrorIs(t, diagram.Write(&buf, []spectrum.Level{}), huckel.ErrInvalidArgument)
	require.Zero(t, buf.Len())
}

// TestRender_Idempotent: same input, same lines, input untouched.
func TestRender_Idempotent(t *testing.T) {
	levels := benzene()
	first, err := diagram.Render(levels)
	require.NoError(t, err)
	second, err := diagram.Render(levels)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, benzene(), levels)
}

func TestRender_UnroundedLevels(t *testing.T) {
	levels := []spectrum.Level{{Energy: decimal.NewFromInt(-2), Degeneracy: 1}}
	lines, err := diagram.Render(levels)
	require.NoError(t, err)
	require.Equal(t, "――  -2", lines[0])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, diagram.Write(&buf, benzene()))
	require.True(t, strings.HasPrefix(buf.String(), "  ――     2.000\n\n"))
	require.True(t, strings.HasSuffix(buf.String(), "6 orbitals.\n"))

	require.ErrorContains(t, diagram.Write(failingWriter{}, benzene()), "disk full")
}
