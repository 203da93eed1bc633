package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/analysis"
	"github.com/katalvlaran/huckel/builder"
	"github.com/katalvlaran/huckel/report"
)

func benzene(t *testing.T) report.Report {
	t.Helper()
	res, err := analysis.Run(builder.Cyclic{N: 6})
	require.NoError(t, err)
	return report.FromResult(res)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, report.FormatYAML, f)

	f, err = report.ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, report.FormatText, f)

	_, err = report.ParseFormat("xml")
	require.ErrorIs(t, err, huckel.ErrInvalidArgument)
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, benzene(t), report.FormatText))
	require.Equal(t, "  ――     2.000\n\n――  ――   1.000\n\n――  ――  -1.000\n\n  ――    -2.000\n\n6 orbitals.\n", buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, benzene(t), report.FormatYAML))

	var got report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "cyclic-polyene(6)", got.Topology)
	require.Equal(t, 6, got.Sites)
	require.Equal(t, 6, got.Bonds)
	require.Equal(t, "jacobi", got.Solver)
	require.Equal(t, 6, got.Orbitals)
	require.Equal(t, []report.Level{
		{Energy: "-2.000", Degeneracy: 1},
		{Energy: "-1.000", Degeneracy: 2},
		{Energy: "1.000", Degeneracy: 2},
		{Energy: "2.000", Degeneracy: 1},
	}, got.Levels)
}

// TestWrite_TextFromDecoded renders a report that went through YAML.
func TestWrite_TextFromDecoded(t *testing.T) {
	want := benzene(t)

	var enc bytes.Buffer
	require.NoError(t, report.Write(&enc, want, report.FormatYAML))
	var decoded report.Report
	require.NoError(t, yaml.Unmarshal(enc.Bytes(), &decoded))
	require.Equal(t, want, decoded)

	var direct, viaYAML bytes.Buffer
	require.NoError(t, report.Write(&direct, want, report.FormatText))
	require.NoError(t, report.Write(&viaYAML, decoded, report.FormatText))
	require.Equal(t, direct.String(), viaYAML.String())
}

func TestWrite_TextFromLiteral(t *testing.T) {
	r := report.Report{
		Topology: "ethylene",
		Levels: []report.Level{
			{Energy: "-1.000", Degeneracy: 1},
			{Energy: "1.000", Degeneracy: 1},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, r, report.FormatText))
	require.Equal(t, "――   1.000\n\n――  -1.000\n\n2 orbitals.\n", buf.String())
}

func TestSpectrumLevels_Invalid(t *testing.T) {
	for _, l := range []report.Level{
		{Energy: "abc", Degeneracy: 1},
		{Energy: "1.000", Degeneracy: 0},
	} {
		r := report.Report{Levels: []report.Level{l}}
		_, err := r.SpectrumLevels()
		require.ErrorIs(t, err, huckel.ErrInvalidArgument, "%+v", l)

		var buf bytes.Buffer
		require.ErrorIs(t, report.Write(&buf, r, report.FormatText), huckel.ErrInvalidArgument)
	}

	_, err := report.Report{}.SpectrumLevels()
	require.NoError(t, err)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, report.Write(&buf, benzene(t), report.Format("csv")), huckel.ErrInvalidArgument)
}
