package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metapop/markov"
)

// TestLine verifies the fixed precision of the extinction line.
func TestLine(t *testing.T) {
	t.Parallel()

	r := New(markov.Distribution{0.2, 0.1, 0.2, 0.5}, 50)
	require.Equal(t, 50, r.Years)
	require.Equal(t, 0.5, r.Extinct)
	require.Equal(t, "Probability species permanently lost by year 50: 0.500000 (50.0000%)", r.Line())

	r = New(markov.Distribution{0, 0, 0.2386720761941215, 0.7613279238058785}, 50)
	require.Equal(t, "Probability species permanently lost by year 50: 0.761328 (76.1328%)", r.Line())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	_, err = ParseFormat("csv")
	require.ErrorIs(t, err, errUnknownFormat)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	r := New(markov.Distribution{0.25, 0.25, 0.25, 0.25}, 3)

	var text bytes.Buffer
	require.NoError(t, Write(&text, r, FormatText))
	require.Equal(t, r.Line()+"\n", text.String())

	var doc bytes.Buffer
	require.NoError(t, Write(&doc, r, FormatYAML))

	var decoded yamlReport
	require.NoError(t, yaml.Unmarshal(doc.Bytes(), &decoded))
	require.Equal(t, 3, decoded.Years)
	require.Equal(t, 0.25, decoded.Extinct)
	require.Equal(t, 25.0, decoded.Percent)
	require.Equal(t, 0.25, decoded.Distribution.SmallOnly)
	require.Contains(t, doc.String(), "small_only: 0.25")

	require.ErrorIs(t, Write(&text, r, Format("xml")), errUnknownFormat)
}

func TestWriteCurve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCurve(&buf, []float64{0, 0.0039, 0.01422369}))
	require.Equal(t, "year  extinct\n   0  0.000000\n   1  0.003900\n   2  0.014224\n", buf.String())
}
