package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minos/config"
	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/stat"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, config.FormatJSON, config.FormatFromPath("a/b.json"))
	assert.Equal(t, config.FormatJSON, config.FormatFromPath("B.JSON"))
	assert.Equal(t, config.FormatYAML, config.FormatFromPath("doc.yaml"))
	assert.Equal(t, config.FormatYAML, config.FormatFromPath("doc"))
	assert.Equal(t, "json", config.FormatJSON.String())
	assert.Equal(t, "yaml", config.FormatYAML.String())
}

func TestLoad_YAML(t *testing.T) {
	doc, err := config.Load(filepath.Join("testdata", "document.yaml"))
	require.NoError(t, err)

	assert.Equal(t, stat.OneSigmaLevel(), doc.Confidence, "default confidence")
	assert.Equal(t, measurement.New(3, 1, 1), doc.Measurements["a"])
	require.Len(t, doc.Combinations, 2)
	assert.Equal(t, config.Combination{Name: "ab", Op: config.OpSum, Inputs: []string{"a", "b"}}, doc.Combinations[0])

	res, err := doc.Evaluate()
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "ab", res[0].Name)
	assert.NoError(t, res[0].Warning)
	assert.InDelta(t, 7.0, res[0].Value.Central(), 1e-6)
	assert.InDelta(t, math.Sqrt(5), res[0].Value.ErrUp(), 1e-4)
	assert.InDelta(t, 4.0, res[1].Value.Central(), 1e-6)
}

func TestLoad_JSONWithPath(t *testing.T) {
	doc, err := config.Load(filepath.Join("testdata", "nested.json"), config.WithPath("analysis.yields"))
	require.NoError(t, err)
	assert.Equal(t, 0.9545, doc.Confidence)

	res, err := doc.Evaluate()
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.InDelta(t, 3.0, res[0].Value.Central(), 1e-6)
	// two sigma of a quadrature sum of 0.3 and 0.4
	assert.InDelta(t, 1.0, res[0].Value.ErrUp(), 1e-3)

	_, err = config.Load(filepath.Join("testdata", "nested.json"))
	require.ErrorIs(t, err, config.ErrSchema, "the wrapper object is not a document")

	_, err = config.Load(filepath.Join("testdata", "nested.json"), config.WithPath("analysis.missing"))
	require.ErrorIs(t, err, config.ErrPathNotFound)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format config.Format
		want   error
	}{
		{"broken json", `{"measurements": `, config.FormatJSON, config.ErrSyntax},
		{"broken yaml", "measurements: [1, 2", config.FormatYAML, config.ErrSyntax},
		{"empty", "", config.FormatYAML, config.ErrSchema},
		{"no measurements", `{}`, config.FormatJSON, config.ErrSchema},
		{"confidence out of range", `{"confidence": 1.5, "measurements": {}}`, config.FormatJSON, config.ErrSchema},
		{"non-numeric entry", `{"measurements": {"a": ["x"]}}`, config.FormatJSON, config.ErrSchema},
		{"unknown op", "measurements: {a: [1]}\ncombinations: [{name: q, op: div, inputs: [a]}]", config.FormatYAML, config.ErrSchema},
		{"no inputs", `{"measurements": {}, "combinations": [{"name": "q", "op": "sum", "inputs": []}]}`, config.FormatJSON, config.ErrSchema},
		{"unknown field", `{"measurements": {}, "extra": 1}`, config.FormatJSON, config.ErrSchema},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.data), tc.format)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEvaluate_Chaining(t *testing.T) {
	doc, err := config.Parse([]byte(`
measurements:
  a: [1, 0.5]
combinations:
  - {name: two, op: sum, inputs: [a, a]}
  - {name: four, op: sum, inputs: [two, two]}
`), config.FormatYAML)
	require.NoError(t, err)

	res, err := doc.Evaluate()
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.InDelta(t, 4.0, res[1].Value.Central(), 1e-6)
	assert.InDelta(t, 1.0, res[1].Value.ErrUp(), 1e-4)
}

func TestEvaluate_Errors(t *testing.T) {
	doc := &config.Document{
		Measurements: map[string]measurement.Measurement{"a": measurement.NewSymmetric(1, 0.1)},
		Combinations: []config.Combination{{Name: "b", Op: config.OpSum, Inputs: []string{"a", "zz"}}},
	}
	_, err := doc.Evaluate()
	require.ErrorIs(t, err, config.ErrUnknownInput)

	doc.Combinations = []config.Combination{{Name: "a", Op: config.OpSum, Inputs: []string{"a"}}}
	_, err = doc.Evaluate()
	require.ErrorIs(t, err, config.ErrDuplicateName)

	doc.Measurements["zero"] = measurement.NewSymmetric(0, 1)
	doc.Combinations = []config.Combination{{Name: "p", Op: config.OpProd, Inputs: []string{"a", "zero"}}}
	_, err = doc.Evaluate()
	require.ErrorIs(t, err, measurement.ErrZeroCentral)

	doc.Confidence = 2
	_, err = doc.Evaluate()
	require.ErrorIs(t, err, stat.ErrBadConfidence)
}
