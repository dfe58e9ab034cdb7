package measurement_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minos/measurement"
)

func TestFromList(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want measurement.Measurement
	}{
		{"empty", nil, measurement.New(1, 0, 0)},
		{"central only", []float64{2}, measurement.New(2, 0, 0)},
		{"symmetric", []float64{2, 0.5}, measurement.New(2, 0.5, 0.5)},
		{"asymmetric", []float64{2, 0.5, 0.25}, measurement.New(2, 0.5, 0.25)},
		{"extra entries ignored", []float64{2, 0.5, 0.25, 9}, measurement.New(2, 0.5, 0.25)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, measurement.FromList(tc.in))
		})
	}
}

func TestMeasurement_JSON(t *testing.T) {
	data, err := json.Marshal(measurement.New(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(data))

	cases := map[string]measurement.Measurement{
		`[]`:                measurement.New(1, 0, 0),
		`[2]`:               measurement.New(2, 0, 0),
		`[2, 0.5]`:          measurement.New(2, 0.5, 0.5),
		`[2, 0.5, 0.25, 9]`: measurement.New(2, 0.5, 0.25),
	}
	for in, want := range cases {
		var m measurement.Measurement
		require.NoError(t, json.Unmarshal([]byte(in), &m), in)
		assert.Equal(t, want, m, in)
	}

	for _, bad := range []string{`{}`, `null`, `["a"]`, `"1 +2 -3"`} {
		var m measurement.Measurement
		err := json.Unmarshal([]byte(bad), &m)
		require.ErrorIs(t, err, measurement.ErrBadList, bad)
	}
}

func TestMeasurement_JSONInDocument(t *testing.T) {
	var doc struct {
		Lumi   measurement.Measurement   `json:"lumi"`
		Yields []measurement.Measurement `json:"yields"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"lumi": [139, 2.4], "yields": [[10, 3, 1], [4]]}`), &doc))
	assert.Equal(t, measurement.New(139, 2.4, 2.4), doc.Lumi)
	assert.Equal(t, []measurement.Measurement{measurement.New(10, 3, 1), measurement.New(4, 0, 0)}, doc.Yields)
}

func TestMeasurement_YAML(t *testing.T) {
	var m measurement.Measurement
	require.NoError(t, yaml.Unmarshal([]byte(`[3, 1]`), &m))
	assert.Equal(t, measurement.New(3, 1, 1), m)

	var byName map[string]measurement.Measurement
	require.NoError(t, yaml.Unmarshal([]byte("a: [10, 3, 1]\nb: [5]\n"), &byName))
	assert.Equal(t, measurement.New(10, 3, 1), byName["a"])
	assert.Equal(t, measurement.New(5, 0, 0), byName["b"])

	err := yaml.Unmarshal([]byte("central: 3\nup: 1\n"), &m)
	require.ErrorIs(t, err, measurement.ErrBadList)
	err = yaml.Unmarshal([]byte(`[a, b]`), &m)
	require.ErrorIs(t, err, measurement.ErrBadList)

	out, err := yaml.Marshal(map[string]measurement.Measurement{"x": measurement.New(1, 2, 3)})
	require.NoError(t, err)
	var back map[string]measurement.Measurement
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, measurement.New(1, 2, 3), back["x"])
}
