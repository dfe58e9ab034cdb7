package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/minos/measurement"
)

// parseFloats parses every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseMeasurement reads "c", "c,e" or "c,up,lo" (see measurement.FromList).
func parseMeasurement(arg string) (measurement.Measurement, error) {
	vals, err := parseFloats(strings.Split(arg, ","))
	if err != nil {
		return measurement.Measurement{}, fmt.Errorf("measurement %q: %w", arg, err)
	}
	if len(vals) > 3 {
		return measurement.Measurement{}, fmt.Errorf("measurement %q: %w", arg, measurement.ErrBadList)
	}
	return measurement.FromList(vals), nil
}

func parseMeasurements(args []string) ([]measurement.Measurement, error) {
	out := make([]measurement.Measurement, len(args))
	for i, a := range args {
		m, err := parseMeasurement(a)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}
