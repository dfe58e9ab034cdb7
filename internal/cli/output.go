package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/minos/internal/logging"
	"github.com/katalvlaran/minos/measurement"
)

// Record is one printed measurement.
type Record struct {
	Name    string  `json:"name"`
	Central float64 `json:"central"`
	ErrUp   float64 `json:"err_up"`
	ErrLo   float64 `json:"err_lo"`
	Warning string  `json:"warning,omitempty"`
}

// LevelRecord pairs a sigma interval with its confidence level.
type LevelRecord struct {
	Sigma      float64 `json:"sigma"`
	Confidence float64 `json:"confidence"`
}

// NewRecord captures m and, when err is non-nil, its warning text.
func NewRecord(name string, m measurement.Measurement, err error) Record {
	r := Record{Name: name, Central: m.Central(), ErrUp: m.ErrUp(), ErrLo: m.ErrLo()}
	if err != nil {
		r.Warning = err.Error()
	}
	return r
}

// colorScheme holds the colours of text output.
type colorScheme struct {
	Name    *color.Color
	Value   *color.Color
	Error   *color.Color
	Warning *color.Color
}

func newColorScheme(enabled bool) *colorScheme {
	s := &colorScheme{
		Name:    color.New(color.FgCyan),
		Value:   color.New(color.FgGreen, color.Bold),
		Error:   color.New(color.FgMagenta),
		Warning: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.Name, s.Value, s.Error, s.Warning} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// printer renders records as text lines or as one JSON document.
type printer struct {
	format string
	digits int
	w      io.Writer
	colors *colorScheme
}

func newPrinter(opts *RootOptions, w io.Writer) *printer {
	useColor := opts.Format == "text" && !opts.NoColor && logging.IsTerminal(w)
	return &printer{format: opts.Format, digits: opts.Digits, w: w, colors: newColorScheme(useColor)}
}

// Measurements prints "name = c +up -lo" lines, or a JSON array.
func (p *printer) Measurements(records []Record) error {
	if p.format == "json" {
		return p.json(records)
	}
	for _, r := range records {
		line := fmt.Sprintf("%s = %s %s %s",
			p.colors.Name.Sprint(r.Name),
			p.colors.Value.Sprintf("%.*f", p.digits, r.Central),
			p.colors.Error.Sprintf("+%.*f", p.digits, r.ErrUp),
			p.colors.Error.Sprintf("-%.*f", p.digits, r.ErrLo),
		)
		if r.Warning != "" {
			line += " " + p.colors.Warning.Sprint("(not converged)")
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

// Levels prints "Sσ: CL" lines, or a JSON array.
func (p *printer) Levels(records []LevelRecord) error {
	if p.format == "json" {
		return p.json(records)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(p.w, "%sσ: %s\n",
			p.colors.Name.Sprintf("%g", r.Sigma),
			p.colors.Value.Sprintf("%.6f", r.Confidence),
		); err != nil {
			return err
		}
	}
	return nil
}

// Sigmas prints "CL: Sσ" lines, or a JSON array.
func (p *printer) Sigmas(records []LevelRecord) error {
	if p.format == "json" {
		return p.json(records)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(p.w, "%s: %sσ\n",
			p.colors.Name.Sprintf("%g", r.Confidence),
			p.colors.Value.Sprintf("%.6f", r.Sigma),
		); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) json(v interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
