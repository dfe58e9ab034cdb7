package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minos/measurement"
	"github.com/katalvlaran/minos/stat"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "minos-document.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Format is the encoding of a document.
type Format int

const (
	// FormatYAML is YAML 1.2 (gopkg.in/yaml.v3).
	FormatYAML Format = iota

	// FormatJSON is RFC 8259 JSON.
	FormatJSON
)

// String returns "yaml" or "json".
func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// FormatFromPath picks the format from the file extension: ".json" is JSON,
// everything else is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Op is a combination operator.
type Op string

const (
	OpSum  Op = "sum"
	OpProd Op = "prod"
)

// Combination names a derived measurement.
type Combination struct {
	Name   string   `json:"name"`
	Op     Op       `json:"op"`
	Inputs []string `json:"inputs"`
}

// Document is a validated measurement document.
type Document struct {
	// Confidence is the interval level used by every combination.
	Confidence float64 `json:"confidence"`

	// Measurements maps names to measured values.
	Measurements map[string]measurement.Measurement `json:"measurements"`

	// Combinations are evaluated in order.
	Combinations []Combination `json:"combinations"`
}

// Load reads the file at path (format by extension) and parses it.
func Load(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf(opLoad, err)
	}
	doc, err := Parse(data, FormatFromPath(path), opts...)
	if err != nil {
		return nil, configErrorf(opLoad, err)
	}

	return doc, nil
}

// Parse decodes, selects, validates and binds a document.
//
// Errors: ErrSyntax, ErrPathNotFound, ErrSchema (the schema violation is
// joined to it), and measurement.ErrBadList from binding.
func Parse(data []byte, format Format, opts ...Option) (*Document, error) {
	o := gatherOptions(opts...)

	raw, err := toJSON(data, format)
	if err != nil {
		return nil, configErrorf(opParse, err)
	}

	if o.Path != "" {
		res := gjson.GetBytes(raw, o.Path)
		if !res.Exists() {
			return nil, configErrorf(opParse, fmt.Errorf("%w: %s", ErrPathNotFound, o.Path))
		}
		raw = []byte(res.Raw)
	}

	if err = validate(raw); err != nil {
		return nil, configErrorf(opParse, err)
	}

	doc := &Document{}
	if err = json.Unmarshal(raw, doc); err != nil {
		return nil, configErrorf(opParse, err)
	}
	if doc.Confidence == 0 {
		doc.Confidence = stat.OneSigmaLevel()
	}

	return doc, nil
}

// toJSON normalises the input to JSON bytes.
func toJSON(data []byte, format Format) ([]byte, error) {
	if format == FormatJSON {
		if !json.Valid(data) {
			return nil, ErrSyntax
		}
		return data, nil
	}

	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return out, nil
}

func validate(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err = dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if err = schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return nil
}
