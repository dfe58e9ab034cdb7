// Package config: sentinel error set.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates input that is not well-formed YAML or JSON.
	ErrSyntax = errors.New("config: malformed document")

	// ErrSchema indicates a document that does not match the schema.
	ErrSchema = errors.New("config: document does not match schema")

	// ErrPathNotFound indicates a selection path that matches nothing.
	ErrPathNotFound = errors.New("config: path not found")

	// ErrUnknownInput indicates a combination input that names no measurement
	// or earlier combination.
	ErrUnknownInput = errors.New("config: unknown input")

	// ErrDuplicateName indicates a combination whose name is already taken.
	ErrDuplicateName = errors.New("config: duplicate name")
)

// Operation tags for uniform error wrapping.
const (
	opLoad     = "Load"
	opParse    = "Parse"
	opEvaluate = "Evaluate"
)

// configErrorf wraps err with an operation tag. Call only with a non-nil err.
func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
