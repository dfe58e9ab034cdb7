// Package config reads measurement documents: named measurements plus the
// combinations to evaluate on them.
//
// A document looks like (YAML shown, JSON is equivalent):
//
//	confidence: 0.6827        # optional, defaults to one sigma
//	measurements:
//	  signal:     [120, 11, 10]
//	  background: [30, 5]
//	  lumi:       [1, 0.02]
//	combinations:
//	  - {name: total, op: sum,  inputs: [signal, background]}
//	  - {name: norm,  op: prod, inputs: [total, lumi]}
//
// Measurements use the list encoding of package measurement. Combinations are
// evaluated in order and may reference the results of earlier ones.
//
// Pipeline:
//
//	decode (YAML or JSON) → select a sub-document (gjson path, optional)
//	→ validate against the embedded JSON schema → bind to Document.
package config
