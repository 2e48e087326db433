// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     formula
// Description: Formula descriptors binding functions to ids and decoders
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package formula

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formula binds a typed formula function to its domain-qualified id, a
// summary and a description of its input.
type Formula struct {
	Domain  string  `json:"domain" yaml:"domain"`
	Name    string  `json:"name" yaml:"name"`
	Summary string  `json:"summary" yaml:"summary"`
	Inputs  []Field `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Union   *Union  `json:"union,omitempty" yaml:"union,omitempty"`

	eval func(raw interface{}) (interface{}, error)
}

// ID returns the domain-qualified id, e.g. "quality.cpk"
func (f Formula) ID() string {
	return f.Domain + "." + f.Name
}

// Evaluate decodes a raw input record and runs the formula. Decoding
// failures and formula failures are returned as *Failure.
func (f Formula) Evaluate(raw interface{}) (interface{}, error) {
	if f.eval == nil {
		return nil, NotComputable(f.ID(), "", "formula has no implementation")
	}
	return f.eval(raw)
}

// Template returns an editable input skeleton. Union formulas use their
// first variant in sorted order.
func (f Formula) Template() map[string]interface{} {
	if f.Union == nil {
		return Template(f.Inputs)
	}
	names := f.Union.VariantNames()
	if len(names) == 0 {
		return map[string]interface{}{}
	}
	record := Template(f.Union.Variants[names[0]])
	record[f.Union.Discriminant] = names[0]
	return record
}

// Fixed builds a formula whose input is a single struct type. The raw record
// is checked against the fields derived from In and then decoded strictly.
func Fixed[In, Out any](domain, name, summary string, fn func(In) (Out, error)) Formula {
	var prototype In
	f := Formula{
		Domain:  domain,
		Name:    name,
		Summary: summary,
		Inputs:  FieldsOf(prototype),
	}

	id, fields := f.ID(), f.Inputs
	f.eval = func(raw interface{}) (interface{}, error) {
		if result := ValidateRecord(fields, raw); !result.Valid {
			return nil, ShapeFailure(id, result)
		}
		var in In
		if err := DecodeRecord(id, raw, &in); err != nil {
			return nil, err
		}
		out, err := fn(in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return f
}

// Tagged builds a formula whose input is a discriminated union. The raw
// record is guarded with the union before decode turns it into In.
func Tagged[In, Out any](domain, name, summary string, union *Union, decode func(interface{}) (In, error), fn func(In) (Out, error)) Formula {
	f := Formula{
		Domain:  domain,
		Name:    name,
		Summary: summary,
		Union:   union,
	}

	id := f.ID()
	f.eval = func(raw interface{}) (interface{}, error) {
		if result := union.Validate(raw); !result.Valid {
			return nil, ShapeFailure(id, result)
		}
		in, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out, err := fn(in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return f
}

// DecodeRecord strictly decodes a raw record into target. Unknown fields and
// values of the wrong primitive type yield an invalid shape failure.
func DecodeRecord(formula string, record interface{}, target interface{}) error {
	content, err := yaml.Marshal(record)
	if err != nil {
		return InvalidShape(formula, "", err.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		return InvalidShape(formula, "", strings.TrimPrefix(err.Error(), "yaml: "))
	}
	return nil
}
