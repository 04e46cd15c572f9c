// SPDX-License-Identifier: MIT
// Package: nanoschema
//
// Purpose:
//   - YAML representation of the branch table and its validation.
//   - Load, LoadFile and the embedded default table.
//
// Notes:
//   - Decoding is strict: unknown keys are rejected so that a typo such as
//     "pre-ul" cannot silently turn a condition into a wildcard.

package nanoschema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_table.yaml
var defaultTable []byte

// tableFile is the on-disk layout of a branch table.
type tableFile struct {
	Fields map[string]tableField `yaml:"fields"`
}

// tableField lists the rules of one logical field.
type tableField struct {
	// Default is used when no rule matches; empty means the field name.
	Default string      `yaml:"default,omitempty"`
	Rules   []tableRule `yaml:"rules,omitempty"`
}

// tableRule maps a condition to a branch.
type tableRule struct {
	When   condition `yaml:"when"`
	Branch string    `yaml:"branch"`
}

// condition holds the constraints of a rule; nil fields match anything.
type condition struct {
	Year           *int     `yaml:"year,omitempty"`
	Fastsim        *bool    `yaml:"fastsim,omitempty"`
	PreUL          *bool    `yaml:"pre_ul,omitempty"`
	NanoAODBelow   *float64 `yaml:"nanoaod_below,omitempty"`
	NanoAODAtLeast *float64 `yaml:"nanoaod_at_least,omitempty"`
}

// matches reports whether every set constraint of c holds for v.
func (c condition) matches(v Version) bool {
	if c.Year != nil && *c.Year != v.Year {
		return false
	}
	if c.Fastsim != nil && *c.Fastsim != v.Fastsim {
		return false
	}
	if c.PreUL != nil && *c.PreUL != v.PreUL {
		return false
	}
	if c.NanoAODBelow != nil && !(v.NanoAOD+nanoAODSlack < *c.NanoAODBelow) {
		return false
	}
	if c.NanoAODAtLeast != nil && v.NanoAOD+nanoAODSlack < *c.NanoAODAtLeast {
		return false
	}

	return true
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	r, err := Load(bytes.NewReader(defaultTable))
	if err != nil {
		panic(fmt.Sprintf("nanoschema: built-in table: %v", err))
	}

	return r
})

// Default returns the resolver over the built-in table. The same instance
// is returned on every call.
func Default() *Resolver {
	return defaultResolver()
}

// Load parses a YAML branch table from r.
//
// Errors:
//   - ErrInvalidTable for malformed YAML, unknown keys, an empty table,
//     empty field or branch names, or non-finite NanoAOD thresholds.
func Load(r io.Reader) (*Resolver, error) {
	var tf tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalidTablef("empty document")
		}

		return nil, invalidTablef("%v", err)
	}
	if err := validateTable(&tf); err != nil {
		return nil, err
	}

	return newResolver(tf), nil
}

// LoadFile reads and parses the table at path.
func LoadFile(path string) (*Resolver, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nanoschema: read table: %w", err)
	}
	r, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// validateTable checks the structural rules Load promises.
func validateTable(tf *tableFile) error {
	if len(tf.Fields) == 0 {
		return invalidTablef("no fields")
	}
	for name, f := range tf.Fields {
		if name == "" {
			return invalidTablef("empty field name")
		}
		for i, rule := range f.Rules {
			if rule.Branch == "" {
				return invalidTablef("%s: rules[%d]: branch is required", name, i)
			}
			for _, x := range []*float64{rule.When.NanoAODBelow, rule.When.NanoAODAtLeast} {
				if x != nil && (math.IsNaN(*x) || math.IsInf(*x, 0)) {
					return invalidTablef("%s: rules[%d]: NanoAOD threshold must be finite", name, i)
				}
			}
		}
	}

	return nil
}
