package cli

import (
	"strings"

	"github.com/katalvlaran/hepkin/format"
)

// valueResult is a single named quantity.
type valueResult struct {
	Name     string    `json:"name"`
	Value    jsonFloat `json:"value"`
	decimals int
}

func (r valueResult) String() string {
	return r.Name + " = " + format.RoundNumber(float64(r.Value), r.decimals, 1)
}

// branchMapping is one resolved field.
type branchMapping struct {
	Field  string `json:"field"`
	Branch string `json:"branch"`
}

// branchResult lists resolved fields for a sample version.
type branchResult struct {
	Version  string          `json:"version"`
	Mappings []branchMapping `json:"mappings"`
}

func (r branchResult) String() string {
	var sb strings.Builder
	sb.WriteString("# " + r.Version)
	for _, m := range r.Mappings {
		sb.WriteString("\n" + m.Field + " -> " + m.Branch)
	}
	return sb.String()
}

// countResult is a weighted count with its uncertainty.
type countResult struct {
	Value       jsonFloat `json:"value"`
	Uncertainty jsonFloat `json:"uncertainty"`
	Entries     int       `json:"entries"`
	text        string
}

func (r countResult) String() string {
	return "count = " + r.text + " (" + format.AddCommas(float64(r.Entries)) + " entries)"
}
