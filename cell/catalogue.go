// SPDX-License-Identifier: MIT
// Package: lattix/cell
//
// catalogue.go - common cubic motifs.

package cell

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Structure names accepted by Lookup (case-insensitive).
const (
	NameFCC         = "fcc"
	NameBCC         = "bcc"
	NameSimpleCubic = "sc"
)

var catalogue = map[string][]r3.Vec{
	NameFCC: {
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0},
		{X: 0.5, Y: 0, Z: 0.5},
		{X: 0, Y: 0.5, Z: 0.5},
	},
	NameBCC: {
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 0.5, Z: 0.5},
	},
	NameSimpleCubic: {
		{X: 0, Y: 0, Z: 0},
	},
}

// FCC returns the 4-node face-centred cubic motif.
func FCC() *UnitCell { return mustCatalogue(NameFCC) }

// BCC returns the 2-node body-centred cubic motif.
func BCC() *UnitCell { return mustCatalogue(NameBCC) }

// SimpleCubic returns the single-node simple cubic motif.
func SimpleCubic() *UnitCell { return mustCatalogue(NameSimpleCubic) }

// Lookup returns the catalogue motif registered under name.
func Lookup(name string) (*UnitCell, error) {
	nodes, ok := catalogue[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%s: %q (known: %s): %w",
			methodLookup, name, strings.Join(Names(), ","), ErrUnknownStructure)
	}
	return NewUnitCell(nodes)
}

// Names lists the catalogue keys in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalogue))
	for k := range catalogue {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func mustCatalogue(name string) *UnitCell {
	uc, err := NewUnitCell(catalogue[name])
	if err != nil {
		// Catalogue entries are static and valid.
		panic(err)
	}
	return uc
}
