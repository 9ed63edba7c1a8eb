// SPDX-License-Identifier: MIT
// Package: lattix/cell

package cell

// Method names used as error prefixes.
const (
	methodNewUnitCell      = "NewUnitCell"
	methodNewRealCell      = "NewRealCell"
	methodSnapToNode       = "SnapToNode"
	methodDirectionalMotif = "DirectionalMotif"
	methodLookup           = "Lookup"
)

// dimension is fixed: lattix works in three dimensions only.
const dimension = 3
