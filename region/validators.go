// SPDX-License-Identifier: MIT
// Package: lattix/region

package region

import (
	"fmt"
	"math"
)

// validateExtent checks that v is finite and ≥ 0 (or > 0 when strict).
func validateExtent(method, name string, v float64, strict bool) error {
	bad := math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || (strict && v == 0)
	if bad {
		return fmt.Errorf("%s: %s=%g: %w", method, name, v, ErrBadDimension)
	}
	return nil
}
