// SPDX-License-Identifier: MIT
// Package: lattix/simcell

package simcell

// Method names used as error prefixes.
const (
	methodNew                = "New"
	methodAddGrain           = "AddGrain"
	methodGrain              = "Grain"
	methodUniqueCount        = "UniqueCount"
	methodRemovePlaneOfAtoms = "RemovePlaneOfAtoms"
	methodMinimumBox         = "MinimumBox"
	methodWriteData          = "WriteData"
	methodWriteDataFile      = "WriteDataFile"
)

// DefaultPrecision is the number of decimals wrapped positions are rounded to.
const DefaultPrecision = 5

// fractionDigits is applied to fractional coordinates before the integer
// part is removed, so values like 0.9999999999999 fold onto 1 → 0.
const fractionDigits = 10

// planeDigits is the rounding applied to atoms before a plane test.
const planeDigits = 10

// TimestampLayout is the layout of the data file header timestamp
// (day/month/year, 24h clock).
const TimestampLayout = "02/01/2006 15:04:05"

// maxRefolds bounds the extra fold passes Wrap makes to settle a point that
// rounding carried onto an upper face.
const maxRefolds = 3
