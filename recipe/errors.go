// SPDX-License-Identifier: MIT
// Package: lattix/recipe
//
// errors.go - sentinel errors for the recipe package.

package recipe

import "errors"

// ErrInvalidRecipe indicates a recipe that failed decoding or validation.
// Field-level validator errors are wrapped alongside it.
var ErrInvalidRecipe = errors.New("recipe: invalid recipe")

// ErrBuildFailed indicates a failure while generating or assembling grains.
var ErrBuildFailed = errors.New("recipe: build failed")

// ErrNoOutput indicates Run on a recipe without an output path.
var ErrNoOutput = errors.New("recipe: no output path")
