// SPDX-License-Identifier: MIT
// Package: evenflow/gen
//
// errors.go — sentinel errors for the gen package.
// Callers branch with errors.Is; constructors attach context with %w.

package gen

import "errors"

// ErrTooFewJunctions indicates n is below the constructor's minimum.
var ErrTooFewJunctions = errors.New("gen: too few junctions")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrInvalidWeightRange indicates lo > hi or a bound outside
// [minrange.MinWeight, minrange.MaxWeight].
var ErrInvalidWeightRange = errors.New("gen: invalid weight range")
