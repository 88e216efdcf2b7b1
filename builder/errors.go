// SPDX-License-Identifier: MIT
// Package: orienteer/builder
//
// errors.go - sentinel errors returned by constructors.

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor has no RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for programmer errors such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
