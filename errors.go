// errors.go: sentinel errors for programmer misuse
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package conduit

import "errors"

// Pre-allocated errors to avoid allocations in hot paths.
var (
	// ErrNegativeLimit is the value New and NewTuned panic with when limit
	// is negative.
	ErrNegativeLimit = errors.New("conduit: negative limit")

	// ErrNegativeReserve is returned by Reserve when n is negative.
	ErrNegativeReserve = errors.New("conduit: negative reserve count")
)
