// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "cloudeng.io/errors"

var (
	// ErrInvalidConfiguration is returned when an Aligner is created with
	// an invalid scoring scheme or mode.
	ErrInvalidConfiguration = errors.New("invalid alignment configuration")

	// ErrNotAligned is returned by accessors that require Align to have
	// been called first.
	ErrNotAligned = errors.New("alignment has not been computed")

	// ErrNotConfigured is returned by Align for an Aligner that was not
	// created via New or one of its variants.
	ErrNotConfigured = errors.New("aligner has no mode or sequences")
)
