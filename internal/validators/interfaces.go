// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// [DocumentValidator] covers the marketplace inputs: publish requests,
// uploaded files and signed login challenges. Failures wrap the sentinel
// errors of this package so callers can map them with [errors.Is].
package validators

import "context"

// Validator checks a value. When fields are given only those fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
