// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - ValidationError: a typed error carrying every collected field violation,
//     so callers can surface all failures at once instead of only the first.
//
// Usage patterns:
//  1. Implement Validator to encode domain-specific validation logic.
//  2. Inject Validator implementations into services or handlers.
//  3. On failure, unwrap the returned error with [errors.As] into
//     *ValidationError to obtain the structured violation list.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input. All field rules are evaluated
	// eagerly; every failure is collected rather than stopping at the first.
	Validate(context.Context, any) error
}
