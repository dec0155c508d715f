// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrUserNotFound is returned by repository lookups, updates, and deletes
// when no record with the requested id exists. Callers match it with
// [errors.Is] to translate it into an empty 404 response.
var ErrUserNotFound = errors.New("user not found")
