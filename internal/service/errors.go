// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
// application version is missing from the configuration.
var ErrVersionIsNotSpecified = errors.New("application version is not specified")
