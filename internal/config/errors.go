// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when a required storage setting is
	// missing or unusable (e.g. an empty client database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAdapterConfigs is returned when the client transport settings
	// are incomplete.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")

	// ErrInvalidAppConfigs is returned when required application settings
	// (token sign key, issuer) are missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs")
)
