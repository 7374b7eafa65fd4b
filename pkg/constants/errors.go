// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var (
	ErrTruffleConfigNotFound = errors.New("truffle configuration file doesn't exist in the project directory")
	ErrNoAzureCredentials    = errors.New("azure credentials are not configured, set them with 'deployer config set azure.<key> <value>'")
)
