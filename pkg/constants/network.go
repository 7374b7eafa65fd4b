// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Network IDs as they appear in the project configuration.
const (
	MainnetNetworkID = "1"
	LocalHost        = "127.0.0.1"
	LocalPort        = 8545
	LocalChainURL    = "http://127.0.0.1:8545"
)
