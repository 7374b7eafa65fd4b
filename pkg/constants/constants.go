// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644
	WriteReadUserOnly  = 0o600

	BaseDirName = ".deployer"
	LogDir      = "logs"
	LogFileName = "deployer.log"
	RunDir      = "runs"

	LocalChainRunFile = "localchain.run"
	LocalChainLogName = "localchain.log"

	NetworkTreeFileName = "networks.yaml"
	MnemonicRefFileName = "mnemonics.yaml"

	DefaultConfigFileName = "deployer"
	DefaultConfigFileType = "yaml"
	EnvPrefix             = "DEPLOYER"

	TruffleConfigFileName = "truffle-config.yaml"
	MnemonicFileSuffix    = ".env"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	RequestTimeout    = 3 * time.Minute
	APIRequestTimeout = 30 * time.Second

	DefaultDebounceInterval = 300 * time.Millisecond
	SpinnerInterval         = 100 * time.Millisecond
	LocalChainStartupDelay  = 2 * time.Second
)

// Deployment defaults.
const (
	DefaultGas      uint64 = 4712388
	DefaultGasPrice uint64 = 100000000000

	DevelopmentNetworkName = "development"
	AnyNetworkID           = "*"
)

// Toolchain.
const (
	TruffleAppName           = "truffle"
	HdWalletProviderName     = "@truffle/hdwallet-provider"
	NpmCommand               = "npm"
	DefaultDeployCommand     = "npx"
	DefaultLocalChainCommand = "ganache"

	// HdWalletProviderRequiredTruffleVersion is the first truffle release that
	// no longer bundles an HD wallet provider.
	HdWalletProviderRequiredTruffleVersion = "v5.0.0"
	HdWalletProviderMinVersion             = "v1.0.6"
)

var DefaultDeployArgs = []string{"truffle", "migrate", "--reset", "--network"}

// Validation bounds.
const (
	MinPasswordLength = 12
	MaxPasswordLength = 72

	MinResourceGroupLength = 1
	MaxResourceGroupLength = 90

	MinConsortiumAndMemberLength = 2
	MaxConsortiumAndMemberLength = 20
)

// Config keys.
const (
	ConfigProjectDir         = "project-dir"
	ConfigDeployCommand      = "deploy.command"
	ConfigDeployArgs         = "deploy.args"
	ConfigLocalChainCommand  = "local-chain.command"
	ConfigLocalChainPort     = "local-chain.port"
	ConfigDebounceInterval   = "validation.debounce"
	ConfigAzureTenantID      = "azure.tenant-id"
	ConfigAzureClientID      = "azure.client-id"
	ConfigAzureClientSecret  = "azure.client-secret"
	ConfigAzureSubscription  = "azure.subscription-id"
	ConfigAzureLocation      = "azure.location"
	ConfigAzureEndpoint      = "azure.endpoint"
	ConfigAzureTokenURL      = "azure.token-url"
	DefaultAzureEndpoint     = "https://management.azure.com"
	DefaultAzureTokenURLTmpl = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
	DefaultAzureLocation     = "eastus"
)
