// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c := New(v)

	require.Equal(t, "npx", c.DeployCommand())
	require.Equal(t, []string{"truffle", "migrate", "--reset", "--network"}, c.DeployArgs())
	require.Equal(t, "ganache", c.LocalChainCommand())
	require.Equal(t, 8545, c.LocalChainPort())
	require.Equal(t, 300*time.Millisecond, c.DebounceInterval())
	require.Empty(t, c.ProjectDir())

	creds := c.AzureCredentials()
	require.Equal(t, constants.DefaultAzureEndpoint, creds.Endpoint)
	require.Equal(t, constants.DefaultAzureLocation, creds.Location)
	require.Empty(t, creds.ClientSecret)
}

func TestSetConfigValue(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	path := filepath.Join(t.TempDir(), "deployer.yaml")
	v.SetConfigFile(path)
	c := New(v)

	require.NoError(t, c.SetConfigValue(constants.ConfigAzureTenantID, "tenant"))
	require.NoError(t, c.SetConfigValue(constants.ConfigDebounceInterval, "1s"))

	reread := viper.New()
	reread.SetConfigFile(path)
	require.NoError(t, reread.ReadInConfig())
	require.Equal(t, "tenant", reread.GetString(constants.ConfigAzureTenantID))
	require.Equal(t, time.Second, New(reread).DebounceInterval())
	require.Contains(t, c.Keys(), constants.ConfigAzureTenantID)
}

func TestGetConfigStringValueJoinsLists(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c := New(v)

	require.Equal(t, "truffle,migrate,--reset,--network", c.GetConfigStringValue(constants.ConfigDeployArgs))
	require.Equal(t, "npx", c.GetConfigStringValue(constants.ConfigDeployCommand))

	v.Set(constants.ConfigDeployArgs, []any{"truffle", "migrate"})
	require.Equal(t, "truffle,migrate", c.GetConfigStringValue(constants.ConfigDeployArgs))
}
