// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/luxfi/deployer/pkg/azure"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/viper"
)

// Config exposes typed access to the settings read by viper.
type Config struct {
	v *viper.Viper
}

// New wraps v, or the global viper instance when v is nil.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.GetViper()
	}
	return &Config{v: v}
}

// SetDefaults registers the default value of every known key
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ConfigDeployCommand, constants.DefaultDeployCommand)
	v.SetDefault(constants.ConfigDeployArgs, constants.DefaultDeployArgs)
	v.SetDefault(constants.ConfigLocalChainCommand, constants.DefaultLocalChainCommand)
	v.SetDefault(constants.ConfigLocalChainPort, constants.LocalPort)
	v.SetDefault(constants.ConfigDebounceInterval, constants.DefaultDebounceInterval)
	v.SetDefault(constants.ConfigAzureEndpoint, constants.DefaultAzureEndpoint)
	v.SetDefault(constants.ConfigAzureLocation, constants.DefaultAzureLocation)
}

func (c *Config) ProjectDir() string {
	return c.v.GetString(constants.ConfigProjectDir)
}

func (c *Config) DeployCommand() string {
	return c.v.GetString(constants.ConfigDeployCommand)
}

func (c *Config) DeployArgs() []string {
	return c.v.GetStringSlice(constants.ConfigDeployArgs)
}

func (c *Config) LocalChainCommand() string {
	return c.v.GetString(constants.ConfigLocalChainCommand)
}

func (c *Config) LocalChainPort() int {
	return c.v.GetInt(constants.ConfigLocalChainPort)
}

func (c *Config) DebounceInterval() time.Duration {
	if d := c.v.GetDuration(constants.ConfigDebounceInterval); d > 0 {
		return d
	}
	return constants.DefaultDebounceInterval
}

// AzureCredentials returns the service principal used for Azure lookups
func (c *Config) AzureCredentials() azure.Credentials {
	return azure.Credentials{
		TenantID:       c.v.GetString(constants.ConfigAzureTenantID),
		ClientID:       c.v.GetString(constants.ConfigAzureClientID),
		ClientSecret:   c.v.GetString(constants.ConfigAzureClientSecret),
		SubscriptionID: c.v.GetString(constants.ConfigAzureSubscription),
		Location:       c.v.GetString(constants.ConfigAzureLocation),
		Endpoint:       c.v.GetString(constants.ConfigAzureEndpoint),
		TokenURL:       c.v.GetString(constants.ConfigAzureTokenURL),
	}
}

// GetConfigStringValue renders list values comma separated, the way
// 'config set' accepts them.
func (c *Config) GetConfigStringValue(key string) string {
	switch v := c.v.Get(key).(type) {
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, p := range v {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	}
	return c.v.GetString(key)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

// SetConfigValue stores key and writes the config file
func (c *Config) SetConfigValue(key string, value interface{}) error {
	c.v.Set(key, value)
	return c.v.WriteConfig()
}

// Keys lists every known key in sorted order
func (c *Config) Keys() []string {
	keys := c.v.AllKeys()
	sort.Strings(keys)
	return keys
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}
