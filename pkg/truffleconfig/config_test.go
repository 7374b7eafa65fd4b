// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package truffleconfig

import (
	"path/filepath"
	"testing"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const projectConfig = `# project settings
contracts_directory: ./contracts
networks:
  development:
    host: 127.0.0.1
    port: 8545
    network_id: "*"
  mainnet:
    network_id: 1
    consortium_id: 1556000000000
    gas: 4712388
    gasPrice: 100000000000
    provider:
      mnemonic: /project/abc.env
      url: https://mainnet.example
    websockets: true
compilers:
  solc:
    version: 0.5.0
`

func newProject(t *testing.T, content string) (afero.Fs, string) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/project", constants.TruffleConfigFileName)
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	return fs, path
}

func TestOpenMissing(t *testing.T) {
	_, err := OpenProject(afero.NewMemMapFs(), "/project")
	require.ErrorIs(t, err, constants.ErrTruffleConfigNotFound)
}

func TestGetNetworksKeepsFileOrder(t *testing.T) {
	fs, path := newProject(t, projectConfig)
	cfg, err := Open(fs, path)
	require.NoError(t, err)

	networks, err := cfg.GetNetworks()
	require.NoError(t, err)
	require.Len(t, networks, 2)
	require.Equal(t, "development", networks[0].Name)
	require.Equal(t, "mainnet", networks[1].Name)

	dev := networks[0].Options
	require.Equal(t, "127.0.0.1", dev.Host)
	require.Equal(t, 8545, dev.Port)
	require.Equal(t, NetworkID(constants.AnyNetworkID), dev.NetworkID)

	main := networks[1].Options
	require.Equal(t, NetworkID(constants.MainnetNetworkID), main.NetworkID)
	require.Equal(t, int64(1556000000000), main.ConsortiumID)
	require.Equal(t, constants.DefaultGas, main.Gas)
	require.NotNil(t, main.GasPrice)
	require.Equal(t, constants.DefaultGasPrice, *main.GasPrice)
	require.Equal(t, "/project/abc.env", main.Provider.Mnemonic)
	require.Equal(t, true, main.Extra["websockets"])
}

func TestSetNetworksIdempotent(t *testing.T) {
	fs, path := newProject(t, projectConfig)
	cfg, err := Open(fs, path)
	require.NoError(t, err)
	before, err := cfg.GetNetworks()
	require.NoError(t, err)

	require.NoError(t, cfg.SetNetworks(before))

	reopened, err := Open(fs, path)
	require.NoError(t, err)
	after, err := reopened.GetNetworks()
	require.NoError(t, err)
	require.Equal(t, before, after)

	// a second rewrite produces byte identical output
	first, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.NoError(t, reopened.SetNetworks(after))
	second, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
}

func TestSetNetworksPreservesOtherContent(t *testing.T) {
	fs, path := newProject(t, projectConfig)
	cfg, err := Open(fs, path)
	require.NoError(t, err)

	gasPrice := uint64(0)
	require.NoError(t, cfg.SetNetworks([]Network{{
		Name: "azure",
		Options: NetworkOptions{
			NetworkID:    constants.AnyNetworkID,
			ConsortiumID: 7,
			Gas:          constants.DefaultGas,
			GasPrice:     &gasPrice,
			Provider:     &Provider{Mnemonic: "/project/x.env", URL: "https://member/key"},
		},
	}}))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Equal(t, "./contracts", doc["contracts_directory"])
	require.Contains(t, doc, "compilers")

	networks := doc["networks"].(map[string]any)
	require.Len(t, networks, 1)
	azure := networks["azure"].(map[string]any)
	require.Equal(t, 0, azure["gasPrice"])
	require.Equal(t, "*", azure["network_id"])
	require.Contains(t, string(data), "# project settings")
}

func TestSetNetworksCreatesSection(t *testing.T) {
	fs, path := newProject(t, "contracts_directory: ./contracts\n")
	cfg, err := Open(fs, path)
	require.NoError(t, err)
	networks, err := cfg.GetNetworks()
	require.NoError(t, err)
	require.Empty(t, networks)

	networks = Upsert(networks, Network{Name: "ropsten", Options: NetworkOptions{NetworkID: "3"}})
	require.NoError(t, cfg.SetNetworks(networks))

	reopened, err := Open(fs, path)
	require.NoError(t, err)
	got, err := reopened.GetNetworks()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, NetworkID("3"), got[0].Options.NetworkID)
}

func TestSetNetworksValidation(t *testing.T) {
	fs, path := newProject(t, projectConfig)
	cfg, err := Open(fs, path)
	require.NoError(t, err)

	dup := []Network{
		{Name: "a", Options: NetworkOptions{NetworkID: "*"}},
		{Name: "a", Options: NetworkOptions{NetworkID: "1"}},
	}
	require.Error(t, cfg.SetNetworks(dup))
	require.Error(t, cfg.SetNetworks([]Network{{Name: "", Options: NetworkOptions{NetworkID: "*"}}}))
	require.Error(t, cfg.SetNetworks([]Network{{Name: "a"}}))

	// nothing was written
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	require.Equal(t, projectConfig, string(data))
}

func TestUpsert(t *testing.T) {
	networks := []Network{{Name: "a"}, {Name: "b"}}
	networks = Upsert(networks, Network{Name: "a", Options: NetworkOptions{Gas: 1}})
	require.Len(t, networks, 2)
	require.Equal(t, uint64(1), networks[0].Options.Gas)

	networks = Upsert(networks, Network{Name: "c"})
	require.Len(t, networks, 3)

	n, ok := Find(networks, "c")
	require.True(t, ok)
	require.Equal(t, "c", n.Name)
	_, ok = Find(networks, "z")
	require.False(t, ok)
}
