// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"testing"

	"github.com/luxfi/deployer/internal/testutils"
	"github.com/luxfi/deployer/pkg/models"
	"github.com/luxfi/deployer/pkg/prompts/mocks"
	"github.com/stretchr/testify/require"
)

func TestUnmanagedKind(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Kind
		wantErr bool
	}{
		{in: "local", want: models.Local},
		{in: "TestChain", want: models.TestChain},
		{in: "testnet", want: models.PublicTestnet},
		{in: "mainnet", want: models.PublicMainnet},
		{in: "azure", wantErr: true},
		{in: "ropsten", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := unmanagedKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAddNetworkThenList(t *testing.T) {
	require := testutils.SetupTest(t)
	app = testutils.SetupTestApp(t, &mocks.Prompter{})
	testutils.WriteProject(t, app.Fs, "/project", "networks:\n  development:\n    host: 127.0.0.1\n    port: 8545\n    network_id: \"*\"\n")

	addKind, addName, addURL = "testnet", "ropsten", "https://ropsten.example"
	t.Cleanup(func() { addKind, addName, addURL, listProjectDir = "", "", "", "" })
	require.NoError(addNetwork(nil, nil))

	tree, err := app.NetworkTree().Load()
	require.NoError(err)
	n, err := tree.Network("ropsten")
	require.NoError(err)
	require.Equal(models.PublicTestnet, n.Kind)
	require.Len(n.Consortia(), 1)

	// a second add with the same name is rejected
	require.ErrorIs(addNetwork(nil, nil), models.ErrDuplicateNetwork)

	listProjectDir = "/project"
	entries, err := projectEntries()
	require.NoError(err)
	require.Len(entries, 1)
	require.NoError(listNetworks(nil, nil))
}

func TestAddNetworkRejectsBadInput(t *testing.T) {
	require := testutils.SetupTest(t)
	app = testutils.SetupTestApp(t, &mocks.Prompter{})
	t.Cleanup(func() { addKind, addName, addURL = "", "", "" })

	addKind, addName, addURL = "azure", "cons", "https://cons.example"
	require.Error(addNetwork(nil, nil))

	addKind, addURL = "testnet", "ftp://cons.example"
	require.Error(addNetwork(nil, nil))
}
