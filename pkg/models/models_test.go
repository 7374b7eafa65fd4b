// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package models

import (
	"testing"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestKindFromString(t *testing.T) {
	for _, k := range []Kind{Local, TestChain, PublicTestnet, PublicMainnet, ManagedConsortium} {
		got, err := KindFromString(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := KindFromString("ropsten")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestConsortiumIDSetOnce(t *testing.T) {
	c := NewTestnetConsortium("ropsten", "https://ropsten.example")
	_, ok := c.ID()
	require.False(t, ok)

	require.NoError(t, c.SetID(42))
	id, ok := c.ID()
	require.True(t, ok)
	require.Equal(t, int64(42), id)

	require.ErrorIs(t, c.SetID(43), ErrConsortiumIDAlreadySet)
	id, _ = c.ID()
	require.Equal(t, int64(42), id)
}

func TestAddChild(t *testing.T) {
	n := NewNetwork("ropsten", PublicTestnet)
	require.NoError(t, n.AddChild(NewTestnetConsortium("ropsten", "https://a")))
	require.ErrorIs(t, n.AddChild(NewTestnetConsortium("other", "https://b")), ErrSingleConsortium)
	require.ErrorIs(t, n.AddChild(NewMainnetConsortium("main", "https://c")), ErrKindMismatch)

	managed := NewNetwork("abs", ManagedConsortium)
	require.NoError(t, managed.AddChild(NewAzureConsortium("c1", "https://m1", "sub", "rg", "m1", "eastus")))
	require.NoError(t, managed.AddChild(NewAzureConsortium("c2", "https://m2", "sub", "rg", "m2", "eastus")))
	require.ErrorIs(t, managed.AddChild(NewAzureConsortium("c1", "https://m3", "sub", "rg", "m3", "eastus")), ErrConsortiumExists)
	require.Len(t, managed.Consortia(), 2)
}

func TestTreeStoreDefault(t *testing.T) {
	store := NewTreeStore(afero.NewMemMapFs(), "/home/.deployer")
	tree, err := store.Load()
	require.NoError(t, err)

	consortia := tree.Consortia()
	require.Len(t, consortia, 1)
	require.Equal(t, Local, consortia[0].Kind())
	require.Equal(t, constants.LocalChainURL, consortia[0].URL())
	require.True(t, tree.ManagedNetwork().Kind.IsManaged())
	require.Len(t, tree.Networks, 2)
}

func TestTreeStoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewTreeStore(fs, "/home/.deployer")

	tree := DefaultTree()
	n, err := tree.AddNetwork("ropsten", PublicTestnet, "https://ropsten.example")
	require.NoError(t, err)
	require.NoError(t, n.Consortia()[0].SetID(1001))
	_, err = tree.AddNetwork("ropsten", PublicTestnet, "https://dup")
	require.ErrorIs(t, err, ErrDuplicateNetwork)

	azure := NewAzureConsortium("cons", "https://member.blockchain.azure.com:3200", "sub-1", "rg", "member", "eastus")
	require.NoError(t, tree.ManagedNetwork().AddChild(azure))
	require.NoError(t, store.Save(tree))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Networks, 3)

	ropsten, err := loaded.Network("ropsten")
	require.NoError(t, err)
	id, ok := ropsten.Consortia()[0].ID()
	require.True(t, ok)
	require.Equal(t, int64(1001), id)

	got, ok := loaded.ManagedNetwork().Consortia()[0].(*AzureConsortium)
	require.True(t, ok)
	require.Equal(t, "sub-1", got.SubscriptionID)
	require.Equal(t, "member", got.MemberName)

	parent, err := loaded.Parent(got)
	require.NoError(t, err)
	require.Equal(t, ManagedConsortium, parent.Kind)
}

func TestTreeStoreRejectsUnknownKind(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/base/networks.yaml", []byte("networks:\n  - name: x\n    kind: sidechain\n"), 0o644))
	_, err := NewTreeStore(fs, "/base").Load()
	require.ErrorIs(t, err, ErrUnknownKind)
}
