// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package models contains the deployment network tree.
package models

import (
	"errors"
	"fmt"
	"strings"
)

type Kind int64

const (
	Undefined Kind = iota
	Local
	TestChain
	PublicTestnet
	PublicMainnet
	ManagedConsortium
)

var (
	ErrUnknownKind       = errors.New("unknown network kind")
	ErrSingleConsortium  = errors.New("network already has its consortium")
	ErrKindMismatch      = errors.New("consortium kind does not match network kind")
	ErrDuplicateNetwork  = errors.New("network already exists")
	ErrConsortiumExists  = errors.New("consortium already exists")
	ErrNetworkNotFound   = errors.New("network not found")
	ErrConsortiumMissing = errors.New("consortium not found")
)

func (k Kind) String() string {
	switch k {
	case Local:
		return "local"
	case TestChain:
		return "testchain"
	case PublicTestnet:
		return "testnet"
	case PublicMainnet:
		return "mainnet"
	case ManagedConsortium:
		return "azure"
	}
	return "undefined"
}

// Title is the label shown to the user
func (k Kind) Title() string {
	switch k {
	case Local:
		return "Local Network"
	case TestChain:
		return "Test Chain"
	case PublicTestnet:
		return "Ethereum Testnet"
	case PublicMainnet:
		return "Ethereum Mainnet"
	case ManagedConsortium:
		return "Azure Blockchain Service"
	}
	return "Unknown Network"
}

func KindFromString(s string) (Kind, error) {
	for _, k := range []Kind{Local, TestChain, PublicTestnet, PublicMainnet, ManagedConsortium} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return Undefined, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsManaged reports whether networks of this kind hold one child per
// consortium membership instead of a single synthetic consortium.
func (k Kind) IsManaged() bool {
	return k == ManagedConsortium
}

// Network is a named deployment target owning its consortia.
type Network struct {
	Name      string
	Kind      Kind
	consortia []Consortium
}

func NewNetwork(name string, kind Kind) *Network {
	return &Network{Name: name, Kind: kind}
}

func (n *Network) Consortia() []Consortium {
	return n.consortia
}

// AddChild attaches c to the network. Unmanaged networks own exactly one
// consortium representing themselves.
func (n *Network) AddChild(c Consortium) error {
	if c.Kind() != n.Kind {
		return fmt.Errorf("%w: %s into %s", ErrKindMismatch, c.Kind(), n.Kind)
	}
	if !n.Kind.IsManaged() && len(n.consortia) > 0 {
		return fmt.Errorf("%w: %s", ErrSingleConsortium, n.Name)
	}
	for _, existing := range n.consortia {
		if existing.Name() == c.Name() {
			return fmt.Errorf("%w: %s", ErrConsortiumExists, c.Name())
		}
	}
	n.consortia = append(n.consortia, c)
	return nil
}
