// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package models

import (
	"errors"
	"fmt"
)

var ErrConsortiumIDAlreadySet = errors.New("consortium id already set")

// Consortium is one deployable membership of a Network. The concrete
// variants are LocalConsortium, TestChainConsortium, TestnetConsortium,
// MainnetConsortium and AzureConsortium.
type Consortium interface {
	Name() string
	URL() string
	Kind() Kind
	// ID returns the numeric id once it has been resolved.
	ID() (int64, bool)
	// SetID resolves the id. It can only be called once.
	SetID(id int64) error
	isConsortium()
}

type identity struct {
	name string
	url  string
	id   *int64
}

func (c *identity) Name() string {
	return c.name
}

func (c *identity) URL() string {
	return c.url
}

func (c *identity) ID() (int64, bool) {
	if c.id == nil {
		return 0, false
	}
	return *c.id, true
}

func (c *identity) SetID(id int64) error {
	if c.id != nil {
		return fmt.Errorf("%w: %s has id %d", ErrConsortiumIDAlreadySet, c.name, *c.id)
	}
	c.id = &id
	return nil
}

func (*identity) isConsortium() {}

type LocalConsortium struct {
	identity
}

func NewLocalConsortium(name, url string) *LocalConsortium {
	return &LocalConsortium{identity{name: name, url: url}}
}

func (*LocalConsortium) Kind() Kind { return Local }

type TestChainConsortium struct {
	identity
}

func NewTestChainConsortium(name, url string) *TestChainConsortium {
	return &TestChainConsortium{identity{name: name, url: url}}
}

func (*TestChainConsortium) Kind() Kind { return TestChain }

type TestnetConsortium struct {
	identity
}

func NewTestnetConsortium(name, url string) *TestnetConsortium {
	return &TestnetConsortium{identity{name: name, url: url}}
}

func (*TestnetConsortium) Kind() Kind { return PublicTestnet }

type MainnetConsortium struct {
	identity
}

func NewMainnetConsortium(name, url string) *MainnetConsortium {
	return &MainnetConsortium{identity{name: name, url: url}}
}

func (*MainnetConsortium) Kind() Kind { return PublicMainnet }

// AzureConsortium is a membership in an Azure Blockchain Service consortium.
type AzureConsortium struct {
	identity
	SubscriptionID string
	ResourceGroup  string
	MemberName     string
	Location       string
}

func NewAzureConsortium(name, url, subscriptionID, resourceGroup, memberName, location string) *AzureConsortium {
	return &AzureConsortium{
		identity:       identity{name: name, url: url},
		SubscriptionID: subscriptionID,
		ResourceGroup:  resourceGroup,
		MemberName:     memberName,
		Location:       location,
	}
}

func (*AzureConsortium) Kind() Kind { return ManagedConsortium }

// NewConsortium builds the unmanaged variant matching kind.
func NewConsortium(kind Kind, name, url string) (Consortium, error) {
	switch kind {
	case Local:
		return NewLocalConsortium(name, url), nil
	case TestChain:
		return NewTestChainConsortium(name, url), nil
	case PublicTestnet:
		return NewTestnetConsortium(name, url), nil
	case PublicMainnet:
		return NewMainnetConsortium(name, url), nil
	case ManagedConsortium:
		return nil, fmt.Errorf("%w: managed consortia need azure identifiers", ErrKindMismatch)
	}
	return nil, ErrUnknownKind
}
