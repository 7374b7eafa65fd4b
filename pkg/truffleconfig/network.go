// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package truffleconfig

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// NetworkID is either a numeric chain id or "*" for any network.
type NetworkID string

func (id NetworkID) IsNumeric() bool {
	_, err := strconv.ParseUint(string(id), 10, 64)
	return err == nil
}

func (id NetworkID) MarshalYAML() (any, error) {
	if id.IsNumeric() {
		n, _ := strconv.ParseUint(string(id), 10, 64)
		return n, nil
	}
	return string(id), nil
}

func (id *NetworkID) UnmarshalYAML(node *yaml.Node) error {
	*id = NetworkID(node.Value)
	return nil
}

type Provider struct {
	// Mnemonic is the path of the file holding the phrase, never the phrase.
	Mnemonic string `yaml:"mnemonic" validate:"required"`
	URL      string `yaml:"url" validate:"required"`
}

type NetworkOptions struct {
	Host         string    `yaml:"host,omitempty"`
	Port         int       `yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	NetworkID    NetworkID `yaml:"network_id" validate:"required"`
	ConsortiumID int64     `yaml:"consortium_id,omitempty"`
	Gas          uint64    `yaml:"gas,omitempty"`
	GasPrice     *uint64   `yaml:"gasPrice,omitempty"`
	Provider     *Provider `yaml:"provider,omitempty"`

	// Extra keeps options this tool does not manage.
	Extra map[string]any `yaml:",inline"`
}

// Network is one named entry of the networks section.
type Network struct {
	Name    string `validate:"required"`
	Options NetworkOptions
}

// Upsert replaces the entry named like n, or appends n.
func Upsert(networks []Network, n Network) []Network {
	for i := range networks {
		if networks[i].Name == n.Name {
			networks[i] = n
			return networks
		}
	}
	return append(networks, n)
}

// Find returns the entry with the given name
func Find(networks []Network, name string) (Network, bool) {
	for _, n := range networks {
		if n.Name == name {
			return n, true
		}
	}
	return Network{}, false
}
