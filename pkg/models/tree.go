// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package models

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Tree is the set of known networks, in display order.
type Tree struct {
	Networks []*Network
}

// DefaultTree holds the local network and an empty managed network.
func DefaultTree() *Tree {
	local := NewNetwork(Local.Title(), Local)
	_ = local.AddChild(NewLocalConsortium(Local.Title(), constants.LocalChainURL))
	return &Tree{
		Networks: []*Network{
			local,
			NewNetwork(ManagedConsortium.Title(), ManagedConsortium),
		},
	}
}

func (t *Tree) Network(name string) (*Network, error) {
	for _, n := range t.Networks {
		if n.Name == name {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
}

// ManagedNetwork returns the first managed network, creating it if needed.
func (t *Tree) ManagedNetwork() *Network {
	for _, n := range t.Networks {
		if n.Kind.IsManaged() {
			return n
		}
	}
	n := NewNetwork(ManagedConsortium.Title(), ManagedConsortium)
	t.Networks = append(t.Networks, n)
	return n
}

// AddNetwork adds an unmanaged network with its single consortium.
func (t *Tree) AddNetwork(name string, kind Kind, url string) (*Network, error) {
	if _, err := t.Network(name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNetwork, name)
	}
	c, err := NewConsortium(kind, name, url)
	if err != nil {
		return nil, err
	}
	n := NewNetwork(name, kind)
	if err := n.AddChild(c); err != nil {
		return nil, err
	}
	t.Networks = append(t.Networks, n)
	return n, nil
}

// Consortia flattens the tree in display order
func (t *Tree) Consortia() []Consortium {
	var all []Consortium
	for _, n := range t.Networks {
		all = append(all, n.consortia...)
	}
	return all
}

// Parent returns the network owning c
func (t *Tree) Parent(c Consortium) (*Network, error) {
	for _, n := range t.Networks {
		for _, child := range n.consortia {
			if child == c {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrConsortiumMissing, c.Name())
}

type consortiumRecord struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	ID             *int64 `yaml:"id,omitempty"`
	SubscriptionID string `yaml:"subscription_id,omitempty"`
	ResourceGroup  string `yaml:"resource_group,omitempty"`
	MemberName     string `yaml:"member,omitempty"`
	Location       string `yaml:"location,omitempty"`
}

type networkRecord struct {
	Name      string             `yaml:"name"`
	Kind      string             `yaml:"kind"`
	Consortia []consortiumRecord `yaml:"consortia,omitempty"`
}

type treeFile struct {
	Networks []networkRecord `yaml:"networks"`
}

// TreeStore persists the network tree as yaml.
type TreeStore struct {
	fs   afero.Fs
	path string
}

func NewTreeStore(fs afero.Fs, baseDir string) *TreeStore {
	return &TreeStore{fs: fs, path: filepath.Join(baseDir, constants.NetworkTreeFileName)}
}

// Load reads the tree, returning DefaultTree when nothing was saved yet.
func (s *TreeStore) Load() (*Tree, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultTree(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read network tree: %w", err)
	}
	var file treeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	tree := &Tree{}
	for _, nr := range file.Networks {
		kind, err := KindFromString(nr.Kind)
		if err != nil {
			return nil, err
		}
		n := NewNetwork(nr.Name, kind)
		for _, cr := range nr.Consortia {
			c, err := cr.consortium(kind)
			if err != nil {
				return nil, err
			}
			if err := n.AddChild(c); err != nil {
				return nil, err
			}
		}
		tree.Networks = append(tree.Networks, n)
	}
	return tree, nil
}

func (cr consortiumRecord) consortium(kind Kind) (Consortium, error) {
	var (
		c   Consortium
		err error
	)
	if kind.IsManaged() {
		c = NewAzureConsortium(cr.Name, cr.URL, cr.SubscriptionID, cr.ResourceGroup, cr.MemberName, cr.Location)
	} else if c, err = NewConsortium(kind, cr.Name, cr.URL); err != nil {
		return nil, err
	}
	if cr.ID != nil {
		if err := c.SetID(*cr.ID); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *TreeStore) Save(tree *Tree) error {
	var file treeFile
	for _, n := range tree.Networks {
		nr := networkRecord{Name: n.Name, Kind: n.Kind.String()}
		for _, c := range n.consortia {
			cr := consortiumRecord{Name: c.Name(), URL: c.URL()}
			if id, ok := c.ID(); ok {
				cr.ID = &id
			}
			if azure, ok := c.(*AzureConsortium); ok {
				cr.SubscriptionID = azure.SubscriptionID
				cr.ResourceGroup = azure.ResourceGroup
				cr.MemberName = azure.MemberName
				cr.Location = azure.Location
			}
			nr.Consortia = append(nr.Consortia, cr)
		}
		file.Networks = append(file.Networks, nr)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), constants.DefaultPerms755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path, buf.Bytes(), constants.WriteReadReadPerms)
}
