// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package truffleconfig reads and rewrites the networks section of a
// project's truffle configuration while leaving every other key as it was.
package truffleconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const networksKey = "networks"

var validate = validator.New()

type networkSet struct {
	Networks []Network `validate:"unique=Name,dive"`
}

// Config is an opened project configuration.
type Config struct {
	fs   afero.Fs
	path string
	doc  yaml.Node
}

// Open loads the configuration at path. A missing file is reported as
// constants.ErrTruffleConfigNotFound.
func Open(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", constants.ErrTruffleConfigNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	c := &Config{fs: fs, path: path}
	if err := yaml.Unmarshal(data, &c.doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if c.doc.Kind == 0 {
		c.doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root := c.root(); root == nil || root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: top level must be a mapping", path)
	}
	return c, nil
}

// OpenProject opens the configuration file inside a project directory.
func OpenProject(fs afero.Fs, projectDir string) (*Config, error) {
	return Open(fs, filepath.Join(projectDir, constants.TruffleConfigFileName))
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) root() *yaml.Node {
	if len(c.doc.Content) == 0 {
		return nil
	}
	return c.doc.Content[0]
}

func (c *Config) networksNode() *yaml.Node {
	root := c.root()
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == networksKey {
			return root.Content[i+1]
		}
	}
	return nil
}

// GetNetworks returns the entries in the order they appear in the file.
func (c *Config) GetNetworks() ([]Network, error) {
	node := c.networksNode()
	if node == nil || node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %q must be a mapping", c.path, networksKey)
	}
	networks := make([]Network, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		n := Network{Name: node.Content[i].Value}
		if err := node.Content[i+1].Decode(&n.Options); err != nil {
			return nil, fmt.Errorf("network %q: %w", n.Name, err)
		}
		networks = append(networks, n)
	}
	return networks, nil
}

// SetNetworks replaces the whole networks section with networks and writes
// the file. Entries not in networks are removed.
func (c *Config) SetNetworks(networks []Network) error {
	if err := validate.Struct(networkSet{Networks: networks}); err != nil {
		return fmt.Errorf("invalid networks: %w", err)
	}
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, n := range networks {
		value := &yaml.Node{}
		if err := value.Encode(n.Options); err != nil {
			return fmt.Errorf("network %q: %w", n.Name, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Name},
			value,
		)
	}

	if node := c.networksNode(); node != nil {
		*node = *mapping
	} else {
		root := c.root()
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: networksKey},
			mapping,
		)
	}
	return c.write()
}

func (c *Config) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&c.doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := afero.WriteFile(c.fs, c.path, buf.Bytes(), constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return nil
}
