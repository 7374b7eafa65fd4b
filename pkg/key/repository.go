// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Ref identifies the network and consortium a mnemonic belongs to.
type Ref struct {
	Network    string `yaml:"network"`
	Consortium string `yaml:"consortium"`
}

func (r Ref) String() string {
	return r.Network + "/" + r.Consortium
}

// Reference records where the mnemonic for Ref is stored.
type Reference struct {
	Ref  `yaml:",inline"`
	Path string `yaml:"path"`
}

type refFile struct {
	Mnemonics []Reference `yaml:"mnemonics"`
}

// Repository keeps mnemonic references in a yaml file. Phrases stay in
// their own files and are never written here.
type Repository struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

func NewRepository(fs afero.Fs, baseDir string) *Repository {
	return &Repository{fs: fs, path: filepath.Join(baseDir, constants.MnemonicRefFileName)}
}

// GetMnemonic reads the phrase stored at path
func (r *Repository) GetMnemonic(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read mnemonic: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (r *Repository) References() ([]Reference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *Repository) AllMnemonicPaths() ([]string, error) {
	refs, err := r.References()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(refs))
	for _, ref := range refs {
		paths = append(paths, ref.Path)
	}
	return paths, nil
}

// MnemonicPath returns the path recorded for ref
func (r *Repository) MnemonicPath(ref Ref) (string, bool, error) {
	refs, err := r.References()
	if err != nil {
		return "", false, err
	}
	for _, saved := range refs {
		if saved.Ref == ref {
			return saved.Path, true, nil
		}
	}
	return "", false, nil
}

// SaveMnemonicPath records path for ref, replacing any earlier reference.
// The file behind the earlier reference is left in place.
func (r *Repository) SaveMnemonicPath(ref Ref, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	refs, err := r.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range refs {
		if refs[i].Ref == ref {
			refs[i].Path = path
			replaced = true
		}
	}
	if !replaced {
		refs = append(refs, Reference{Ref: ref, Path: path})
	}
	return r.store(refs)
}

func (r *Repository) load() ([]Reference, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var file refFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return file.Mnemonics, nil
}

func (r *Repository) store(refs []Reference) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(refFile{Mnemonics: refs}); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := r.fs.MkdirAll(filepath.Dir(r.path), constants.DefaultPerms755); err != nil {
		return err
	}
	return afero.WriteFile(r.fs, r.path, buf.Bytes(), constants.WriteReadUserOnly)
}
