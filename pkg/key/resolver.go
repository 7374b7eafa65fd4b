// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	OptionGenerate = "Generate mnemonic"
	OptionPaste    = "Paste mnemonic"
	optionSavedFmt = "Use saved mnemonic (%s)"

	promptMnemonicOption = "Choose a mnemonic for %s"
	promptPasteMnemonic  = "Enter mnemonic"
	promptSaveMnemonic   = "Save mnemonic to"
)

// Store is where mnemonic references are looked up and recorded.
type Store interface {
	GetMnemonic(path string) (string, error)
	AllMnemonicPaths() ([]string, error)
	MnemonicPath(ref Ref) (string, bool, error)
	SaveMnemonicPath(ref Ref, path string) error
}

// Credential is a resolved mnemonic and the file it lives in.
type Credential struct {
	Path   string
	Phrase string
}

// Resolver obtains the signing mnemonic for a deployment target.
type Resolver struct {
	log    *zap.Logger
	fs     afero.Fs
	store  Store
	prompt prompts.Prompter
	// fileName builds default mnemonic file names.
	fileName func() string
}

func NewResolver(log *zap.Logger, fs afero.Fs, store Store, prompt prompts.Prompter) *Resolver {
	return &Resolver{
		log:    log,
		fs:     fs,
		store:  store,
		prompt: prompt,
		fileName: func() string {
			return uuid.NewString() + constants.MnemonicFileSuffix
		},
	}
}

// Resolve asks how the mnemonic for ref should be obtained. The saved
// option is only offered when ref already has a readable reference. New phrases are
// written to a file under projectDir by default before the reference is
// recorded.
func (r *Resolver) Resolve(ref Ref, projectDir string) (Credential, error) {
	savedPath, hasSaved, err := r.store.MnemonicPath(ref)
	if err != nil {
		return Credential{}, err
	}
	var saved Credential
	options := []string{OptionGenerate, OptionPaste}
	savedOption := ""
	if hasSaved {
		// a reference whose file is gone still allows a new phrase
		phrase, err := r.store.GetMnemonic(savedPath)
		if err != nil {
			r.log.Warn("saved mnemonic is unreadable", zap.Stringer("ref", ref), zap.String("path", savedPath), zap.Error(err))
			ux.Logger.RedXToUser("Saved mnemonic %s cannot be read, generate or paste a new one", savedPath)
			hasSaved = false
		} else {
			saved = Credential{Path: savedPath, Phrase: phrase}
			savedOption = fmt.Sprintf(optionSavedFmt, MaskMnemonic(phrase))
			options = append(options, savedOption)
		}
	}

	choice, err := r.prompt.CaptureList(fmt.Sprintf(promptMnemonicOption, ref), options)
	if err != nil {
		return Credential{}, err
	}

	var phrase string
	switch {
	case hasSaved && choice == savedOption:
		r.log.Debug("reusing saved mnemonic", zap.Stringer("ref", ref), zap.String("path", saved.Path))
		return saved, nil
	case choice == OptionGenerate:
		if phrase, err = GenerateMnemonic(); err != nil {
			return Credential{}, err
		}
	case choice == OptionPaste:
		if phrase, err = r.prompt.CaptureValidatedString(promptPasteMnemonic, ValidateMnemonic); err != nil {
			return Credential{}, err
		}
		phrase = normalize(phrase)
	default:
		return Credential{}, prompts.ErrCancelled
	}

	return r.persist(ref, projectDir, phrase)
}

// persist writes the phrase first and only then records the reference, so
// a reference never points at a missing file.
func (r *Resolver) persist(ref Ref, projectDir, phrase string) (Credential, error) {
	known, err := r.store.AllMnemonicPaths()
	if err != nil {
		return Credential{}, err
	}
	defaultPath := filepath.Join(projectDir, r.fileName())

	var path string
	for {
		path, err = r.prompt.CaptureNewFilepath(promptSaveMnemonic, defaultPath)
		if err != nil {
			return Credential{}, err
		}
		if path == "" {
			return Credential{}, prompts.ErrCancelled
		}
		if !slices.Contains(known, path) {
			break
		}
		ux.Logger.RedXToUser("%s already holds another mnemonic, choose a different file", path)
	}

	if err := afero.WriteFile(r.fs, path, []byte(phrase), constants.WriteReadUserOnly); err != nil {
		return Credential{}, fmt.Errorf("failed to save mnemonic: %w", err)
	}
	if err := r.store.SaveMnemonicPath(ref, path); err != nil {
		return Credential{}, fmt.Errorf("mnemonic saved to %s but its reference was not recorded: %w", path, err)
	}
	r.log.Info("mnemonic saved", zap.Stringer("ref", ref), zap.String("path", path))
	return Credential{Path: path, Phrase: phrase}, nil
}
