// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"errors"
	"fmt"
	"strings"

	bip39 "github.com/luxfi/go-bip39"
	"golang.org/x/text/unicode/norm"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

// GenerateMnemonic generates a new BIP39 mnemonic phrase
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256) // 24 words
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic is a prompt validator for pasted phrases
func ValidateMnemonic(mnemonic string) error {
	mnemonic = normalize(mnemonic)
	if mnemonic == "" {
		return errors.New("mnemonic cannot be empty")
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return ErrInvalidMnemonic
	}
	return nil
}

// MaskMnemonic keeps the first and last word of a phrase
func MaskMnemonic(mnemonic string) string {
	words := strings.Fields(mnemonic)
	switch len(words) {
	case 0:
		return ""
	case 1, 2:
		return strings.Repeat("*", len(mnemonic))
	}
	return words[0] + " ... " + words[len(words)-1]
}

// normalize applies the NFKD form BIP39 requires and collapses whitespace.
func normalize(mnemonic string) string {
	return strings.Join(strings.Fields(norm.NFKD.String(mnemonic)), " ")
}
