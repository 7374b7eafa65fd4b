// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerateMnemonic(t *testing.T) {
	m, err := GenerateMnemonic()
	require.NoError(t, err)
	require.Len(t, strings.Fields(m), 24)
	require.NoError(t, ValidateMnemonic(m))

	other, err := GenerateMnemonic()
	require.NoError(t, err)
	require.NotEqual(t, m, other)
}

func TestValidateMnemonic(t *testing.T) {
	require.NoError(t, ValidateMnemonic(testMnemonic))
	require.NoError(t, ValidateMnemonic("  "+strings.ReplaceAll(testMnemonic, " ", "   ")+"\n"))
	require.Error(t, ValidateMnemonic(""))
	require.Error(t, ValidateMnemonic("   "))
	require.ErrorIs(t, ValidateMnemonic("abandon abandon abandon"), ErrInvalidMnemonic)
}

func TestMaskMnemonic(t *testing.T) {
	require.Equal(t, "abandon ... about", MaskMnemonic(testMnemonic))
	require.Equal(t, "", MaskMnemonic(""))
	require.Equal(t, "*****", MaskMnemonic("a bcd"))
}

func TestNormalize(t *testing.T) {
	// full-width spaces and composed characters are folded before validation
	require.Equal(t, "abandon ability", normalize("  abandon\u3000ability \n"))
	require.Equal(t, "cafe\u0301", normalize("caf\u00e9"))
}
