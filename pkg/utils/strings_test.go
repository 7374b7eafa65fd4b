// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Truffle v5.1.39 (core: 5.1.39)\n", want: "Truffle v5.1.39 (core: 5.1.39)\n"},
		{name: "colors", in: "\x1b[32mTruffle v5.0.0\x1b[0m", want: "Truffle v5.0.0"},
		{name: "cursor", in: "\x1b[?25lCompiling\r\x1b[2K> done\r\n", want: "Compiling> done\n"},
		{name: "tabs kept", in: "a\tb\x07", want: "a\tb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CleanOutput(tt.in))
		})
	}
}
