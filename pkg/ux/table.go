// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"github.com/olekukonko/tablewriter"
)

// DefaultTable creates a table on the user writer with the given headers
func DefaultTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(Logger.Writer())
	anyHeaders := make([]any, len(headers))
	for i, h := range headers {
		anyHeaders[i] = h
	}
	table.Header(anyHeaders...)
	return table
}
