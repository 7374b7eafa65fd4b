// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"fmt"

	"github.com/luxfi/deployer/pkg/models"
	"github.com/luxfi/deployer/pkg/truffleconfig"
)

// Target is one deployment destination offered to the user: either an
// entry already present in the project configuration or a consortium of
// the network tree.
type Target struct {
	Label      string
	Entry      *truffleconfig.Network
	Network    *models.Network
	Consortium models.Consortium
}

func buildTargets(entries []truffleconfig.Network, tree *models.Tree) []Target {
	targets := make([]Target, 0, len(entries))
	for i := range entries {
		targets = append(targets, Target{Label: entries[i].Name, Entry: &entries[i]})
	}
	for _, n := range tree.Networks {
		for _, c := range n.Consortia() {
			targets = append(targets, Target{
				Label:      fmt.Sprintf("%s [%s]", c.Name(), c.Kind()),
				Network:    n,
				Consortium: c,
			})
		}
	}
	return targets
}

func labels(targets []Target) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.Label
	}
	return out
}
