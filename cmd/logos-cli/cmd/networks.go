// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/AnomalyFi/hypersdk/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showUnnamed bool

func init() {
	networksCmd.Flags().BoolVar(
		&showUnnamed,
		"all",
		false,
		"include known chain ids without a network name",
	)
}

var networksCmd = &cobra.Command{
	Use:     "networks",
	Short:   "List the network name and chain id table",
	PreRunE: maxArgs(0),
	RunE: func(*cobra.Command, []string) error {
		registry := handler.Manager().Registry()
		for _, n := range registry.Networks() {
			note := ""
			if n.ListValued {
				note = color.YellowString(" (list valued)")
			}
			utils.Outf("{{cyan}}%d{{/}} %s%s\n", n.ChainID, n.Name, note)
		}
		if !showUnnamed {
			return nil
		}
		for _, id := range registry.KnownChainIDs() {
			if _, ok := registry.Name(id); ok {
				continue
			}
			label, _ := registry.Label(id)
			utils.Outf("{{cyan}}%d{{/}} %s\n", id, color.RedString("<unnamed %s>", label))
		}
		return nil
	},
}
