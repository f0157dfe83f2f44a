// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"time"

	"github.com/AnomalyFi/hypersdk/utils"
	"github.com/spf13/cobra"
)

var (
	historyNetwork string
	historyLimit   int
)

func init() {
	historyCmd.Flags().StringVar(
		&historyNetwork,
		"network",
		"",
		"only show invalidations of this network",
	)
	historyCmd.Flags().IntVar(
		&historyLimit,
		"limit",
		20,
		"maximum number of entries",
	)
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Show recently archived invalidations",
	PreRunE: maxArgs(0),
	RunE: func(*cobra.Command, []string) error {
		archive, err := handler.Archive()
		if err != nil {
			return err
		}
		network := historyNetwork
		if len(network) > 0 {
			network = handler.Manager().Registry().Resolve(network)
		}
		entries, err := archive.Recent(network, historyLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			status := "✅"
			if !e.Success {
				status = "❌"
			}
			utils.Outf(
				"%s {{yellow}}%s{{/}} {{cyan}}%s{{/}} %s {{yellow}}took:{{/}} %s",
				status,
				e.CreatedAt.Format(time.RFC3339),
				e.Command,
				e.URL,
				e.Duration,
			)
			if !e.Success {
				utils.Outf(" {{red}}error:{{/}} %s", e.Error)
			}
			utils.Outf("\n")
		}
		return nil
	},
}
