// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/AnomalyFi/hypersdk/utils"
	"github.com/spf13/cobra"

	"github.com/AnomalyFi/token-logos/manager"
)

func maxArgs(n int) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return ErrInvalidArgs
		}
		return nil
	}
}

// arg returns args[i] or "" so missing arguments reach the manager's own
// checks.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

var invalidateAllCmd = &cobra.Command{
	Use:     manager.CommandInvalidateAll,
	Aliases: []string{"invalidate-all"},
	Short:   "Invalidate the CDN cache of every network image",
	PreRunE: maxArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		utils.Outf("{{yellow}}%s command called{{/}}\n", manager.CommandInvalidateAll)
		return handler.Manager().InvalidateAll(cmd.Context())
	},
}

var invalidateNetworkCmd = &cobra.Command{
	Use:     manager.CommandInvalidateNetwork + " [network]",
	Aliases: []string{"invalidate-network"},
	Short:   "Invalidate the CDN cache of one network, by name or chain id",
	PreRunE: maxArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network := arg(args, 0)
		utils.Outf("{{yellow}}%s command called{{/}} network=%s\n", manager.CommandInvalidateNetwork, network)
		return handler.Manager().InvalidateNetwork(cmd.Context(), network)
	},
}

var invalidateTokenCmd = &cobra.Command{
	Use:     manager.CommandInvalidateToken + " [network] [token]",
	Aliases: []string{"invalidate-token"},
	Short:   "Invalidate the CDN cache of one network image",
	PreRunE: maxArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		network, token := arg(args, 0), arg(args, 1)
		utils.Outf("{{yellow}}%s command called{{/}} network=%s token=%s\n", manager.CommandInvalidateToken, network, token)
		_, err := handler.Manager().InvalidateToken(cmd.Context(), network, token)
		return err
	},
}
