// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
)

var cloneCmd = &cobra.Command{
	Use:   "clone [name] [network] [address]",
	Short: "Copy token/<name>.jpg to network/<network>/<address>.jpg",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 3 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		_, err := handler.Manager().Clone(args[0], args[1], args[2])
		return err
	},
}
