// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "logos-cli" manages the token logo repository and its CDN cache.
package main

import (
	"os"

	"github.com/AnomalyFi/hypersdk/utils"

	"github.com/AnomalyFi/token-logos/cmd/logos-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}logos-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
