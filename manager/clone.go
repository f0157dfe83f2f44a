// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package manager

import (
	"fmt"

	"github.com/AnomalyFi/hypersdk/utils"

	"github.com/AnomalyFi/token-logos/assets"
)

// Clone copies token/<name>.jpg to network/<network>/<checksummed>.jpg and
// returns the destination path.
func (m *Manager) Clone(name, network, address string) (string, error) {
	utils.Outf(
		"{{yellow}}Performing clone of %s.jpg from the tokens directory to network/%s/%s.jpg{{/}}\n",
		name, network, address,
	)

	if _, err := m.registry.Lookup(network); err != nil {
		return "", err
	}

	from := m.repo.TokenImage(name)
	if err := assets.RequireExists(from); err != nil {
		return "", fmt.Errorf("no token found with name %s: %w", name, err)
	}

	checksummed, err := assets.ChecksumAddress(address)
	if err != nil {
		return "", err
	}
	to := m.repo.NetworkImage(network, checksummed)

	if m.dryRun {
		utils.Outf("{{yellow}}would copy:{{/}} %s -> %s\n", from, to)
		return to, nil
	}
	if err := assets.CopyFile(from, to); err != nil {
		return "", err
	}
	m.metrics.clone.Inc()
	utils.Outf("{{green}}Copied{{/}} %s -> %s\n", from, to)
	return to, nil
}
