// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnomalyFi/hypersdk/utils"
	"go.uber.org/zap"

	"github.com/AnomalyFi/token-logos/assets"
	"github.com/AnomalyFi/token-logos/cdn"
	"github.com/AnomalyFi/token-logos/consts"
)

const (
	CommandInvalidateAll     = "invalidate:all"
	CommandInvalidateNetwork = "invalidate:network"
	CommandInvalidateToken   = "invalidate:token"
)

// InvalidateAll invalidates every image of every named network. Chain ids
// without a name and networks whose directory is missing or unreadable are
// logged and skipped.
func (m *Manager) InvalidateAll(ctx context.Context) error {
	var reqs []cdn.Request
	for _, chainID := range m.registry.KnownChainIDs() {
		name, ok := m.registry.Name(chainID)
		if !ok {
			label, _ := m.registry.Label(chainID)
			m.log.Error("no name to map from chain id",
				zap.Uint64("chainID", chainID),
				zap.String("label", label),
			)
			m.metrics.skippedNetworks.Inc()
			continue
		}

		utils.Outf("{{cyan}}Invalidate cache for network{{/}} %s\n", name)
		files, err := m.repo.ListNetwork(name)
		if errors.Is(err, assets.ErrNotFound) {
			m.log.Error("no network found for path", zap.String("path", m.repo.NetworkDir(name)))
			m.metrics.skippedNetworks.Inc()
			continue
		}
		if err != nil {
			m.log.Error("failed to list network",
				zap.String("path", m.repo.NetworkDir(name)),
				zap.Error(err),
			)
			m.metrics.skippedNetworks.Inc()
			continue
		}

		for _, file := range files {
			reqs = append(reqs, cdn.Request{
				Network:     name,
				URL:         cdn.PublicURL(m.baseURL, name, file),
				Breakpoints: consts.AllBreakpoints(),
			})
		}
	}
	return m.dispatch(ctx, CommandInvalidateAll, reqs)
}

// InvalidateNetwork invalidates every image of one network, given by name or
// chain id.
func (m *Manager) InvalidateNetwork(ctx context.Context, network string) error {
	if len(network) == 0 {
		return fmt.Errorf("%w: network", ErrMissingArgument)
	}
	name := m.registry.Resolve(network)
	utils.Outf("{{cyan}}Invalidating cache for network{{/}} %s\n", name)

	files, err := m.repo.ListNetwork(name)
	if err != nil {
		return err
	}
	reqs := make([]cdn.Request, 0, len(files))
	for _, file := range files {
		reqs = append(reqs, cdn.Request{
			Network:     name,
			URL:         cdn.PublicURL(m.baseURL, consts.NetworkDir, name, file),
			Breakpoints: consts.NetworkBreakpoints(),
		})
	}
	return m.dispatch(ctx, CommandInvalidateNetwork, reqs)
}

// InvalidateToken invalidates a single network image and waits for the
// executable. A failed invalidation is reported, not returned; the result is
// nil on dry runs.
func (m *Manager) InvalidateToken(ctx context.Context, network, token string) (*cdn.Result, error) {
	if len(network) == 0 {
		return nil, fmt.Errorf("%w: no network was passed", ErrMissingArgument)
	}
	if len(token) == 0 {
		return nil, fmt.Errorf("%w: no token was passed", ErrMissingArgument)
	}
	name := m.registry.Resolve(network)
	utils.Outf("{{cyan}}Invalidate cache for network{{/}} %s {{cyan}}and token{{/}} %s\n", name, token)

	if err := assets.RequireExists(m.repo.NetworkImage(name, token)); err != nil {
		return nil, err
	}

	req := cdn.Request{
		Network:     name,
		URL:         cdn.PublicURL(m.baseURL, consts.NetworkDir, name, token+consts.ImageExt),
		Breakpoints: consts.NetworkBreakpoints(),
	}
	if m.dryRun {
		return nil, m.dispatch(ctx, CommandInvalidateToken, []cdn.Request{req})
	}

	utils.Outf("Invalidating %s\n", req.URL)
	res := m.inv.Invalidate(ctx, req)
	m.record(CommandInvalidateToken, res)
	if !res.Success() {
		utils.Outf("{{red}}failed to invalidate %s:{{/}} %v\n", req.URL, res.Err)
		m.log.Error("invalidation failed", zap.String("url", req.URL), zap.Error(res.Err))
		return res, nil
	}
	utils.Outf("%s\n", res.Output)
	utils.Outf("{{green}}Invalidated{{/}} %s\n", req.URL)
	return res, nil
}
