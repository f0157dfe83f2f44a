// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package manager

import (
	"context"
	"strings"
	"sync"

	"github.com/AnomalyFi/hypersdk/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/AnomalyFi/token-logos/archiver"
	"github.com/AnomalyFi/token-logos/assets"
	"github.com/AnomalyFi/token-logos/cdn"
	"github.com/AnomalyFi/token-logos/networks"
)

// Archive persists invalidation outcomes.
type Archive interface {
	InsertInvalidation(*archiver.DBInvalidation) error
}

type Options struct {
	Repository  *assets.Repository
	Registry    *networks.Registry
	Invalidator *cdn.Invalidator

	CDNBaseURL     string
	MaxConcurrency int
	DryRun         bool

	// Optional
	Archive    Archive
	Registerer prometheus.Registerer
	Logger     *zap.Logger
}

// Manager runs the clone and cache invalidation commands against one
// repository checkout.
type Manager struct {
	repo     *assets.Repository
	registry *networks.Registry
	inv      *cdn.Invalidator

	baseURL        string
	maxConcurrency int
	dryRun         bool

	archiveLock sync.Mutex
	archive     Archive

	metrics *metrics
	log     *zap.Logger
}

func New(opts Options) (*Manager, error) {
	if opts.Registry == nil {
		opts.Registry = networks.Default()
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, err
	}
	return &Manager{
		repo:           opts.Repository,
		registry:       opts.Registry,
		inv:            opts.Invalidator,
		baseURL:        opts.CDNBaseURL,
		maxConcurrency: opts.MaxConcurrency,
		dryRun:         opts.DryRun,
		archive:        opts.Archive,
		metrics:        m,
		log:            opts.Logger,
	}, nil
}

func (m *Manager) Registry() *networks.Registry {
	return m.registry
}

// dispatch issues reqs and waits for them. Batch commands report every
// request as invalidated regardless of the subprocess outcome; failures only
// reach the debug log, the metrics and the archive.
func (m *Manager) dispatch(ctx context.Context, command string, reqs []cdn.Request) error {
	if m.dryRun {
		for _, req := range reqs {
			utils.Outf("{{yellow}}would invalidate:{{/}} %s eager=%s\n", req.URL, cdn.EagerPayload(req.Breakpoints))
		}
		return nil
	}
	return cdn.Dispatch(ctx, m.inv, reqs, m.maxConcurrency, func(req cdn.Request, res *cdn.Result) {
		if res == nil {
			utils.Outf("Invalidating %s\n", req.URL)
			return
		}
		m.record(command, res)
		if !res.Success() {
			m.log.Debug("invalidation failed",
				zap.String("command", command),
				zap.String("url", req.URL),
				zap.Error(res.Err),
			)
		}
		utils.Outf("{{green}}Invalidated{{/}} %s\n", req.URL)
	})
}

func (m *Manager) record(command string, res *cdn.Result) {
	m.metrics.requested.WithLabelValues(command).Inc()
	if !res.Success() {
		m.metrics.failed.WithLabelValues(command).Inc()
	}
	if m.archive == nil {
		return
	}
	entry := &archiver.DBInvalidation{
		Command:  command,
		Network:  res.Request.Network,
		URL:      res.Request.URL,
		Success:  res.Success(),
		Output:   strings.TrimSpace(string(res.Output)),
		Duration: res.Duration,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}

	m.archiveLock.Lock()
	defer m.archiveLock.Unlock()
	if err := m.archive.InsertInvalidation(entry); err != nil {
		m.log.Warn("failed to archive invalidation", zap.String("url", res.Request.URL), zap.Error(err))
	}
}
