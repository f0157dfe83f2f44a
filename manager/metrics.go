// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package manager

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const commandLabel = "command"

type metrics struct {
	clone prometheus.Counter

	requested *prometheus.CounterVec
	failed    *prometheus.CounterVec

	skippedNetworks prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		clone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logos",
			Name:      "clone",
			Help:      "number of cloned token images",
		}),
		requested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logos",
			Name:      "invalidations_requested",
			Help:      "number of cdn invalidation requests issued",
		}, []string{commandLabel}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logos",
			Name:      "invalidations_failed",
			Help:      "number of cdn invalidation requests that failed",
		}, []string{commandLabel}),
		skippedNetworks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logos",
			Name:      "skipped_networks",
			Help:      "number of chain ids skipped by invalidate:all",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.clone),
		r.Register(m.requested),
		r.Register(m.failed),
		r.Register(m.skippedNetworks),
	)
	return m, errs.Err
}
