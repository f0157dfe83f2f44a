// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AnomalyFi/token-logos/archiver"
	"github.com/AnomalyFi/token-logos/assets"
	"github.com/AnomalyFi/token-logos/cdn"
	"github.com/AnomalyFi/token-logos/config"
	"github.com/AnomalyFi/token-logos/manager"
	"github.com/AnomalyFi/token-logos/networks"
)

type Handler struct {
	cfg      *config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	archive  *archiver.ORMArchiver
	m        *manager.Manager
}

func NewHandler(cmd *cobra.Command) (*Handler, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("cld") {
		cfg.CLDPath = cldPath
	}
	if flags.Changed("cdn-base-url") {
		cfg.CDNBaseURL = cdnBaseURL
	}
	if flags.Changed("max-concurrency") {
		cfg.MaxConcurrency = maxConcurrency
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = metricsFile
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.GetLogLevel())
	zcfg.DisableStacktrace = true
	log, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		cfg:      cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
	}
	switch {
	case flags.Changed("archiver") && len(archiverConfig) > 0:
		h.archive, err = archiver.NewORMArchiverFromConfigBytes([]byte(archiverConfig), log)
	case cfg.ArchiverConfig.Enabled:
		h.archive, err = archiver.NewORMArchiverFromConfig(&cfg.ArchiverConfig, log)
	}
	if err != nil {
		return nil, err
	}

	repo, err := assets.NewRepository(repoRoot)
	if err != nil {
		return nil, err
	}
	opts := manager.Options{
		Repository:     repo,
		Registry:       networks.Default(),
		Invalidator:    cdn.NewInvalidator(cdn.ExecRunner{}, cfg.CLDPath, cfg.GetRequestTimeout(), log),
		CDNBaseURL:     cfg.CDNBaseURL,
		MaxConcurrency: cfg.GetMaxConcurrency(),
		DryRun:         dryRun,
		Registerer:     h.registry,
		Logger:         log,
	}
	// A nil *ORMArchiver must not reach the interface.
	if h.archive != nil {
		opts.Archive = h.archive
	}
	h.m, err = manager.New(opts)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) Manager() *manager.Manager {
	return h.m
}

func (h *Handler) Archive() (*archiver.ORMArchiver, error) {
	if h.archive == nil {
		return nil, ErrArchiverDisabled
	}
	return h.archive, nil
}

// Close flushes metrics and releases the archive.
func (h *Handler) Close() error {
	var errs *multierror.Error
	if len(h.cfg.MetricsFile) > 0 {
		if err := prometheus.WriteToTextfile(h.cfg.MetricsFile, h.registry); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if h.archive != nil {
		if err := h.archive.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	_ = h.log.Sync()
	return errs.ErrorOrNil()
}
