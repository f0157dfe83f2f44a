// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/AnomalyFi/token-logos/consts"
)

var (
	handler *Handler

	repoRoot       string
	configFile     string
	cldPath        string
	cdnBaseURL     string
	maxConcurrency int
	metricsFile    string
	archiverConfig string
	dryRun         bool

	rootCmd = &cobra.Command{
		Use:        consts.Name,
		Short:      "Token logo repository CLI",
		SuggestFor: []string{"logos-cli", "logoscli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		cloneCmd,
		invalidateAllCmd,
		invalidateNetworkCmd,
		invalidateTokenCmd,
		networksCmd,
		historyCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&repoRoot,
		"root",
		".",
		"path to the logos repository",
	)
	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"path to a JSON config file",
	)
	rootCmd.PersistentFlags().StringVar(
		&cldPath,
		"cld",
		consts.DefaultCLDPath,
		"path to the cld executable (overrides config)",
	)
	rootCmd.PersistentFlags().StringVar(
		&cdnBaseURL,
		"cdn-base-url",
		consts.DefaultCDNBaseURL,
		"public origin the CDN fetches from (overrides config)",
	)
	rootCmd.PersistentFlags().IntVar(
		&maxConcurrency,
		"max-concurrency",
		16,
		"maximum concurrent cld invocations, <= 0 is unbounded (overrides config)",
	)
	rootCmd.PersistentFlags().StringVar(
		&metricsFile,
		"metrics-file",
		"",
		"write prometheus metrics to this file on exit (overrides config)",
	)
	rootCmd.PersistentFlags().StringVar(
		&archiverConfig,
		"archiver",
		"",
		"JSON archiver config, enables the archive (overrides config)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"print actions without copying files or running cld",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		h, err := NewHandler(cmd)
		if err != nil {
			return err
		}
		handler = h
		return nil
	}
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Execute runs the command line and always releases the handler, including
// when a hook or command fails.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	handler = nil
	err := rootCmd.ExecuteContext(ctx)
	if handler == nil {
		return err
	}
	cerr := handler.Close()
	handler = nil
	switch {
	case cerr == nil:
		return err
	case err == nil:
		return cerr
	default:
		return multierror.Append(err, cerr)
	}
}
