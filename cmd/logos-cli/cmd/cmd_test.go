// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnomalyFi/token-logos/archiver"
	"github.com/AnomalyFi/token-logos/assets"
	"github.com/AnomalyFi/token-logos/manager"
	"github.com/AnomalyFi/token-logos/networks"
)

const sushi = "0x6B3595068778DD592e39A122f4f5a5cF09C90fE2"

// run executes the root command with every persistent flag set explicitly so
// values do not leak between invocations.
func run(t *testing.T, root string, extra []string, args ...string) error {
	t.Helper()
	full := append([]string{}, args...)
	full = append(full,
		"--root", root,
		"--cld", filepath.Join(root, "cld"),
		"--cdn-base-url", "https://cdn.test",
		"--max-concurrency", "2",
		"--metrics-file", filepath.Join(root, "metrics.prom"),
		"--config", "",
		"--archiver", "",
		"--dry-run=false",
	)
	full = append(full, extra...)
	rootCmd.SetArgs(full)
	return Execute()
}

func setup(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	log := filepath.Join(root, "cld.log")
	script := fmt.Sprintf("#!/bin/sh\necho \"$3\" >> %q\n", log)
	require.NoError(t, os.WriteFile(filepath.Join(root, "cld"), []byte(script), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "token"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "token", "sushi.jpg"), []byte("img"), 0o644))
	return root, log
}

func TestCLIFlow(t *testing.T) {
	require := require.New(t)
	root, log := setup(t)

	require.NoError(run(t, root, nil, "clone", "sushi", "matic", strings.ToLower(sushi)))
	require.FileExists(filepath.Join(root, "network", "matic", sushi+".jpg"))

	require.NoError(run(t, root, nil, "invalidate:token", "137", sushi))
	require.NoError(run(t, root, nil, "invalidate-network", "matic"))

	b, err := os.ReadFile(log)
	require.NoError(err)
	require.Equal(
		"https://cdn.test/network/matic/"+sushi+".jpg\nhttps://cdn.test/network/matic/"+sushi+".jpg\n",
		string(b),
	)

	metrics, err := os.ReadFile(filepath.Join(root, "metrics.prom"))
	require.NoError(err)
	require.Contains(string(metrics), `logos_invalidations_requested{command="invalidate:network"} 1`)
}

func TestCLIErrors(t *testing.T) {
	require := require.New(t)
	root, log := setup(t)

	require.ErrorIs(run(t, root, nil, "clone", "sushi", "matic"), ErrInvalidArgs)
	require.ErrorIs(run(t, root, nil, "clone", "sushi", "unknownnet", sushi), networks.ErrUnknownNetwork)
	require.ErrorIs(run(t, root, nil, "clone", "missing", "matic", sushi), assets.ErrNotFound)
	require.ErrorIs(run(t, root, nil, "invalidate:token", "matic"), manager.ErrMissingArgument)
	require.ErrorIs(run(t, root, nil, "invalidate:token", "matic", sushi), assets.ErrNotFound)
	require.ErrorIs(run(t, root, nil, "invalidate:network", "celo"), assets.ErrNotFound)
	require.ErrorIs(run(t, root, nil, "history"), ErrArchiverDisabled)
	require.NoFileExists(log)
}

func TestCLIWritesMetricsOnFailure(t *testing.T) {
	require := require.New(t)
	root, log := setup(t)
	metrics := filepath.Join(root, "metrics.prom")

	require.ErrorIs(run(t, root, nil, "invalidate:token", "matic", "missing"), assets.ErrNotFound)
	require.FileExists(metrics)
	require.NoError(os.Remove(metrics))

	require.ErrorIs(run(t, root, nil, "invalidate:all", "extra"), ErrInvalidArgs)
	require.FileExists(metrics)
	require.NoFileExists(log)
}

func TestCLIFlagsOverrideInvalidConfig(t *testing.T) {
	require := require.New(t)
	root, _ := setup(t)
	conf := filepath.Join(root, "config.json")
	require.NoError(os.WriteFile(conf, []byte(`{"cdnBaseURL": "ftp://bad", "cldPath": ""}`), 0o600))

	// --cdn-base-url and --cld from run replace the invalid values.
	require.NoError(run(t, root, []string{"--config", conf}, "networks"))
}

func TestCLIArchiverFlag(t *testing.T) {
	require := require.New(t)
	root, _ := setup(t)
	require.NoError(os.MkdirAll(filepath.Join(root, "network", "matic"), 0o755))
	require.NoError(os.WriteFile(filepath.Join(root, "network", "matic", sushi+".jpg"), []byte("img"), 0o644))
	conf := fmt.Sprintf(`{"archiverType": "sqlite", "dsn": %q}`, filepath.Join(root, "archive.db"))
	extra := []string{"--archiver", conf}

	require.NoError(run(t, root, extra, "invalidate:token", "matic", sushi))
	require.NoError(run(t, root, extra, "history", "--network", "137", "--limit", "5"))

	archive, err := archiver.NewORMArchiverFromConfigBytes([]byte(conf), nil)
	require.NoError(err)
	defer archive.Close()
	entries, err := archive.Recent("matic", 5)
	require.NoError(err)
	require.Len(entries, 1)
	require.Equal(manager.CommandInvalidateToken, entries[0].Command)
	require.Equal("https://cdn.test/network/matic/"+sushi+".jpg", entries[0].URL)
	require.True(entries[0].Success)

	require.ErrorIs(run(t, root, nil, "history"), ErrArchiverDisabled)
}

func TestCLIDryRunAndListing(t *testing.T) {
	require := require.New(t)
	root, log := setup(t)
	require.NoError(os.MkdirAll(filepath.Join(root, "network", "celo"), 0o755))
	require.NoError(os.WriteFile(filepath.Join(root, "network", "celo", "a.jpg"), []byte("a"), 0o644))

	require.NoError(run(t, root, []string{"--dry-run"}, "invalidate:all"))
	require.NoError(run(t, root, nil, "networks", "--all"))
	require.NoFileExists(log)
}
