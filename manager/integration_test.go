// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package manager_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/AnomalyFi/token-logos/archiver"
	"github.com/AnomalyFi/token-logos/assets"
	"github.com/AnomalyFi/token-logos/cdn"
	"github.com/AnomalyFi/token-logos/manager"

	ginkgo "github.com/onsi/ginkgo/v2"
)

// fakeCLD appends its url argument and eager payload to a log file.
const fakeCLD = `#!/bin/sh
echo "$3 $6" >> %q
echo "explicit $3"
`

var (
	root    string
	cldLog  string
	repo    *assets.Repository
	archive *archiver.ORMArchiver
	m       *manager.Manager
)

func TestIntegration(t *testing.T) {
	ginkgo.RunSpecs(t, "logos manager integration test suites")
}

func loggedURLs(require *require.Assertions) []string {
	b, err := os.ReadFile(cldLog)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(err)
	var urls []string
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		urls = append(urls, strings.SplitN(line, " ", 2)[0])
	}
	sort.Strings(urls)
	return urls
}

func writeImage(require *require.Assertions, rel string) {
	path := filepath.Join(root, rel)
	require.NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(os.WriteFile(path, []byte(rel), 0o644))
}

var _ = ginkgo.BeforeEach(func() {
	require := require.New(ginkgo.GinkgoT())

	var err error
	root, err = os.MkdirTemp("", "logos")
	require.NoError(err)
	ginkgo.DeferCleanup(os.RemoveAll, root)
	cldLog = filepath.Join(root, "cld.log")

	cld := filepath.Join(root, "cld")
	require.NoError(os.WriteFile(cld, []byte(fmt.Sprintf(fakeCLD, cldLog)), 0o755))

	repo, err = assets.NewRepository(root)
	require.NoError(err)
	archive, err = archiver.NewORMArchiverFromConfig(&archiver.ORMArchiverConfig{
		Enabled:      true,
		ArchiverType: "sqlite",
		DSN:          filepath.Join(root, "logos.db"),
	}, nil)
	require.NoError(err)

	m, err = manager.New(manager.Options{
		Repository:     repo,
		Invalidator:    cdn.NewInvalidator(cdn.ExecRunner{}, cld, 0, nil),
		CDNBaseURL:     "https://cdn.test",
		MaxConcurrency: 2,
		Archive:        archive,
	})
	require.NoError(err)
	color.Blue("repository at %s", root)
})

var _ = ginkgo.AfterEach(func() {
	require := require.New(ginkgo.GinkgoT())
	require.NoError(archive.Close())
})

var _ = ginkgo.Describe("[Clone]", func() {
	ginkgo.It("clones then invalidates the new image", func() {
		require := require.New(ginkgo.GinkgoT())
		writeImage(require, "token/eth.jpg")

		to, err := m.Clone("eth", "arbitrum", "0x2f2a2543b76a4166549f7aab2e75bef0aefc5b0f")
		require.NoError(err)
		require.Equal("0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f.jpg", filepath.Base(to))

		res, err := m.InvalidateToken(context.Background(), "42161", "0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f")
		require.NoError(err)
		require.True(res.Success())
		require.Equal("explicit https://cdn.test/network/arbitrum/0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f.jpg\n", string(res.Output))
		require.Equal([]string{"https://cdn.test/network/arbitrum/0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f.jpg"}, loggedURLs(require))
	})
})

var _ = ginkgo.Describe("[Invalidate]", func() {
	ginkgo.It("invalidates one request per file of a network", func() {
		require := require.New(ginkgo.GinkgoT())
		writeImage(require, "network/xdai/a.jpg")
		writeImage(require, "network/xdai/b.jpg")
		writeImage(require, "network/xdai/c.jpg")

		require.NoError(m.InvalidateNetwork(context.Background(), "xdai"))
		require.Equal([]string{
			"https://cdn.test/network/xdai/a.jpg",
			"https://cdn.test/network/xdai/b.jpg",
			"https://cdn.test/network/xdai/c.jpg",
		}, loggedURLs(require))

		recent, err := archive.Recent("xdai", 10)
		require.NoError(err)
		require.Len(recent, 3)
		for _, r := range recent {
			require.True(r.Success)
			require.Equal(manager.CommandInvalidateNetwork, r.Command)
		}
	})

	ginkgo.It("invalidates every named network directory", func() {
		require := require.New(ginkgo.GinkgoT())
		writeImage(require, "network/ethereum/a.jpg")
		writeImage(require, "network/matic/b.jpg")

		require.NoError(m.InvalidateAll(context.Background()))
		require.Equal([]string{
			"https://cdn.test/ethereum/a.jpg",
			"https://cdn.test/matic/b.jpg",
		}, loggedURLs(require))
	})

	ginkgo.It("does not run cld for a missing token", func() {
		require := require.New(ginkgo.GinkgoT())

		_, err := m.InvalidateToken(context.Background(), "celo", "missing")
		require.ErrorIs(err, assets.ErrNotFound)
		require.Empty(loggedURLs(require))
	})
})
