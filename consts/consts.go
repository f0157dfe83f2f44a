// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name = "logos-cli"

	// DefaultCDNBaseURL is the public origin the CDN fetches images from. It
	// mirrors the repository layout.
	DefaultCDNBaseURL = "https://raw.githubusercontent.com/sushiswap/logos/main"
	DefaultCLDPath    = "/usr/local/bin/cld"

	TokenDir   = "token"
	NetworkDir = "network"
	ImageExt   = ".jpg"
)

var (
	allBreakpoints     = []int{24, 32, 48, 64, 96, 128}
	networkBreakpoints = []int{24, 32, 48, 54, 64, 96, 128}
)

// AllBreakpoints are the eager widths requested by invalidate:all.
func AllBreakpoints() []int {
	return append([]int(nil), allBreakpoints...)
}

// NetworkBreakpoints are the eager widths requested by invalidate:network and
// invalidate:token. Unlike AllBreakpoints they include 54.
func NetworkBreakpoints() []int {
	return append([]int(nil), networkBreakpoints...)
}
