// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networks

const (
	Ethereum        uint64 = 1
	Ropsten         uint64 = 3
	Rinkeby         uint64 = 4
	Goerli          uint64 = 5
	Telos           uint64 = 40
	Kovan           uint64 = 42
	BSC             uint64 = 56
	OKEx            uint64 = 66
	OKExTestnet     uint64 = 65
	BSCTestnet      uint64 = 97
	XDai            uint64 = 100
	Fuse            uint64 = 122
	Heco            uint64 = 128
	Matic           uint64 = 137
	Fantom          uint64 = 250
	HecoTestnet     uint64 = 256
	Moonbeam        uint64 = 1284
	Moonriver       uint64 = 1285
	MoonbeamTestnet uint64 = 1287
	FantomTestnet   uint64 = 4002
	Hardhat         uint64 = 31337
	Arbitrum        uint64 = 42161
	Celo            uint64 = 42220
	Fuji            uint64 = 43113
	Avalanche       uint64 = 43114
	MaticTestnet    uint64 = 80001
	Harmony         uint64 = 1666600000
	HarmonyTestnet  uint64 = 1666700000
	PalmTestnet     uint64 = 11297108099
	Palm            uint64 = 11297108109
	ArbitrumTestnet uint64 = 79377087078960
)

var defaultNetworks = []Network{
	{Name: "arbitrum", ChainID: Arbitrum},
	{Name: "avalanche", ChainID: Avalanche},
	{Name: "fuji", ChainID: Fuji},
	{Name: "binance", ChainID: BSC},
	{Name: "celo", ChainID: Celo},
	{Name: "ethereum", ChainID: Ethereum},
	{Name: "ropsten", ChainID: Ropsten, ListValued: true},
	{Name: "rinkeby", ChainID: Rinkeby, ListValued: true},
	{Name: "kovan", ChainID: Kovan, ListValued: true},
	{Name: "gorli", ChainID: Goerli, ListValued: true},
	{Name: "fantom", ChainID: Fantom},
	{Name: "fuse", ChainID: Fuse},
	{Name: "harmony", ChainID: Harmony},
	{Name: "heco", ChainID: Heco},
	{Name: "matic", ChainID: Matic},
	{Name: "moonriver", ChainID: Moonriver},
	{Name: "okex", ChainID: OKEx},
	{Name: "palm", ChainID: Palm},
	{Name: "telos", ChainID: Telos},
	{Name: "xdai", ChainID: XDai},
}

// Chains without a name entry. invalidate:all reports and skips them.
var defaultChains = []Chain{
	{Label: "MATIC_TESTNET", ID: MaticTestnet},
	{Label: "FANTOM_TESTNET", ID: FantomTestnet},
	{Label: "BSC_TESTNET", ID: BSCTestnet},
	{Label: "ARBITRUM_TESTNET", ID: ArbitrumTestnet},
	{Label: "MOONBEAM_TESTNET", ID: MoonbeamTestnet},
	{Label: "HECO_TESTNET", ID: HecoTestnet},
	{Label: "HARMONY_TESTNET", ID: HarmonyTestnet},
	{Label: "OKEX_TESTNET", ID: OKExTestnet},
	{Label: "PALM_TESTNET", ID: PalmTestnet},
	{Label: "HARDHAT", ID: Hardhat},
	{Label: "MOONBEAM", ID: Moonbeam},
}

var defaultRegistry *Registry

func init() {
	r, err := New(defaultNetworks, defaultChains)
	if err != nil {
		panic(err)
	}
	defaultRegistry = r
}

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}
