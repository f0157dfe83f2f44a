// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package assets

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChecksumAddress returns the EIP-55 form of addr. Mixed case input must
// already carry a valid checksum. Only a lower case "0x" prefix is accepted.
func ChecksumAddress(addr string) (string, error) {
	if strings.HasPrefix(addr, "0X") || !common.IsHexAddress(addr) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	checksummed := common.HexToAddress(addr).Hex()

	body := strings.TrimPrefix(addr, "0x")
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && "0x"+body != checksummed {
		return "", fmt.Errorf("%w: bad checksum %q", ErrInvalidAddress, addr)
	}
	return checksummed, nil
}
