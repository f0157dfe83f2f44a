// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package networks

import "errors"

var (
	ErrUnknownNetwork   = errors.New("no network for")
	ErrDuplicateName    = errors.New("duplicate network name")
	ErrDuplicateChainID = errors.New("duplicate chain id")
)
