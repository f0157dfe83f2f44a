// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package assets

import "errors"

var (
	ErrNotFound       = errors.New("path does not exist")
	ErrInvalidAddress = errors.New("invalid address")
)
