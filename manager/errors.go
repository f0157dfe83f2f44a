// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package manager

import "errors"

var ErrMissingArgument = errors.New("missing argument")
