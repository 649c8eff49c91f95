// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdh

import "errors"

var errShortInput = errors.New("xdh: scalar or point has wrong length")
