// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !windows

package prng

import "golang.org/x/sys/unix"

// osGetrandom fills buf using the getrandom(2) syscall, the modern
// replacement for reading /dev/urandom directly that the source's ossys
// generator predates.
func osGetrandom(buf []byte) error {
	for len(buf) > 0 {
		n, err := unix.Getrandom(buf, 0)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
