// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build windows

package prng

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// advapi32RtlGenRandom mirrors the source's Windows OSSYS path: it loads
// advapi32.dll and calls RtlGenRandom (exported under the name
// SystemFunction036), the same fallback the source reaches for when
// bcrypt.dll's BCryptGenRandom isn't available.
var (
	modadvapi32      = windows.NewLazySystemDLL("advapi32.dll")
	procRtlGenRandom = modadvapi32.NewProc("SystemFunction036")
)

// osGetrandom fills buf using RtlGenRandom.
func osGetrandom(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	r, _, err := procRtlGenRandom.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if r == 0 {
		return err
	}
	return nil
}
