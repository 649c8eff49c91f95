// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asn1

import (
	"strconv"
	"strings"
)

// WriteOID appends a DER OBJECT IDENTIFIER encoding the dotted string
// oid, matching the base-128 arc encoding pem.c's asn1 OID tables use.
func WriteOID(dst []byte, oid string) []byte {
	arcs := strings.Split(oid, ".")
	nums := make([]int, len(arcs))
	for i, a := range arcs {
		n, err := strconv.Atoi(a)
		if err != nil {
			panic("asn1: malformed OID literal " + oid)
		}
		nums[i] = n
	}

	var content []byte
	content = append(content, byte(nums[0]*40+nums[1]))
	for _, n := range nums[2:] {
		content = append(content, encodeBase128(n)...)
	}
	return WriteElement(dst, TagOID, content)
}

func encodeBase128(n int) []byte {
	if n == 0 {
		return []byte{0}
	}
	var out []byte
	for v := n; v > 0; v >>= 7 {
		out = append([]byte{byte(v & 0x7f)}, out...)
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] |= 0x80
	}
	return out
}

// ReadOID decodes an OBJECT IDENTIFIER element's content into its dotted
// string form.
func ReadOID(el Element) (string, error) {
	if el.Tag != TagOID {
		return "", newError(ErrWrongTag, "element is not an OID")
	}
	buf := el.Content
	if len(buf) == 0 {
		return "", newError(ErrTruncated, "OID has no content bytes")
	}

	first := int(buf[0])
	arcs := []int{first / 40, first % 40}

	value := 0
	for _, b := range buf[1:] {
		value = value<<7 | int(b&0x7f)
		if b&0x80 == 0 {
			arcs = append(arcs, value)
			value = 0
		}
	}

	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, "."), nil
}
