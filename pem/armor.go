// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pem implements PEM armor, legacy DEK-Info encryption, and the
// PKCS#8/PKCS#1/SEC1 ASN.1 key shapes named in spec.md §4.8, grounded on
// original_source/ecc/pem.c.
package pem

import (
	"bytes"
	"encoding/base64"
	"strings"
)

// Recognized element labels, transcribed from pem_elems in pem.c. A BEGIN
// line naming anything else is skipped rather than rejected, matching
// pem_element_type's PEM_ELEM_NONE/"IGNORING UNKNOWN ELEMENT" behavior.
const (
	LabelPrivateKey        = "PRIVATE KEY"
	LabelEncryptedPrivate  = "ENCRYPTED PRIVATE KEY"
	LabelPublicKey         = "PUBLIC KEY"
	LabelTrustedCert       = "TRUSTED CERTIFICATE"
	LabelCertificate       = "CERTIFICATE"
	LabelX509Cert          = "X509 CERTIFICATE"
	LabelX509CRL           = "X509 CRL"
	LabelCertRequest       = "CERTIFICATE REQUEST"
	LabelDSAPrivateKey     = "DSA PRIVATE KEY"
	LabelRSAPrivateKey     = "RSA PRIVATE KEY"
	LabelECPrivateKey      = "EC PRIVATE KEY"
	LabelECParameters      = "EC PARAMETERS"
	LabelDHParameters      = "DH PARAMETERS"
	LabelDSAParameters     = "DSA PARAMETERS"
	LabelPKCS7             = "PKCS7"
	LabelPrivacyEnhanced   = "PRIVACY-ENHANCED MESSAGE"
	LabelSSLSessionParams  = "SSL SESSION PARAMETERS"
)

var knownLabels = map[string]bool{
	LabelPrivateKey: true, LabelEncryptedPrivate: true, LabelPublicKey: true,
	LabelTrustedCert: true, LabelCertificate: true, LabelX509Cert: true,
	LabelX509CRL: true, LabelCertRequest: true, LabelDSAPrivateKey: true,
	LabelRSAPrivateKey: true, LabelECPrivateKey: true, LabelECParameters: true,
	LabelDHParameters: true, LabelDSAParameters: true, LabelPKCS7: true,
	LabelPrivacyEnhanced: true, LabelSSLSessionParams: true,
}

// Header is one "Key: Value" line found between a BEGIN marker and the
// base64 body, e.g. Proc-Type/DEK-Info.
type Header struct {
	Key, Value string
}

// Block is one decoded PEM element: its label, any header lines, and the
// base64-decoded body -- which is still the raw encrypted bytes when the
// headers carry "Proc-Type: 4,ENCRYPTED", matching pem_elem_t before
// pem_decode_element has run.
type Block struct {
	Label   string
	Headers []Header
	Bytes   []byte
}

// Header looks up a header line by key.
func (b *Block) Header(key string) (string, bool) {
	for _, h := range b.Headers {
		if h.Key == key {
			return h.Value, true
		}
	}
	return "", false
}

// Encrypted reports whether the block carries the legacy "Proc-Type:
// 4,ENCRYPTED" marker, matching PEM_F_CRYPT.
func (b *Block) Encrypted() bool {
	v, ok := b.Header("Proc-Type")
	return ok && strings.Contains(v, "4,ENCRYPTED")
}

func beginLabel(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "-----BEGIN ") || !strings.HasSuffix(line, "-----") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(line, "-----BEGIN "), "-----"), true
}

func endLabel(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "-----END ") || !strings.HasSuffix(line, "-----") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(line, "-----END "), "-----"), true
}

// nextLine splits off the first line of data, returning it without its
// line terminator and the exact byte count consumed (terminator
// included), so callers can track a precise offset into data regardless
// of LF vs CRLF line endings.
func nextLine(data []byte) (line string, consumed int, ok bool) {
	if len(data) == 0 {
		return "", 0, false
	}
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return string(data), len(data), true
	}
	return string(data[:idx]), idx + 1, true
}

// Decode reads the next PEM element out of data, matching
// pem_read_next_element/pem_read_element_body: a BEGIN line naming an
// unrecognized label is skipped silently, and a BEGIN/END label mismatch
// aborts only the current element -- scanning resumes for the next BEGIN
// rather than failing the whole input, matching do_pem_open's "while(ret
// == -4)" retry loop.
//
// It returns the decoded block, the unconsumed remainder of data, and
// ErrNoBeginMarker if no further recognized element is found.
func Decode(data []byte) (*Block, []byte, error) {
	for {
		var label string
		found := false
		for {
			line, n, ok := nextLine(data)
			if !ok {
				break
			}
			data = data[n:]
			if l, ok := beginLabel(line); ok {
				label = l
				found = true
				break
			}
		}
		if !found {
			return nil, nil, newError(ErrNoBeginMarker, "no recognized BEGIN marker found")
		}
		rest := data

		var headers []Header
		var body strings.Builder
		var endOK bool
		var gotEnd string
		for {
			line, n, ok := nextLine(data)
			if !ok {
				break
			}
			data = data[n:]
			rest = data
			if l, ok := endLabel(line); ok {
				endOK = true
				gotEnd = l
				break
			}
			if k, v, ok := parseHeader(line); ok {
				headers = append(headers, Header{Key: k, Value: v})
				continue
			}
			body.WriteString(strings.TrimSpace(line))
		}

		if !knownLabels[label] {
			// Unrecognized label: skip this whole element and keep scanning.
			data = rest
			continue
		}
		if !endOK {
			return nil, nil, newError(ErrNoBeginMarker, "BEGIN marker with no matching END")
		}
		if gotEnd != label {
			// Wrong END label: drop this element, resume scanning after it.
			data = rest
			continue
		}

		raw, err := base64.StdEncoding.DecodeString(body.String())
		if err != nil {
			return nil, nil, newError(ErrBadBase64, err.Error())
		}

		return &Block{Label: label, Headers: headers, Bytes: raw}, rest, nil
	}
}

// DecodeAll decodes every recognized element in data, ignoring trailing
// unrecognized content once no further BEGIN marker is found.
func DecodeAll(data []byte) ([]*Block, error) {
	var out []*Block
	for len(bytes.TrimSpace(data)) > 0 {
		block, rest, err := Decode(data)
		if err != nil {
			if e, ok := err.(Error); ok && e.Kind() == ErrNoBeginMarker {
				break
			}
			return nil, err
		}
		out = append(out, block)
		data = rest
	}
	return out, nil
}

func parseHeader(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ": ")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+2:])
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, value, true
}

// Encode writes a single PEM element, matching pem_save_element's plain
// (unencrypted) path: BEGIN line, any headers, base64 body wrapped at 64
// columns, END line.
func Encode(label string, headers []Header, data []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("-----BEGIN " + label + "-----\n")
	for _, h := range headers {
		buf.WriteString(h.Key + ": " + h.Value + "\n")
	}
	if len(headers) > 0 {
		buf.WriteString("\n")
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	for i := 0; i < len(encoded); i += 64 {
		end := i + 64
		if end > len(encoded) {
			end = len(encoded)
		}
		buf.WriteString(encoded[i:end])
		buf.WriteString("\n")
	}
	buf.WriteString("-----END " + label + "-----\n")
	return buf.Bytes()
}
