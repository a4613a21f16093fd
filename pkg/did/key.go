// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-did-go.
//
// sage-did-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-did-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-did-go.  If not, see <https://www.gnu.org/licenses/>.

package did

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
)

// KeyDIDFromPublicKey encodes a 32-byte Ed25519 public key as a did:key
// string: multicodec ed25519-pub varint header (0xed 0x01), base58btc
// multibase with the "z" prefix.
func KeyDIDFromPublicKey(pub []byte) (string, error) {
	if len(pub) != ed25519.PublicKeySize {
		return "", fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
			ErrInvalidKeyLength, ed25519.PublicKeySize, len(pub))
	}

	code := uint64(multicodec.Ed25519Pub)
	buf := make([]byte, varint.UvarintSize(code)+len(pub))
	n := varint.PutUvarint(buf, code)
	copy(buf[n:], pub)

	encoded, err := multibase.Encode(multibase.Base58BTC, buf)
	if err != nil {
		return "", fmt.Errorf("multibase encode: %w", err)
	}
	return KeyPrefix + encoded, nil
}

// ExtractKeyPublicKey decodes a did:key string back to the raw 32-byte
// Ed25519 public key. The multibase encoding must be base58btc and the
// multicodec header must be ed25519-pub.
func ExtractKeyPublicKey(did string) ([]byte, error) {
	suffix, err := KeyDIDSuffix(did)
	if err != nil {
		return nil, err
	}

	encoding, data, err := multibase.Decode(suffix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if encoding != multibase.Base58BTC {
		return nil, fmt.Errorf("%w: did:key must use base58btc multibase", ErrInvalidFormat)
	}

	code, n, err := varint.FromUvarint(data)
	if err != nil {
		return nil, fmt.Errorf("%w: bad multicodec header: %v", ErrInvalidFormat, err)
	}
	if multicodec.Code(code) != multicodec.Ed25519Pub {
		return nil, fmt.Errorf("%w: multicodec 0x%x is not ed25519-pub", ErrInvalidFormat, code)
	}

	pub := data[n:]
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: decoded public key is %d bytes, want %d",
			ErrInvalidKeyLength, len(pub), ed25519.PublicKeySize)
	}
	return pub, nil
}

// KeyDIDSuffix strips the did:key: prefix and returns the multibase portion
// verbatim. Earlier releases exposed only this shape check; callers that
// need the raw key should use ExtractKeyPublicKey.
func KeyDIDSuffix(did string) (string, error) {
	if !strings.HasPrefix(did, KeyPrefix) {
		return "", fmt.Errorf("%w: missing %q prefix", ErrInvalidFormat, KeyPrefix)
	}
	suffix := strings.TrimPrefix(did, KeyPrefix)
	if suffix == "" {
		return "", fmt.Errorf("%w: empty did:key suffix", ErrInvalidFormat)
	}
	return suffix, nil
}
