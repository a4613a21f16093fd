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

package signer

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/sage-x-project/sage-did-go/pkg/did"
)

// nonceSize is the number of random bytes in a nonce.
const nonceSize = 32

// NewNonce returns 32 random bytes encoded per provider convention:
// base58 for solana, standard base64 for key and evm.
func NewNonce(provider did.Provider) (string, error) {
	buf := make([]byte, nonceSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	if provider == did.ProviderSolana {
		return base58.Encode(buf), nil
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
