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
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// SolanaMainnetCAIP2 is the CAIP-2 identifier for Solana mainnet-beta
// (method namespace plus the truncated genesis hash).
const SolanaMainnetCAIP2 = "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"

// IsSolanaAddress reports whether s base58-decodes to exactly 32 bytes.
func IsSolanaAddress(s string) bool {
	raw, err := base58.Decode(s)
	return err == nil && len(raw) == 32
}

// SolanaDIDFromAddress converts a Solana wallet address to a did:pkh DID.
// chain, when given, overrides the CAIP-2 chain identifier (defaults to
// mainnet-beta).
func SolanaDIDFromAddress(address string, chain ...string) (string, error) {
	if !IsSolanaAddress(address) {
		return "", fmt.Errorf("%w: %q is not a valid Solana address", ErrInvalidAddress, address)
	}
	caip2 := SolanaMainnetCAIP2
	if len(chain) > 0 && chain[0] != "" {
		caip2 = chain[0]
	}
	return fmt.Sprintf("did:pkh:%s:%s", caip2, address), nil
}

// SolanaAddressFromDID extracts the wallet address from a did:pkh:solana
// DID. The DID must have exactly five colon-separated segments
// (did:pkh:solana:<chain-ref>:<address>) and the address must decode to
// 32 bytes.
func SolanaAddressFromDID(did string) (string, error) {
	if !strings.HasPrefix(did, SolanaPrefix) {
		return "", fmt.Errorf("%w: missing %q prefix", ErrInvalidFormat, SolanaPrefix)
	}
	parts := strings.Split(did, ":")
	if len(parts) != 5 {
		return "", fmt.Errorf("%w: expected 5 segments, got %d", ErrInvalidFormat, len(parts))
	}
	address := parts[4]
	if !IsSolanaAddress(address) {
		return "", fmt.Errorf("%w: %q is not a valid Solana address", ErrInvalidAddress, address)
	}
	return address, nil
}
