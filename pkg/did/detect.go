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
)

// Detect returns the provider a DID or raw address string belongs to.
//
// Matching order: did:key prefix, did:pkh:solana prefix, did:ethr /
// did:pkh:eip155 prefixes, then raw-address shape sniffing (32-byte base58
// blob is Solana, hex address is EVM). Strings that match nothing fall back
// to ProviderKey; Detect never fails. The fallback is a documented legacy
// default — callers that must not mistake garbage for a key identity should
// use DetectStrict.
func Detect(s string) Provider {
	switch {
	case strings.HasPrefix(s, KeyPrefix):
		return ProviderKey
	case strings.HasPrefix(s, SolanaPrefix):
		return ProviderSolana
	case strings.HasPrefix(s, EthrPrefix), strings.HasPrefix(s, PkhEIP155Prefix):
		return ProviderEVM
	case IsSolanaAddress(s):
		return ProviderSolana
	case IsEVMAddress(s):
		return ProviderEVM
	default:
		return ProviderKey
	}
}

// DetectStrict is Detect without the ProviderKey fallback: strings that
// match no known DID grammar and no address shape yield
// ErrUnsupportedDIDFormat.
func DetectStrict(s string) (Provider, error) {
	if strings.HasPrefix(s, KeyPrefix) {
		return ProviderKey, nil
	}
	p := Detect(s)
	if p == ProviderKey {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDIDFormat, s)
	}
	return p, nil
}
