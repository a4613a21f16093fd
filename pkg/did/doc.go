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

// Package did implements DID string codecs and provider detection for the
// three identity schemes supported by sage-did-go.
//
// # Supported DID Formats
//
// The package understands four concrete DID grammars:
//
//	did:key:z<base58btc(0xed 0x01 || ed25519-public-key)>
//	did:pkh:solana:<CAIP-2 reference>:<base58 address>
//	did:ethr:<address> | did:ethr:<network|0x-chain-id>:<address>
//	did:pkh:eip155:<decimal chain id>:<address>
//
// Each DID identifies exactly one (provider, address-or-public-key) pair.
// Conversions between DIDs and native credentials are inverses, modulo
// case normalization (EVM addresses are lower-cased in DIDs) and the
// optional network segment (mainnet is the identity element and is elided).
//
// # Provider Detection
//
// Detect inspects a string and returns the provider that owns it:
//
//	provider := did.Detect("did:pkh:solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp:9WzD...")
//	// provider == did.ProviderSolana
//
// Detection never fails: strings that match no known grammar fall back to
// ProviderKey. Callers that want to fail closed on unrecognized input should
// use DetectStrict, which returns ErrUnsupportedDIDFormat instead.
//
// # Codecs
//
// Per-provider conversion functions translate between DIDs and native
// representations:
//
//	d, err := did.SolanaDIDFromAddress(addr)
//	addr, err := did.SolanaAddressFromDID(d)
//
//	d, err := did.EthrDIDFromAddress(addr, &did.EthrOptions{ChainID: 137})
//	addr, err := did.EVMAddressFromDID(d)
//	chainID, ok := did.ChainIDFromDID(d)
//
//	d, err := did.KeyDIDFromPublicKey(pub)
//	pub, err := did.ExtractKeyPublicKey(d)
//
// # Errors
//
// Codec failures are reported through the sentinel errors ErrInvalidAddress,
// ErrInvalidFormat, ErrInvalidKeyLength and ErrUnsupportedDIDFormat, wrapped
// with context. Use errors.Is to classify them.
package did
