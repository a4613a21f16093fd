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

import "errors"

// Provider identifies the cryptographic scheme a DID belongs to.
type Provider string

const (
	// ProviderKey is a local Ed25519 identity expressed as did:key.
	ProviderKey Provider = "key"

	// ProviderSolana is a Solana account expressed as did:pkh:solana.
	ProviderSolana Provider = "solana"

	// ProviderEVM is an Ethereum-compatible account expressed as
	// did:ethr or did:pkh:eip155.
	ProviderEVM Provider = "evm"
)

// DID method prefixes recognized by this package.
const (
	KeyPrefix       = "did:key:"
	SolanaPrefix    = "did:pkh:solana:"
	EthrPrefix      = "did:ethr:"
	PkhEIP155Prefix = "did:pkh:eip155:"
)

// Sentinel errors returned by codec conversions.
var (
	// ErrInvalidAddress reports a malformed native address.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidFormat reports a DID string that does not match the
	// expected grammar for its method.
	ErrInvalidFormat = errors.New("invalid DID format")

	// ErrInvalidKeyLength reports key material of the wrong size.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrUnsupportedDIDFormat reports a string that matches no known
	// DID method or address shape.
	ErrUnsupportedDIDFormat = errors.New("unsupported DID format")
)
