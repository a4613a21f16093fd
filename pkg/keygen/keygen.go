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

// Package keygen generates fresh credentials for tests and local setup.
// Keys produced here use the same encodings the resolver expects in the
// AGENT_* environment variables.
package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"

	"github.com/sage-x-project/sage-did-go/pkg/did"
)

// Credential is a freshly generated identity: the DID, the private key in
// the provider's env-var encoding, and the public material a verifier
// needs.
type Credential struct {
	DID        string
	Provider   did.Provider
	PrivateKey string
	Public     string
}

// Ed25519 generates a did:key identity. PrivateKey is the 64-char hex
// seed, Public the hex public key.
func Ed25519() (*Credential, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	d, err := did.KeyDIDFromPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &Credential{
		DID:        d,
		Provider:   did.ProviderKey,
		PrivateKey: hex.EncodeToString(priv.Seed()),
		Public:     hex.EncodeToString(pub),
	}, nil
}

// Solana generates a did:pkh:solana identity on mainnet-beta. PrivateKey
// is the base58 64-byte keypair, Public the base58 address.
func Solana() (*Credential, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate solana keypair: %w", err)
	}
	address := base58.Encode(pub)
	d, err := did.SolanaDIDFromAddress(address)
	if err != nil {
		return nil, err
	}
	return &Credential{
		DID:        d,
		Provider:   did.ProviderSolana,
		PrivateKey: base58.Encode(priv),
		Public:     address,
	}, nil
}

// EVM generates a did:ethr identity on mainnet. PrivateKey is the hex
// secp256k1 key, Public the checksummed address.
func EVM() (*Credential, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate secp256k1 key: %w", err)
	}
	address := ethcrypto.PubkeyToAddress(key.PublicKey)
	d, err := did.EthrDIDFromAddress(address.Hex(), nil)
	if err != nil {
		return nil, err
	}
	return &Credential{
		DID:        d,
		Provider:   did.ProviderEVM,
		PrivateKey: hex.EncodeToString(ethcrypto.FromECDSA(key)),
		Public:     address.Hex(),
	}, nil
}

// ForProvider dispatches to the generator for p.
func ForProvider(p did.Provider) (*Credential, error) {
	switch p {
	case did.ProviderKey:
		return Ed25519()
	case did.ProviderSolana:
		return Solana()
	case did.ProviderEVM:
		return EVM()
	default:
		return nil, fmt.Errorf("unknown provider %q", p)
	}
}
