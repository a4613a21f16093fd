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
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/sage-x-project/sage-did-go/pkg/did"
)

// SolanaSigner signs messages with a Solana keypair. A Solana keypair is
// the 64-byte concatenation seed||public-key, which is exactly Go's
// ed25519.PrivateKey layout. Signatures are detached and base58-encoded.
type SolanaSigner struct {
	priv ed25519.PrivateKey
}

// NewSolanaSigner creates a signer from a base58-encoded 64-byte keypair.
func NewSolanaSigner(keypairBase58 string) (*SolanaSigner, error) {
	raw, err := base58.Decode(keypairBase58)
	if err != nil {
		return nil, fmt.Errorf("decode solana keypair: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: solana keypair must be %d bytes, got %d",
			did.ErrInvalidKeyLength, ed25519.PrivateKeySize, len(raw))
	}
	return &SolanaSigner{priv: ed25519.PrivateKey(raw)}, nil
}

// Provider returns did.ProviderSolana.
func (s *SolanaSigner) Provider() did.Provider {
	return did.ProviderSolana
}

// Sign signs the message and returns the base58-encoded signature.
func (s *SolanaSigner) Sign(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	sig := ed25519.Sign(s.priv, []byte(message))
	return base58.Encode(sig), nil
}

// PublicMaterial returns the base58-encoded public key, which is also the
// wallet address.
func (s *SolanaSigner) PublicMaterial() string {
	return base58.Encode(s.priv[ed25519.SeedSize:])
}

// Address is an alias for PublicMaterial; on Solana they coincide.
func (s *SolanaSigner) Address() string {
	return s.PublicMaterial()
}

// SolanaPublicKey extracts the base58 public key (the trailing 32 bytes)
// from a base58 64-byte keypair.
func SolanaPublicKey(keypairBase58 string) (string, error) {
	raw, err := base58.Decode(keypairBase58)
	if err != nil {
		return "", fmt.Errorf("decode solana keypair: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("%w: solana keypair must be %d bytes, got %d",
			did.ErrInvalidKeyLength, ed25519.PrivateKeySize, len(raw))
	}
	return base58.Encode(raw[ed25519.SeedSize:]), nil
}

// VerifySolana checks a base58 signature over message against a base58
// public key. The public key must decode to 32 bytes and the signature to
// 64; any decode or length failure returns false, never an error.
func VerifySolana(message, signatureBase58, publicKeyBase58 string) bool {
	pub, err := base58.Decode(publicKeyBase58)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		logVerify(did.ProviderSolana, outcomeMalformed, "public key is not 32 base58-encoded bytes")
		return false
	}
	sig, err := base58.Decode(signatureBase58)
	if err != nil || len(sig) != ed25519.SignatureSize {
		logVerify(did.ProviderSolana, outcomeMalformed, "signature is not 64 base58-encoded bytes")
		return false
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(message), sig) {
		logVerify(did.ProviderSolana, outcomeMismatch, "ed25519 verification failed")
		return false
	}
	return true
}
