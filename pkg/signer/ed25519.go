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
	"encoding/hex"
	"fmt"

	"github.com/sage-x-project/sage-did-go/pkg/did"
)

// Ed25519Signer signs messages with a local Ed25519 key (RFC 8032,
// deterministic). Signatures are hex-encoded.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewEd25519Signer creates a signer from a 64-character hex private key
// seed.
func NewEd25519Signer(privateKeyHex string) (*Ed25519Signer, error) {
	seed, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decode ed25519 private key: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d",
			did.ErrInvalidKeyLength, ed25519.SeedSize, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	return &Ed25519Signer{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// Provider returns did.ProviderKey.
func (s *Ed25519Signer) Provider() did.Provider {
	return did.ProviderKey
}

// Sign signs the message and returns the hex-encoded signature.
func (s *Ed25519Signer) Sign(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	sig := ed25519.Sign(s.priv, []byte(message))
	return hex.EncodeToString(sig), nil
}

// PublicMaterial returns the hex-encoded public key.
func (s *Ed25519Signer) PublicMaterial() string {
	return hex.EncodeToString(s.pub)
}

// DID returns the did:key DID for this signer's public key.
func (s *Ed25519Signer) DID() (string, error) {
	return did.KeyDIDFromPublicKey(s.pub)
}

// VerifyEd25519 checks a hex signature over message against a hex public
// key. It returns false, never an error, on malformed input.
func VerifyEd25519(message, signatureHex, publicKeyHex string) bool {
	pub, err := hex.DecodeString(publicKeyHex)
	if err != nil || len(pub) != ed25519.PublicKeySize {
		logVerify(did.ProviderKey, outcomeMalformed, "public key is not 32 hex-encoded bytes")
		return false
	}
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		logVerify(did.ProviderKey, outcomeMalformed, "signature is not 64 hex-encoded bytes")
		return false
	}
	if !ed25519.Verify(pub, []byte(message), sig) {
		logVerify(did.ProviderKey, outcomeMismatch, "ed25519 verification failed")
		return false
	}
	return true
}
