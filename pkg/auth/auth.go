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

// Package auth is the dispatch layer: it turns a resolved credential into
// a signature or a full authentication payload. It makes no network calls;
// replay protection on the signing side is the remote verifier's problem.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/sage-x-project/sage-did-go/pkg/did"
	"github.com/sage-x-project/sage-did-go/pkg/nonce"
	"github.com/sage-x-project/sage-did-go/pkg/resolver"
	"github.com/sage-x-project/sage-did-go/pkg/signer"
)

// Payload is a self-contained authentication proof: the signature covers
// "<did>:<timestamp>:<nonce>".
type Payload struct {
	DID       string `json:"did"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

// Sign signs message with the credential's signer. Signing errors
// propagate with their original diagnostic.
func Sign(ctx context.Context, message string, cred *resolver.Credential) (string, error) {
	if cred == nil {
		return "", resolver.ErrNoCredentials
	}
	return cred.Signer.Sign(ctx, message)
}

// BuildPayload produces an authentication payload for the credential: a
// fresh provider-appropriate nonce, a millisecond timestamp, and a
// signature over "<did>:<timestamp>:<nonce>". Every call generates a new
// nonce; nothing is deduplicated here.
func BuildPayload(ctx context.Context, cred *resolver.Credential) (*Payload, error) {
	if cred == nil {
		return nil, resolver.ErrNoCredentials
	}

	n, err := signer.NewNonce(cred.Provider)
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	ts := time.Now().UnixMilli()

	sig, err := cred.Signer.Sign(ctx, payloadMessage(cred.DID, ts, n))
	if err != nil {
		return nil, err
	}

	return &Payload{
		DID:       cred.DID,
		Timestamp: ts,
		Nonce:     n,
		Signature: sig,
	}, nil
}

// VerifyOptions tune VerifyPayload. The zero value disables both checks.
type VerifyOptions struct {
	// MaxAge rejects payloads whose timestamp is older than now-MaxAge
	// (or more than MaxAge in the future).
	MaxAge time.Duration

	// Tracker, when set, rejects nonces already observed inside its TTL
	// window.
	Tracker *nonce.Tracker
}

// VerifyPayload checks a payload against the verification material for its
// DID's provider: hex public key (key), base58 public key (solana) or hex
// address (evm). Like all verification in this module it is a predicate —
// malformed payloads yield false, never an error.
func VerifyPayload(ctx context.Context, p *Payload, material string, opts *VerifyOptions) bool {
	if p == nil || ctx.Err() != nil {
		return false
	}

	if opts != nil && opts.MaxAge > 0 {
		age := time.Since(time.UnixMilli(p.Timestamp))
		if age > opts.MaxAge || age < -opts.MaxAge {
			return false
		}
	}

	message := payloadMessage(p.DID, p.Timestamp, p.Nonce)
	var ok bool
	switch did.Detect(p.DID) {
	case did.ProviderSolana:
		ok = signer.VerifySolana(message, p.Signature, material)
	case did.ProviderEVM:
		ok = signer.VerifyEVM(message, p.Signature, material)
	default:
		ok = signer.VerifyEd25519(message, p.Signature, material)
	}
	if !ok {
		return false
	}

	// Replay check last, so a forged payload cannot poison the window.
	if opts != nil && opts.Tracker != nil {
		return opts.Tracker.Observe(p.Nonce)
	}
	return true
}

func payloadMessage(didStr string, timestamp int64, n string) string {
	return fmt.Sprintf("%s:%d:%s", didStr, timestamp, n)
}
