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

	"go.uber.org/zap"

	"github.com/sage-x-project/sage-did-go/pkg/did"
)

// MessageSigner signs arbitrary messages for a single identity provider.
type MessageSigner interface {
	// Provider returns the provider this signer belongs to.
	Provider() did.Provider

	// Sign signs the UTF-8 bytes of message and returns the signature in
	// the provider's canonical encoding.
	Sign(ctx context.Context, message string) (string, error)

	// PublicMaterial returns the value a verifier needs: the hex public
	// key (key), base58 public key (solana) or 0x address (evm).
	PublicMaterial() string
}

// verifyOutcome classifies why a verification returned false. Only the
// boolean crosses the public boundary; the outcome is logged.
type verifyOutcome int

const (
	outcomeOK verifyOutcome = iota
	outcomeMalformed
	outcomeMismatch
)

var logger = zap.NewNop()

// SetLogger installs a logger for verification diagnostics. Components pass
// a named child of their own logger; the default discards everything.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

func logVerify(provider did.Provider, outcome verifyOutcome, detail string) {
	switch outcome {
	case outcomeMalformed:
		logger.Debug("verification input malformed",
			zap.String("provider", string(provider)),
			zap.String("detail", detail))
	case outcomeMismatch:
		logger.Debug("signature mismatch",
			zap.String("provider", string(provider)),
			zap.String("detail", detail))
	}
}
