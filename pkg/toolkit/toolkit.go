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

package toolkit

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sage-x-project/sage-did-go/pkg/auth"
	"github.com/sage-x-project/sage-did-go/pkg/did"
	"github.com/sage-x-project/sage-did-go/pkg/resolver"
)

// SignatureResult is the output of CreateDIDSignature.
type SignatureResult struct {
	DID       string       `json:"did"`
	Message   string       `json:"message"`
	Signature string       `json:"signature"`
	Provider  did.Provider `json:"provider"`
}

// AuthPayloadResult is the output of GenerateAuthPayload.
type AuthPayloadResult struct {
	DID       string       `json:"did"`
	Timestamp int64        `json:"timestamp"`
	Nonce     string       `json:"nonce"`
	Signature string       `json:"signature"`
	Provider  did.Provider `json:"provider"`
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithResolver replaces the default environment-backed resolver.
func WithResolver(r *resolver.Resolver) Option {
	return func(t *Toolkit) {
		if r != nil {
			t.resolver = r
		}
	}
}

// WithLogger sets the toolkit's logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Toolkit) {
		if l != nil {
			t.logger = l
		}
	}
}

// Toolkit is the tool boundary the surrounding protocol adapter calls
// into. Each operation resolves credentials afresh from the environment
// and never transmits or stores private keys.
type Toolkit struct {
	resolver *resolver.Resolver
	logger   *zap.Logger
}

// New creates a Toolkit with an environment-backed resolver.
func New(opts ...Option) *Toolkit {
	t := &Toolkit{
		resolver: resolver.New(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CreateDIDSignature signs message with the credential resolved for hint
// (empty hint means any provider). Resolution failure surfaces
// resolver.ErrNoCredentials; signing errors propagate with their original
// diagnostic.
func (t *Toolkit) CreateDIDSignature(ctx context.Context, message string, hint did.Provider) (*SignatureResult, error) {
	id := uuid.NewString()

	cred, err := t.resolver.Resolve(hint)
	if err != nil {
		t.logger.Warn("credential resolution failed",
			zap.String("invocation_id", id), zap.Error(err))
		return nil, err
	}

	sig, err := auth.Sign(ctx, message, cred)
	if err != nil {
		return nil, err
	}

	t.logger.Info("created DID signature",
		zap.String("invocation_id", id),
		zap.String("did", cred.DID),
		zap.String("provider", string(cred.Provider)))

	return &SignatureResult{
		DID:       cred.DID,
		Message:   message,
		Signature: sig,
		Provider:  cred.Provider,
	}, nil
}

// GenerateAuthPayload builds a timestamp+nonce authentication payload for
// the credential resolved for hint.
func (t *Toolkit) GenerateAuthPayload(ctx context.Context, hint did.Provider) (*AuthPayloadResult, error) {
	id := uuid.NewString()

	cred, err := t.resolver.Resolve(hint)
	if err != nil {
		t.logger.Warn("credential resolution failed",
			zap.String("invocation_id", id), zap.Error(err))
		return nil, err
	}

	payload, err := auth.BuildPayload(ctx, cred)
	if err != nil {
		return nil, err
	}

	t.logger.Info("generated auth payload",
		zap.String("invocation_id", id),
		zap.String("did", cred.DID),
		zap.String("provider", string(cred.Provider)),
		zap.Int64("timestamp", payload.Timestamp))

	return &AuthPayloadResult{
		DID:       payload.DID,
		Timestamp: payload.Timestamp,
		Nonce:     payload.Nonce,
		Signature: payload.Signature,
		Provider:  cred.Provider,
	}, nil
}
