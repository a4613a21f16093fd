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

// Package toolkit exposes the two operations the surrounding protocol
// adapter invokes: CreateDIDSignature and GenerateAuthPayload.
//
// # Usage
//
//	tk := toolkit.New(toolkit.WithLogger(logger))
//
//	res, err := tk.CreateDIDSignature(ctx, "hello", "")
//	// res: {DID, Message, Signature, Provider}
//
//	payload, err := tk.GenerateAuthPayload(ctx, did.ProviderSolana)
//	// payload: {DID, Timestamp, Nonce, Signature, Provider}
//
// Credentials are resolved from the environment on every call (see
// pkg/resolver for the variable names and precedence). Private keys never
// leave the process; the outputs carry only public values.
//
// Each invocation is logged with a generated invocation id so concurrent
// tool calls can be told apart in logs.
package toolkit
