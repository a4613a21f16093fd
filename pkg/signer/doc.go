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

// Package signer provides message signing and verification for the three
// identity providers supported by sage-did-go.
//
// # Signers
//
// Each provider has a MessageSigner implementation constructed from its
// native private-key encoding:
//
//	s, err := signer.NewEd25519Signer(privateKeyHex)   // 64-char hex seed
//	s, err := signer.NewSolanaSigner(keypairBase58)    // base58 64-byte keypair
//	s, err := signer.NewEVMSigner(privateKeyHex)       // hex, optional 0x
//
//	sig, err := s.Sign(ctx, "message")
//
// Signature encodings follow the provider convention: hex for Ed25519,
// base58 for Solana, 0x-prefixed hex for EVM. EVM signatures are EIP-191
// personal-message signatures with the recovery byte normalized to 27/28.
//
// # Verification
//
// Verification is a predicate, not an action: the Verify functions return a
// plain bool and never fail. Malformed input and cryptographic mismatch are
// both reported as false; the distinction is logged at debug level through
// the package logger (see SetLogger).
//
//	ok := signer.VerifyEd25519(msg, sigHex, publicKeyHex)
//	ok := signer.VerifySolana(msg, sigB58, publicKeyB58)
//	ok := signer.VerifyEVM(msg, sig, expectedAddress)
//
// # Nonces
//
// NewNonce produces 32 random bytes encoded per provider convention:
// base64 for key and evm, base58 for solana.
package signer
